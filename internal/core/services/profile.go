package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/tutor-cli/internal/core/domain"
	"github.com/custodia-labs/tutor-cli/internal/core/ports/driven"
	"github.com/custodia-labs/tutor-cli/internal/core/ports/driving"
	"github.com/custodia-labs/tutor-cli/internal/logger"
)

// Ensure ProfileService implements the interface.
var _ driving.ProfileService = (*ProfileService)(nil)

// ProfileService manages the learner profile with write-through persistence:
// the record is read once on first use and saved after every mutation.
type ProfileService struct {
	store driven.ProfileStore

	mu       sync.Mutex
	profile  *domain.Profile
	loadOnce sync.Once
	loadErr  error
}

// NewProfileService creates a profile service over a store. The constructor
// performs no I/O; the record loads lazily on first access.
func NewProfileService(store driven.ProfileStore) *ProfileService {
	return &ProfileService{store: store}
}

// load reads the profile record once.
func (s *ProfileService) load(ctx context.Context) error {
	s.loadOnce.Do(func() {
		p, err := s.store.Load(ctx)
		if err != nil {
			s.loadErr = fmt.Errorf("load profile: %w", err)
			return
		}
		s.profile = p
	})
	return s.loadErr
}

// Profile returns a snapshot of the current profile.
func (s *ProfileService) Profile(ctx context.Context) (*domain.Profile, error) {
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Clone(), nil
}

// Summary renders the fixed-format student context block.
func (s *ProfileService) Summary(ctx context.Context) (string, error) {
	if err := s.load(ctx); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Summary(), nil
}

// UpdateIdentity overwrites the name (when non-empty) and unions subjects.
// Persists when either argument was given.
func (s *ProfileService) UpdateIdentity(ctx context.Context, name string, subjects []string) error {
	if err := s.load(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" && len(subjects) == 0 {
		return nil
	}
	if name != "" {
		s.profile.SetName(name)
		logger.Debug("Profile name set to %q", name)
	}
	if len(subjects) > 0 {
		s.profile.AddSubjects(subjects)
	}
	return s.save(ctx)
}

// FlagWeakTopic records a topic needing reinforcement.
// Persists only on actual change.
func (s *ProfileService) FlagWeakTopic(ctx context.Context, topic string) error {
	if err := s.load(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.profile.FlagWeakTopic(topic) {
		return nil
	}
	logger.Info("Flagged weak topic %q", topic)
	return s.save(ctx)
}

// MarkCompleted moves a topic from weak to completed and persists.
func (s *ProfileService) MarkCompleted(ctx context.Context, topic string) error {
	if err := s.load(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile.MarkCompleted(topic)
	return s.save(ctx)
}

// RecordExchange appends to the bounded history and persists.
func (s *ProfileService) RecordExchange(ctx context.Context, question, answer string) error {
	if err := s.load(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile.RecordExchange(question, answer)
	return s.save(ctx)
}

// save writes the record through to the store. Callers hold s.mu.
func (s *ProfileService) save(ctx context.Context) error {
	if err := s.store.Save(ctx, s.profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
