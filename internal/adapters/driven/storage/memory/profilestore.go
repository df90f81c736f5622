package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/tutor-cli/internal/core/domain"
	"github.com/custodia-labs/tutor-cli/internal/core/ports/driven"
)

// Ensure ProfileStore implements the interface.
var _ driven.ProfileStore = (*ProfileStore)(nil)

// ProfileStore is an in-memory implementation of driven.ProfileStore.
type ProfileStore struct {
	mu      sync.RWMutex
	profile *domain.Profile

	// SaveCount tracks how many times Save was called. Tests use it to
	// assert write-through behaviour.
	SaveCount int
}

// NewProfileStore creates a new in-memory profile store with no record.
func NewProfileStore() *ProfileStore {
	return &ProfileStore{}
}

// Load returns the saved profile, or the default record if none exists.
func (s *ProfileStore) Load(_ context.Context) (*domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return domain.NewProfile(), nil
	}
	return s.profile.Clone(), nil
}

// Save replaces the stored record.
func (s *ProfileStore) Save(_ context.Context, profile *domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = profile.Clone()
	s.SaveCount++
	return nil
}

// Close is a no-op for the in-memory store.
func (s *ProfileStore) Close() error {
	return nil
}
