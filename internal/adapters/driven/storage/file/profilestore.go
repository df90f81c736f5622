package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/custodia-labs/tutor-cli/internal/core/domain"
	"github.com/custodia-labs/tutor-cli/internal/core/ports/driven"
)

// Ensure ProfileStore implements the interface.
var _ driven.ProfileStore = (*ProfileStore)(nil)

// profileFileName is the learner record inside the data directory.
const profileFileName = "profile.json"

// ProfileStore is a JSON file-backed implementation of driven.ProfileStore.
// The whole record is rewritten on every save.
type ProfileStore struct {
	mu   sync.Mutex
	path string
}

// NewProfileStore creates a profile store in the given data directory.
// If dataDir is empty, defaults to ~/.tutor/data.
func NewProfileStore(dataDir string) (*ProfileStore, error) {
	dir, err := resolveDataDir(dataDir)
	if err != nil {
		return nil, err
	}
	return &ProfileStore{path: filepath.Join(dir, profileFileName)}, nil
}

// Load reads the record, or returns the default profile if none exists.
func (s *ProfileStore) Load(_ context.Context) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return domain.NewProfile(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	profile := domain.NewProfile()
	if err := json.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", s.path, err)
	}
	return profile, nil
}

// Save rewrites the whole record atomically.
func (s *ProfileStore) Save(_ context.Context, profile *domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("persist profile: %w", err)
	}
	return nil
}

// Close is a no-op; every save is already durable.
func (s *ProfileStore) Close() error {
	return nil
}

// Path returns the profile file path.
func (s *ProfileStore) Path() string {
	return s.path
}
