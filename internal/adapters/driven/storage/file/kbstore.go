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
	"github.com/custodia-labs/tutor-cli/internal/logger"
)

// Ensure KnowledgeStore implements the interface.
var _ driven.KnowledgeStore = (*KnowledgeStore)(nil)

// kbFileName is the knowledge-base file inside the data directory.
const kbFileName = "kb.json"

// KnowledgeStore is a JSON file-backed implementation of
// driven.KnowledgeStore. The section list is held in memory and the whole
// file is rewritten on every append.
type KnowledgeStore struct {
	mu       sync.RWMutex
	path     string
	sections []domain.KnowledgeSection
}

// NewKnowledgeStore creates a knowledge store in the given data directory.
// If dataDir is empty, defaults to ~/.tutor/data. An existing file is read
// once here; later reads are served from memory.
func NewKnowledgeStore(dataDir string) (*KnowledgeStore, error) {
	dir, err := resolveDataDir(dataDir)
	if err != nil {
		return nil, err
	}

	s := &KnowledgeStore{path: filepath.Join(dir, kbFileName)}

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read knowledge base: %w", err)
	}
	if err := json.Unmarshal(data, &s.sections); err != nil {
		return nil, fmt.Errorf("parse knowledge base %s: %w", s.path, err)
	}

	logger.Debug("Loaded %d section(s) from %s", len(s.sections), s.path)
	return s, nil
}

// Append stores a new section and rewrites the file before returning.
func (s *KnowledgeStore) Append(_ context.Context, section domain.KnowledgeSection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sections = append(s.sections, section)
	if err := s.persist(); err != nil {
		// Roll back the in-memory append so memory and disk stay in step.
		s.sections = s.sections[:len(s.sections)-1]
		return err
	}
	return nil
}

// Sections returns all stored sections in insertion order.
func (s *KnowledgeStore) Sections(_ context.Context) ([]domain.KnowledgeSection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.KnowledgeSection, len(s.sections))
	copy(out, s.sections)
	return out, nil
}

// Count returns the number of stored sections.
func (s *KnowledgeStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sections), nil
}

// Close is a no-op; every mutation is already durable.
func (s *KnowledgeStore) Close() error {
	return nil
}

// Path returns the knowledge-base file path.
func (s *KnowledgeStore) Path() string {
	return s.path
}

// persist rewrites the whole file. Callers hold s.mu.
func (s *KnowledgeStore) persist() error {
	data, err := json.MarshalIndent(s.sections, "", "  ")
	if err != nil {
		return fmt.Errorf("encode knowledge base: %w", err)
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("persist knowledge base: %w", err)
	}
	return nil
}

// resolveDataDir expands the default data directory and ensures it exists.
func resolveDataDir(dataDir string) (string, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".tutor", "data")
	}
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", fmt.Errorf("creating data directory: %w", err)
	}
	return dataDir, nil
}
