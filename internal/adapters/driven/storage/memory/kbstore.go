// Package memory provides in-memory store implementations for testing and
// throwaway sessions. Nothing is persisted.
package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/tutor-cli/internal/core/domain"
	"github.com/custodia-labs/tutor-cli/internal/core/ports/driven"
)

// Ensure KnowledgeStore implements the interface.
var _ driven.KnowledgeStore = (*KnowledgeStore)(nil)

// KnowledgeStore is an in-memory implementation of driven.KnowledgeStore.
type KnowledgeStore struct {
	mu       sync.RWMutex
	sections []domain.KnowledgeSection
}

// NewKnowledgeStore creates a new empty in-memory knowledge store.
func NewKnowledgeStore() *KnowledgeStore {
	return &KnowledgeStore{}
}

// Append stores a new section at the end of the collection.
func (s *KnowledgeStore) Append(_ context.Context, section domain.KnowledgeSection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sections = append(s.sections, section)
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

// Close is a no-op for the in-memory store.
func (s *KnowledgeStore) Close() error {
	return nil
}
