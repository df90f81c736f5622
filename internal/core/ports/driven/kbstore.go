package driven

import (
	"context"

	"github.com/custodia-labs/tutor-cli/internal/core/domain"
)

// KnowledgeStore persists knowledge-base sections.
//
// The store is logically append-only: sections are added in order and never
// edited or removed. Implementations must make each appended section durable
// before returning - there is no buffering of unsaved sections and no
// explicit flush operation.
type KnowledgeStore interface {
	// Append stores a new section at the end of the collection and
	// persists it synchronously.
	Append(ctx context.Context, section domain.KnowledgeSection) error

	// Sections returns all stored sections in insertion order.
	Sections(ctx context.Context) ([]domain.KnowledgeSection, error)

	// Count returns the number of stored sections.
	Count(ctx context.Context) (int, error)

	// Close releases resources.
	Close() error
}
