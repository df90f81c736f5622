package driven

import (
	"context"

	"github.com/custodia-labs/tutor-cli/internal/core/domain"
)

// ProfileStore persists the single learner profile record.
//
// Load returns the default profile (name "Student", empty lists) when no
// record has been saved yet. Save replaces the whole record; callers persist
// after every state-changing mutation, so implementations should make Save
// durable before returning.
type ProfileStore interface {
	// Load reads the profile, or the default record if none exists.
	Load(ctx context.Context) (*domain.Profile, error)

	// Save writes the whole profile record durably.
	Save(ctx context.Context, profile *domain.Profile) error

	// Close releases resources.
	Close() error
}
