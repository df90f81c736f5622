package driving

import (
	"context"

	"github.com/custodia-labs/tutor-cli/internal/core/domain"
)

// ProfileService manages the learner profile. Every state-changing call
// persists synchronously; there is no explicit flush.
type ProfileService interface {
	// Profile returns a snapshot of the current profile.
	Profile(ctx context.Context) (*domain.Profile, error)

	// Summary renders the fixed-format student context block.
	Summary(ctx context.Context) (string, error)

	// UpdateIdentity overwrites the name (when non-empty) and unions the
	// given subjects into the profile.
	UpdateIdentity(ctx context.Context, name string, subjects []string) error

	// FlagWeakTopic records a topic needing reinforcement. Idempotent.
	FlagWeakTopic(ctx context.Context, topic string) error

	// MarkCompleted moves a topic from weak to completed.
	MarkCompleted(ctx context.Context, topic string) error

	// RecordExchange appends a question/answer pair to the bounded history.
	RecordExchange(ctx context.Context, question, answer string) error
}
