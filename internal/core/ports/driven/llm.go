package driven

import (
	"context"
	"time"
)

// LLMService provides text generation for the tutor.
//
// The service is treated as an opaque, fallible collaborator: a call either
// returns the generated text or a generic error. No retry policy is built
// into the core; wrappers may add rate limiting or retries.
//
// Implementations may include:
//   - Gemini (the hosted default)
//   - OpenAI (GPT models or compatible APIs)
type LLMService interface {
	// Generate produces a completion for an assembled prompt.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64

	// Timeout overrides the adapter's default request timeout when > 0.
	Timeout time.Duration
}
