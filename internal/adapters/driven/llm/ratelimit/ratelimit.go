// Package ratelimit wraps an LLM service with client-side request pacing so
// bursts of questions do not trip provider quota limits.
package ratelimit

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/tutor-cli/internal/core/ports/driven"
)

// Ensure LLMService implements the interface.
var _ driven.LLMService = (*LLMService)(nil)

// DefaultRequestsPerMinute is a safe pace for free-tier provider keys.
const DefaultRequestsPerMinute = 15

// LLMService delegates to an inner service after waiting for a limiter token.
type LLMService struct {
	inner   driven.LLMService
	limiter *rate.Limiter
}

// Wrap creates a rate-limited view of the given service. requestsPerMinute
// values <= 0 fall back to DefaultRequestsPerMinute.
func Wrap(inner driven.LLMService, requestsPerMinute int) *LLMService {
	if requestsPerMinute <= 0 {
		requestsPerMinute = DefaultRequestsPerMinute
	}
	return &LLMService{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), requestsPerMinute),
	}
}

// Generate waits for limiter capacity, then delegates.
func (s *LLMService) Generate(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}
	return s.inner.Generate(ctx, prompt, opts)
}

// ModelName returns the inner service's model name.
func (s *LLMService) ModelName() string {
	return s.inner.ModelName()
}

// Ping delegates without consuming a limiter token; health checks should not
// steal capacity from generation.
func (s *LLMService) Ping(ctx context.Context) error {
	return s.inner.Ping(ctx)
}

// Close closes the inner service.
func (s *LLMService) Close() error {
	return s.inner.Close()
}
