package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/tutor-cli/internal/core/domain"
	"github.com/custodia-labs/tutor-cli/internal/core/ports/driven"
	"github.com/custodia-labs/tutor-cli/internal/core/ports/driving"
	"github.com/custodia-labs/tutor-cli/internal/logger"
)

// Ensure RetrievalService implements the interface.
var _ driving.RetrievalService = (*RetrievalService)(nil)

// RetrievalService is the lexical retrieval baseline.
//
// A section matches when any lowercase query token appears as a substring of
// the section's lowercased content. There is no ranking, no relevance
// scoring, and no recency weighting: matches are concatenated in store
// insertion order and hard-cut at domain.RetrievalCap characters.
type RetrievalService struct {
	store driven.KnowledgeStore
}

// NewRetrievalService creates a lexical retrieval service over a store.
func NewRetrievalService(store driven.KnowledgeStore) *RetrievalService {
	return &RetrievalService{store: store}
}

// Retrieve returns the assembled excerpt for a query. An empty result means
// no section matched (or the store is empty) and is not an error.
func (s *RetrievalService) Retrieve(ctx context.Context, query string) (string, error) {
	logger.Section("Retrieval")
	logger.Debug("Query: %q", query)

	tokens := tokenise(query)
	if len(tokens) == 0 {
		logger.Debug("Empty query, no excerpt")
		return "", nil
	}

	sections, err := s.store.Sections(ctx)
	if err != nil {
		return "", fmt.Errorf("load sections: %w", err)
	}
	logger.Debug("Store has %d section(s)", len(sections))

	var b strings.Builder
	matched := 0
	for _, sec := range sections {
		if matches(sec.Content, tokens) {
			fmt.Fprintf(&b, "\n--- Source: %s ---\n%s\n", sec.Source, sec.Content)
			matched++
		}
	}
	logger.Debug("Matched %d section(s)", matched)

	result := b.String()
	if len(result) > domain.RetrievalCap {
		// Hard cut, not sentence-aware. Bounds downstream prompt size.
		result = result[:domain.RetrievalCap]
		logger.Debug("Excerpt truncated to %d characters", domain.RetrievalCap)
	}
	return result, nil
}

// tokenise splits a query on whitespace into a set of lowercase tokens.
// Duplicates collapse.
func tokenise(query string) []string {
	seen := make(map[string]struct{})
	var tokens []string
	for _, w := range strings.Fields(strings.ToLower(query)) {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		tokens = append(tokens, w)
	}
	return tokens
}

// matches reports whether any token appears as a substring of the content.
// Substring containment, not word-boundary matching: a token can match
// inside a larger word.
func matches(content string, tokens []string) bool {
	lower := strings.ToLower(content)
	for _, tok := range tokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}
