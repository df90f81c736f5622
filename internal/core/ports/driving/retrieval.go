package driving

import "context"

// RetrievalService selects knowledge-base excerpts relevant to a question.
//
// The contract is deliberately backend-agnostic: the baseline implementation
// is lexical substring matching, but a vector-similarity backend can replace
// it without changing the assembler or the stores.
type RetrievalService interface {
	// Retrieve returns the assembled excerpt for a query, each matching
	// section prefixed with its source delimiter, capped at
	// domain.RetrievalCap characters. An empty string means "no relevant
	// context" and is not an error.
	Retrieve(ctx context.Context, query string) (string, error)
}
