package driving

import "context"

// Answer is the outcome of one tutoring exchange.
type Answer struct {
	// Text is the model's reply.
	Text string

	// UsedKnowledgeBase reports whether retrieval found relevant sections.
	UsedKnowledgeBase bool

	// FlaggedTopic is the weak topic extracted from the question, if any.
	FlaggedTopic string
}

// TutorService orchestrates one question end to end: retrieve, summarise
// the learner, assemble the prompt, generate, then update the profile.
//
// A failed generation surfaces as an error and leaves the profile and
// history untouched.
type TutorService interface {
	// Ask processes a single learner question.
	Ask(ctx context.Context, question string) (*Answer, error)
}
