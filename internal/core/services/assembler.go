package services

import (
	"fmt"
	"strings"
)

// Prompt section markers. The generation model is instructed to treat the
// knowledge-base excerpt as its primary source, so the markers are part of
// the prompt contract and must stay stable.
const (
	MarkerStudentContext = "### STUDENT CONTEXT"
	MarkerKnowledgeBase  = "### KNOWLEDGE BASE EXCERPT (PRIORITY)"
	MarkerQuestion       = "### QUESTION"
)

// KnowledgeBaseFallback substitutes for an empty excerpt. It tells the model
// to fall back to general knowledge and to remind the learner to upload
// materials.
const KnowledgeBaseFallback = "No specific documents found. Use general knowledge if needed but remind student to upload materials if they have them."

// BuildPrompt assembles the final generation prompt by deterministic
// concatenation in fixed section order: system instructions, student
// context, knowledge-base excerpt, question.
//
// There is no summarisation and no token-budget compression here; the only
// size bound is the retrieval cap applied upstream.
func BuildPrompt(system, profileSummary, kbExcerpt, question string) string {
	excerpt := kbExcerpt
	if excerpt == "" {
		excerpt = KnowledgeBaseFallback
	}

	var b strings.Builder
	b.WriteString(strings.TrimRight(system, "\n"))
	fmt.Fprintf(&b, "\n\n%s\n%s", MarkerStudentContext, profileSummary)
	fmt.Fprintf(&b, "\n%s\n%s\n", MarkerKnowledgeBase, excerpt)
	fmt.Fprintf(&b, "\n%s\n%s\n", MarkerQuestion, question)
	return b.String()
}
