package services

import (
	"strings"
	"unicode"

	"github.com/custodia-labs/tutor-cli/internal/core/domain"
)

// ExtractionStrategy selects how intent slots are cut out of an utterance.
type ExtractionStrategy string

const (
	// StrategyLegacy reproduces the original keyword-splitting behaviour:
	// slots start after the first occurrence of the anchor word anywhere in
	// the lowercased utterance. This is known to truncate wrongly when the
	// anchor appears earlier in the sentence ("This is important, my name
	// is Ana") and is kept as the default on purpose.
	StrategyLegacy ExtractionStrategy = "legacy"

	// StrategyAnchored searches for the anchor word only after the trigger
	// phrase, avoiding the early-anchor misfire.
	StrategyAnchored ExtractionStrategy = "anchored"
)

// Trigger phrases, matched case-insensitively.
const (
	triggerStruggling = "struggling with"
	triggerConfused   = "don't understand"
	triggerName       = "my name is"
)

// Anchor words the slot is cut after.
const (
	anchorTopic = "about"
	anchorName  = "is"
)

// IntentExtractor turns one utterance into zero or more intent results.
//
// Extraction is a best-effort heuristic, not a classifier: false positives
// and negatives are expected and acceptable, and no validation rejects a
// malformed slot.
type IntentExtractor struct {
	strategy ExtractionStrategy
}

// NewIntentExtractor creates an extractor. Unknown strategies fall back to
// StrategyLegacy.
func NewIntentExtractor(strategy ExtractionStrategy) *IntentExtractor {
	if strategy != StrategyAnchored {
		strategy = StrategyLegacy
	}
	return &IntentExtractor{strategy: strategy}
}

// Strategy returns the active extraction strategy.
func (e *IntentExtractor) Strategy() ExtractionStrategy {
	return e.strategy
}

// Extract returns the intents recognised in the utterance. The weak-topic
// and name heuristics are independent; both may fire on one utterance.
func (e *IntentExtractor) Extract(utterance string) []domain.IntentResult {
	var results []domain.IntentResult

	if topic, ok := e.extractTopic(utterance); ok {
		results = append(results, domain.IntentResult{
			Intent: domain.IntentWeakTopic,
			Slot:   topic,
		})
	}
	if name, ok := e.extractName(utterance); ok {
		results = append(results, domain.IntentResult{
			Intent: domain.IntentIntroduceName,
			Slot:   name,
		})
	}
	return results
}

// extractTopic fires on "struggling with" / "don't understand" and cuts the
// candidate topic after the anchor word "about". No trimming of trailing
// punctuation, no normalisation beyond a whitespace strip.
func (e *IntentExtractor) extractTopic(utterance string) (string, bool) {
	lower := strings.ToLower(utterance)

	trigger := strings.Index(lower, triggerStruggling)
	if trigger < 0 {
		trigger = strings.Index(lower, triggerConfused)
	}
	if trigger < 0 {
		return "", false
	}

	searchFrom := 0
	if e.strategy == StrategyAnchored {
		searchFrom = trigger
	}

	slot := lower
	if idx := strings.Index(lower[searchFrom:], anchorTopic); idx >= 0 {
		slot = lower[searchFrom+idx+len(anchorTopic):]
	}
	return strings.TrimSpace(slot), true
}

// extractName fires on "my name is" and cuts the candidate name after the
// anchor "is". Under the legacy strategy the anchor is the first literal
// "is" anywhere in the utterance, which includes the "is" inside words like
// "This" - the documented misfire.
func (e *IntentExtractor) extractName(utterance string) (string, bool) {
	lower := strings.ToLower(utterance)

	trigger := strings.Index(lower, triggerName)
	if trigger < 0 {
		return "", false
	}

	searchFrom := 0
	if e.strategy == StrategyAnchored {
		searchFrom = trigger + len(triggerName) - len(anchorName)
	}

	idx := strings.Index(lower[searchFrom:], anchorName)
	if idx < 0 {
		return "", false
	}
	slot := strings.TrimSpace(lower[searchFrom+idx+len(anchorName):])
	return capitalise(slot), true
}

// capitalise upper-cases the first rune only.
func capitalise(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
