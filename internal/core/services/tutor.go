package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/tutor-cli/internal/core/domain"
	"github.com/custodia-labs/tutor-cli/internal/core/ports/driven"
	"github.com/custodia-labs/tutor-cli/internal/core/ports/driving"
	"github.com/custodia-labs/tutor-cli/internal/logger"
)

// Ensure TutorService implements the interface.
var _ driving.TutorService = (*TutorService)(nil)

// TutorService orchestrates one question end to end. One question is
// processed fully before the next is accepted; the only suspension point is
// the blocking generation call.
type TutorService struct {
	retrieval driving.RetrievalService
	profile   driving.ProfileService
	llm       driven.LLMService
	prompts   driven.PromptStore
	intents   *IntentExtractor
}

// NewTutorService creates the tutor orchestrator. The llm parameter may be
// nil, in which case Ask fails with domain.ErrLLMUnavailable.
func NewTutorService(
	retrieval driving.RetrievalService,
	profile driving.ProfileService,
	llm driven.LLMService,
	prompts driven.PromptStore,
	intents *IntentExtractor,
) *TutorService {
	if intents == nil {
		intents = NewIntentExtractor(StrategyLegacy)
	}
	return &TutorService{
		retrieval: retrieval,
		profile:   profile,
		llm:       llm,
		prompts:   prompts,
		intents:   intents,
	}
}

// Ask processes a single learner question: retrieve, summarise, assemble,
// generate, then update the profile.
//
// A failed generation surfaces to the caller and leaves the history
// untouched; the name heuristic still applies, as introducing yourself is
// input handling, not part of the answer.
func (s *TutorService) Ask(ctx context.Context, question string) (*driving.Answer, error) {
	logger.Section("Ask")

	excerpt, err := s.retrieval.Retrieve(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("retrieve: %w", err)
	}

	summary, err := s.profile.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("profile summary: %w", err)
	}

	system, err := s.prompts.Load(driven.PromptTutorSystem)
	if err != nil {
		return nil, fmt.Errorf("load system prompt: %w", err)
	}

	prompt := BuildPrompt(system, summary, excerpt, question)
	logger.Debug("Prompt assembled: %d characters", len(prompt))

	if s.llm == nil {
		return nil, domain.ErrLLMUnavailable
	}

	intents := s.intents.Extract(question)

	text, genErr := s.llm.Generate(ctx, prompt, driven.GenerateOptions{})
	if genErr != nil {
		s.applyName(ctx, intents)
		return nil, fmt.Errorf("generate: %w", genErr)
	}

	if err := s.profile.RecordExchange(ctx, question, text); err != nil {
		return nil, fmt.Errorf("record exchange: %w", err)
	}

	answer := &driving.Answer{
		Text:              text,
		UsedKnowledgeBase: excerpt != "",
	}

	for _, r := range intents {
		switch r.Intent {
		case domain.IntentWeakTopic:
			if err := s.profile.FlagWeakTopic(ctx, r.Slot); err != nil {
				return nil, fmt.Errorf("flag weak topic: %w", err)
			}
			answer.FlaggedTopic = r.Slot
		case domain.IntentIntroduceName:
			if err := s.profile.UpdateIdentity(ctx, r.Slot, nil); err != nil {
				return nil, fmt.Errorf("update identity: %w", err)
			}
		}
	}

	return answer, nil
}

// applyName runs only the name intent. Used on the generation-failure path,
// where the topic heuristic must not fire.
func (s *TutorService) applyName(ctx context.Context, intents []domain.IntentResult) {
	for _, r := range intents {
		if r.Intent != domain.IntentIntroduceName {
			continue
		}
		if err := s.profile.UpdateIdentity(ctx, r.Slot, nil); err != nil {
			logger.Warn("Identity update failed: %v", err)
		}
	}
}
