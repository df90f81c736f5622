package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tutor-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/tutor-cli/internal/core/domain"
	"github.com/custodia-labs/tutor-cli/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockLLM implements driven.LLMService for testing.
type mockLLM struct {
	reply      string
	genErr     error
	lastPrompt string
	calls      int
}

func (m *mockLLM) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	m.calls++
	m.lastPrompt = prompt
	if m.genErr != nil {
		return "", m.genErr
	}
	return m.reply, nil
}

func (m *mockLLM) ModelName() string { return "mock-llm" }

func (m *mockLLM) Ping(_ context.Context) error { return nil }

func (m *mockLLM) Close() error { return nil }

// stubPromptStore implements driven.PromptStore with a fixed system prompt.
type stubPromptStore struct {
	prompt string
	err    error
}

func (s *stubPromptStore) Load(_ string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.prompt, nil
}

func (s *stubPromptStore) Reload() {}

// --- Fixtures ---

type tutorFixture struct {
	kb      *memory.KnowledgeStore
	profile *memory.ProfileStore
	llm     *mockLLM
	ingest  *IngestService
	svc     *TutorService
	prof    *ProfileService
}

func newTutorFixture(t *testing.T, llm *mockLLM, strategy ExtractionStrategy) *tutorFixture {
	t.Helper()
	kb := memory.NewKnowledgeStore()
	profileStore := memory.NewProfileStore()
	profileSvc := NewProfileService(profileStore)
	tutor := NewTutorService(
		NewRetrievalService(kb),
		profileSvc,
		llm,
		&stubPromptStore{prompt: "You are Tutor."},
		NewIntentExtractor(strategy),
	)
	return &tutorFixture{
		kb:      kb,
		profile: profileStore,
		llm:     llm,
		ingest:  NewIngestService(kb, &stubExtractor{exts: []string{".txt", ".md"}}),
		svc:     tutor,
		prof:    profileSvc,
	}
}

// --- Tests ---

func TestAsk_EndToEnd_KnowledgeBaseExcerpt(t *testing.T) {
	llm := &mockLLM{reply: "Mitosis is how one cell becomes two."}
	f := newTutorFixture(t, llm, StrategyLegacy)
	ctx := context.Background()

	_, err := f.ingest.Ingest(ctx, []domain.IngestFile{
		{Name: "notes.txt", Data: []byte("mitosis is cell division")},
	})
	require.NoError(t, err)

	answer, err := f.svc.Ask(ctx, "what is mitosis?")
	require.NoError(t, err)

	assert.Equal(t, "Mitosis is how one cell becomes two.", answer.Text)
	assert.True(t, answer.UsedKnowledgeBase)

	// The excerpt reaches the model verbatim, inside the KB block.
	assert.Contains(t, llm.lastPrompt, "--- Source: notes.txt ---")
	assert.Contains(t, llm.lastPrompt, "mitosis is cell division")
	assert.Contains(t, llm.lastPrompt, MarkerKnowledgeBase)
	assert.NotContains(t, llm.lastPrompt, KnowledgeBaseFallback)

	// The exchange lands in history.
	p, err := f.prof.Profile(ctx)
	require.NoError(t, err)
	require.Len(t, p.History, 1)
	assert.Equal(t, "what is mitosis?", p.History[0].Question)
	assert.Equal(t, answer.Text, p.History[0].Answer)
}

func TestAsk_EmptyStore_UsesFallbackSentence(t *testing.T) {
	llm := &mockLLM{reply: "General knowledge answer."}
	f := newTutorFixture(t, llm, StrategyLegacy)

	answer, err := f.svc.Ask(context.Background(), "zzzqqq")
	require.NoError(t, err)

	assert.False(t, answer.UsedKnowledgeBase)
	assert.Contains(t, llm.lastPrompt, KnowledgeBaseFallback)
}

func TestAsk_GenerationFailure_LeavesNoTrace(t *testing.T) {
	llm := &mockLLM{genErr: errors.New("quota exceeded")}
	f := newTutorFixture(t, llm, StrategyLegacy)
	ctx := context.Background()

	_, err := f.svc.Ask(ctx, "I'm struggling with questions about algebra")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")

	// No history entry and no flagged topic: the failure occurred after
	// assembly but before any profile mutation.
	p, perr := f.prof.Profile(ctx)
	require.NoError(t, perr)
	assert.Empty(t, p.History)
	assert.Empty(t, p.WeakTopics)
}

func TestAsk_GenerationFailure_NameStillApplies(t *testing.T) {
	llm := &mockLLM{genErr: errors.New("transport fault")}
	f := newTutorFixture(t, llm, StrategyLegacy)
	ctx := context.Background()

	_, err := f.svc.Ask(ctx, "my name is leo")
	require.Error(t, err)

	p, perr := f.prof.Profile(ctx)
	require.NoError(t, perr)
	assert.Equal(t, "Leo", p.Name)
	assert.Empty(t, p.History)
}

func TestAsk_WeakTopicHeuristic_FlagsTopic(t *testing.T) {
	llm := &mockLLM{reply: "Let's work through algebra together."}
	f := newTutorFixture(t, llm, StrategyLegacy)
	ctx := context.Background()

	answer, err := f.svc.Ask(ctx, "I'm struggling with questions about algebra")
	require.NoError(t, err)

	assert.Equal(t, "algebra", answer.FlaggedTopic)

	p, perr := f.prof.Profile(ctx)
	require.NoError(t, perr)
	assert.Equal(t, []string{"algebra"}, p.WeakTopics)
}

func TestAsk_NilLLM_ErrLLMUnavailable(t *testing.T) {
	kb := memory.NewKnowledgeStore()
	svc := NewTutorService(
		NewRetrievalService(kb),
		NewProfileService(memory.NewProfileStore()),
		nil,
		&stubPromptStore{prompt: "sys"},
		nil,
	)

	_, err := svc.Ask(context.Background(), "hello")
	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
}

func TestAsk_PromptStoreFailure_Propagates(t *testing.T) {
	kb := memory.NewKnowledgeStore()
	svc := NewTutorService(
		NewRetrievalService(kb),
		NewProfileService(memory.NewProfileStore()),
		&mockLLM{reply: "x"},
		&stubPromptStore{err: errors.New("prompt dir unreadable")},
		nil,
	)

	_, err := svc.Ask(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prompt dir unreadable")
}
