package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tutor-cli/internal/core/domain"
	"github.com/custodia-labs/tutor-cli/internal/core/ports/driving"
)

type mockTutorService struct {
	answer   *driving.Answer
	err      error
	askedFor string
}

func (m *mockTutorService) Ask(_ context.Context, question string) (*driving.Answer, error) {
	m.askedFor = question
	return m.answer, m.err
}

// newTestCommand returns a command with captured output for run functions.
func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	return cmd, buf
}

func TestAskCmd_Use(t *testing.T) {
	assert.Equal(t, "ask [question]", askCmd.Use)
}

func TestRunAsk_PrintsAnswer(t *testing.T) {
	oldService := tutorService
	mock := &mockTutorService{
		answer: &driving.Answer{Text: "Mitosis is cell division.", UsedKnowledgeBase: true},
	}
	tutorService = mock
	defer func() { tutorService = oldService }()

	cmd, buf := newTestCommand()
	err := runAsk(cmd, []string{"what is mitosis?"})

	require.NoError(t, err)
	assert.Equal(t, "what is mitosis?", mock.askedFor)
	assert.Contains(t, buf.String(), "Mitosis is cell division.")
	assert.NotContains(t, buf.String(), "general knowledge")
}

func TestRunAsk_ReportsFlaggedTopic(t *testing.T) {
	oldService := tutorService
	tutorService = &mockTutorService{
		answer: &driving.Answer{Text: "Let's review.", FlaggedTopic: "mitosis", UsedKnowledgeBase: true},
	}
	defer func() { tutorService = oldService }()

	cmd, buf := newTestCommand()
	err := runAsk(cmd, []string{"I'm struggling with mitosis"})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "mitosis")
	assert.Contains(t, buf.String(), "weak topics")
}

func TestRunAsk_FallbackNotice(t *testing.T) {
	oldService := tutorService
	tutorService = &mockTutorService{
		answer: &driving.Answer{Text: "From general knowledge."},
	}
	defer func() { tutorService = oldService }()

	cmd, buf := newTestCommand()
	err := runAsk(cmd, []string{"unrelated question"})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "general knowledge")
}

func TestRunAsk_LLMUnavailable(t *testing.T) {
	oldService := tutorService
	tutorService = &mockTutorService{err: domain.ErrLLMUnavailable}
	defer func() { tutorService = oldService }()

	cmd, _ := newTestCommand()
	err := runAsk(cmd, []string{"question"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no LLM provider configured")
}

func TestRunAsk_GenericError(t *testing.T) {
	oldService := tutorService
	tutorService = &mockTutorService{err: errors.New("boom")}
	defer func() { tutorService = oldService }()

	cmd, _ := newTestCommand()
	err := runAsk(cmd, []string{"question"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestRunAsk_ServiceNotConfigured(t *testing.T) {
	oldService := tutorService
	tutorService = nil
	defer func() { tutorService = oldService }()

	cmd, _ := newTestCommand()
	err := runAsk(cmd, []string{"question"})

	assert.Error(t, err)
}
