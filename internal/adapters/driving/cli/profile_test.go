package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tutor-cli/internal/core/domain"
)

type mockProfileService struct {
	profile    *domain.Profile
	summary    string
	name       string
	subjects   []string
	weakTopic  string
	completed  string
	recordedQA [2]string
}

func (m *mockProfileService) Profile(context.Context) (*domain.Profile, error) {
	return m.profile, nil
}

func (m *mockProfileService) Summary(context.Context) (string, error) {
	return m.summary, nil
}

func (m *mockProfileService) UpdateIdentity(_ context.Context, name string, subjects []string) error {
	m.name = name
	m.subjects = subjects
	return nil
}

func (m *mockProfileService) FlagWeakTopic(_ context.Context, topic string) error {
	m.weakTopic = topic
	return nil
}

func (m *mockProfileService) MarkCompleted(_ context.Context, topic string) error {
	m.completed = topic
	return nil
}

func (m *mockProfileService) RecordExchange(_ context.Context, q, a string) error {
	m.recordedQA = [2]string{q, a}
	return nil
}

func setupTestProfile(t *testing.T, mock *mockProfileService) func() {
	t.Helper()
	old := profileService
	profileService = mock
	return func() { profileService = old }
}

func TestRunProfileShow(t *testing.T) {
	p := domain.NewProfile()
	p.RecordExchange("q", "a")
	cleanup := setupTestProfile(t, &mockProfileService{
		profile: p,
		summary: "Student Name: Ana\n",
	})
	defer cleanup()

	cmd, buf := newTestCommand()
	err := runProfileShow(cmd, nil)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Student Name: Ana")
	assert.Contains(t, buf.String(), "Recent Questions: 1")
}

func TestRunProfileName(t *testing.T) {
	mock := &mockProfileService{}
	cleanup := setupTestProfile(t, mock)
	defer cleanup()

	require.NoError(t, runProfileName(nil, []string{"Ana"}))
	assert.Equal(t, "Ana", mock.name)
	assert.Empty(t, mock.subjects)
}

func TestRunProfileSubjects(t *testing.T) {
	mock := &mockProfileService{}
	cleanup := setupTestProfile(t, mock)
	defer cleanup()

	require.NoError(t, runProfileSubjects(nil, []string{"biology", "maths"}))
	assert.Equal(t, []string{"biology", "maths"}, mock.subjects)
	assert.Empty(t, mock.name)
}

func TestRunProfileWeakAndDone(t *testing.T) {
	mock := &mockProfileService{}
	cleanup := setupTestProfile(t, mock)
	defer cleanup()

	cmd, buf := newTestCommand()
	require.NoError(t, runProfileWeak(cmd, []string{"mitosis"}))
	assert.Equal(t, "mitosis", mock.weakTopic)
	assert.Contains(t, buf.String(), "extra practice")

	cmd, buf = newTestCommand()
	require.NoError(t, runProfileDone(cmd, []string{"mitosis"}))
	assert.Equal(t, "mitosis", mock.completed)
	assert.Contains(t, buf.String(), "completed")
}
