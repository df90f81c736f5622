package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tutor-cli/internal/adapters/driven/storage/memory"
)

func TestProfileService_DefaultRecord(t *testing.T) {
	svc := NewProfileService(memory.NewProfileStore())

	p, err := svc.Profile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Student", p.Name)
	assert.Empty(t, p.History)
}

func TestProfileService_FlagWeakTopic_PersistsOnChangeOnly(t *testing.T) {
	store := memory.NewProfileStore()
	svc := NewProfileService(store)
	ctx := context.Background()

	require.NoError(t, svc.FlagWeakTopic(ctx, "algebra"))
	require.NoError(t, svc.FlagWeakTopic(ctx, "algebra"))

	assert.Equal(t, 1, store.SaveCount)

	p, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"algebra"}, p.WeakTopics)
}

func TestProfileService_MarkCompleted_WritesThrough(t *testing.T) {
	store := memory.NewProfileStore()
	svc := NewProfileService(store)
	ctx := context.Background()

	require.NoError(t, svc.FlagWeakTopic(ctx, "algebra"))
	require.NoError(t, svc.MarkCompleted(ctx, "algebra"))

	// Mutations reach the backing store, not just the in-memory state.
	persisted, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted.WeakTopics)
	assert.Equal(t, []string{"algebra"}, persisted.CompletedTopics)
}

func TestProfileService_UpdateIdentity(t *testing.T) {
	store := memory.NewProfileStore()
	svc := NewProfileService(store)
	ctx := context.Background()

	require.NoError(t, svc.UpdateIdentity(ctx, "Ana", []string{"biology"}))
	require.NoError(t, svc.UpdateIdentity(ctx, "", []string{"maths", "biology"}))

	p, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana", p.Name)
	assert.ElementsMatch(t, []string{"biology", "maths"}, p.Subjects)
}

func TestProfileService_UpdateIdentity_NoArgsNoSave(t *testing.T) {
	store := memory.NewProfileStore()
	svc := NewProfileService(store)

	require.NoError(t, svc.UpdateIdentity(context.Background(), "", nil))
	assert.Zero(t, store.SaveCount)
}

func TestProfileService_RecordExchange_Persists(t *testing.T) {
	store := memory.NewProfileStore()
	svc := NewProfileService(store)
	ctx := context.Background()

	require.NoError(t, svc.RecordExchange(ctx, "q1", "a1"))

	persisted, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, persisted.History, 1)
	assert.Equal(t, "q1", persisted.History[0].Question)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Contains(t, summary, "Student Name: Student")
}
