package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tutor-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_PathInsideDataDir(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "tutor.db"), store.Path())
}

func TestKnowledgeStore_AppendAndSections(t *testing.T) {
	store := newTestStore(t)
	kb := store.KnowledgeStore()
	ctx := context.Background()

	sections := []domain.KnowledgeSection{
		{Source: "notes.txt", Content: "mitosis is cell division"},
		{Source: "bio.pdf", Content: "photosynthesis overview"},
		{Source: "notes.txt", Content: "duplicate label is allowed"},
	}
	for _, sec := range sections {
		require.NoError(t, kb.Append(ctx, sec))
	}

	got, err := kb.Sections(ctx)
	require.NoError(t, err)
	assert.Equal(t, sections, got)

	count, err := kb.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestKnowledgeStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.KnowledgeStore().Append(ctx, domain.KnowledgeSection{
		Source:  "a.txt",
		Content: "alpha",
	}))
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.KnowledgeStore().Sections(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "alpha", got[0].Content)
}

func TestProfileStore_DefaultWhenEmpty(t *testing.T) {
	store := newTestStore(t)

	p, err := store.ProfileStore().Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Student", p.Name)
	assert.Empty(t, p.History)
}

func TestProfileStore_SaveOverwritesSingleRow(t *testing.T) {
	store := newTestStore(t)
	ps := store.ProfileStore()
	ctx := context.Background()

	p := domain.NewProfile()
	p.SetName("Ana")
	p.FlagWeakTopic("mitosis")
	require.NoError(t, ps.Save(ctx, p))

	p.MarkCompleted("mitosis")
	require.NoError(t, ps.Save(ctx, p))

	got, err := ps.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.Empty(t, got.WeakTopics)
	assert.Equal(t, []string{"mitosis"}, got.CompletedTopics)
}
