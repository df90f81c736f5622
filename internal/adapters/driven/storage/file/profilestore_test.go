package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tutor-cli/internal/core/domain"
)

func TestProfileStore_DefaultRecord(t *testing.T) {
	store, err := NewProfileStore(t.TempDir())
	require.NoError(t, err)

	p, err := store.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Student", p.Name)
	assert.Empty(t, p.Subjects)
	assert.Empty(t, p.WeakTopics)
	assert.Empty(t, p.CompletedTopics)
	assert.Empty(t, p.History)
}

func TestProfileStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewProfileStore(dir)
	require.NoError(t, err)

	p := domain.NewProfile()
	p.SetName("Ana")
	p.AddSubjects([]string{"biology"})
	p.FlagWeakTopic("mitosis")
	p.MarkCompleted("photosynthesis")
	p.RecordExchange("what is mitosis?", "cell division")
	require.NoError(t, store.Save(ctx, p))

	reloaded, err := NewProfileStore(dir)
	require.NoError(t, err)
	got, err := reloaded.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, p, got)
}

func TestProfileStore_FieldNamesMatchLegacyFormat(t *testing.T) {
	// The on-disk record keeps the original field names so existing
	// memory files keep working.
	dir := t.TempDir()
	store, err := NewProfileStore(dir)
	require.NoError(t, err)

	p := domain.NewProfile()
	p.RecordExchange("q", "a")
	require.NoError(t, store.Save(context.Background(), p))

	data, err := os.ReadFile(filepath.Join(dir, profileFileName))
	require.NoError(t, err)

	raw := string(data)
	assert.Contains(t, raw, `"weak_topics"`)
	assert.Contains(t, raw, `"completed_topics"`)
	assert.Contains(t, raw, `"history"`)
	assert.Contains(t, raw, `"q"`)
	assert.Contains(t, raw, `"a"`)
}

func TestProfileStore_CorruptFile_Errors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, profileFileName), []byte("]["), 0600))

	store, err := NewProfileStore(dir)
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse profile")
}
