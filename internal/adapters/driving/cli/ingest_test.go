package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tutor-cli/internal/core/domain"
)

type mockIngestService struct {
	result *domain.IngestResult
	err    error
	files  []domain.IngestFile
}

func (m *mockIngestService) Ingest(_ context.Context, files []domain.IngestFile) (*domain.IngestResult, error) {
	m.files = files
	return m.result, m.err
}

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestIngestCmd_Use(t *testing.T) {
	assert.Equal(t, "ingest [files...]", ingestCmd.Use)
}

func TestRunIngest_IndividualFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "notes.txt", "mitosis notes")

	oldService := ingestService
	mock := &mockIngestService{result: &domain.IngestResult{Sections: 1, Stored: "notes.txt"}}
	ingestService = mock
	defer func() { ingestService = oldService }()

	cmd, buf := newTestCommand()
	err := runIngest(cmd, []string{path})

	require.NoError(t, err)
	require.Len(t, mock.files, 1)
	assert.Equal(t, "notes.txt", mock.files[0].Name)
	assert.Equal(t, []byte("mitosis notes"), mock.files[0].Data)
	assert.Contains(t, buf.String(), "notes.txt")
	assert.Contains(t, buf.String(), "saved in the knowledge base")
}

func TestRunIngest_CombinedBatchMessage(t *testing.T) {
	dir := t.TempDir()
	paths := make([]string, 0, 5)
	for _, name := range []string{"a.txt", "b.txt", "c.txt", "d.txt", "e.txt"} {
		paths = append(paths, writeTempFile(t, dir, name, "content"))
	}

	oldService := ingestService
	ingestService = &mockIngestService{result: &domain.IngestResult{
		Sections: 1,
		Stored:   "Combined Collection: a.txt, b.txt, c.txt...",
	}}
	defer func() { ingestService = oldService }()

	cmd, buf := newTestCommand()
	err := runIngest(cmd, paths)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "combined section")
	assert.Contains(t, buf.String(), "Combined Collection: a.txt, b.txt, c.txt...")
}

func TestRunIngest_MissingFile(t *testing.T) {
	oldService := ingestService
	ingestService = &mockIngestService{}
	defer func() { ingestService = oldService }()

	cmd, _ := newTestCommand()
	err := runIngest(cmd, []string{filepath.Join(t.TempDir(), "missing.txt")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.txt")
}

func TestRunIngest_ServiceNotConfigured(t *testing.T) {
	oldService := ingestService
	ingestService = nil
	defer func() { ingestService = oldService }()

	cmd, _ := newTestCommand()
	err := runIngest(cmd, []string{"anything.txt"})

	assert.Error(t, err)
}
