package pdf

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tutor-cli/internal/core/domain"
)

func TestExtract_NotAPDF_ReturnsError(t *testing.T) {
	e := New()

	_, err := e.Extract(context.Background(), domain.IngestFile{
		Name: "fake.pdf",
		Data: []byte("this is definitely not a pdf"),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fake.pdf")
}

func TestExtract_EmptyData_ReturnsError(t *testing.T) {
	e := New()

	_, err := e.Extract(context.Background(), domain.IngestFile{
		Name: "empty.pdf",
		Data: nil,
	})

	assert.Error(t, err)
}

func TestSupportedExtensions(t *testing.T) {
	assert.Equal(t, []string{".pdf"}, New().SupportedExtensions())
}
