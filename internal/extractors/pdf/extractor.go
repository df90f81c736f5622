// Package pdf extracts text from PDF files.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/custodia-labs/tutor-cli/internal/core/domain"
	"github.com/custodia-labs/tutor-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles PDF files. Page texts are concatenated with newline
// separators; a page that cannot be extracted contributes empty text and
// never aborts the batch.
type Extractor struct{}

// New creates a new PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedExtensions returns the extensions this extractor handles.
func (e *Extractor) SupportedExtensions() []string {
	return []string{".pdf"}
}

// Extract reads every page of the PDF. Returns an error only when the file
// as a whole cannot be opened; the caller degrades that to a placeholder.
func (e *Extractor) Extract(_ context.Context, file domain.IngestFile) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(file.Data), int64(len(file.Data)))
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", file.Name, err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		pages = append(pages, readPage(reader, i))
	}
	return strings.Join(pages, "\n"), nil
}

// readPage extracts one page's text, degrading to empty on failure.
// The pdf library panics on some malformed content streams, so the
// per-page soft-failure contract needs a recover here.
func readPage(reader *pdf.Reader, number int) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	page := reader.Page(number)
	if page.V.IsNull() {
		return ""
	}
	content, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return content
}
