// Package plaintext extracts text from plain and markdown files.
package plaintext

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/custodia-labs/tutor-cli/internal/core/domain"
	"github.com/custodia-labs/tutor-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles plain text and markdown files. Markdown is stored
// verbatim - retrieval matches on the raw text, so nothing is stripped.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedExtensions returns the extensions this extractor handles.
func (e *Extractor) SupportedExtensions() []string {
	return []string{".txt", ".md"}
}

// Extract decodes the file as UTF-8 text. Undecodable bytes degrade to a
// placeholder rather than failing the batch.
func (e *Extractor) Extract(_ context.Context, file domain.IngestFile) (string, error) {
	if file.Name == "" && file.Data == nil {
		return "", domain.ErrInvalidInput
	}
	if !utf8.Valid(file.Data) {
		return fmt.Sprintf("[Undecodable text file: %s]", file.Name), nil
	}
	return string(file.Data), nil
}
