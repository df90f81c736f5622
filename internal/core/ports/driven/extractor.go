package driven

import (
	"context"

	"github.com/custodia-labs/tutor-cli/internal/core/domain"
)

// Extractor converts one raw uploaded file into plain text.
// Each extractor handles specific file extensions (e.g. ".pdf", ".txt").
//
// Extraction failures are soft: an extractor that cannot read part of a file
// degrades that part to empty text rather than failing the file, and a file
// that cannot be read at all degrades to a placeholder. Returning an error
// is reserved for programming mistakes (nil input), never content problems.
type Extractor interface {
	// SupportedExtensions returns lowercase extensions including the dot.
	SupportedExtensions() []string

	// Extract produces the plain text for one file.
	Extract(ctx context.Context, file domain.IngestFile) (string, error)
}
