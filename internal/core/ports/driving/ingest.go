package driving

import (
	"context"

	"github.com/custodia-labs/tutor-cli/internal/core/domain"
)

// IngestService adds uploaded files to the knowledge base.
type IngestService interface {
	// Ingest extracts text from each file and stores the result.
	//
	// Batches of domain.BatchThreshold or more files collapse into a single
	// combined section; smaller batches store one section per file. The
	// returned result carries a confirmation label for user messaging.
	Ingest(ctx context.Context, files []domain.IngestFile) (*domain.IngestResult, error)
}
