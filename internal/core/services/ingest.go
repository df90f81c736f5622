package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/tutor-cli/internal/core/domain"
	"github.com/custodia-labs/tutor-cli/internal/core/ports/driven"
	"github.com/custodia-labs/tutor-cli/internal/core/ports/driving"
	"github.com/custodia-labs/tutor-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService extracts text from uploaded files and appends the result
// to the knowledge store, applying the combined-batch policy.
type IngestService struct {
	store      driven.KnowledgeStore
	extractors map[string]driven.Extractor
}

// NewIngestService creates an ingest service. Extractors are registered by
// the extensions they support; later registrations win on conflict.
func NewIngestService(store driven.KnowledgeStore, extractors ...driven.Extractor) *IngestService {
	byExt := make(map[string]driven.Extractor)
	for _, ex := range extractors {
		for _, ext := range ex.SupportedExtensions() {
			byExt[strings.ToLower(ext)] = ex
		}
	}
	return &IngestService{
		store:      store,
		extractors: byExt,
	}
}

// Ingest processes a batch of files.
//
// Batches of domain.BatchThreshold or more files collapse into one combined
// section whose label cites the first domain.CombinedLabelNames file names;
// smaller batches store one section per file. Every section is persisted
// before this returns.
func (s *IngestService) Ingest(ctx context.Context, files []domain.IngestFile) (*domain.IngestResult, error) {
	if len(files) == 0 {
		return nil, domain.ErrEmptyBatch
	}

	logger.Section("Ingest")
	logger.Debug("Batch size: %d", len(files))

	if len(files) >= domain.BatchThreshold {
		return s.ingestCombined(ctx, files)
	}
	return s.ingestIndividual(ctx, files)
}

// ingestCombined stores the whole batch as a single section. The label
// cites only the first few names; all content is included in the body.
func (s *IngestService) ingestCombined(ctx context.Context, files []domain.IngestFile) (*domain.IngestResult, error) {
	var body strings.Builder
	names := make([]string, 0, len(files))
	for _, f := range files {
		text := s.extract(ctx, f)
		fmt.Fprintf(&body, "\n--- Section from %s ---\n%s\n", f.Name, text)
		names = append(names, f.Name)
	}

	label := "Combined Collection: " + strings.Join(names[:domain.CombinedLabelNames], ", ") + "..."

	section := domain.KnowledgeSection{Source: label, Content: body.String()}
	if err := s.store.Append(ctx, section); err != nil {
		return nil, fmt.Errorf("append combined section: %w", err)
	}

	logger.Info("Stored combined section %q", label)
	return &domain.IngestResult{Sections: 1, Stored: label}, nil
}

// ingestIndividual stores one section per file, label = file name.
func (s *IngestService) ingestIndividual(ctx context.Context, files []domain.IngestFile) (*domain.IngestResult, error) {
	names := make([]string, 0, len(files))
	for _, f := range files {
		text := s.extract(ctx, f)
		section := domain.KnowledgeSection{Source: f.Name, Content: text}
		if err := s.store.Append(ctx, section); err != nil {
			return nil, fmt.Errorf("append section %q: %w", f.Name, err)
		}
		names = append(names, f.Name)
	}

	logger.Info("Stored %d section(s)", len(names))
	return &domain.IngestResult{
		Sections: len(names),
		Stored:   strings.Join(names, ", "),
	}, nil
}

// extract dispatches to the extractor registered for the file's extension.
// Unknown kinds and extraction errors degrade to a placeholder; extraction
// never aborts a batch.
func (s *IngestService) extract(ctx context.Context, f domain.IngestFile) string {
	ext := strings.ToLower(filepath.Ext(f.Name))
	if ex, ok := s.extractors[ext]; ok {
		text, err := ex.Extract(ctx, f)
		if err == nil {
			return text
		}
		logger.Warn("Extraction failed for %s: %v", f.Name, err)
	}
	return Placeholder(f.Name)
}

// Placeholder is the stored stand-in for a file whose content cannot be
// represented as text. OCR/vision support is deferred.
func Placeholder(name string) string {
	return fmt.Sprintf("[Non-text file: %s]", name)
}
