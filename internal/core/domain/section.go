package domain

// KnowledgeSection is one stored unit of ingested text with a source label.
// Sections are append-only: they are created on ingest, never edited in place,
// and never deleted. Store order is insertion order.
type KnowledgeSection struct {
	// Source is the human-readable label (file name or combined-batch label).
	// Labels are not unique; re-uploading a file creates a new section.
	Source string `json:"source"`

	// Content is the extracted plain text.
	Content string `json:"content"`
}

// IngestFile is one named input to an ingest batch.
type IngestFile struct {
	// Name is the original file name, including extension.
	Name string

	// Data is the raw bytes as uploaded.
	Data []byte
}

// IngestResult summarises what an ingest batch stored.
type IngestResult struct {
	// Sections is the number of KnowledgeSections created (1 for a combined batch).
	Sections int

	// Stored is the confirmation label: the combined label for a batch,
	// or the comma-joined list of individual file names.
	Stored string
}

// BatchThreshold is the file count at which an ingest batch collapses
// into a single combined KnowledgeSection.
const BatchThreshold = 5

// CombinedLabelNames is how many file names the combined-batch label cites
// before the ellipsis. The remaining names are omitted from the label but
// their content is still included in the combined body.
const CombinedLabelNames = 3

// RetrievalCap is the hard character cut applied to the assembled retrieval
// excerpt to bound downstream prompt size.
const RetrievalCap = 5000
