// Package extractors provides implementations of the Extractor interface
// for the supported upload kinds. Each extractor knows how to turn one file
// format into plain text.
//
// Extractors are registered with the IngestService at startup.
package extractors
