package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedType indicates a file kind no extractor handles.
	// Ingest degrades to a placeholder section rather than failing.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrLLMUnavailable indicates no LLM service is configured.
	// Asking questions is disabled; ingest and profile commands still work.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrEmptyBatch indicates an ingest call with no input files.
	ErrEmptyBatch = errors.New("no files to ingest")
)
