package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoDocuments indicates a build step was handed zero documents.
	// Constructing an empty index silently is a programming error.
	ErrNoDocuments = errors.New("no documents to index")

	// ErrNoUsableRecords indicates a source yielded zero usable records.
	// Fatal for the mandatory source; optional sources degrade by omission.
	ErrNoUsableRecords = errors.New("no usable records in source")

	// ErrGeneratorUnavailable indicates the generative backend is not configured.
	ErrGeneratorUnavailable = errors.New("generator unavailable")

	// ErrVectorStoreUnavailable indicates the vector store is not configured.
	ErrVectorStoreUnavailable = errors.New("vector store unavailable")

	// ErrPromptNotFound indicates a required prompt template is missing.
	ErrPromptNotFound = errors.New("prompt not found")
)

// SchemaError reports required columns missing from a tabular source.
// It is fatal at load time; no documents are produced from a source that
// fails schema validation.
type SchemaError struct {
	// Source names the offending source file.
	Source string

	// Missing lists exactly the required columns that were absent.
	Missing []string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("source %s missing required columns: %s",
		e.Source, strings.Join(e.Missing, ", "))
}

// TranslationError wraps a retrieval or generation failure during a request.
// The underlying cause is preserved; the orchestrator does not retry.
type TranslationError struct {
	// Stage is the pipeline stage that failed ("retrieval" or "generation").
	Stage string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *TranslationError) Error() string {
	return fmt.Sprintf("translation failed during %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying cause for errors.Is / errors.As.
func (e *TranslationError) Unwrap() error {
	return e.Err
}
