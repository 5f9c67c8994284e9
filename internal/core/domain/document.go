package domain

// Document is the canonical representation of a reference phrase or article
// after ingestion. It is created once during ingestion and never mutated;
// after insertion it is owned by the vector store.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Content is the full text that gets embedded and retrieved.
	Content string

	// Metadata contains arbitrary key-value pairs. Values are strings only;
	// retrieval backends may not support typed metadata.
	Metadata map[string]string
}

// ScoredDocument pairs a retrieved document with its similarity score.
// Results are ordered by descending score, as returned by the backend.
type ScoredDocument struct {
	Document

	// Score is the cosine similarity score (0-1).
	Score float64
}

// Source tag values recorded in document metadata.
const (
	SourcePhrasebook = "phrasebook"
	SourceVentureOut = "VentureOut Spanish"
)
