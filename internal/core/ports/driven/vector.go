package driven

import (
	"context"

	"github.com/bitgeese/boludo-translator/internal/core/domain"
)

// VectorStore stores embedded documents and answers top-k similarity
// queries. The core needs only these operations and is agnostic to the
// index implementation or persistence format.
//
// Insert happens once, at build time, before any query is served; writers
// are serialized. Queries are safe for concurrent readers.
type VectorStore interface {
	// Insert embeds and stores the given documents.
	Insert(ctx context.Context, docs []domain.Document) error

	// Query returns up to k documents most similar to the text,
	// ordered by descending similarity.
	Query(ctx context.Context, text string, k int) ([]domain.ScoredDocument, error)

	// Count returns the number of stored documents.
	Count(ctx context.Context) (int, error)

	// Close releases resources.
	Close() error
}
