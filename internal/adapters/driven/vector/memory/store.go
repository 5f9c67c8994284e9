// Package memory provides an in-process vector store using brute-force
// cosine similarity. It is the default backend: the corpus is small enough
// that a linear scan answers queries in well under a millisecond.
package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/bitgeese/boludo-translator/internal/core/domain"
	"github.com/bitgeese/boludo-translator/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.VectorStore = (*Store)(nil)

// entry pairs a stored document with its embedding and precomputed norm.
type entry struct {
	doc  domain.Document
	vec  []float32
	norm float64
}

// Store keeps embedded documents in memory.
type Store struct {
	mu       sync.RWMutex
	embedder driven.EmbeddingService
	entries  []entry
}

// New creates an in-memory vector store using embedder for both
// document and query embeddings.
func New(embedder driven.EmbeddingService) (*Store, error) {
	if embedder == nil {
		return nil, fmt.Errorf("memory: embedding service is required")
	}
	return &Store{embedder: embedder}, nil
}

// Insert embeds and stores the given documents.
func (s *Store) Insert(ctx context.Context, docs []domain.Document) error {
	if len(docs) == 0 {
		return nil
	}

	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Content
	}

	vectors, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("embed documents: %w", err)
	}
	if len(vectors) != len(docs) {
		return fmt.Errorf("memory: embedded %d vectors for %d documents", len(vectors), len(docs))
	}

	entries := make([]entry, len(docs))
	for i, doc := range docs {
		entries[i] = entry{doc: doc, vec: vectors[i], norm: vectorNorm(vectors[i])}
	}

	s.mu.Lock()
	s.entries = append(s.entries, entries...)
	s.mu.Unlock()
	return nil
}

// Query returns up to k documents most similar to the text.
func (s *Store) Query(ctx context.Context, text string, k int) ([]domain.ScoredDocument, error) {
	if k <= 0 {
		return nil, nil
	}

	queryVec, err := s.embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	queryNorm := vectorNorm(queryVec)

	s.mu.RLock()
	defer s.mu.RUnlock()

	scored := make([]domain.ScoredDocument, 0, len(s.entries))
	for _, e := range s.entries {
		scored = append(scored, domain.ScoredDocument{
			Document: e.doc,
			Score:    cosine(queryVec, queryNorm, e.vec, e.norm),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > k {
		scored = scored[:k]
	}
	return scored, nil
}

// Count returns the number of stored documents.
func (s *Store) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries), nil
}

// Close releases resources.
func (s *Store) Close() error {
	return nil
}

// vectorNorm returns the L2 norm of v.
func vectorNorm(v []float32) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}

// cosine computes cosine similarity given precomputed norms. Mismatched
// dimensions or a zero vector score zero rather than erroring.
func cosine(a []float32, aNorm float64, b []float32, bNorm float64) float64 {
	if len(a) != len(b) || aNorm == 0 || bNorm == 0 {
		return 0
	}
	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot / (aNorm * bNorm)
}
