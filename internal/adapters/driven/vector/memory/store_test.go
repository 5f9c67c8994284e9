package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitgeese/boludo-translator/internal/core/domain"
)

// fakeEmbedder maps texts to fixed vectors.
type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (e *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if e.err != nil {
		return nil, e.err
	}
	if v, ok := e.vectors[text]; ok {
		return v, nil
	}
	return []float32{0, 0, 0}, nil
}

func (e *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := e.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (e *fakeEmbedder) Dimensions() int            { return 3 }
func (e *fakeEmbedder) ModelName() string          { return "fake-embed" }
func (e *fakeEmbedder) Ping(context.Context) error { return nil }
func (e *fakeEmbedder) Close() error               { return nil }

func testStore(t *testing.T) *Store {
	t.Helper()
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"money":  {1, 0, 0},
		"guita":  {0.9, 0.1, 0},
		"mate":   {0, 1, 0},
		"subway": {0, 0, 1},
	}}
	s, err := New(embedder)
	require.NoError(t, err)
	return s
}

func insertDocs(t *testing.T, s *Store, contents ...string) {
	t.Helper()
	docs := make([]domain.Document, len(contents))
	for i, c := range contents {
		docs[i] = domain.Document{ID: c, Content: c}
	}
	require.NoError(t, s.Insert(context.Background(), docs))
}

func TestNew_RequiresEmbedder(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}

func TestQuery_RanksBySimilarity(t *testing.T) {
	s := testStore(t)
	insertDocs(t, s, "guita", "mate", "subway")

	got, err := s.Query(context.Background(), "money", 3)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "guita", got[0].ID)
	assert.Greater(t, got[0].Score, got[1].Score)
	assert.GreaterOrEqual(t, got[1].Score, got[2].Score)
}

func TestQuery_LimitsToK(t *testing.T) {
	s := testStore(t)
	insertDocs(t, s, "guita", "mate", "subway")

	got, err := s.Query(context.Background(), "money", 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestQuery_KLargerThanCorpus(t *testing.T) {
	s := testStore(t)
	insertDocs(t, s, "guita")

	got, err := s.Query(context.Background(), "money", 10)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestQuery_EmptyStore(t *testing.T) {
	s := testStore(t)

	got, err := s.Query(context.Background(), "money", 3)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestQuery_ZeroK(t *testing.T) {
	s := testStore(t)
	insertDocs(t, s, "guita")

	got, err := s.Query(context.Background(), "money", 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInsert_EmbedFailure(t *testing.T) {
	s, err := New(&fakeEmbedder{err: errors.New("backend down")})
	require.NoError(t, err)

	err = s.Insert(context.Background(), []domain.Document{{ID: "a", Content: "a"}})
	require.Error(t, err)

	count, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCount(t *testing.T) {
	s := testStore(t)
	insertDocs(t, s, "guita", "mate")

	count, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCosine(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{0, 1}
	assert.InDelta(t, 0, cosine(a, vectorNorm(a), b, vectorNorm(b)), 0.001)
	assert.InDelta(t, 1, cosine(a, vectorNorm(a), a, vectorNorm(a)), 0.001)

	// Mismatched dimensions and zero vectors score zero.
	zero := []float32{0, 0}
	assert.Zero(t, cosine(a, vectorNorm(a), zero, vectorNorm(zero)))
	assert.Zero(t, cosine(a, vectorNorm(a), []float32{1}, 1))
}
