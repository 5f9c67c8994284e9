// Package redis provides a vector store backed by Redis with the
// RediSearch module. Documents live in hashes under a key prefix and an
// HNSW index answers KNN queries server-side, so multiple translator
// processes can share one index.
package redis

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/bitgeese/boludo-translator/internal/core/domain"
	"github.com/bitgeese/boludo-translator/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.VectorStore = (*Store)(nil)

// Default configuration values.
const (
	DefaultAddr           = "localhost:6379"
	DefaultIndexName      = "boludo-phrases"
	DefaultKeyPrefix      = "phrase:"
	DefaultEFConstruction = 200
	DefaultM              = 16
)

// Hash field names.
const (
	fieldContent  = "content"
	fieldVector   = "vector"
	fieldMetadata = "metadata"
)

// Config holds Redis connection and index configuration.
type Config struct {
	// Addr is the Redis server address (default: localhost:6379).
	Addr string

	// Password is the Redis password (default: none).
	Password string

	// DB is the Redis database number.
	DB int

	// IndexName is the RediSearch index name (default: boludo-phrases).
	IndexName string

	// KeyPrefix namespaces document hashes (default: "phrase:").
	KeyPrefix string

	// EFConstruction and M tune the HNSW graph build.
	EFConstruction int
	M              int
}

// Store stores embedded documents in Redis hashes behind an HNSW index.
type Store struct {
	client   *redis.Client
	embedder driven.EmbeddingService
	cfg      Config
}

// New creates a Redis vector store and ensures the index exists.
func New(ctx context.Context, cfg Config, embedder driven.EmbeddingService) (*Store, error) {
	if embedder == nil {
		return nil, fmt.Errorf("redis: embedding service is required")
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.IndexName == "" {
		cfg.IndexName = DefaultIndexName
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = DefaultKeyPrefix
	}
	if cfg.EFConstruction == 0 {
		cfg.EFConstruction = DefaultEFConstruction
	}
	if cfg.M == 0 {
		cfg.M = DefaultM
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis: connect: %w", err)
	}

	s := &Store{
		client:   client,
		embedder: embedder,
		cfg:      cfg,
	}

	if err := s.ensureIndex(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis: create index: %w", err)
	}

	return s, nil
}

// ensureIndex creates the HNSW vector index if it doesn't exist.
func (s *Store) ensureIndex(ctx context.Context) error {
	if _, err := s.client.Do(ctx, "FT.INFO", s.cfg.IndexName).Result(); err == nil {
		return nil
	}

	_, err := s.client.Do(ctx, "FT.CREATE", s.cfg.IndexName,
		"ON", "HASH",
		"PREFIX", "1", s.cfg.KeyPrefix,
		"SCHEMA",
		fieldVector, "VECTOR", "HNSW", "10",
		"TYPE", "FLOAT32",
		"DIM", strconv.Itoa(s.embedder.Dimensions()),
		"DISTANCE_METRIC", "COSINE",
		"EF_CONSTRUCTION", strconv.Itoa(s.cfg.EFConstruction),
		"M", strconv.Itoa(s.cfg.M),
		fieldContent, "TEXT",
	).Result()
	return err
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
		return fmt.Errorf("redis: embedded %d vectors for %d documents", len(vectors), len(docs))
	}

	pipe := s.client.Pipeline()
	for i, doc := range docs {
		metadataJSON, err := json.Marshal(doc.Metadata)
		if err != nil {
			return fmt.Errorf("marshal metadata for %s: %w", doc.ID, err)
		}
		pipe.HSet(ctx, s.cfg.KeyPrefix+doc.ID,
			fieldContent, doc.Content,
			fieldVector, encodeVector(vectors[i]),
			fieldMetadata, metadataJSON,
		)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("insert documents: %w", err)
	}
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

	queryStr := fmt.Sprintf("*=>[KNN %d @%s $query_vector AS score]", k, fieldVector)
	result, err := s.client.Do(ctx, "FT.SEARCH", s.cfg.IndexName, queryStr,
		"PARAMS", "2", "query_vector", encodeVector(queryVec),
		"RETURN", "3", fieldContent, fieldMetadata, "score",
		"SORTBY", "score",
		"LIMIT", "0", strconv.Itoa(k),
		"DIALECT", "2",
	).Result()
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}

	return s.parseSearchResults(result)
}

// parseSearchResults decodes the FT.SEARCH reply: a count followed by
// alternating key and field-value-list entries.
func (s *Store) parseSearchResults(result interface{}) ([]domain.ScoredDocument, error) {
	values, ok := result.([]interface{})
	if !ok {
		return nil, fmt.Errorf("redis: unexpected search result format")
	}
	if len(values) < 2 {
		return nil, nil
	}

	var scored []domain.ScoredDocument
	for i := 1; i < len(values)-1; i += 2 {
		key, ok := values[i].(string)
		if !ok {
			continue
		}
		fields, ok := values[i+1].([]interface{})
		if !ok {
			continue
		}

		doc := domain.Document{ID: key[len(s.cfg.KeyPrefix):]}
		var distance float64
		for j := 0; j+1 < len(fields); j += 2 {
			name, ok := fields[j].(string)
			if !ok {
				continue
			}
			value, ok := fields[j+1].(string)
			if !ok {
				continue
			}
			switch name {
			case fieldContent:
				doc.Content = value
			case fieldMetadata:
				_ = json.Unmarshal([]byte(value), &doc.Metadata)
			case "score":
				distance, _ = strconv.ParseFloat(value, 64)
			}
		}

		// RediSearch reports cosine distance; flip it into a similarity.
		scored = append(scored, domain.ScoredDocument{
			Document: doc,
			Score:    1 - distance,
		})
	}
	return scored, nil
}

// Count returns the number of indexed documents.
func (s *Store) Count(ctx context.Context) (int, error) {
	info, err := s.client.Do(ctx, "FT.INFO", s.cfg.IndexName).Result()
	if err != nil {
		return 0, fmt.Errorf("index info: %w", err)
	}

	values, ok := info.([]interface{})
	if !ok {
		return 0, fmt.Errorf("redis: unexpected info format")
	}
	for i := 0; i < len(values)-1; i += 2 {
		if key, ok := values[i].(string); ok && key == "num_docs" {
			switch v := values[i+1].(type) {
			case int64:
				return int(v), nil
			case string:
				n, err := strconv.Atoi(v)
				if err != nil {
					return 0, fmt.Errorf("redis: parse num_docs: %w", err)
				}
				return n, nil
			}
		}
	}
	return 0, nil
}

// Close closes the Redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// encodeVector renders a vector as the little-endian FLOAT32 blob
// RediSearch expects.
func encodeVector(vector []float32) []byte {
	buf := make([]byte, len(vector)*4)
	for i, f := range vector {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}
