package ingest

import (
	"context"
	"fmt"

	"github.com/bitgeese/boludo-translator/internal/core/domain"
	"github.com/bitgeese/boludo-translator/internal/core/ports/driven"
	"github.com/bitgeese/boludo-translator/internal/logger"
	"github.com/bitgeese/boludo-translator/internal/textclean"
)

// Config holds the ingestion pipeline settings.
type Config struct {
	// PhrasebookPath is the mandatory tabular source. Its failure aborts
	// the build; the system must not serve requests without it.
	PhrasebookPath string

	// ArticlesPath is the optional scraped-article source.
	ArticlesPath string

	// UseArticles enables the optional source.
	UseArticles bool

	// MinContentLength is the minimum cleaned article length.
	MinContentLength int

	// MaxDocuments caps the total document count for constrained runs
	// (tests, debugging). Zero means no cap. The phrasebook's full yield
	// is always kept; only article documents are dropped to honour the cap.
	MaxDocuments int
}

// Stats reports what a build ingested.
type Stats struct {
	PhrasebookDocs  int
	ArticleDocs     int
	DroppedArticles int
	Total           int
}

// Pipeline aggregates the source adapters and feeds the vector store.
type Pipeline struct {
	cfg   Config
	store driven.VectorStore
}

// New creates an ingestion pipeline writing into store.
func New(cfg Config, store driven.VectorStore) (*Pipeline, error) {
	if store == nil {
		return nil, domain.ErrVectorStoreUnavailable
	}
	return &Pipeline{cfg: cfg, store: store}, nil
}

// Build loads every configured source and inserts the combined documents
// into the vector store. The mandatory phrasebook failing or yielding
// nothing is fatal. The optional article source degrades gracefully: its
// failure is logged and the build continues with what succeeded.
func (p *Pipeline) Build(ctx context.Context) (Stats, error) {
	logger.Section("Ingestion")
	var stats Stats

	phrases, err := NewPhrasebookAdapter(p.cfg.PhrasebookPath).Load()
	if err != nil {
		return stats, fmt.Errorf("load phrasebook: %w", err)
	}
	stats.PhrasebookDocs = len(phrases)

	docs := phrases
	switch {
	case !p.cfg.UseArticles:
		logger.Info("Article source disabled, using phrasebook only")
	default:
		articles, err := p.loadArticles()
		if err != nil {
			// Optional source: recoverable by omission. This is a distinct
			// condition from "disabled" and must be observably different.
			logger.Warn("Optional article source failed, continuing without it: %v", err)
		} else {
			stats.ArticleDocs = len(articles)
			docs = append(docs, articles...)
		}
	}

	if limit := p.cfg.MaxDocuments; limit > 0 && len(docs) > limit {
		keep := limit
		if keep < stats.PhrasebookDocs {
			// The cap is applied after the mandatory source's full yield;
			// debugging with a small index never loses ground-truth data.
			keep = stats.PhrasebookDocs
		}
		stats.DroppedArticles = len(docs) - keep
		logger.Warn("Document cap %d dropped %d article documents", limit, stats.DroppedArticles)
		docs = docs[:keep]
		stats.ArticleDocs -= stats.DroppedArticles
	}

	if len(docs) == 0 {
		return stats, domain.ErrNoDocuments
	}

	logger.Info("Inserting %d documents into vector store", len(docs))
	if err := p.store.Insert(ctx, docs); err != nil {
		return stats, fmt.Errorf("build index: %w", err)
	}

	stats.Total = len(docs)
	return stats, nil
}

func (p *Pipeline) loadArticles() ([]domain.Document, error) {
	cfg := textclean.DefaultConfig()
	if p.cfg.MinContentLength > 0 {
		cfg.MinContentLength = p.cfg.MinContentLength
	}
	cleaner, err := textclean.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("build cleaner: %w", err)
	}
	return NewArticleAdapter(p.cfg.ArticlesPath, cleaner).Load()
}
