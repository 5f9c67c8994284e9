package ingest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/bitgeese/boludo-translator/internal/core/domain"
	"github.com/bitgeese/boludo-translator/internal/logger"
	"github.com/bitgeese/boludo-translator/internal/textclean"
)

// Scraped lines can be whole blog posts; give the scanner room.
const maxArticleLineBytes = 4 * 1024 * 1024

// articleRecord is one line of the scraped JSONL corpus.
type articleRecord struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// ArticleAdapter loads an optional line-delimited JSON source of scraped
// articles, cleaning each record's text before it becomes a document.
type ArticleAdapter struct {
	path    string
	cleaner *textclean.Cleaner
}

// NewArticleAdapter creates an adapter for the JSONL file at path.
// The cleaner decides which records carry enough usable content to keep.
func NewArticleAdapter(path string, cleaner *textclean.Cleaner) *ArticleAdapter {
	return &ArticleAdapter{path: path, cleaner: cleaner}
}

// Load reads the JSONL file and converts usable records into documents.
// Scraped corpora always contain some malformed lines, so a record that
// fails to parse, lacks its text field, or cleans down to the sentinel is
// skipped with a logged reason rather than failing the batch. Only a batch
// where every record fails is an error; zero documents from a named source
// must not masquerade as success.
func (a *ArticleAdapter) Load() ([]domain.Document, error) {
	f, err := os.Open(a.path)
	if err != nil {
		return nil, fmt.Errorf("open articles %s: %w", a.path, err)
	}
	defer f.Close()

	var (
		docs    []domain.Document
		skipped int
	)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxArticleLineBytes)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var rec articleRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			logger.Warn("Skipping malformed JSONL line: %v", err)
			skipped++
			continue
		}
		if rec.Text == "" {
			logger.Warn("Skipping record without text: %s", rec.URL)
			skipped++
			continue
		}

		cleaned := a.cleaner.Clean(rec.Text)
		if cleaned == textclean.NoUsableContent {
			logger.Debug("Skipping record with minimal content: %s", rec.URL)
			skipped++
			continue
		}

		title := rec.Title
		if title == "" {
			title = "Untitled"
		}

		content := fmt.Sprintf("Title: %s\nSource: %s\nURL: %s\nContent: %s",
			title, domain.SourceVentureOut, rec.URL, cleaned)

		docs = append(docs, domain.Document{
			ID:      uuid.New().String(),
			Content: content,
			Metadata: map[string]string{
				"title":     title,
				"url":       rec.URL,
				"source":    domain.SourceVentureOut,
				"data_type": "article",
				"region":    "Argentina",
				"formality": "Various",
			},
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read articles %s: %w", a.path, err)
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("articles %s (skipped %d): %w", a.path, skipped, domain.ErrNoUsableRecords)
	}

	logger.Info("Loaded %d articles from %s, skipped %d", len(docs), a.path, skipped)
	return docs, nil
}
