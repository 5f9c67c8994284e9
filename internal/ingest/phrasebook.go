package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/bitgeese/boludo-translator/internal/core/domain"
	"github.com/bitgeese/boludo-translator/internal/logger"
)

// Required phrasebook columns. Loading fails fast if any is absent;
// a partially conforming source must never silently produce partial documents.
var requiredPhrasebookColumns = []string{
	"Original Phrase/Word",
	"Argentinian Equivalent",
	"Explanation (Context/Usage)",
	"Region Specificity",
	"Level of Formality",
}

// Optional enrichment columns appended to content when present.
var optionalPhrasebookColumns = []string{
	"Register",
	"Connotation",
	"Example Sentence (Spanish)",
	"Example Sentence (English)",
}

// Content labels for the optional columns.
var optionalColumnLabels = map[string]string{
	"Register":                   "Register",
	"Connotation":                "Connotation",
	"Example Sentence (Spanish)": "Example (Spanish)",
	"Example Sentence (English)": "Example (English)",
}

// PhrasebookAdapter loads the mandatory tabular source of phrase pairs.
type PhrasebookAdapter struct {
	path string
}

// NewPhrasebookAdapter creates an adapter for the CSV file at path.
func NewPhrasebookAdapter(path string) *PhrasebookAdapter {
	return &PhrasebookAdapter{path: path}
}

// Load reads the CSV and converts each row into one document. Content is a
// labelled, fixed-order rendering of the fields rather than a raw dump, so
// embeddings capture the labelled structure; metadata mirrors the fields as
// strings for backend-side filtering.
func (a *PhrasebookAdapter) Load() ([]domain.Document, error) {
	f, err := os.Open(a.path)
	if err != nil {
		return nil, fmt.Errorf("open phrasebook %s: %w", a.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse phrasebook %s: %w", a.path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("phrasebook %s: %w", a.path, domain.ErrNoUsableRecords)
	}

	header := rows[0]
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(col)] = i
	}

	var missing []string
	for _, col := range requiredPhrasebookColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &domain.SchemaError{Source: a.path, Missing: missing}
	}

	field := func(row []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	docs := make([]domain.Document, 0, len(rows)-1)
	for _, row := range rows[1:] {
		original := field(row, "Original Phrase/Word")
		equivalent := field(row, "Argentinian Equivalent")
		if original == "" && equivalent == "" {
			continue
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Original: %s\n", original)
		fmt.Fprintf(&b, "Argentinian: %s\n", equivalent)
		fmt.Fprintf(&b, "Context: %s\n", field(row, "Explanation (Context/Usage)"))
		fmt.Fprintf(&b, "Region: %s\n", field(row, "Region Specificity"))
		for _, col := range optionalPhrasebookColumns {
			if v := field(row, col); v != "" {
				fmt.Fprintf(&b, "%s: %s\n", optionalColumnLabels[col], v)
			}
		}
		fmt.Fprintf(&b, "Formality: %s", field(row, "Level of Formality"))

		metadata := map[string]string{
			"original":    original,
			"argentinian": equivalent,
			"context":     field(row, "Explanation (Context/Usage)"),
			"region":      field(row, "Region Specificity"),
			"formality":   field(row, "Level of Formality"),
			"source":      domain.SourcePhrasebook,
		}
		if v := field(row, "Register"); v != "" {
			metadata["register"] = v
		}
		if v := field(row, "Connotation"); v != "" {
			metadata["connotation"] = v
		}

		docs = append(docs, domain.Document{
			ID:       uuid.New().String(),
			Content:  strings.TrimSpace(b.String()),
			Metadata: metadata,
		})
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("phrasebook %s: %w", a.path, domain.ErrNoUsableRecords)
	}

	logger.Info("Loaded %d phrases from %s", len(docs), a.path)
	return docs, nil
}
