package services

import (
	"strings"

	"github.com/bitgeese/boludo-translator/internal/core/domain"
)

// NoReferenceContext is injected into the translation prompt when retrieval
// produced nothing. The model is told explicitly rather than handed an
// empty string, so it falls back to general knowledge instead of refusing.
const NoReferenceContext = "No specific Argentinian expressions found as reference."

// contextSeparator delimits reference documents inside the prompt.
const contextSeparator = "\n---\n"

// FormatContext renders retrieved documents into the reference block of the
// translation prompt. Document order is preserved: callers hand in documents
// ranked by relevance and the most relevant stays first.
func FormatContext(docs []domain.ScoredDocument) string {
	if len(docs) == 0 {
		return NoReferenceContext
	}

	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		content := strings.TrimSpace(doc.Content)
		if content == "" {
			continue
		}
		parts = append(parts, content)
	}
	if len(parts) == 0 {
		return NoReferenceContext
	}
	return strings.Join(parts, contextSeparator)
}
