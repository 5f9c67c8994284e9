package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitgeese/boludo-translator/internal/core/domain"
)

func TestFormatContext_Empty(t *testing.T) {
	assert.Equal(t, NoReferenceContext, FormatContext(nil))
	assert.Equal(t, NoReferenceContext, FormatContext([]domain.ScoredDocument{}))
}

func TestFormatContext_PreservesRankedOrder(t *testing.T) {
	docs := []domain.ScoredDocument{
		{Document: domain.Document{Content: "Original: money\nArgentinian: guita"}, Score: 0.95},
		{Document: domain.Document{Content: "Original: work\nArgentinian: laburo"}, Score: 0.80},
		{Document: domain.Document{Content: "Original: cool\nArgentinian: copado"}, Score: 0.60},
	}

	got := FormatContext(docs)
	parts := strings.Split(got, "\n---\n")
	assert.Len(t, parts, 3)
	assert.Contains(t, parts[0], "guita")
	assert.Contains(t, parts[1], "laburo")
	assert.Contains(t, parts[2], "copado")
}

func TestFormatContext_SkipsBlankDocuments(t *testing.T) {
	docs := []domain.ScoredDocument{
		{Document: domain.Document{Content: "  \n "}},
		{Document: domain.Document{Content: "Original: friend\nArgentinian: che"}},
	}

	got := FormatContext(docs)
	assert.NotContains(t, got, "---")
	assert.Contains(t, got, "che")
}

func TestFormatContext_AllBlankFallsBackToSentinel(t *testing.T) {
	docs := []domain.ScoredDocument{
		{Document: domain.Document{Content: ""}},
		{Document: domain.Document{Content: "   "}},
	}
	assert.Equal(t, NoReferenceContext, FormatContext(docs))
}
