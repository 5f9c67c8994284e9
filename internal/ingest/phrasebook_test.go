package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitgeese/boludo-translator/internal/core/domain"
)

const phrasebookHeader = "Original Phrase/Word,Argentinian Equivalent," +
	"Explanation (Context/Usage),Region Specificity,Level of Formality"

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "phrases.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestPhrasebookLoad_Success(t *testing.T) {
	csv := phrasebookHeader + "\n" +
		"money,guita,Common slang for money,Buenos Aires,Informal\n" +
		"friend,che,Universal vocative,Nationwide,Informal\n"
	path := writeTempCSV(t, csv)

	docs, err := NewPhrasebookAdapter(path).Load()
	require.NoError(t, err)
	require.Len(t, docs, 2)

	doc := docs[0]
	assert.NotEmpty(t, doc.ID)
	assert.Contains(t, doc.Content, "Original: money")
	assert.Contains(t, doc.Content, "Argentinian: guita")
	assert.Contains(t, doc.Content, "Context: Common slang for money")
	assert.Contains(t, doc.Content, "Region: Buenos Aires")
	assert.Contains(t, doc.Content, "Formality: Informal")

	assert.Equal(t, "money", doc.Metadata["original"])
	assert.Equal(t, "guita", doc.Metadata["argentinian"])
	assert.Equal(t, domain.SourcePhrasebook, doc.Metadata["source"])
}

func TestPhrasebookLoad_EnrichedColumns(t *testing.T) {
	csv := phrasebookHeader + ",Register,Connotation,Example Sentence (Spanish),Example Sentence (English)\n" +
		"work,laburo,From Italian lavoro,Nationwide,Informal,Colloquial,Neutral," +
		"Tengo mucho laburo,I have a lot of work\n"
	path := writeTempCSV(t, csv)

	docs, err := NewPhrasebookAdapter(path).Load()
	require.NoError(t, err)
	require.Len(t, docs, 1)

	doc := docs[0]
	assert.Contains(t, doc.Content, "Register: Colloquial")
	assert.Contains(t, doc.Content, "Connotation: Neutral")
	assert.Contains(t, doc.Content, "Example (Spanish): Tengo mucho laburo")
	assert.Contains(t, doc.Content, "Example (English): I have a lot of work")
	assert.Equal(t, "Colloquial", doc.Metadata["register"])
	assert.Equal(t, "Neutral", doc.Metadata["connotation"])
}

func TestPhrasebookLoad_MissingColumnsFailFast(t *testing.T) {
	csv := "Original Phrase/Word,Argentinian Equivalent\nmoney,guita\n"
	path := writeTempCSV(t, csv)

	docs, err := NewPhrasebookAdapter(path).Load()
	require.Error(t, err)
	assert.Nil(t, docs, "no documents may be produced on schema failure")

	var schemaErr *domain.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.ElementsMatch(t, []string{
		"Explanation (Context/Usage)",
		"Region Specificity",
		"Level of Formality",
	}, schemaErr.Missing)
}

func TestPhrasebookLoad_FileNotFound(t *testing.T) {
	_, err := NewPhrasebookAdapter("/nonexistent/phrases.csv").Load()
	require.Error(t, err)
}

func TestPhrasebookLoad_HeaderOnly(t *testing.T) {
	path := writeTempCSV(t, phrasebookHeader+"\n")

	_, err := NewPhrasebookAdapter(path).Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoUsableRecords)
}

func TestPhrasebookLoad_SkipsBlankRows(t *testing.T) {
	csv := phrasebookHeader + "\n" +
		"money,guita,slang,BA,Informal\n" +
		",,,,\n"
	path := writeTempCSV(t, csv)

	docs, err := NewPhrasebookAdapter(path).Load()
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}
