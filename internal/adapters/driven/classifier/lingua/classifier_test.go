package lingua

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitgeese/boludo-translator/internal/core/domain"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := New([]string{"en", "es"})
	require.NoError(t, err)
	return c
}

func TestNew_RejectsTooFewLanguages(t *testing.T) {
	_, err := New([]string{"en"})
	require.Error(t, err)

	_, err = New([]string{"zz", "xx"})
	require.Error(t, err)
}

func TestClassify_English(t *testing.T) {
	c := newTestClassifier(t)

	lang, err := c.Classify(context.Background(), "How much money do you have in your wallet?")
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageEnglish, lang)
}

func TestClassify_Spanish(t *testing.T) {
	c := newTestClassifier(t)

	lang, err := c.Classify(context.Background(), "¿Cuánta plata tenés en la billetera?")
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageSpanish, lang)
}

func TestClassify_EmptyInput(t *testing.T) {
	c := newTestClassifier(t)

	lang, err := c.Classify(context.Background(), "   ")
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageUnknown, lang)
}

func TestClassify_CaseInsensitiveCodes(t *testing.T) {
	c, err := New([]string{"EN", " es "})
	require.NoError(t, err)

	lang, err := c.Classify(context.Background(), "The weather in Buenos Aires is lovely today")
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageEnglish, lang)
}
