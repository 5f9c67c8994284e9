package textclean

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCleaner(t *testing.T) *Cleaner {
	t.Helper()
	c, err := New(DefaultConfig())
	require.NoError(t, err)
	return c
}

func TestNew_InvalidPattern(t *testing.T) {
	cfg := Config{RemovePatterns: []string{`[unclosed`}}
	_, err := New(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[unclosed")
}

func TestClean_EmptyInput(t *testing.T) {
	c := newCleaner(t)
	assert.Equal(t, "", c.Clean(""))
}

func TestClean_RemovesCommentForm(t *testing.T) {
	c := newCleaner(t)

	raw := "Che is the most Argentinian word there is, used constantly in Buenos Aires.\n" +
		"Comment Enter your name and email for the next time I comment."

	got := c.Clean(raw)
	assert.Contains(t, got, "most Argentinian word")
	assert.NotContains(t, got, "Enter your name")
}

func TestClean_CaseInsensitivePatterns(t *testing.T) {
	c := newCleaner(t)

	raw := "Porteños drop the final s in casual speech, a habit worth imitating.\n" +
		"COPYRIGHT © 2024 Venture Out. ALL RIGHTS RESERVED."

	got := c.Clean(raw)
	assert.NotContains(t, strings.ToLower(got), "copyright")
	assert.Contains(t, got, "Porteños")
}

func TestClean_TruncatesAtSplitPoint(t *testing.T) {
	c := newCleaner(t)

	raw := "The word boludo can be an insult or a term of endearment between friends.\n" +
		"Related Posts\nTen slang words you must know\nFive ways to order coffee"

	got := c.Clean(raw)
	assert.Contains(t, got, "term of endearment")
	assert.NotContains(t, got, "Ten slang words")
	assert.NotContains(t, got, "Related Posts")
}

func TestClean_CategoryListingStateMachine(t *testing.T) {
	c := newCleaner(t)

	raw := "Lunfardo began as prison slang in late nineteenth century Buenos Aires.\n" +
		"(45)\n" +
		"Slang\n" +
		"(12)\n" +
		"Grammar\n" +
		"It later spread through tango lyrics into everyday Argentinian conversation."

	got := c.Clean(raw)
	assert.Contains(t, got, "prison slang")
	assert.NotContains(t, got, "(45)")
	assert.NotContains(t, got, "(12)")
	// Lines after the long exit line are kept again.
	assert.NotContains(t, got, "Grammar")
}

func TestClean_SkipModeExitKeepsFollowingLines(t *testing.T) {
	c := newCleaner(t)

	raw := "An opening line about Argentinian Spanish that is clearly real content.\n" +
		"(3)\n" +
		"short\n" +
		"This long line of resumed article content is what ends the skip state here.\n" +
		"And this following line must survive the category filter."

	got := c.Clean(raw)
	assert.Contains(t, got, "must survive the category filter")
	assert.NotContains(t, got, "(3)")
}

func TestClean_WhitespaceCollapsing(t *testing.T) {
	c := newCleaner(t)

	raw := "First paragraph about the voseo conjugation used across Argentina.\n\n\n\n" +
		"Second paragraph with  double  spaces   inside it to collapse down."

	got := c.Clean(raw)
	assert.Contains(t, got, "First paragraph")
	assert.NotContains(t, got, "\n\n\n")
	assert.NotContains(t, got, "  ")
}

func TestClean_StripsURLs(t *testing.T) {
	c := newCleaner(t)

	raw := "Read more about Argentinian idioms at https://example.com/idioms and keep practising every single day."

	got := c.Clean(raw)
	assert.NotContains(t, got, "https://")
	assert.NotContains(t, got, "  ")
}

func TestClean_MinimumLengthSentinel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinContentLength = 100
	c, err := New(cfg)
	require.NoError(t, err)

	assert.Equal(t, NoUsableContent, c.Clean("too short"))
	// Whitespace-only content also yields the sentinel.
	assert.Equal(t, NoUsableContent, c.Clean("   \n\n  \t "))
}

func TestClean_Idempotent(t *testing.T) {
	c := newCleaner(t)

	inputs := []string{
		"Boludo works as both insult and endearment, context is everything here.\n\n" +
			"Quilombo meaning a mess or chaotic situation shows up in daily speech.",
		"A single tidy paragraph about ordering un cortado in a Buenos Aires café.",
	}

	for _, raw := range inputs {
		once := c.Clean(raw)
		twice := c.Clean(once)
		assert.Equal(t, once, twice)
	}
}

func TestClean_ShortInputBelowDefaultMinimum(t *testing.T) {
	c := newCleaner(t)
	// Default minimum is 10; a 5-char remainder is unusable.
	assert.Equal(t, NoUsableContent, c.Clean("hola"))
}
