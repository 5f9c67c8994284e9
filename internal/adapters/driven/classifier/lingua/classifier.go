// Package lingua provides a statistical language classifier built on the
// lingua-go n-gram models. Detection runs in-process with no network
// round-trip, which makes it the default path for inputs long enough for
// n-gram statistics to be reliable.
package lingua

import (
	"context"
	"fmt"
	"strings"

	"github.com/pemistahl/lingua-go"

	"github.com/bitgeese/boludo-translator/internal/core/domain"
	"github.com/bitgeese/boludo-translator/internal/core/ports/driven"
)

// Ensure Classifier implements the interface.
var _ driven.LanguageClassifier = (*Classifier)(nil)

// Classifier detects languages using pre-trained n-gram models.
type Classifier struct {
	detector lingua.LanguageDetector
}

// New creates a classifier restricted to the given ISO 639-1 codes.
// Restricting the candidate set keeps detection sharp: with only English
// and Spanish in play, lunfardo-heavy input cannot be misread as Italian.
// At least two resolvable codes are required.
func New(codes []string) (*Classifier, error) {
	languages := languagesForCodes(codes)
	if len(languages) < 2 {
		return nil, fmt.Errorf("lingua: need at least two known language codes, got %v", codes)
	}

	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(languages...).
		Build()

	return &Classifier{detector: detector}, nil
}

// Classify returns the detected language for the text.
func (c *Classifier) Classify(_ context.Context, text string) (domain.Language, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.LanguageUnknown, nil
	}

	language, exists := c.detector.DetectLanguageOf(text)
	if !exists {
		return domain.LanguageUnknown, nil
	}
	return domain.NormalizeLanguage(language.IsoCode639_1().String()), nil
}

// languagesForCodes resolves ISO 639-1 codes to lingua languages,
// silently dropping codes lingua has no model for.
func languagesForCodes(codes []string) []lingua.Language {
	want := make(map[string]bool, len(codes))
	for _, code := range codes {
		want[strings.ToLower(strings.TrimSpace(code))] = true
	}

	var languages []lingua.Language
	for _, language := range lingua.AllLanguages() {
		if want[strings.ToLower(language.IsoCode639_1().String())] {
			languages = append(languages, language)
		}
	}
	return languages
}
