// Package llm provides a language classifier backed by the generator.
// It exists for very short inputs, where n-gram statistics have too
// little signal and a model call is worth the round-trip.
package llm

import (
	"context"
	"fmt"

	"github.com/bitgeese/boludo-translator/internal/core/domain"
	"github.com/bitgeese/boludo-translator/internal/core/ports/driven"
)

// Ensure Classifier implements the interface.
var _ driven.LanguageClassifier = (*Classifier)(nil)

// maxAnswerTokens bounds the classification answer. The prompt asks for a
// bare two-letter code; anything longer is wasted output.
const maxAnswerTokens = 5

// Classifier asks the generator to name the input's language.
type Classifier struct {
	generator driven.Generator
	prompts   driven.PromptStore
}

// New creates a generator-backed language classifier.
func New(generator driven.Generator, prompts driven.PromptStore) (*Classifier, error) {
	if generator == nil {
		return nil, domain.ErrGeneratorUnavailable
	}
	if prompts == nil {
		return nil, fmt.Errorf("llm classifier: %w", domain.ErrPromptNotFound)
	}
	return &Classifier{generator: generator, prompts: prompts}, nil
}

// Classify returns the detected language for the text. Model answers that
// do not normalize to a two-letter code come back as LanguageUnknown.
func (c *Classifier) Classify(ctx context.Context, text string) (domain.Language, error) {
	tmpl, err := c.prompts.Load(driven.PromptLanguageDetect)
	if err != nil {
		return domain.LanguageUnknown, fmt.Errorf("load prompt: %w", err)
	}

	answer, err := c.generator.Complete(ctx, fmt.Sprintf(tmpl, text), driven.CompleteOptions{
		MaxTokens: maxAnswerTokens,
	})
	if err != nil {
		return domain.LanguageUnknown, fmt.Errorf("classify language: %w", err)
	}

	return domain.NormalizeLanguage(answer), nil
}
