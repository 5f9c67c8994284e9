package driven

import (
	"context"

	"github.com/bitgeese/boludo-translator/internal/core/domain"
)

// LanguageClassifier identifies the language of a piece of text.
// Two implementations exist: a statistical n-gram classifier (cheap, no
// round-trip, accurate on longer text) and a model-backed classifier
// (reliable on very short strings). The detector service picks between
// them by input length.
type LanguageClassifier interface {
	// Classify returns the detected language for the text. A classifier
	// may return an error; callers degrade to domain.LanguageUnknown
	// rather than propagating it.
	Classify(ctx context.Context, text string) (domain.Language, error)
}
