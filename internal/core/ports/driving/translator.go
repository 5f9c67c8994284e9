package driving

import (
	"context"

	"github.com/bitgeese/boludo-translator/internal/core/domain"
)

// Translator is the primary port for translation requests. Each call is an
// independent, stateless unit of work; unsupported-language and empty-input
// come back as successful results, not errors.
type Translator interface {
	// Translate runs one request/response cycle through the pipeline.
	Translate(ctx context.Context, req domain.TranslationRequest) (domain.TranslationResult, error)
}

// LanguageDetector identifies the language of user input.
type LanguageDetector interface {
	// Detect returns the detected language, or domain.LanguageUnknown.
	// It never returns an error; detection failure degrades to unknown.
	Detect(ctx context.Context, text string) domain.Language
}
