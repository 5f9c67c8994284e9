package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/bitgeese/boludo-translator/internal/core/domain"
	"github.com/bitgeese/boludo-translator/internal/core/ports/driven"
	"github.com/bitgeese/boludo-translator/internal/core/ports/driving"
	"github.com/bitgeese/boludo-translator/internal/logger"
	"github.com/bitgeese/boludo-translator/internal/policy"
)

// Ensure TranslatorService implements the interface.
var _ driving.Translator = (*TranslatorService)(nil)

// DefaultRetrievalK is the number of reference documents retrieved per
// request when the configuration does not override it.
const DefaultRetrievalK = 3

// defaultMaxTokens bounds the generated output length.
const defaultMaxTokens = 1024

// defaultTemperature keeps slang rendering lively without drifting off
// the reference material.
const defaultTemperature = 0.7

// TranslatorService orchestrates one translation request: content policy,
// language detection, retrieval, prompt assembly, and generation.
type TranslatorService struct {
	store     driven.VectorStore
	generator driven.Generator
	prompts   driven.PromptStore
	detector  driving.LanguageDetector
	filter    *policy.Filter
	supported domain.LanguageSet
	topK      int
}

// NewTranslatorService wires the translation pipeline. All dependencies are
// required except filter, which can be nil to disable content policy.
func NewTranslatorService(
	store driven.VectorStore,
	generator driven.Generator,
	prompts driven.PromptStore,
	detector driving.LanguageDetector,
	filter *policy.Filter,
	supported domain.LanguageSet,
	topK int,
) (*TranslatorService, error) {
	if store == nil {
		return nil, domain.ErrVectorStoreUnavailable
	}
	if generator == nil {
		return nil, domain.ErrGeneratorUnavailable
	}
	if prompts == nil {
		return nil, fmt.Errorf("translator: %w", domain.ErrPromptNotFound)
	}
	if detector == nil {
		return nil, fmt.Errorf("translator: language detector is required")
	}
	if topK <= 0 {
		topK = DefaultRetrievalK
	}
	return &TranslatorService{
		store:     store,
		generator: generator,
		prompts:   prompts,
		detector:  detector,
		filter:    filter,
		supported: supported,
		topK:      topK,
	}, nil
}

// Translate runs a single request through the pipeline. Empty input and
// unsupported languages come back as successful results with the matching
// outcome; only retrieval and generation failures are errors.
func (s *TranslatorService) Translate(
	ctx context.Context, req domain.TranslationRequest,
) (domain.TranslationResult, error) {
	logger.Section("Translation")

	input := strings.TrimSpace(req.Text)
	if input == "" {
		logger.Debug("Empty input, short-circuiting")
		return domain.TranslationResult{Outcome: domain.OutcomeEmptyInput}, nil
	}

	// Content policy runs before anything else sees the text. Detection,
	// retrieval, and generation all operate on the filtered form.
	if s.filter != nil {
		filtered := s.filter.Apply(input)
		if filtered != input {
			logger.Debug("Content policy rewrote the input")
			input = filtered
		}
	}

	lang := s.detector.Detect(ctx, input)
	logger.Debug("Detected language: %s", lang)

	if lang != domain.LanguageUnknown && !s.supported.Contains(lang) {
		return domain.TranslationResult{
			Output:           domain.UnsupportedLanguageMessage,
			Outcome:          domain.OutcomeUnsupportedLanguage,
			DetectedLanguage: lang,
		}, nil
	}

	docs, err := s.store.Query(ctx, input, s.topK)
	if err != nil {
		return domain.TranslationResult{}, &domain.TranslationError{Stage: "retrieval", Err: err}
	}
	logger.Debug("Retrieved %d reference documents", len(docs))

	prompt, err := s.buildPrompt(docs, input)
	if err != nil {
		return domain.TranslationResult{}, &domain.TranslationError{Stage: "generation", Err: err}
	}

	system, err := s.prompts.Load(driven.PromptSystem)
	if err != nil {
		return domain.TranslationResult{}, &domain.TranslationError{Stage: "generation", Err: err}
	}

	output, err := s.generator.Complete(ctx, prompt, driven.CompleteOptions{
		MaxTokens:   defaultMaxTokens,
		Temperature: defaultTemperature,
		System:      system,
	})
	if err != nil {
		return domain.TranslationResult{}, &domain.TranslationError{Stage: "generation", Err: err}
	}

	return domain.TranslationResult{
		Output:           strings.TrimSpace(output),
		Outcome:          domain.OutcomeTranslated,
		DetectedLanguage: lang,
	}, nil
}

func (s *TranslatorService) buildPrompt(docs []domain.ScoredDocument, input string) (string, error) {
	tmpl, err := s.prompts.Load(driven.PromptTranslation)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(tmpl, FormatContext(docs), input), nil
}
