package services

import (
	"context"
	"strings"

	"github.com/bitgeese/boludo-translator/internal/core/domain"
	"github.com/bitgeese/boludo-translator/internal/core/ports/driven"
	"github.com/bitgeese/boludo-translator/internal/core/ports/driving"
	"github.com/bitgeese/boludo-translator/internal/logger"
)

// Ensure DetectorService implements the interface.
var _ driving.LanguageDetector = (*DetectorService)(nil)

// DefaultShortInputWordThreshold is the word count at or below which input
// is routed to the model classifier. Statistical n-gram detection is
// unreliable on one or two words ("che", "dale"), where a model does far
// better; on longer text the statistical path is cheaper and avoids a
// round-trip.
const DefaultShortInputWordThreshold = 2

// DetectorService picks between a statistical and a model-backed language
// classifier based on input length. Either classifier failing degrades the
// result to domain.LanguageUnknown; detection never errors.
type DetectorService struct {
	statistical driven.LanguageClassifier
	model       driven.LanguageClassifier
	threshold   int
}

// NewDetectorService creates a hybrid language detector. The model
// classifier is optional (can be nil); short inputs then fall back to the
// statistical path.
func NewDetectorService(
	statistical driven.LanguageClassifier,
	model driven.LanguageClassifier,
	threshold int,
) *DetectorService {
	if threshold <= 0 {
		threshold = DefaultShortInputWordThreshold
	}
	return &DetectorService{
		statistical: statistical,
		model:       model,
		threshold:   threshold,
	}
}

// Detect returns the language of text, or domain.LanguageUnknown when
// neither classifier produces an answer.
func (s *DetectorService) Detect(ctx context.Context, text string) domain.Language {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.LanguageUnknown
	}

	words := len(strings.Fields(text))
	if words <= s.threshold && s.model != nil {
		logger.Debug("Short input (%d words), using model classifier", words)
		lang, err := s.model.Classify(ctx, text)
		if err != nil {
			logger.Warn("Model language classification failed: %v", err)
			return domain.LanguageUnknown
		}
		return lang
	}

	if s.statistical == nil {
		return domain.LanguageUnknown
	}
	lang, err := s.statistical.Classify(ctx, text)
	if err != nil {
		logger.Warn("Statistical language classification failed: %v", err)
		return domain.LanguageUnknown
	}
	return lang
}
