package domain

// TranslationOutcome classifies how a request completed. Unsupported
// language and empty input are successful outcomes, not errors.
type TranslationOutcome string

const (
	// OutcomeTranslated means the full retrieval + generation path ran.
	OutcomeTranslated TranslationOutcome = "translated"

	// OutcomeEmptyInput means the request short-circuited on blank input.
	OutcomeEmptyInput TranslationOutcome = "empty_input"

	// OutcomeUnsupportedLanguage means the detected language is neither
	// unknown nor in the supported set, and a fixed user-facing message
	// was returned without retrieval or generation.
	OutcomeUnsupportedLanguage TranslationOutcome = "unsupported_language"
)

// TranslationRequest is a single translation unit of work. Requests are
// processed independently; nothing here is shared between requests.
type TranslationRequest struct {
	// Text is the free-form input to translate.
	Text string
}

// TranslationResult is the successful result of a translation request.
type TranslationResult struct {
	// Output is the generated text. Empty for OutcomeEmptyInput.
	Output string

	// Outcome classifies the completion path.
	Outcome TranslationOutcome

	// DetectedLanguage is what the detector reported for the input.
	// Unset for OutcomeEmptyInput, which short-circuits before detection.
	DetectedLanguage Language
}

// UnsupportedLanguageMessage is the fixed user-facing result returned when
// the input language is outside the supported set.
const UnsupportedLanguageMessage = "Sorry, I can only translate English or Spanish input. " +
	"¡Mandame algo en inglés o español, che!"
