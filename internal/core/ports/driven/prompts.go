package driven

// PromptStore provides access to LLM prompt templates.
// Implementations may load prompts from files, embed them in the binary,
// or fetch them from a remote configuration service.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// Returns the prompt content and any error encountered.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	// This is useful when prompts may have been edited on disk.
	Reload()
}

// Well-known prompt names used throughout the application.
// These constants define the contract between prompt consumers and providers.
const (
	// PromptTranslation is the RAG translation template. It expects two
	// %s placeholders: the formatted reference phrases and the input text.
	PromptTranslation = "translation"

	// PromptSystem is the system prompt sent with every generation request.
	// This prompt has no format placeholders.
	PromptSystem = "system"

	// PromptLanguageDetect asks the model to identify an input's language.
	// The template expects a %s placeholder for the input text.
	PromptLanguageDetect = "language_detect"
)
