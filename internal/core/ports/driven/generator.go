package driven

import "context"

// Generator is the generative backend boundary. The core is agnostic to
// model identity; it sends a composed UTF-8 prompt and expects UTF-8 text
// back. Any backend failure surfaces as an error and is wrapped into a
// TranslationError by the orchestrator.
//
// Implementations may include:
//   - OpenAI (GPT-4o, GPT-4o-mini)
//   - Ollama (local models)
type Generator interface {
	// Complete produces a text completion for the given prompt.
	Complete(ctx context.Context, prompt string, opts CompleteOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// CompleteOptions configures text generation behaviour.
type CompleteOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64

	// System is an optional system prompt prepended to the request.
	System string
}
