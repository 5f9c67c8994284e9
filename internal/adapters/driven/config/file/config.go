package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Vector backend names accepted in [vector] backend.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// LLM provider names accepted in [llm] provider.
const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// Config is the full application configuration.
type Config struct {
	Data        DataConfig        `toml:"data"`
	Translation TranslationConfig `toml:"translation"`
	Vector      VectorConfig      `toml:"vector"`
	LLM         LLMConfig         `toml:"llm"`
	Prompts     PromptsConfig     `toml:"prompts"`
	Chat        ChatConfig        `toml:"chat"`
}

// DataConfig locates the ingestion sources.
type DataConfig struct {
	// PhrasebookPath is the curated phrase CSV (mandatory source).
	PhrasebookPath string `toml:"phrasebook_path"`

	// ArticlesPath is the scraped-article JSONL (optional source).
	ArticlesPath string `toml:"articles_path"`

	// UseArticles enables the optional article source.
	UseArticles bool `toml:"use_articles"`

	// MinContentLength is the minimum cleaned article length.
	MinContentLength int `toml:"min_content_length"`

	// MaxDocuments caps the index size for constrained runs. Zero means no cap.
	MaxDocuments int `toml:"max_documents"`
}

// TranslationConfig tunes the request pipeline.
type TranslationConfig struct {
	// SupportedLanguages are the ISO 639-1 codes accepted as input.
	SupportedLanguages []string `toml:"supported_languages"`

	// ShortInputWordThreshold routes inputs at or below this word count
	// to the model-backed language classifier.
	ShortInputWordThreshold int `toml:"short_input_word_threshold"`

	// TopK is the number of reference documents retrieved per request.
	TopK int `toml:"top_k"`
}

// VectorConfig selects and tunes the vector store backend.
type VectorConfig struct {
	// Backend is one of "memory", "sqlite", or "redis".
	Backend string `toml:"backend"`

	// DataDir is where the sqlite backend keeps its database.
	DataDir string `toml:"data_dir"`

	// RedisAddr is the Redis server address for the redis backend.
	RedisAddr string `toml:"redis_addr"`

	// RedisPassword is the Redis password (default: none).
	RedisPassword string `toml:"redis_password"`

	// RedisDB is the Redis database number.
	RedisDB int `toml:"redis_db"`

	// RedisIndex is the RediSearch index name.
	RedisIndex string `toml:"redis_index"`
}

// LLMConfig selects the generation and embedding backends.
type LLMConfig struct {
	// Provider is one of "openai" or "ollama".
	Provider string `toml:"provider"`

	// Model is the chat model used for generation.
	Model string `toml:"model"`

	// EmbeddingModel is the model used to embed documents and queries.
	EmbeddingModel string `toml:"embedding_model"`

	// BaseURL overrides the provider API base URL.
	BaseURL string `toml:"base_url"`

	// APIKey is the provider API key. The OPENAI_API_KEY environment
	// variable takes precedence; keys do not belong in config files.
	APIKey string `toml:"api_key"`
}

// PromptsConfig controls prompt template loading.
type PromptsConfig struct {
	// Dir is the prompt template directory.
	Dir string `toml:"dir"`

	// Watch reloads prompts when files in Dir change.
	Watch bool `toml:"watch"`
}

// ChatConfig tunes the interactive chat session.
type ChatConfig struct {
	// RequestsPerMinute rate-limits translation requests in chat.
	RequestsPerMinute int `toml:"requests_per_minute"`

	// HistoryLimit bounds the number of retained chat exchanges.
	HistoryLimit int `toml:"history_limit"`
}

// Default returns the configuration used when no file overrides it.
func Default() Config {
	return Config{
		Data: DataConfig{
			PhrasebookPath:   "data/phrases.csv",
			ArticlesPath:     "data/ventureout_data.jsonl",
			UseArticles:      true,
			MinContentLength: 100,
		},
		Translation: TranslationConfig{
			SupportedLanguages:      []string{"en", "es"},
			ShortInputWordThreshold: 2,
			TopK:                    3,
		},
		Vector: VectorConfig{
			Backend:    BackendMemory,
			RedisAddr:  "localhost:6379",
			RedisIndex: "boludo-phrases",
		},
		LLM: LLMConfig{
			Provider:       ProviderOpenAI,
			Model:          "gpt-4o-mini",
			EmbeddingModel: "text-embedding-3-small",
		},
		Prompts: PromptsConfig{
			Watch: true,
		},
		Chat: ChatConfig{
			RequestsPerMinute: 20,
			HistoryLimit:      50,
		},
	}
}

// Load reads configuration from path, applying defaults for anything the
// file leaves out. A missing file yields the defaults. If path is empty,
// ~/.boludo/config.toml is used. The OPENAI_API_KEY environment variable
// overrides the configured API key.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("get home directory: %w", err)
		}
		path = filepath.Join(home, ".boludo", "config.toml")
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults apply
	case err != nil:
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.LLM.APIKey = key
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the wiring cannot honour.
func (c Config) Validate() error {
	switch c.Vector.Backend {
	case BackendMemory, BackendSQLite, BackendRedis:
	default:
		return fmt.Errorf("config: unknown vector backend %q", c.Vector.Backend)
	}

	switch c.LLM.Provider {
	case ProviderOpenAI, ProviderOllama:
	default:
		return fmt.Errorf("config: unknown llm provider %q", c.LLM.Provider)
	}

	if len(c.Translation.SupportedLanguages) == 0 {
		return fmt.Errorf("config: supported_languages must not be empty")
	}
	if c.Translation.TopK < 0 {
		return fmt.Errorf("config: top_k must not be negative")
	}
	return nil
}

// Save writes the configuration to path, creating parent directories.
func (c Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
