package cli

import (
	"context"
	"fmt"

	"github.com/bitgeese/boludo-translator/internal/adapters/driven/classifier/lingua"
	llmclassifier "github.com/bitgeese/boludo-translator/internal/adapters/driven/classifier/llm"
	"github.com/bitgeese/boludo-translator/internal/adapters/driven/config/file"
	embeddingollama "github.com/bitgeese/boludo-translator/internal/adapters/driven/embedding/ollama"
	embeddingopenai "github.com/bitgeese/boludo-translator/internal/adapters/driven/embedding/openai"
	generatorollama "github.com/bitgeese/boludo-translator/internal/adapters/driven/generator/ollama"
	generatoropenai "github.com/bitgeese/boludo-translator/internal/adapters/driven/generator/openai"
	vectormemory "github.com/bitgeese/boludo-translator/internal/adapters/driven/vector/memory"
	vectorredis "github.com/bitgeese/boludo-translator/internal/adapters/driven/vector/redis"
	vectorsqlite "github.com/bitgeese/boludo-translator/internal/adapters/driven/vector/sqlite"
	"github.com/bitgeese/boludo-translator/internal/core/domain"
	"github.com/bitgeese/boludo-translator/internal/core/ports/driven"
	"github.com/bitgeese/boludo-translator/internal/core/services"
	"github.com/bitgeese/boludo-translator/internal/ingest"
	"github.com/bitgeese/boludo-translator/internal/logger"
	"github.com/bitgeese/boludo-translator/internal/policy"
)

// app holds the assembled application: configuration, adapters, and the
// translation pipeline.
type app struct {
	cfg        file.Config
	generator  driven.Generator
	embedder   driven.EmbeddingService
	store      driven.VectorStore
	prompts    *file.PromptStore
	watcher    *file.PromptWatcher
	pipeline   *ingest.Pipeline
	translator *services.TranslatorService
}

// buildApp wires the full dependency graph from configuration.
func buildApp(ctx context.Context) (*app, error) {
	cfg, err := file.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	prompts, err := file.NewPromptStore(cfg.Prompts.Dir)
	if err != nil {
		return nil, fmt.Errorf("prompt store: %w", err)
	}

	generator, err := newGenerator(cfg)
	if err != nil {
		return nil, err
	}

	embedder, err := newEmbedder(cfg)
	if err != nil {
		return nil, err
	}

	store, err := newVectorStore(ctx, cfg, embedder)
	if err != nil {
		return nil, err
	}

	detector := newDetector(cfg, generator, prompts)

	filter, err := policy.New(policy.DefaultRules())
	if err != nil {
		return nil, fmt.Errorf("content policy: %w", err)
	}

	translator, err := services.NewTranslatorService(
		store, generator, prompts, detector, filter,
		domain.NewLanguageSet(cfg.Translation.SupportedLanguages...),
		cfg.Translation.TopK,
	)
	if err != nil {
		return nil, err
	}

	pipeline, err := ingest.New(ingest.Config{
		PhrasebookPath:   cfg.Data.PhrasebookPath,
		ArticlesPath:     cfg.Data.ArticlesPath,
		UseArticles:      cfg.Data.UseArticles,
		MinContentLength: cfg.Data.MinContentLength,
		MaxDocuments:     cfg.Data.MaxDocuments,
	}, store)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:        cfg,
		generator:  generator,
		embedder:   embedder,
		store:      store,
		prompts:    prompts,
		pipeline:   pipeline,
		translator: translator,
	}

	if cfg.Prompts.Watch {
		// Force lazy init so the directory exists before watching it.
		if _, err := prompts.Load(driven.PromptSystem); err == nil {
			watcher, err := file.WatchPrompts(prompts.Dir(), prompts)
			if err != nil {
				logger.Warn("Prompt watching unavailable: %v", err)
			} else {
				a.watcher = watcher
			}
		}
	}

	return a, nil
}

// ensureIndex builds the vector index if it is empty. Persistent backends
// keep their index across runs; the memory backend ingests every time.
func (a *app) ensureIndex(ctx context.Context) error {
	count, err := a.store.Count(ctx)
	if err != nil {
		return fmt.Errorf("check index: %w", err)
	}
	if count > 0 {
		logger.Debug("Vector index already holds %d documents", count)
		return nil
	}
	_, err = a.pipeline.Build(ctx)
	return err
}

// close releases adapter resources.
func (a *app) close() {
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
	_ = a.store.Close()
	_ = a.generator.Close()
	_ = a.embedder.Close()
}

func newGenerator(cfg file.Config) (driven.Generator, error) {
	switch cfg.LLM.Provider {
	case file.ProviderOllama:
		return generatorollama.New(generatorollama.Config{
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.Model,
		}), nil
	default:
		return generatoropenai.New(generatoropenai.Config{
			APIKey:  cfg.LLM.APIKey,
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.Model,
		})
	}
}

func newEmbedder(cfg file.Config) (driven.EmbeddingService, error) {
	switch cfg.LLM.Provider {
	case file.ProviderOllama:
		return embeddingollama.NewEmbeddingService(embeddingollama.Config{
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.EmbeddingModel,
		}), nil
	default:
		return embeddingopenai.NewEmbeddingService(embeddingopenai.Config{
			APIKey:  cfg.LLM.APIKey,
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.EmbeddingModel,
		})
	}
}

func newVectorStore(
	ctx context.Context, cfg file.Config, embedder driven.EmbeddingService,
) (driven.VectorStore, error) {
	switch cfg.Vector.Backend {
	case file.BackendSQLite:
		return vectorsqlite.New(cfg.Vector.DataDir, embedder)
	case file.BackendRedis:
		return vectorredis.New(ctx, vectorredis.Config{
			Addr:      cfg.Vector.RedisAddr,
			Password:  cfg.Vector.RedisPassword,
			DB:        cfg.Vector.RedisDB,
			IndexName: cfg.Vector.RedisIndex,
		}, embedder)
	default:
		return vectormemory.New(embedder)
	}
}

// newDetector builds the hybrid language detector. The statistical
// classifier failing to initialise is non-fatal; detection then leans on
// the model path and unknown results pass through to translation.
func newDetector(cfg file.Config, generator driven.Generator, prompts driven.PromptStore) *services.DetectorService {
	var statistical driven.LanguageClassifier
	if c, err := lingua.New(cfg.Translation.SupportedLanguages); err != nil {
		logger.Warn("Statistical language detection unavailable: %v", err)
	} else {
		statistical = c
	}

	model, err := llmclassifier.New(generator, prompts)
	if err != nil {
		logger.Warn("Model language detection unavailable: %v", err)
		return services.NewDetectorService(statistical, nil, cfg.Translation.ShortInputWordThreshold)
	}
	return services.NewDetectorService(statistical, model, cfg.Translation.ShortInputWordThreshold)
}
