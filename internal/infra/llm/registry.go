package llm

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/yanqian/doc-summarizer/internal/domain/summarizer"
	"github.com/yanqian/doc-summarizer/internal/infra/config"
	"github.com/yanqian/doc-summarizer/internal/infra/llm/hfinference"
	"github.com/yanqian/doc-summarizer/internal/infra/llm/openaitext"
)

const openaiPrefix = "openai/"

// Registry owns the process-wide model-to-engine mapping. Engines are built
// lazily on first use and never evicted.
type Registry struct {
	mu      sync.Mutex
	engines map[string]summarizer.Engine

	hf     *hfinference.Client
	openai config.OpenAIConfig
	logger *slog.Logger
}

// NewRegistry is a wire provider for the engine registry.
func NewRegistry(cfg *config.Config, logger *slog.Logger) *Registry {
	return &Registry{
		engines: make(map[string]summarizer.Engine),
		hf:      hfinference.NewClient(cfg.LLM.HF.APIKey, cfg.LLM.HF.BaseURL),
		openai:  cfg.LLM.OpenAI,
		logger:  logger.With("component", "llm.registry"),
	}
}

// GetOrLoad returns the engine for a model identifier, constructing and
// caching it on first request.
func (r *Registry) GetOrLoad(model string) (summarizer.Engine, error) {
	model = strings.TrimSpace(model)
	if model == "" {
		return nil, errors.New("model identifier cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if engine, ok := r.engines[model]; ok {
		return engine, nil
	}

	r.logger.Info("loading model", "model", model)
	engine, err := r.build(model)
	if err != nil {
		return nil, err
	}
	r.engines[model] = engine
	return engine, nil
}

func (r *Registry) build(model string) (summarizer.Engine, error) {
	if name, ok := strings.CutPrefix(model, openaiPrefix); ok {
		if strings.TrimSpace(r.openai.APIKey) == "" {
			return nil, errors.New("openai api key not configured")
		}
		return &openaiEngine{engine: openaitext.New(r.openai.APIKey, r.openai.BaseURL, name)}, nil
	}
	return &hfEngine{client: r.hf, model: model}, nil
}

type hfEngine struct {
	client *hfinference.Client
	model  string
}

func (e *hfEngine) Generate(ctx context.Context, prompt string, params summarizer.GenerationParams) (string, error) {
	return e.client.Generate(ctx, e.model, prompt, hfinference.Parameters{
		MinLength: params.MinLength,
		MaxLength: params.MaxLength,
	})
}

type openaiEngine struct {
	engine *openaitext.Engine
}

func (e *openaiEngine) Generate(ctx context.Context, prompt string, params summarizer.GenerationParams) (string, error) {
	return e.engine.Generate(ctx, prompt, params.MaxLength)
}

var _ summarizer.EngineRegistry = (*Registry)(nil)
