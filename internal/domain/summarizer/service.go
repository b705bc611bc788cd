package summarizer

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/yanqian/doc-summarizer/pkg/errors"
)

// Service exposes the chunk-and-recombine summarization pipeline.
type Service interface {
	Summarize(ctx context.Context, req Request) (Result, error)
}

// Result carries the ordered per-chunk parts and their combined summary.
type Result struct {
	Parts    []Part
	Combined string
}

type service struct {
	registry EngineRegistry
	logger   *slog.Logger
}

// NewService is a wire provider for the summarizer domain.
func NewService(registry EngineRegistry, logger *slog.Logger) Service {
	return &service{registry: registry, logger: logger.With("component", "summarizer.service")}
}

// Summarize chunks the text, invokes the engine once per chunk in source
// order, and combines the outcomes. A failing chunk is recorded as a failed
// Part and never aborts the batch; exactly one Part is produced per chunk.
func (s *service) Summarize(ctx context.Context, req Request) (Result, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return Result{}, apperrors.Wrap("invalid_input", "No text provided", nil)
	}

	engine, err := s.registry.GetOrLoad(req.Model)
	if err != nil {
		return Result{}, apperrors.Wrap("engine_error", "failed to load model "+req.Model, err)
	}

	params := req.Params.withDefaults()
	chunks := Chunk(text, params.MaxChunkChars)
	prefix := req.Style.PromptPrefix()

	parts := make([]Part, 0, len(chunks))
	for i, chunk := range chunks {
		s.logger.Info("summarizing chunk", "chunk", i+1, "total", len(chunks), "model", req.Model)
		generated, genErr := engine.Generate(ctx, prefix+chunk, params)
		if genErr != nil {
			s.logger.Error("chunk generation failed", "chunk", i+1, "error", genErr)
			parts = append(parts, Part{Index: i + 1, Err: genErr})
			continue
		}
		parts = append(parts, Part{Index: i + 1, Text: generated})
	}

	return Result{Parts: parts, Combined: Combine(parts, req.Style)}, nil
}
