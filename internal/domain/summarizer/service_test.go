package summarizer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/doc-summarizer/pkg/errors"
)

type stubEngine struct {
	generate func(ctx context.Context, prompt string, params GenerationParams) (string, error)
}

func (e *stubEngine) Generate(ctx context.Context, prompt string, params GenerationParams) (string, error) {
	return e.generate(ctx, prompt, params)
}

type stubRegistry struct {
	engine Engine
	err    error
	models []string
}

func (r *stubRegistry) GetOrLoad(model string) (Engine, error) {
	r.models = append(r.models, model)
	if r.err != nil {
		return nil, r.err
	}
	return r.engine, nil
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSummarizeOnePartPerChunkInOrder(t *testing.T) {
	t.Parallel()
	text := "Sentence number one. Sentence number two. Sentence number three."
	wantChunks := Chunk(text, 25)
	require.Len(t, wantChunks, 3)

	var prompts []string
	engine := &stubEngine{
		generate: func(_ context.Context, prompt string, _ GenerationParams) (string, error) {
			prompts = append(prompts, prompt)
			return "summary " + prompt[len(prompt)-4:], nil
		},
	}
	registry := &stubRegistry{engine: engine}
	svc := NewService(registry, newTestLogger())

	result, err := svc.Summarize(context.Background(), Request{
		Text:   text,
		Model:  "test-model",
		Style:  StyleConcise,
		Params: GenerationParams{MaxChunkChars: 25},
	})
	require.NoError(t, err)
	require.Len(t, result.Parts, len(wantChunks))

	prefix := StyleConcise.PromptPrefix()
	for i, part := range result.Parts {
		require.Equal(t, i+1, part.Index)
		require.False(t, part.Failed())
		require.Equal(t, prefix+wantChunks[i], prompts[i])
	}
	require.Equal(t, []string{"test-model"}, registry.models)
}

func TestSummarizeIsolatesChunkFailures(t *testing.T) {
	t.Parallel()
	text := "Sentence number one. Sentence number two. Sentence number three."

	calls := 0
	engine := &stubEngine{
		generate: func(context.Context, string, GenerationParams) (string, error) {
			calls++
			if calls == 2 {
				return "", errors.New("backend unavailable")
			}
			return "ok", nil
		},
	}
	svc := NewService(&stubRegistry{engine: engine}, newTestLogger())

	result, err := svc.Summarize(context.Background(), Request{
		Text:   text,
		Model:  "test-model",
		Style:  StyleConcise,
		Params: GenerationParams{MaxChunkChars: 25},
	})
	require.NoError(t, err)
	require.Len(t, result.Parts, 3)

	require.False(t, result.Parts[0].Failed())
	require.True(t, result.Parts[1].Failed())
	require.False(t, result.Parts[2].Failed())
	require.Contains(t, result.Parts[1].Render(), "Summary generation failed for this section: backend unavailable")
	require.Contains(t, result.Combined, "backend unavailable")
}

func TestSummarizeEmptyText(t *testing.T) {
	t.Parallel()
	svc := NewService(&stubRegistry{engine: &stubEngine{}}, newTestLogger())

	_, err := svc.Summarize(context.Background(), Request{Text: "   "})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestSummarizeRegistryFailure(t *testing.T) {
	t.Parallel()
	svc := NewService(&stubRegistry{err: errors.New("unknown backend")}, newTestLogger())

	_, err := svc.Summarize(context.Background(), Request{Text: "Some text.", Model: "missing"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "engine_error"))
	require.Contains(t, err.Error(), "missing")
}

func TestSummarizeAppliesParameterDefaults(t *testing.T) {
	t.Parallel()
	var got GenerationParams
	engine := &stubEngine{
		generate: func(_ context.Context, _ string, params GenerationParams) (string, error) {
			got = params
			return "ok", nil
		},
	}
	svc := NewService(&stubRegistry{engine: engine}, newTestLogger())

	_, err := svc.Summarize(context.Background(), Request{Text: "Hello there.", Model: "m"})
	require.NoError(t, err)
	require.Equal(t, DefaultMinLength, got.MinLength)
	require.Equal(t, DefaultMaxLength, got.MaxLength)
	require.Equal(t, DefaultMaxChunkChars, got.MaxChunkChars)
}

func TestRenderParts(t *testing.T) {
	t.Parallel()
	parts := []Part{
		{Index: 1, Text: "fine"},
		{Index: 2, Err: errors.New("boom")},
	}
	require.Equal(t, []string{"fine", "Summary generation failed for this section: boom"}, RenderParts(parts))
	require.True(t, strings.HasPrefix(RenderParts(parts)[1], "Summary generation failed"))
}
