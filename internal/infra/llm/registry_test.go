package llm

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/doc-summarizer/internal/infra/config"
)

func newTestRegistry(openaiKey string) *Registry {
	cfg := &config.Config{}
	cfg.LLM.HF.BaseURL = "http://hf.test"
	cfg.LLM.OpenAI.APIKey = openaiKey
	return NewRegistry(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGetOrLoadCachesEngines(t *testing.T) {
	t.Parallel()
	registry := newTestRegistry("")

	first, err := registry.GetOrLoad("facebook/bart-large-cnn")
	require.NoError(t, err)
	second, err := registry.GetOrLoad("facebook/bart-large-cnn")
	require.NoError(t, err)
	require.Same(t, first, second)

	other, err := registry.GetOrLoad("google/pegasus-xsum")
	require.NoError(t, err)
	require.NotSame(t, first, other)
}

func TestGetOrLoadTrimsModelIdentifier(t *testing.T) {
	t.Parallel()
	registry := newTestRegistry("")

	first, err := registry.GetOrLoad("facebook/bart-large-cnn")
	require.NoError(t, err)
	second, err := registry.GetOrLoad("  facebook/bart-large-cnn  ")
	require.NoError(t, err)
	require.Same(t, first, second)
}

func TestGetOrLoadEmptyModel(t *testing.T) {
	t.Parallel()
	registry := newTestRegistry("")

	_, err := registry.GetOrLoad("   ")
	require.Error(t, err)
	require.Contains(t, err.Error(), "model identifier cannot be empty")
}

func TestGetOrLoadOpenAIRequiresKey(t *testing.T) {
	t.Parallel()
	registry := newTestRegistry("")

	_, err := registry.GetOrLoad("openai/gpt-4o-mini")
	require.Error(t, err)
	require.Contains(t, err.Error(), "openai api key not configured")
}

func TestGetOrLoadOpenAIWithKey(t *testing.T) {
	t.Parallel()
	registry := newTestRegistry("sk-test")

	engine, err := registry.GetOrLoad("openai/gpt-4o-mini")
	require.NoError(t, err)
	require.IsType(t, &openaiEngine{}, engine)
}

func TestGetOrLoadDefaultsToHF(t *testing.T) {
	t.Parallel()
	registry := newTestRegistry("")

	engine, err := registry.GetOrLoad("MBZUAI/lamini-flan-t5-248m")
	require.NoError(t, err)
	require.IsType(t, &hfEngine{}, engine)
}
