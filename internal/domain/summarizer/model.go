package summarizer

import "context"

// Defaults applied when a request omits generation parameters.
const (
	DefaultMaxChunkChars = 700
	DefaultMinLength     = 100
	DefaultMaxLength     = 350
)

// GenerationParams bound the per-chunk generation call. MaxChunkChars is a
// character budget, not a token budget.
type GenerationParams struct {
	MaxChunkChars int
	MinLength     int
	MaxLength     int
}

func (p GenerationParams) withDefaults() GenerationParams {
	if p.MaxChunkChars <= 0 {
		p.MaxChunkChars = DefaultMaxChunkChars
	}
	if p.MinLength <= 0 {
		p.MinLength = DefaultMinLength
	}
	if p.MaxLength <= 0 {
		p.MaxLength = DefaultMaxLength
	}
	return p
}

// Request represents one summarization invocation.
type Request struct {
	Text   string
	Model  string
	Style  Style
	Params GenerationParams
}

// Part is the tagged per-chunk outcome: either generated text or the error
// that kept this chunk from being summarized. Index is 1-based and matches
// the chunk's position in the source text.
type Part struct {
	Index int
	Text  string
	Err   error
}

// Failed reports whether generation failed for this chunk.
func (p Part) Failed() bool { return p.Err != nil }

// Render returns the text carried into responses and the combined summary.
// Failures surface inline so a bad chunk never hides the rest of the batch.
func (p Part) Render() string {
	if p.Err != nil {
		return "Summary generation failed for this section: " + p.Err.Error()
	}
	return p.Text
}

// RenderParts maps every part to its response text, preserving order.
func RenderParts(parts []Part) []string {
	out := make([]string, len(parts))
	for i, part := range parts {
		out[i] = part.Render()
	}
	return out
}

// Engine is the black-box generation capability: instruction-prefixed text in,
// generated summary out.
type Engine interface {
	Generate(ctx context.Context, prompt string, params GenerationParams) (string, error)
}

// EngineRegistry hands out a ready engine for a model identifier, loading it
// on first use.
type EngineRegistry interface {
	GetOrLoad(model string) (Engine, error)
}
