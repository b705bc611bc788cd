package openaitext

import (
	"context"
	"errors"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Engine generates summaries through the OpenAI chat completions API.
type Engine struct {
	client openai.Client
	model  string
}

// New builds an engine bound to one model.
func New(apiKey, baseURL, model string) *Engine {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if strings.TrimSpace(baseURL) != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Engine{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// Generate runs a single chat completion. maxTokens caps the response; the
// prompt itself asks for the desired length, so no retry loop is needed.
func (e *Engine) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(e.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}
	if maxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(maxTokens))
	}

	resp, err := e.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", errors.New("completion content is empty")
	}
	return content, nil
}
