package hfinference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api-inference.huggingface.co"

// GenerationRequest is the payload sent to a text2text-generation model.
type GenerationRequest struct {
	Inputs     string     `json:"inputs"`
	Parameters Parameters `json:"parameters"`
}

// Parameters bound the generated output length. DoSample is always false so
// identical inputs produce identical summaries.
type Parameters struct {
	MinLength int  `json:"min_length,omitempty"`
	MaxLength int  `json:"max_length,omitempty"`
	DoSample  bool `json:"do_sample"`
}

type generation struct {
	GeneratedText string `json:"generated_text"`
}

// Client performs HTTP requests to the Hugging Face Inference API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs an inference client. An empty API key is allowed;
// public models accept anonymous requests at reduced rate limits.
func NewClient(apiKey, baseURL string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// Generate runs one text2text-generation call for the given model.
func (c *Client) Generate(ctx context.Context, model, inputs string, params Parameters) (string, error) {
	payload, err := json.Marshal(GenerationRequest{Inputs: inputs, Parameters: params})
	if err != nil {
		return "", fmt.Errorf("encode generation request: %w", err)
	}

	endpoint := c.baseURL + "/models/" + model
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build generation request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request generation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", fmt.Errorf("generation request failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	var out []generation
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read generation response: %w", err)
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode generation response: %w", err)
	}
	if len(out) == 0 {
		return "", errors.New("generation returned no candidates")
	}
	return out[0].GeneratedText, nil
}
