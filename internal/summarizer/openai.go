// Package summarizer produces video summaries through the OpenAI chat
// completions API.
package summarizer

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Summaries of long transcripts can take a while to generate.
const defaultTimeout = 2 * time.Minute

const systemPrompt = "Summarize this video in a concise and informative manner. " +
	"Focus on the main points and key takeaways. When a transcript is provided, " +
	"base the summary on it; otherwise use the metadata and comments."

// Client wraps the OpenAI API for single-shot summarization.
type Client struct {
	api   *openai.Client
	model string
}

// Option overrides Client defaults.
type Option func(*openai.ClientConfig)

// WithBaseURL points the client at an alternate API endpoint.
func WithBaseURL(u string) Option {
	return func(cfg *openai.ClientConfig) { cfg.BaseURL = strings.TrimSuffix(u, "/") }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(cfg *openai.ClientConfig) { cfg.HTTPClient = h }
}

// New builds a summarizer client. An empty model selects gpt-4-turbo.
func New(apiKey, model string, opts ...Option) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.HTTPClient = &http.Client{Timeout: defaultTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}
	if model == "" {
		model = openai.GPT4Turbo
	}
	return &Client{api: openai.NewClientWithConfig(cfg), model: model}
}

// Summarize produces a summary of the supplied video context. The content
// is the fully assembled user message; callers own the prompt layout.
func (c *Client) Summarize(ctx context.Context, content string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: content},
		},
	})
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
