// internal/groq/client.go
//
// Remote completion client for the Groq chat-completions API.
// Responsibilities:
//   - Single-shot prompt completion with a bounded timeout.
//   - Absorb every failure mode (missing key, timeout, non-success status,
//     malformed envelope, empty choice list) into an empty-string return so
//     callers treat the remote as simply "unavailable".
//
// Groq speaks the OpenAI wire protocol, so the client is the go-openai SDK
// pointed at the Groq base URL. No retries happen here; if a caller wants a
// retry policy it layers its own.

package groq

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultBaseURL = "https://api.groq.com/openai/v1"
	defaultModel   = "llama3-8b-8192"

	completionTemperature = 0.3
	completionMaxTokens   = 500
	requestTimeout        = 30 * time.Second
)

// Client is a minimal completion client. Safe for concurrent use.
type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
}

// New constructs a Client for the given API key, base URL, and model.
// Empty baseURL/model fall back to the Groq defaults. An empty key yields a
// client that reports unconfigured and completes nothing.
func New(apiKey, baseURL, model string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL

	c := &Client{model: model, timeout: requestTimeout}
	if apiKey != "" {
		c.api = openai.NewClientWithConfig(cfg)
	}
	return c
}

// NewFromEnv constructs a Client from GROQ_API_KEY, GROQ_API_URL, and
// GROQ_MODEL. A missing key is logged once here; the client still works as
// a permanent "unavailable" remote so the fallback path carries the service.
func NewFromEnv() *Client {
	key := os.Getenv("GROQ_API_KEY")
	if key == "" {
		log.Warn().Msg("GROQ_API_KEY not set; all games will use deterministic fallback")
	}
	return New(key, os.Getenv("GROQ_API_URL"), os.Getenv("GROQ_MODEL"))
}

// Configured reports whether an API key was supplied.
func (c *Client) Configured() bool { return c.api != nil }

// Complete sends prompt as a single user message and returns the model's
// trimmed reply, or "" on any failure. Never blocks past the client timeout.
func (c *Client) Complete(ctx context.Context, prompt string) string {
	if c.api == nil {
		return ""
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: completionTemperature,
		MaxTokens:   completionMaxTokens,
		TopP:        1.0,
	})
	if err != nil {
		log.Warn().Err(err).Str("model", c.model).Msg("groq completion failed")
		return ""
	}
	if len(resp.Choices) == 0 {
		log.Warn().Str("model", c.model).Msg("groq completion returned no choices")
		return ""
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}
