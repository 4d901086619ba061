package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/shared"
)

// keyPrefix is the shape every OpenAI API key shares, project-scoped
// sk-proj- keys included.
const keyPrefix = "sk-"

// Result is the outcome of a bootstrap attempt. Enabled is true exactly when
// Client is non-nil. Reason explains a disabled result for status reporting.
type Result struct {
	Client  *Client
	Enabled bool
	Reason  string
}

// ProbeFunc verifies that a freshly constructed client can reach the API.
type ProbeFunc func(ctx context.Context, c *Client) error

// Bootstrap attempts to construct and verify an OpenAI client from the
// configured credential. A missing or malformed key and a failing probe all
// degrade to a disabled result; no error ever escapes.
func Bootstrap(ctx context.Context, apiKey, model, baseURL string) Result {
	return bootstrap(ctx, apiKey, model, baseURL, probeCompletion)
}

func bootstrap(ctx context.Context, apiKey, model, baseURL string, probe ProbeFunc) Result {
	if apiKey == "" {
		reason := "no OPENAI_API_KEY found in environment variables"
		slog.Info("AI features disabled", "reason", reason)
		return Result{Reason: reason}
	}

	if !strings.HasPrefix(apiKey, keyPrefix) {
		reason := fmt.Sprintf("invalid API key format, key should start with %q", keyPrefix)
		slog.Info("AI features disabled", "reason", reason)
		return Result{Reason: reason}
	}

	client := NewClient(apiKey, model, baseURL)

	if err := probe(ctx, client); err != nil {
		reason := fmt.Sprintf("OpenAI initialization failed: %v", err)
		slog.Warn("AI features disabled", "reason", reason)
		return Result{Reason: reason}
	}

	slog.Info("OpenAI client initialized and tested successfully", "model", model)
	return Result{Client: client, Enabled: true}
}

// probeCompletion issues a minimal one-token completion to surface
// authentication and connectivity problems at startup.
func probeCompletion(ctx context.Context, c *Client) error {
	_, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage("test"),
		},
		MaxTokens: param.Opt[int64]{Value: 1},
	})
	return err
}
