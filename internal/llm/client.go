package llm

import (
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client wraps the OpenAI client and provides lending-demo specific methods
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a new LLM client with an API key and optional base URL override
func NewClient(apiKey, model, baseURL string) *Client {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(opts...)
	return &Client{
		client: &client,
		model:  model,
	}
}
