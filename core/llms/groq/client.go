package groq

import (
	"context"

	"github.com/vettlabs/vett-core/core/llms"
)

const defaultModel = "openai/gpt-oss-120b"

// Client binds an API key and model so callers can satisfy prompt interfaces
// without threading credentials through every call.
type Client struct {
	apiKey string
	model  string
}

type ClientOption func(*Client)

// WithModel overrides the default model.
func WithModel(model string) ClientOption {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

func NewClient(apiKey string, opts ...ClientOption) *Client {
	client := &Client{
		apiKey: apiKey,
		model:  defaultModel,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Prompt sends a plain chat completion request.
func (c *Client) Prompt(ctx context.Context, prompt string, opts ...llms.PromptOption) (*llms.Message, error) {
	return Prompt(ctx, c.apiKey, c.model, prompt, "", opts...)
}

// PromptWithStructure sends a chat completion request constrained to the
// JSON schema reflected from outputSchema, unmarshalling the answer into it.
// outputSchema must be a pointer.
func (c *Client) PromptWithStructure(ctx context.Context, prompt string, outputSchema any, opts ...llms.PromptOption) error {
	_, err := PromptJSONSchema(ctx, c.apiKey, c.model, prompt, "", outputSchema, opts...)
	return err
}
