package providers

import (
	"context"
)

// CompletionRequest is a single-turn prompt that expects a JSON object back
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
}

// CompletionProvider sends a prompt to a hosted language model and returns its raw text reply
type CompletionProvider interface {
	// Name identifies the backing model in logs and metrics
	Name() string

	// CompleteJSON returns the model's reply with any markdown fencing stripped.
	// The reply is not guaranteed to be valid JSON.
	CompleteJSON(ctx context.Context, req CompletionRequest) (string, error)
}
