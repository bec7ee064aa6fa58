package gemini

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genai"

	"github.com/zatekoja/costnavigator/internal/domain/providers"
	"github.com/zatekoja/costnavigator/pkg/config"
	apperrors "github.com/zatekoja/costnavigator/pkg/errors"
	"github.com/zatekoja/costnavigator/pkg/utils"
)

// Ensure Client implements providers.CompletionProvider at compile time.
var _ providers.CompletionProvider = (*Client)(nil)

// generator is the slice of the genai Models service this client needs
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client implements CompletionProvider using Google Gemini in JSON mode.
type Client struct {
	models generator
	model  string
}

// NewClient creates a Gemini client for the Gemini Developer API.
func NewClient(ctx context.Context, cfg *config.GeminiConfig) (*Client, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &Client{models: gc.Models, model: model}, nil
}

// Name identifies the model in logs and metrics
func (c *Client) Name() string {
	return "gemini:" + c.model
}

// CompleteJSON sends the prompt with a JSON response MIME type and returns the reply text.
// Latency is recorded by the caller.
func (c *Client) CompleteJSON(ctx context.Context, req providers.CompletionRequest) (string, error) {
	result, err := c.models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Role:  "user",
			Parts: []*genai.Part{{Text: req.UserPrompt}},
		}},
		buildConfig(req.SystemPrompt),
	)
	if err != nil {
		return "", apperrors.NewExternalError("gemini request failed", err)
	}
	if result == nil {
		return "", apperrors.NewExternalError("gemini returned nil result", nil)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", apperrors.NewExternalError("gemini response empty", nil)
	}

	return utils.StripCodeFence(text), nil
}

func buildConfig(system string) *genai.GenerateContentConfig {
	temp := float32(0)
	cfg := &genai.GenerateContentConfig{
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
	if system != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}
	return cfg
}
