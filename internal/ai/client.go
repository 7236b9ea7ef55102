package ai

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

// Client wraps the official Gemini SDK client, bound to a single model selector.
type Client struct {
	apiKey string
	model  string
	sdk    *genai.Client
}

// New constructs a new Gemini client. Both apiKey and model are required.
// No timeout is configured here; the SDK default applies to every call.
func New(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY is required")
	}
	if model == "" {
		return nil, errors.New("model selector is required")
	}
	sdk, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &Client{apiKey: apiKey, model: model, sdk: sdk}, nil
}

func (c *Client) APIKey() string { return c.apiKey }
func (c *Client) Model() string  { return c.model }

// GenerateText issues one blocking GenerateContent call and returns the
// concatenated response text.
func (c *Client) GenerateText(ctx context.Context, prompt string, cfg *GenerateConfig) (string, Usage, error) {
	resp, err := c.sdk.Models.GenerateContent(ctx, c.model, genai.Text(prompt), convertConfig(cfg))
	if err != nil {
		return "", Usage{}, err
	}
	return resp.Text(), usageFromResponse(resp), nil
}

// ListModels returns the names of the models visible to the credential.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	var names []string
	for m, err := range c.sdk.Models.All(ctx) {
		if err != nil {
			return nil, err
		}
		names = append(names, m.Name)
	}
	return names, nil
}

// convertConfig maps sampling overrides onto the SDK request config.
func convertConfig(cfg *GenerateConfig) *genai.GenerateContentConfig {
	if cfg == nil {
		return nil
	}
	out := &genai.GenerateContentConfig{}
	if cfg.Temperature != nil {
		out.Temperature = genai.Ptr(*cfg.Temperature)
	}
	if cfg.TopP != nil {
		out.TopP = genai.Ptr(*cfg.TopP)
	}
	if cfg.TopK != nil {
		out.TopK = genai.Ptr(*cfg.TopK)
	}
	if cfg.MaxOutputTokens > 0 {
		out.MaxOutputTokens = cfg.MaxOutputTokens
	}
	return out
}
