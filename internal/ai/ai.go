// Package ai wraps the Google Gemini SDK and exposes the small interfaces
// the rest of the tool uses to talk to it.
package ai

import "context"

// TextGenerator issues a single synchronous generation call against a model.
type TextGenerator interface {
	// GenerateText sends one prompt and returns the response text along with
	// token usage. cfg may be nil, in which case the remote defaults apply.
	GenerateText(ctx context.Context, prompt string, cfg *GenerateConfig) (string, Usage, error)
}

// ModelLister reports the model variants visible to the configured credential.
type ModelLister interface {
	ListModels(ctx context.Context) ([]string, error)
}

// GenerateConfig carries optional sampling overrides for one call. Nil
// pointer fields are omitted from the request. Values are not validated
// locally; legality is up to the remote service.
type GenerateConfig struct {
	Temperature     *float32
	TopP            *float32
	TopK            *float32
	MaxOutputTokens int32
}
