package faqify

import "context"

// GenerationParams tune the completion service. Defaults favour determinism.
type GenerationParams struct {
	Temperature     float32 `yaml:"temperature"`
	TopK            int     `yaml:"topK"`
	TopP            float32 `yaml:"topP"`
	MaxOutputTokens int     `yaml:"maxOutputTokens"`
}

// DefaultGenerationParams returns low-temperature parameters with a generous
// token budget so JSON arrays are not truncated.
func DefaultGenerationParams() GenerationParams {
	return GenerationParams{
		Temperature:     0.3,
		TopK:            20,
		TopP:            0.8,
		MaxOutputTokens: 4096,
	}
}

// Completer sends a prompt to a generative text service.
type Completer interface {
	// Complete performs exactly one call to the service and returns the raw
	// completion text. It does not retry. Failures are classified as EAUTH,
	// ERATELIMIT, EQUOTA, ETIMEOUT or EUNAVAILABLE.
	Complete(ctx context.Context, prompt string, params GenerationParams) (string, error)
}
