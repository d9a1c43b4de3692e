package backend

import (
	"context"
	"fmt"

	"hiredesk/internal/config"
	"hiredesk/internal/logging"
)

// NewClientFromConfig builds the configured provider client.
// Provider "genai" (the default) uses the Gemini SDK; "openai" targets any
// OpenAI-compatible endpoint, honoring a base_url override.
func NewClientFromConfig(ctx context.Context, cfg config.LLMConfig) (Client, error) {
	switch cfg.Provider {
	case "", "genai", "gemini":
		client, err := NewGenAIClient(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		logging.API("backend client: genai (model=%s)", cfg.Model)
		return client, nil
	case "openai":
		client := NewOpenAICompatClient(OpenAIConfig{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: cfg.ParsedTimeout(),
		})
		logging.API("backend client: openai-compatible (model=%s, base=%s)", cfg.Model, cfg.BaseURL)
		return client, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q (expected genai or openai)", cfg.Provider)
	}
}
