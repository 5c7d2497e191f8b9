package llm

import (
	"context"
	"fmt"

	"github.com/sandevgo/veractbot/internal/config"
	"github.com/sandevgo/veractbot/internal/core"
	"github.com/sandevgo/veractbot/pkg/log"
)

// NewProvider creates the configured LLM client.
func NewProvider(ctx context.Context, cfg *config.LLMConfig) (core.LLM, error) {
	log.FromCtx(ctx).Info().
		Str("provider", cfg.Provider).
		Str("model", cfg.Model).
		Msg("starting llm provider")

	switch cfg.Provider {
	case "groq":
		return NewGroq(cfg.GroqAPIKey, cfg.Model), nil
	case "ollama":
		return NewOllama(cfg.OllamaBaseURL, cfg.OllamaAPIKey, cfg.Model), nil
	case "custom":
		return NewOpenAICompatible(OpenAICompatibleConfig{
			BaseURL:    cfg.CustomBaseURL,
			APIKey:     cfg.CustomAPIKey,
			Model:      cfg.Model,
			AuthHeader: "Authorization",
			AuthPrefix: "Bearer ",
		}), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}
