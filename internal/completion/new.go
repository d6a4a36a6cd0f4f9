package completion

import (
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/robbie-wasabi/youtext/internal/config"
	"github.com/robbie-wasabi/youtext/internal/logger"
)

// New creates the Completer selected by cfg.Provider. A missing credential
// is a startup configuration error, not a deferred runtime failure.
func New(cfg *config.Config, log logger.Logger) (Completer, error) {
	switch cfg.Provider {
	case "openai":
		if cfg.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("provider %q requires openai.api_key (or OPENAI_API_KEY)", cfg.Provider)
		}
		return &implOpenAI{
			cli:    openai.NewClient(cfg.OpenAI.APIKey),
			model:  cfg.OpenAI.Model,
			logger: log,
		}, nil
	case "gemini":
		if len(cfg.Gemini.APIKeys) == 0 {
			return nil, fmt.Errorf("provider %q requires gemini.api_keys (or GEMINI_API_KEYS)", cfg.Provider)
		}
		return &implGemini{
			apiKeys: cfg.Gemini.APIKeys,
			model:   cfg.Gemini.Model,
			logger:  log,
		}, nil
	default:
		return nil, fmt.Errorf("unknown completion provider %q", cfg.Provider)
	}
}
