package llm

import (
	"context"
	"fmt"

	"hirebridge/internal/config"
	"hirebridge/internal/llm/providers"
)

// Factory creates oracle provider instances
type Factory struct {
	config *config.Config
}

// NewFactory creates a new provider factory instance
func NewFactory(cfg *config.Config) *Factory {
	return &Factory{
		config: cfg,
	}
}

// CreateProvider creates an oracle provider based on the configuration
func (f *Factory) CreateProvider(ctx context.Context) (Provider, error) {
	switch f.config.LLM.Provider {
	case "claude":
		return providers.NewClaudeProvider(f.config), nil
	case "gemini":
		return providers.NewGeminiProvider(ctx, f.config)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", f.config.LLM.Provider)
	}
}

// GetSupportedProviders returns a list of supported oracle providers
func (f *Factory) GetSupportedProviders() []string {
	return []string{"claude", "gemini"}
}
