package llmprovider

import (
	"context"

	"companion-api/internal/config"
	"companion-api/internal/domain/llm"
	"companion-api/internal/domain/settings"
)

// Factory builds a provider client from the stored settings. Clients are
// cheap to construct, so a fresh one per turn keeps credential changes
// effective immediately.
type Factory struct {
	cfg *config.Config
}

func NewFactory(cfg *config.Config) *Factory {
	return &Factory{cfg: cfg}
}

// Provider returns a client for the selected provider, or a
// ConfigurationError when no credential is stored for it.
func (f *Factory) Provider(s settings.Settings) (llm.Provider, error) {
	id := s.Provider
	if !id.Valid() {
		id = llm.ProviderGemini
	}

	key := s.CredentialFor(id)
	if key == "" {
		return nil, &llm.ConfigurationError{Provider: id, Reason: "no API key set"}
	}

	switch id {
	case llm.ProviderGrok:
		return NewGrokClient(f.cfg.GrokBaseURL, key), nil
	case llm.ProviderGroq:
		return NewGroqClient(f.cfg.GroqBaseURL, key), nil
	default:
		return NewGeminiClient(f.cfg.GeminiBaseURL, key, f.cfg.ProviderTimeout), nil
	}
}

// SettingsCompleter adapts the factory into the narrow completion contract
// the games use. It resolves the provider from stored settings on every
// call so game questions follow provider switches mid-session.
type SettingsCompleter struct {
	factory *Factory
	store   settings.Store
}

func NewSettingsCompleter(factory *Factory, store settings.Store) *SettingsCompleter {
	return &SettingsCompleter{factory: factory, store: store}
}

func (c *SettingsCompleter) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	s, err := c.store.Load(ctx)
	if err != nil {
		return "", err
	}
	provider, err := c.factory.Provider(s)
	if err != nil {
		return "", err
	}
	return provider.Complete(ctx, req)
}
