package settings

import (
	"context"

	"companion-api/internal/domain/llm"
	"companion-api/internal/domain/persona"
)

// Settings is the user-tunable companion configuration: persona, content
// mode, selected provider, and per-provider credentials.
type Settings struct {
	Personality persona.Personality `json:"personality"`
	Gender      persona.Gender      `json:"gender"`
	Restricted  bool                `json:"restricted"`
	Provider    llm.ProviderID      `json:"provider"`

	GeminiAPIKey string `json:"gemini_api_key,omitempty"`
	GrokAPIKey   string `json:"grok_api_key,omitempty"`
	GroqAPIKey   string `json:"groq_api_key,omitempty"`
}

// Default is the state of a fresh install.
func Default() Settings {
	return Settings{
		Personality: persona.PersonalitySweet,
		Gender:      persona.GenderFemale,
		Restricted:  true,
		Provider:    llm.ProviderGemini,
	}
}

// CredentialFor returns the stored API key for the given provider.
func (s Settings) CredentialFor(id llm.ProviderID) string {
	switch id {
	case llm.ProviderGemini:
		return s.GeminiAPIKey
	case llm.ProviderGrok:
		return s.GrokAPIKey
	case llm.ProviderGroq:
		return s.GroqAPIKey
	default:
		return ""
	}
}

// PersonaConfig extracts the persona-facing subset.
func (s Settings) PersonaConfig() persona.Config {
	return persona.Config{
		Personality: s.Personality,
		Gender:      s.Gender,
		Restricted:  s.Restricted,
	}
}

// Store persists settings between sessions.
type Store interface {
	Load(ctx context.Context) (Settings, error)
	Save(ctx context.Context, s Settings) error
}
