package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"companion-api/internal/domain/llm"
	"companion-api/internal/domain/persona"
)

func TestDefault(t *testing.T) {
	s := Default()

	assert.Equal(t, persona.PersonalitySweet, s.Personality)
	assert.Equal(t, persona.GenderFemale, s.Gender)
	assert.True(t, s.Restricted)
	assert.Equal(t, llm.ProviderGemini, s.Provider)
}

func TestCredentialFor(t *testing.T) {
	s := Settings{
		GeminiAPIKey: "g-key",
		GrokAPIKey:   "x-key",
		GroqAPIKey:   "q-key",
	}

	assert.Equal(t, "g-key", s.CredentialFor(llm.ProviderGemini))
	assert.Equal(t, "x-key", s.CredentialFor(llm.ProviderGrok))
	assert.Equal(t, "q-key", s.CredentialFor(llm.ProviderGroq))
	assert.Empty(t, s.CredentialFor(llm.ProviderID("other")))
}

func TestPersonaConfig(t *testing.T) {
	s := Default()
	s.Personality = persona.PersonalityGoth
	s.Restricted = false

	cfg := s.PersonaConfig()
	assert.Equal(t, persona.PersonalityGoth, cfg.Personality)
	assert.Equal(t, persona.GenderFemale, cfg.Gender)
	assert.False(t, cfg.Restricted)
}
