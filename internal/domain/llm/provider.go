package llm

import "context"

// ProviderID identifies a configured completion backend.
type ProviderID string

const (
	ProviderGemini ProviderID = "gemini"
	ProviderGrok   ProviderID = "grok"
	ProviderGroq   ProviderID = "groq"
)

// KnownProviders lists every backend the service can route to.
func KnownProviders() []ProviderID {
	return []ProviderID{ProviderGemini, ProviderGrok, ProviderGroq}
}

// Valid reports whether the id names a known backend.
func (p ProviderID) Valid() bool {
	switch p {
	case ProviderGemini, ProviderGrok, ProviderGroq:
		return true
	}
	return false
}

// HistoryEntry is one role-tagged line of transcript context sent alongside
// the prompt.
type HistoryEntry struct {
	Role string
	Text string
}

// CompletionRequest carries everything a provider needs for one reply.
type CompletionRequest struct {
	SystemPrompt string
	History      []HistoryEntry
	UserMessage  string
}

// Provider produces companion replies and transcribes voice notes. Backends
// that cannot transcribe return a ProviderError with CategoryBadRequest.
type Provider interface {
	ID() ProviderID
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}
