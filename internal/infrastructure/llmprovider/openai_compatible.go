package llmprovider

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/sashabaranov/go-openai"

	"companion-api/internal/domain/llm"
	"companion-api/internal/infrastructure/metrics"
)

const (
	grokModel        = "grok-beta"
	groqModel        = "llama-3.1-8b-instant"
	groqWhisperModel = "whisper-large-v3"
)

// OpenAICompatClient implements llm.Provider against an OpenAI-compatible
// chat completions API. Grok and Groq both speak this dialect.
type OpenAICompatClient struct {
	id           llm.ProviderID
	client       *openai.Client
	model        string
	whisperModel string
}

// NewGrokClient builds a client for the x.ai API.
func NewGrokClient(baseURL, apiKey string) *OpenAICompatClient {
	return newOpenAICompat(llm.ProviderGrok, baseURL, apiKey, grokModel, "")
}

// NewGroqClient builds a client for the Groq API. Groq also hosts the
// whisper model used for voice transcription.
func NewGroqClient(baseURL, apiKey string) *OpenAICompatClient {
	return newOpenAICompat(llm.ProviderGroq, baseURL, apiKey, groqModel, groqWhisperModel)
}

func newOpenAICompat(id llm.ProviderID, baseURL, apiKey, model, whisperModel string) *OpenAICompatClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &OpenAICompatClient{
		id:           id,
		client:       openai.NewClientWithConfig(cfg),
		model:        model,
		whisperModel: whisperModel,
	}
}

func (c *OpenAICompatClient) ID() llm.ProviderID { return c.id }

// Complete sends the prompt and history window as a chat messages array.
func (c *OpenAICompatClient) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	start := time.Now()
	status := "ok"
	defer func() {
		metrics.RecordProviderCall(string(c.id), "complete", status, time.Since(start).Seconds())
	}()

	messages := make([]openai.ChatCompletionMessage, 0, len(req.History)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: req.SystemPrompt,
	})
	for _, entry := range req.History {
		messages = append(messages, historyToChatMessage(entry))
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.UserMessage,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   1024,
	})
	if err != nil {
		status = "error"
		return "", c.wrapError(err)
	}
	if len(resp.Choices) == 0 {
		status = "error"
		return "", llm.NewBadResponseError(c.id, "no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}

// Transcribe runs the recording through whisper when the backend hosts one.
func (c *OpenAICompatClient) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	if c.whisperModel == "" {
		return "", &llm.ProviderError{
			Provider: c.id,
			Category: llm.CategoryBadRequest,
			Message:  "audio transcription is not supported by this backend",
		}
	}

	start := time.Now()
	status := "ok"
	defer func() {
		metrics.RecordProviderCall(string(c.id), "transcribe", status, time.Since(start).Seconds())
	}()

	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.whisperModel,
		FilePath: filename,
		Reader:   bytes.NewReader(audio),
	})
	if err != nil {
		status = "error"
		return "", c.wrapError(err)
	}
	return resp.Text, nil
}

// historyToChatMessage maps the role-tagged transcript window onto chat
// roles. Game-system lines travel as bracketed user content so the model
// sees them without impersonating them.
func historyToChatMessage(entry llm.HistoryEntry) openai.ChatCompletionMessage {
	switch entry.Role {
	case "You":
		return openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: entry.Text}
	case "User":
		return openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: entry.Text}
	default:
		return openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: "[Game System]: " + entry.Text,
		}
	}
}

func (c *OpenAICompatClient) wrapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return llm.NewStatusError(c.id, apiErr.HTTPStatusCode, apiErr.Message)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return llm.NewStatusError(c.id, reqErr.HTTPStatusCode, reqErr.Error())
	}
	return llm.NewNetworkError(c.id, err)
}
