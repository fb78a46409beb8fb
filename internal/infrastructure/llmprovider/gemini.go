package llmprovider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"companion-api/internal/domain/llm"
	"companion-api/internal/infrastructure/metrics"
)

const geminiModel = "gemini-1.5-flash"

// GeminiClient implements llm.Provider against the Gemini REST API.
type GeminiClient struct {
	httpClient *resty.Client
	apiKey     string
}

// NewGeminiClient creates a Resty-backed Gemini client.
func NewGeminiClient(baseURL, apiKey string, timeout time.Duration) *GeminiClient {
	return &GeminiClient{
		httpClient: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json").
			SetTimeout(timeout),
		apiKey: apiKey,
	}
}

func (c *GeminiClient) ID() llm.ProviderID { return llm.ProviderGemini }

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Complete calls generateContent. Gemini takes a single flattened prompt, so
// the history window is rendered inline rather than as chat messages.
func (c *GeminiClient) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	start := time.Now()
	status := "ok"
	defer func() {
		metrics.RecordProviderCall(string(llm.ProviderGemini), "complete", status, time.Since(start).Seconds())
	}()

	var result geminiResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(geminiRequest{
			Contents: []geminiContent{{Parts: []geminiPart{{Text: flattenPrompt(req)}}}},
			GenerationConfig: geminiGenerationConfig{
				Temperature:     0.7,
				TopP:            0.8,
				TopK:            40,
				MaxOutputTokens: 1024,
			},
		}).
		SetResult(&result).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", geminiModel))
	if err != nil {
		status = "error"
		return "", llm.NewNetworkError(llm.ProviderGemini, err)
	}
	if resp.IsError() {
		status = "error"
		return "", llm.NewStatusError(llm.ProviderGemini, resp.StatusCode(), resp.String())
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		status = "error"
		return "", llm.NewBadResponseError(llm.ProviderGemini, "no candidates in response")
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}

// Transcribe is unsupported on this backend.
func (c *GeminiClient) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	return "", &llm.ProviderError{
		Provider: llm.ProviderGemini,
		Category: llm.CategoryBadRequest,
		Message:  "audio transcription is not supported by the gemini backend",
	}
}

// flattenPrompt renders the system prompt, history window, and latest user
// message as one text blob.
func flattenPrompt(req llm.CompletionRequest) string {
	var sb strings.Builder
	sb.WriteString(req.SystemPrompt)

	if len(req.History) > 0 {
		sb.WriteString("\n\nRecent conversation history:\n")
		for _, entry := range req.History {
			fmt.Fprintf(&sb, "%s: %s\n", entry.Role, entry.Text)
		}
	}

	fmt.Fprintf(&sb, "\nUser's latest message: %s\n\nRespond naturally as the companion, acknowledging any game activity and responding to both the user and any game developments.", req.UserMessage)
	return sb.String()
}
