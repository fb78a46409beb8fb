package llm

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCategory buckets provider failures for user-facing messaging.
type ErrorCategory string

const (
	CategoryRateLimited       ErrorCategory = "rate_limited"
	CategoryInvalidCredential ErrorCategory = "invalid_credential"
	CategoryBadRequest        ErrorCategory = "bad_request"
	CategoryUnavailable       ErrorCategory = "unavailable"
	CategoryServerError       ErrorCategory = "server_error"
	CategoryNetwork           ErrorCategory = "network"
	CategoryBadResponse       ErrorCategory = "bad_response"
)

// ConfigurationError means the turn cannot start at all, typically because
// no credential is set for the selected provider. The transcript is left
// untouched when this is returned.
type ConfigurationError struct {
	Provider ProviderID
	Reason   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("provider %s not configured: %s", e.Provider, e.Reason)
}

// ProviderError is any failure from a completion or transcription call. It
// is terminal for the current turn only and is rendered into the transcript
// as a companion-voiced message.
type ProviderError struct {
	Provider   ProviderID
	Category   ErrorCategory
	StatusCode int
	Message    string
	Cause      error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d): %s", e.Provider, e.Category, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Provider, e.Category, e.Message)
}

func (e *ProviderError) Unwrap() error { return e.Cause }

// UserMessage renders the failure as the sentence shown in the chat. Every
// category gets a distinct human-readable text; a raw status code is never
// the whole story.
func (e *ProviderError) UserMessage() string {
	const prefix = "Sorry, I encountered an error. "
	switch e.Category {
	case CategoryRateLimited:
		return prefix + "I need to slow down a bit. Please wait 10-15 seconds before trying again."
	case CategoryInvalidCredential:
		return prefix + "Please check your API key in the settings. It might be invalid or out of quota."
	case CategoryBadRequest:
		return prefix + "The request was rejected as invalid. Please try rephrasing your message."
	case CategoryUnavailable:
		return prefix + "The " + providerDisplayName(e.Provider) + " service is temporarily down. Please wait a few minutes and try again."
	case CategoryServerError:
		return prefix + "There's a temporary server issue with " + providerDisplayName(e.Provider) + ". Please try again in a moment."
	case CategoryNetwork:
		return prefix + "There seems to be a connection issue. Please check your internet and try again."
	case CategoryBadResponse:
		return prefix + "I got a response I couldn't understand. Please try again in a moment."
	default:
		return prefix + "Please try again in a moment."
	}
}

func providerDisplayName(id ProviderID) string {
	switch id {
	case ProviderGemini:
		return "Gemini"
	case ProviderGrok:
		return "Grok"
	case ProviderGroq:
		return "Groq"
	default:
		return string(id)
	}
}

// ClassifyStatus maps an HTTP status to an error category. The first
// matching bucket wins; anything unmatched is a bad response.
func ClassifyStatus(status int) ErrorCategory {
	switch {
	case status == http.StatusTooManyRequests:
		return CategoryRateLimited
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return CategoryInvalidCredential
	case status == http.StatusBadRequest:
		return CategoryBadRequest
	case status == http.StatusServiceUnavailable:
		return CategoryUnavailable
	case status >= 500:
		return CategoryServerError
	default:
		return CategoryBadResponse
	}
}

// NewStatusError builds a ProviderError from an HTTP failure status.
func NewStatusError(provider ProviderID, status int, body string) *ProviderError {
	return &ProviderError{
		Provider:   provider,
		Category:   ClassifyStatus(status),
		StatusCode: status,
		Message:    body,
	}
}

// NewNetworkError wraps a transport-level failure that never produced an
// HTTP status.
func NewNetworkError(provider ProviderID, cause error) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Category: CategoryNetwork,
		Message:  cause.Error(),
		Cause:    cause,
	}
}

// NewBadResponseError marks a successful call whose payload did not have the
// expected shape.
func NewBadResponseError(provider ProviderID, detail string) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Category: CategoryBadResponse,
		Message:  detail,
	}
}

// AsProviderError unwraps err into a ProviderError if one is in the chain.
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// AsConfigurationError unwraps err into a ConfigurationError if one is in
// the chain.
func AsConfigurationError(err error) (*ConfigurationError, bool) {
	var ce *ConfigurationError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
