package requests

// SendMessageRequest is the body of a text turn submission.
type SendMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// SetScoreRequest is the admin override for the relationship score.
type SetScoreRequest struct {
	Score *int `json:"score" binding:"required"`
}

// UpdateSettingsRequest carries a partial settings update. Nil fields keep
// their stored value. Sending an empty credential string clears the stored
// key for that provider.
type UpdateSettingsRequest struct {
	Personality *string `json:"personality"`
	Gender      *string `json:"gender"`
	Restricted  *bool   `json:"restricted"`
	Provider    *string `json:"provider"`

	GeminiAPIKey *string `json:"gemini_api_key"`
	GrokAPIKey   *string `json:"grok_api_key"`
	GroqAPIKey   *string `json:"groq_api_key"`
}
