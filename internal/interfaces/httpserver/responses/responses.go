package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"companion-api/internal/domain/chat"
	"companion-api/internal/domain/game"
	"companion-api/internal/domain/llm"
	"companion-api/internal/domain/relationship"
	"companion-api/internal/domain/turn"
)

// ErrorResponse is the error body returned to clients.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HandleError maps domain errors onto HTTP responses.
func HandleError(reqCtx *gin.Context, err error, message string) {
	status := http.StatusInternalServerError
	detail := message

	var unknownGame *game.ErrUnknownGame
	switch {
	case errors.Is(err, turn.ErrEmptyInput):
		status = http.StatusBadRequest
		detail = "message must not be empty"
	case errors.Is(err, turn.ErrTurnInFlight):
		status = http.StatusConflict
		detail = "another turn is already being processed"
	case errors.As(err, &unknownGame):
		status = http.StatusNotFound
		detail = unknownGame.Error()
	default:
		if cfgErr, ok := llm.AsConfigurationError(err); ok {
			status = http.StatusBadRequest
			detail = cfgErr.Error()
		} else if provErr, ok := llm.AsProviderError(err); ok {
			// Reachable from the voice path, where a failed transcription
			// aborts the turn before anything lands in the transcript.
			status = http.StatusBadGateway
			detail = provErr.UserMessage()
		}
	}

	reqCtx.AbortWithStatusJSON(status, ErrorResponse{
		Error:   message,
		Message: detail,
	})
}

// MessagePayload is one transcript entry returned to clients.
type MessagePayload struct {
	ID        string  `json:"id"`
	Sender    string  `json:"sender"`
	Text      string  `json:"text"`
	AudioRef  *string `json:"audio_ref,omitempty"`
	CreatedAt int64   `json:"created_at"`
}

// FromMessage maps a domain message to its DTO.
func FromMessage(m chat.Message) MessagePayload {
	payload := MessagePayload{
		ID:        m.PublicID,
		Sender:    string(m.Sender),
		Text:      m.Text(),
		CreatedAt: m.CreatedAt.Unix(),
	}
	if voice, ok := m.Content.(chat.VoiceContent); ok && voice.AudioRef != "" {
		ref := voice.AudioRef
		payload.AudioRef = &ref
	}
	return payload
}

// FromMessages maps a message slice, always returning a non-nil slice.
func FromMessages(msgs []chat.Message) []MessagePayload {
	out := make([]MessagePayload, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, FromMessage(m))
	}
	return out
}

// RelationshipPayload is the score and tier shown to the user.
type RelationshipPayload struct {
	Score int    `json:"score"`
	Tier  string `json:"tier"`
}

// FromDisplay maps the relationship display to its DTO.
func FromDisplay(d relationship.Display) RelationshipPayload {
	return RelationshipPayload{Score: d.Score, Tier: string(d.Tier)}
}

// TurnResponse is everything one processed turn produced.
type TurnResponse struct {
	Messages     []MessagePayload    `json:"messages"`
	Relationship RelationshipPayload `json:"relationship"`
}

// FromTurnResult maps a turn result to its DTO.
func FromTurnResult(res turn.Result) TurnResponse {
	return TurnResponse{
		Messages:     FromMessages(res.Messages),
		Relationship: FromDisplay(res.Relationship),
	}
}

// HistoryResponse is one page of transcript history.
type HistoryResponse struct {
	Messages []MessagePayload `json:"messages"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// GamePayload is one catalog entry.
type GamePayload struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Active bool   `json:"active"`
}

// GameCatalogResponse lists the available games and which one is running.
type GameCatalogResponse struct {
	Games  []GamePayload `json:"games"`
	Active string        `json:"active,omitempty"`
}

// SettingsResponse mirrors the stored settings with credentials reduced to
// configured flags. Raw keys never leave the server.
type SettingsResponse struct {
	Personality string          `json:"personality"`
	Gender      string          `json:"gender"`
	Restricted  bool            `json:"restricted"`
	Provider    string          `json:"provider"`
	Credentials map[string]bool `json:"credentials"`
}
