package handlers

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"companion-api/internal/domain/chat"
	"companion-api/internal/domain/turn"
	"companion-api/internal/infrastructure/metrics"
	"companion-api/internal/infrastructure/observability"
	"companion-api/internal/interfaces/httpserver/requests"
	"companion-api/internal/interfaces/httpserver/responses"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
	maxAudioBytes   = 20 << 20
)

// TurnService is the slice of the orchestrator the chat handler needs.
type TurnService interface {
	HandleUserTurn(ctx context.Context, rawInput string) (turn.Result, error)
	HandleVoiceTurn(ctx context.Context, audio []byte, filename, audioRef string) (turn.Result, error)
}

// ChatHandler exposes HTTP entrypoints for the conversation transcript.
type ChatHandler struct {
	turns      TurnService
	transcript chat.Repository
	log        zerolog.Logger
}

// NewChatHandler constructs the handler.
func NewChatHandler(turns TurnService, transcript chat.Repository, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		turns:      turns,
		transcript: transcript,
		log:        log.With().Str("handler", "chat").Logger(),
	}
}

// Send handles POST /v1/chat/messages
func (h *ChatHandler) Send(c *gin.Context) {
	var req requests.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "invalid request body",
			Message: "message is required",
		})
		return
	}

	ctx, span := observability.StartTurnSpan(c.Request.Context(), "text")
	defer span.End()

	res, err := h.turns.HandleUserTurn(ctx, req.Message)
	if err != nil {
		observability.RecordError(span, err)
		metrics.RecordTurn("text", "error")
		responses.HandleError(c, err, "failed to process message")
		return
	}

	metrics.RecordTurn("text", "ok")
	metrics.SetRelationshipScore(res.Relationship.Score)
	c.JSON(http.StatusOK, responses.FromTurnResult(res))
}

// SendVoice handles POST /v1/chat/voice
func (h *ChatHandler) SendVoice(c *gin.Context) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "invalid request body",
			Message: "an audio file part named \"audio\" is required",
		})
		return
	}
	if fileHeader.Size > maxAudioBytes {
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, responses.ErrorResponse{
			Error:   "audio file too large",
			Message: "recordings are limited to 20MB",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		responses.HandleError(c, err, "failed to read audio upload")
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		responses.HandleError(c, err, "failed to read audio upload")
		return
	}

	audioRef := c.PostForm("audio_ref")
	if audioRef == "" {
		audioRef = uuid.NewString()
	}

	ctx, span := observability.StartTurnSpan(c.Request.Context(), "voice")
	defer span.End()

	res, err := h.turns.HandleVoiceTurn(ctx, audio, fileHeader.Filename, audioRef)
	if err != nil {
		observability.RecordError(span, err)
		metrics.RecordTurn("voice", "error")
		responses.HandleError(c, err, "failed to process voice message")
		return
	}

	metrics.RecordTurn("voice", "ok")
	metrics.SetRelationshipScore(res.Relationship.Score)
	c.JSON(http.StatusOK, responses.FromTurnResult(res))
}

// History handles GET /v1/chat/messages
func (h *ChatHandler) History(c *gin.Context) {
	page := parsePositiveInt(c.Query("page"), 1)
	pageSize := parsePositiveInt(c.Query("page_size"), defaultPageSize)
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	result, err := h.transcript.Page(c.Request.Context(), page, pageSize)
	if err != nil {
		responses.HandleError(c, err, "failed to load history")
		return
	}

	c.JSON(http.StatusOK, responses.HistoryResponse{
		Messages: responses.FromMessages(result.Messages),
		Total:    result.Total,
		Page:     page,
		PageSize: pageSize,
	})
}

// Clear handles DELETE /v1/chat/messages
func (h *ChatHandler) Clear(c *gin.Context) {
	if err := h.transcript.Clear(c.Request.Context()); err != nil {
		responses.HandleError(c, err, "failed to clear history")
		return
	}
	h.log.Info().Msg("Transcript cleared")
	c.Status(http.StatusNoContent)
}

func parsePositiveInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
