package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"companion-api/internal/domain/chat"
	"companion-api/internal/domain/llm"
	"companion-api/internal/domain/relationship"
	"companion-api/internal/domain/turn"
	"companion-api/internal/interfaces/httpserver/handlers"
	"companion-api/internal/interfaces/httpserver/responses"
)

func setupChatRouter(handler *handlers.ChatHandler) *gin.Engine {
	router := gin.New()
	router.POST("/v1/chat/messages", handler.Send)
	router.GET("/v1/chat/messages", handler.History)
	router.DELETE("/v1/chat/messages", handler.Clear)
	router.POST("/v1/chat/voice", handler.SendVoice)
	return router
}

func TestChatHandler_Send(t *testing.T) {
	mockTurns := &MockTurnService{
		HandleUserTurnFunc: func(ctx context.Context, rawInput string) (turn.Result, error) {
			assert.Equal(t, "hello there", rawInput)
			return turn.Result{
				Messages: []chat.Message{
					chat.NewMessage(chat.SenderUser, "hello there"),
					chat.NewMessage(chat.SenderCompanion, "hey! I was just thinking about you"),
				},
				Relationship: relationship.Display{Score: 3, Tier: relationship.TierStranger},
			}, nil
		},
	}

	handler := handlers.NewChatHandler(mockTurns, &MockTranscript{}, zerolog.Nop())
	router := setupChatRouter(handler)

	body, _ := json.Marshal(map[string]string{"message": "hello there"})
	req, _ := http.NewRequest("POST", "/v1/chat/messages", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp responses.TurnResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Messages, 2)
	assert.Equal(t, "user", resp.Messages[0].Sender)
	assert.Equal(t, "companion", resp.Messages[1].Sender)
	assert.Equal(t, 3, resp.Relationship.Score)
	assert.Equal(t, "stranger", resp.Relationship.Tier)
}

func TestChatHandler_SendMissingMessage(t *testing.T) {
	handler := handlers.NewChatHandler(&MockTurnService{}, &MockTranscript{}, zerolog.Nop())
	router := setupChatRouter(handler)

	req, _ := http.NewRequest("POST", "/v1/chat/messages", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatHandler_SendTurnInFlight(t *testing.T) {
	mockTurns := &MockTurnService{
		HandleUserTurnFunc: func(ctx context.Context, rawInput string) (turn.Result, error) {
			return turn.Result{}, turn.ErrTurnInFlight
		},
	}

	handler := handlers.NewChatHandler(mockTurns, &MockTranscript{}, zerolog.Nop())
	router := setupChatRouter(handler)

	body, _ := json.Marshal(map[string]string{"message": "hi"})
	req, _ := http.NewRequest("POST", "/v1/chat/messages", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestChatHandler_SendUnconfiguredProvider(t *testing.T) {
	mockTurns := &MockTurnService{
		HandleUserTurnFunc: func(ctx context.Context, rawInput string) (turn.Result, error) {
			return turn.Result{}, &llm.ConfigurationError{Provider: llm.ProviderGemini, Reason: "no API key set"}
		},
	}

	handler := handlers.NewChatHandler(mockTurns, &MockTranscript{}, zerolog.Nop())
	router := setupChatRouter(handler)

	body, _ := json.Marshal(map[string]string{"message": "hi"})
	req, _ := http.NewRequest("POST", "/v1/chat/messages", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatHandler_History(t *testing.T) {
	transcript := &MockTranscript{}
	require.NoError(t, transcript.Append(context.Background(),
		chat.NewMessage(chat.SenderUser, "first"),
		chat.NewMessage(chat.SenderCompanion, "second"),
		chat.NewMessage(chat.SenderUser, "third"),
	))

	handler := handlers.NewChatHandler(&MockTurnService{}, transcript, zerolog.Nop())
	router := setupChatRouter(handler)

	req, _ := http.NewRequest("GET", "/v1/chat/messages?page=1&page_size=2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp responses.HistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Total)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 2, resp.PageSize)
	require.Len(t, resp.Messages, 2)
	assert.Equal(t, "first", resp.Messages[0].Text)
}

func TestChatHandler_Clear(t *testing.T) {
	transcript := &MockTranscript{}
	require.NoError(t, transcript.Append(context.Background(),
		chat.NewMessage(chat.SenderUser, "to be removed"),
	))

	handler := handlers.NewChatHandler(&MockTurnService{}, transcript, zerolog.Nop())
	router := setupChatRouter(handler)

	req, _ := http.NewRequest("DELETE", "/v1/chat/messages", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)

	count, err := transcript.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestChatHandler_SendVoice(t *testing.T) {
	mockTurns := &MockTurnService{
		HandleVoiceTurnFunc: func(ctx context.Context, audio []byte, filename, audioRef string) (turn.Result, error) {
			assert.Equal(t, []byte("fake-audio"), audio)
			assert.Equal(t, "note.webm", filename)
			assert.Equal(t, "rec-42", audioRef)
			return turn.Result{
				Messages: []chat.Message{
					chat.NewVoiceMessage(chat.SenderUser, "hello from voice", audioRef),
				},
			}, nil
		},
	}

	handler := handlers.NewChatHandler(mockTurns, &MockTranscript{}, zerolog.Nop())
	router := setupChatRouter(handler)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("audio", "note.webm")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-audio"))
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("audio_ref", "rec-42"))
	require.NoError(t, writer.Close())

	req, _ := http.NewRequest("POST", "/v1/chat/voice", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp responses.TurnResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Messages, 1)
	require.NotNil(t, resp.Messages[0].AudioRef)
	assert.Equal(t, "rec-42", *resp.Messages[0].AudioRef)
}

func TestChatHandler_SendVoiceTranscriptionRateLimited(t *testing.T) {
	mockTurns := &MockTurnService{
		HandleVoiceTurnFunc: func(ctx context.Context, audio []byte, filename, audioRef string) (turn.Result, error) {
			return turn.Result{}, llm.NewStatusError(llm.ProviderGroq, http.StatusTooManyRequests, "rate limit reached")
		},
	}

	handler := handlers.NewChatHandler(mockTurns, &MockTranscript{}, zerolog.Nop())
	router := setupChatRouter(handler)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("audio", "note.webm")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-audio"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, _ := http.NewRequest("POST", "/v1/chat/voice", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadGateway, w.Code)

	var resp responses.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "slow down a bit")
}

func TestChatHandler_SendVoiceMissingFile(t *testing.T) {
	handler := handlers.NewChatHandler(&MockTurnService{}, &MockTranscript{}, zerolog.Nop())
	router := setupChatRouter(handler)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.Close())

	req, _ := http.NewRequest("POST", "/v1/chat/voice", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
