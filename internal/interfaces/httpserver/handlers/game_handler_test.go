package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"companion-api/internal/domain/chat"
	"companion-api/internal/domain/game"
	"companion-api/internal/domain/turn"
	"companion-api/internal/interfaces/httpserver/handlers"
	"companion-api/internal/interfaces/httpserver/responses"
)

func setupGameRouter(handler *handlers.GameHandler) *gin.Engine {
	router := gin.New()
	router.GET("/v1/games", handler.List)
	router.GET("/v1/games/active", handler.Active)
	router.POST("/v1/games/:game_id/start", handler.Start)
	router.POST("/v1/games/exit", handler.Exit)
	return router
}

func TestGameHandler_List(t *testing.T) {
	mockGames := &MockGameService{
		CatalogFunc: func() []game.Info {
			return []game.Info{
				{ID: game.IDTwentyQuestions, Title: "20 Questions"},
				{ID: game.IDTrivia, Title: "Trivia Challenge"},
			}
		},
		ActiveIDFunc: func() (game.ID, bool) {
			return game.IDTrivia, true
		},
	}

	handler := handlers.NewGameHandler(mockGames, zerolog.Nop())
	router := setupGameRouter(handler)

	req, _ := http.NewRequest("GET", "/v1/games", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp responses.GameCatalogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Games, 2)
	assert.Equal(t, "trivia", resp.Active)
	assert.False(t, resp.Games[0].Active)
	assert.True(t, resp.Games[1].Active)
}

func TestGameHandler_Active(t *testing.T) {
	mockGames := &MockGameService{
		CatalogFunc: func() []game.Info {
			return []game.Info{{ID: game.IDRoleplay, Title: "Roleplay Adventure"}}
		},
		ActiveIDFunc: func() (game.ID, bool) {
			return game.IDRoleplay, true
		},
	}

	handler := handlers.NewGameHandler(mockGames, zerolog.Nop())
	router := setupGameRouter(handler)

	req, _ := http.NewRequest("GET", "/v1/games/active", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp responses.GamePayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "roleplay", resp.ID)
	assert.True(t, resp.Active)
}

func TestGameHandler_ActiveWhenIdle(t *testing.T) {
	handler := handlers.NewGameHandler(&MockGameService{}, zerolog.Nop())
	router := setupGameRouter(handler)

	req, _ := http.NewRequest("GET", "/v1/games/active", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp responses.GamePayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.ID)
	assert.False(t, resp.Active)
}

func TestGameHandler_Start(t *testing.T) {
	mockGames := &MockGameService{
		StartGameFunc: func(ctx context.Context, id game.ID) (turn.Result, error) {
			assert.Equal(t, game.IDTrivia, id)
			return turn.Result{
				Messages: []chat.Message{
					chat.NewMessage(chat.SenderGameSystem, "🎮 Starting Trivia Challenge... (Type '/exit' anytime to quit the game)"),
				},
			}, nil
		},
	}

	handler := handlers.NewGameHandler(mockGames, zerolog.Nop())
	router := setupGameRouter(handler)

	req, _ := http.NewRequest("POST", "/v1/games/trivia/start", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp responses.TurnResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, "game_system", resp.Messages[0].Sender)
}

func TestGameHandler_StartUnknownGame(t *testing.T) {
	mockGames := &MockGameService{
		StartGameFunc: func(ctx context.Context, id game.ID) (turn.Result, error) {
			return turn.Result{}, &game.ErrUnknownGame{GameID: id}
		},
	}

	handler := handlers.NewGameHandler(mockGames, zerolog.Nop())
	router := setupGameRouter(handler)

	req, _ := http.NewRequest("POST", "/v1/games/checkers/start", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGameHandler_Exit(t *testing.T) {
	mockGames := &MockGameService{
		ActiveIDFunc: func() (game.ID, bool) {
			return game.IDTrivia, true
		},
		ExitGameFunc: func(ctx context.Context) (turn.Result, bool, error) {
			return turn.Result{
				Messages: []chat.Message{
					chat.NewMessage(chat.SenderGameSystem, "🎮 Exiting Trivia Challenge. Thanks for playing!"),
				},
			}, true, nil
		},
	}

	handler := handlers.NewGameHandler(mockGames, zerolog.Nop())
	router := setupGameRouter(handler)

	req, _ := http.NewRequest("POST", "/v1/games/exit", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestGameHandler_ExitWithoutActiveGame(t *testing.T) {
	mockGames := &MockGameService{
		ExitGameFunc: func(ctx context.Context) (turn.Result, bool, error) {
			return turn.Result{}, false, nil
		},
	}

	handler := handlers.NewGameHandler(mockGames, zerolog.Nop())
	router := setupGameRouter(handler)

	req, _ := http.NewRequest("POST", "/v1/games/exit", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
