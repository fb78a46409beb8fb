package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"companion-api/internal/domain/game"
	"companion-api/internal/domain/turn"
	"companion-api/internal/infrastructure/metrics"
	"companion-api/internal/infrastructure/observability"
	"companion-api/internal/interfaces/httpserver/responses"
)

// GameService is the slice of the orchestrator and manager the game
// handler needs.
type GameService interface {
	Catalog() []game.Info
	ActiveID() (game.ID, bool)
	StartGame(ctx context.Context, id game.ID) (turn.Result, error)
	ExitGame(ctx context.Context) (turn.Result, bool, error)
}

// GameHandler exposes HTTP entrypoints for the mini-game catalog.
type GameHandler struct {
	games GameService
	log   zerolog.Logger
}

// NewGameHandler constructs the handler.
func NewGameHandler(games GameService, log zerolog.Logger) *GameHandler {
	return &GameHandler{
		games: games,
		log:   log.With().Str("handler", "game").Logger(),
	}
}

// List handles GET /v1/games
func (h *GameHandler) List(c *gin.Context) {
	activeID, hasActive := h.games.ActiveID()

	catalog := h.games.Catalog()
	payload := make([]responses.GamePayload, 0, len(catalog))
	for _, info := range catalog {
		payload = append(payload, responses.GamePayload{
			ID:     string(info.ID),
			Title:  info.Title,
			Active: hasActive && info.ID == activeID,
		})
	}

	resp := responses.GameCatalogResponse{Games: payload}
	if hasActive {
		resp.Active = string(activeID)
	}
	c.JSON(http.StatusOK, resp)
}

// Active handles GET /v1/games/active
func (h *GameHandler) Active(c *gin.Context) {
	activeID, hasActive := h.games.ActiveID()
	if !hasActive {
		c.JSON(http.StatusOK, responses.GamePayload{})
		return
	}

	for _, info := range h.games.Catalog() {
		if info.ID == activeID {
			c.JSON(http.StatusOK, responses.GamePayload{
				ID:     string(info.ID),
				Title:  info.Title,
				Active: true,
			})
			return
		}
	}
	c.JSON(http.StatusOK, responses.GamePayload{ID: string(activeID), Active: true})
}

// Start handles POST /v1/games/:game_id/start
func (h *GameHandler) Start(c *gin.Context) {
	gameID := game.ID(c.Param("game_id"))

	ctx, span := observability.StartGameSpan(c.Request.Context(), "start", string(gameID))
	defer span.End()

	res, err := h.games.StartGame(ctx, gameID)
	if err != nil {
		observability.RecordError(span, err)
		responses.HandleError(c, err, "failed to start game")
		return
	}

	metrics.RecordGameEvent(string(gameID), "start")
	c.JSON(http.StatusOK, responses.FromTurnResult(res))
}

// Exit handles POST /v1/games/exit
func (h *GameHandler) Exit(c *gin.Context) {
	activeID, _ := h.games.ActiveID()

	ctx, span := observability.StartGameSpan(c.Request.Context(), "exit", string(activeID))
	defer span.End()

	res, exited, err := h.games.ExitGame(ctx)
	if err != nil {
		observability.RecordError(span, err)
		responses.HandleError(c, err, "failed to exit game")
		return
	}
	if !exited {
		c.AbortWithStatusJSON(http.StatusConflict, responses.ErrorResponse{
			Error:   "no active game",
			Message: "there is no game in progress to exit",
		})
		return
	}

	metrics.RecordGameEvent(string(activeID), "exit")
	c.JSON(http.StatusOK, responses.FromTurnResult(res))
}
