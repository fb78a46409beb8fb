package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"companion-api/internal/domain/relationship"
	"companion-api/internal/infrastructure/metrics"
	"companion-api/internal/interfaces/httpserver/requests"
	"companion-api/internal/interfaces/httpserver/responses"
)

// RelationshipService is the slice of the tracker the handler needs.
type RelationshipService interface {
	Display() relationship.Display
	Reset(ctx context.Context) error
	AdminSet(ctx context.Context, value int) (int, error)
}

// RelationshipHandler exposes HTTP entrypoints for the attraction score.
type RelationshipHandler struct {
	tracker RelationshipService
	log     zerolog.Logger
}

// NewRelationshipHandler constructs the handler.
func NewRelationshipHandler(tracker RelationshipService, log zerolog.Logger) *RelationshipHandler {
	return &RelationshipHandler{
		tracker: tracker,
		log:     log.With().Str("handler", "relationship").Logger(),
	}
}

// Get handles GET /v1/relationship
func (h *RelationshipHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, responses.FromDisplay(h.tracker.Display()))
}

// Reset handles POST /v1/relationship/reset
func (h *RelationshipHandler) Reset(c *gin.Context) {
	if err := h.tracker.Reset(c.Request.Context()); err != nil {
		responses.HandleError(c, err, "failed to reset relationship score")
		return
	}

	h.log.Info().Msg("Relationship score reset")
	metrics.SetRelationshipScore(relationship.MinScore)
	c.JSON(http.StatusOK, responses.FromDisplay(h.tracker.Display()))
}

// Set handles PUT /v1/relationship
func (h *RelationshipHandler) Set(c *gin.Context) {
	var req requests.SetScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Score == nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "invalid request body",
			Message: "score is required",
		})
		return
	}

	score, err := h.tracker.AdminSet(c.Request.Context(), *req.Score)
	if err != nil {
		responses.HandleError(c, err, "failed to set relationship score")
		return
	}

	h.log.Info().Int("score", score).Msg("Relationship score overridden")
	metrics.SetRelationshipScore(score)
	c.JSON(http.StatusOK, responses.FromDisplay(h.tracker.Display()))
}
