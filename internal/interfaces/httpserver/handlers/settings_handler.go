package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"companion-api/internal/domain/llm"
	"companion-api/internal/domain/persona"
	"companion-api/internal/domain/settings"
	"companion-api/internal/interfaces/httpserver/requests"
	"companion-api/internal/interfaces/httpserver/responses"
)

// SettingsHandler exposes HTTP entrypoints for the companion configuration.
type SettingsHandler struct {
	store settings.Store
	log   zerolog.Logger
}

// NewSettingsHandler constructs the handler.
func NewSettingsHandler(store settings.Store, log zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{
		store: store,
		log:   log.With().Str("handler", "settings").Logger(),
	}
}

// Get handles GET /v1/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	current, err := h.store.Load(c.Request.Context())
	if err != nil {
		responses.HandleError(c, err, "failed to load settings")
		return
	}
	c.JSON(http.StatusOK, toSettingsResponse(current))
}

// Update handles PUT /v1/settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req requests.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "invalid request body",
			Message: "settings update must be a JSON object",
		})
		return
	}

	current, err := h.store.Load(c.Request.Context())
	if err != nil {
		responses.HandleError(c, err, "failed to load settings")
		return
	}

	if req.Personality != nil {
		p := persona.Personality(*req.Personality)
		if !validPersonality(p) {
			h.badField(c, "personality", *req.Personality)
			return
		}
		current.Personality = p
	}
	if req.Gender != nil {
		g := persona.Gender(*req.Gender)
		if g != persona.GenderFemale && g != persona.GenderMale {
			h.badField(c, "gender", *req.Gender)
			return
		}
		current.Gender = g
	}
	if req.Restricted != nil {
		current.Restricted = *req.Restricted
	}
	if req.Provider != nil {
		id := llm.ProviderID(*req.Provider)
		if !id.Valid() {
			h.badField(c, "provider", *req.Provider)
			return
		}
		current.Provider = id
	}
	if req.GeminiAPIKey != nil {
		current.GeminiAPIKey = *req.GeminiAPIKey
	}
	if req.GrokAPIKey != nil {
		current.GrokAPIKey = *req.GrokAPIKey
	}
	if req.GroqAPIKey != nil {
		current.GroqAPIKey = *req.GroqAPIKey
	}

	if err := h.store.Save(c.Request.Context(), current); err != nil {
		responses.HandleError(c, err, "failed to save settings")
		return
	}

	h.log.Info().
		Str("personality", string(current.Personality)).
		Str("provider", string(current.Provider)).
		Bool("restricted", current.Restricted).
		Msg("Settings updated")
	c.JSON(http.StatusOK, toSettingsResponse(current))
}

func (h *SettingsHandler) badField(c *gin.Context, field, value string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
		Error:   "invalid " + field,
		Message: value + " is not a valid " + field,
	})
}

func validPersonality(p persona.Personality) bool {
	for _, known := range persona.Personalities() {
		if p == known {
			return true
		}
	}
	return false
}

func toSettingsResponse(s settings.Settings) responses.SettingsResponse {
	creds := make(map[string]bool, len(llm.KnownProviders()))
	for _, id := range llm.KnownProviders() {
		creds[string(id)] = s.CredentialFor(id) != ""
	}

	return responses.SettingsResponse{
		Personality: string(s.Personality),
		Gender:      string(s.Gender),
		Restricted:  s.Restricted,
		Provider:    string(s.Provider),
		Credentials: creds,
	}
}
