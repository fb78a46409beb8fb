package handlers

import (
	"github.com/rs/zerolog"

	"companion-api/internal/domain/chat"
	"companion-api/internal/domain/settings"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Chat         *ChatHandler
	Game         *GameHandler
	Relationship *RelationshipHandler
	Settings     *SettingsHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(
	turns TurnService,
	transcript chat.Repository,
	games GameService,
	tracker RelationshipService,
	settingsStore settings.Store,
	log zerolog.Logger,
) *Provider {
	return &Provider{
		Chat:         NewChatHandler(turns, transcript, log),
		Game:         NewGameHandler(games, log),
		Relationship: NewRelationshipHandler(tracker, log),
		Settings:     NewSettingsHandler(settingsStore, log),
	}
}
