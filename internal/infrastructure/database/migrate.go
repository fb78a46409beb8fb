package database

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"companion-api/internal/infrastructure/database/entities"
)

// AutoMigrate applies database schema changes for the companion domain.
func AutoMigrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&entities.Message{},
		&entities.RelationshipScore{},
		&entities.Setting{},
	); err != nil {
		return err
	}

	log.Info().Msg("database schema up to date")
	return nil
}
