package relationship

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"companion-api/internal/infrastructure/database/entities"
)

// Store persists the relationship score as a single database row.
type Store struct {
	db *gorm.DB
}

// NewStore builds a relationship score store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Load returns the persisted score, defaulting to zero when no row exists.
func (s *Store) Load(ctx context.Context) (int, error) {
	var row entities.RelationshipScore
	if err := s.db.WithContext(ctx).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("load relationship score: %w", err)
	}
	return row.Score, nil
}

// Save upserts the score row.
func (s *Store) Save(ctx context.Context, score int) error {
	var row entities.RelationshipScore
	err := s.db.WithContext(ctx).First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row.Score = score
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return fmt.Errorf("create relationship score: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("load relationship score: %w", err)
	default:
		if err := s.db.WithContext(ctx).
			Model(&row).
			Update("score", score).Error; err != nil {
			return fmt.Errorf("update relationship score: %w", err)
		}
		return nil
	}
}
