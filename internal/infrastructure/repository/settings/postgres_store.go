package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "companion-api/internal/domain/settings"
	"companion-api/internal/infrastructure/database/entities"
)

// Store persists the companion settings document as a single database row.
type Store struct {
	db       *gorm.DB
	defaults domain.Settings
}

// NewStore builds a settings store. The defaults seed the first load when no
// row exists yet.
func NewStore(db *gorm.DB, defaults domain.Settings) *Store {
	return &Store{db: db, defaults: defaults}
}

// Load returns the persisted settings, or the seed defaults when nothing has
// been saved yet.
func (s *Store) Load(ctx context.Context) (domain.Settings, error) {
	var row entities.Setting
	if err := s.db.WithContext(ctx).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.defaults, nil
		}
		return domain.Settings{}, fmt.Errorf("load settings: %w", err)
	}

	var loaded domain.Settings
	if err := json.Unmarshal(row.Document, &loaded); err != nil {
		return domain.Settings{}, fmt.Errorf("decode settings document: %w", err)
	}
	return loaded, nil
}

// Save upserts the settings row.
func (s *Store) Save(ctx context.Context, cfg domain.Settings) error {
	doc, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode settings document: %w", err)
	}

	var row entities.Setting
	err = s.db.WithContext(ctx).First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row.Document = doc
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return fmt.Errorf("create settings: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("load settings: %w", err)
	default:
		if err := s.db.WithContext(ctx).
			Model(&row).
			Update("document", entities.JSONDocument(doc)).Error; err != nil {
			return fmt.Errorf("update settings: %w", err)
		}
		return nil
	}
}
