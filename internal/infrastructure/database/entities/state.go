package entities

import (
	"database/sql/driver"
	"errors"
	"time"
)

// RelationshipScore is a single-row table holding the attraction score.
type RelationshipScore struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Score int `gorm:"not null;default:0"`
}

// TableName specifies the table name for RelationshipScore.
func (RelationshipScore) TableName() string {
	return "relationship_scores"
}

// Setting is a single-row table holding the companion settings document.
type Setting struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Document JSONDocument `gorm:"type:jsonb"`
}

// TableName specifies the table name for Setting.
func (Setting) TableName() string {
	return "settings"
}

// JSONDocument stores an opaque JSON payload.
type JSONDocument []byte

func (d JSONDocument) Value() (driver.Value, error) {
	if len(d) == 0 {
		return nil, nil
	}
	return []byte(d), nil
}

func (d *JSONDocument) Scan(value any) error {
	if value == nil {
		*d = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*d = append(JSONDocument(nil), v...)
	case string:
		*d = JSONDocument(v)
	default:
		return errors.New("unsupported JSON document source")
	}
	return nil
}
