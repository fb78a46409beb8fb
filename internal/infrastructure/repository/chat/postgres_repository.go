package chat

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "companion-api/internal/domain/chat"
	"companion-api/internal/infrastructure/database/entities"
)

// Repository persists the transcript in PostgreSQL.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a transcript repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Append inserts messages at the transcript tail.
func (r *Repository) Append(ctx context.Context, msgs ...domain.Message) error {
	if len(msgs) == 0 {
		return nil
	}
	rows := make([]*entities.Message, 0, len(msgs))
	for _, msg := range msgs {
		rows = append(rows, entities.NewSchemaMessage(msg))
	}
	if err := r.db.WithContext(ctx).Create(rows).Error; err != nil {
		return fmt.Errorf("append messages: %w", err)
	}
	return nil
}

// Tail returns the last n messages in chronological order.
func (r *Repository) Tail(ctx context.Context, n int) ([]domain.Message, error) {
	if n <= 0 {
		return nil, nil
	}
	var rows []entities.Message
	if err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(n).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load transcript tail: %w", err)
	}

	msgs := make([]domain.Message, len(rows))
	for i, row := range rows {
		msgs[len(rows)-1-i] = row.EtoD()
	}
	return msgs, nil
}

// Last returns the newest message. The second return is false on an empty
// transcript.
func (r *Repository) Last(ctx context.Context) (domain.Message, bool, error) {
	var row entities.Message
	if err := r.db.WithContext(ctx).
		Order("id DESC").
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Message{}, false, nil
		}
		return domain.Message{}, false, fmt.Errorf("load last message: %w", err)
	}
	return row.EtoD(), true, nil
}

// DeleteByPublicID removes one message.
func (r *Repository) DeleteByPublicID(ctx context.Context, publicID string) error {
	if err := r.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		Delete(&entities.Message{}).Error; err != nil {
		return fmt.Errorf("delete message %s: %w", publicID, err)
	}
	return nil
}

// Page returns one page of the transcript, oldest first. Page indexes are
// 1-based.
func (r *Repository) Page(ctx context.Context, pageIndex, pageSize int) (domain.Page, error) {
	if pageIndex < 1 {
		pageIndex = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&entities.Message{}).Count(&total).Error; err != nil {
		return domain.Page{}, fmt.Errorf("count messages: %w", err)
	}

	var rows []entities.Message
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset((pageIndex - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error; err != nil {
		return domain.Page{}, fmt.Errorf("load transcript page: %w", err)
	}

	msgs := make([]domain.Message, len(rows))
	for i, row := range rows {
		msgs[i] = row.EtoD()
	}
	return domain.Page{Messages: msgs, Total: total}, nil
}

// Clear wipes the transcript.
func (r *Repository) Clear(ctx context.Context) error {
	if err := r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&entities.Message{}).Error; err != nil {
		return fmt.Errorf("clear transcript: %w", err)
	}
	return nil
}

// Count returns the transcript length.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entities.Message{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count messages: %w", err)
	}
	return total, nil
}
