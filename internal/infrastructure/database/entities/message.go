package entities

import (
	"time"

	"companion-api/internal/domain/chat"
)

// Message represents the database schema for transcript entries
type Message struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	PublicID string      `gorm:"type:varchar(50);uniqueIndex;not null"`
	Sender   chat.Sender `gorm:"type:varchar(30);index;not null"`
	Body     string      `gorm:"type:text;not null"`
	AudioRef *string     `gorm:"type:varchar(256)"`
	SentAt   time.Time   `gorm:"index;not null"`
}

// TableName specifies the table name for Message.
func (Message) TableName() string {
	return "messages"
}

// EtoD converts database entity to domain model
func (m *Message) EtoD() chat.Message {
	var content chat.Content
	if m.AudioRef != nil {
		content = chat.VoiceContent{Body: m.Body, AudioRef: *m.AudioRef}
	} else {
		content = chat.PlainContent{Body: m.Body}
	}
	return chat.Message{
		PublicID:  m.PublicID,
		Sender:    m.Sender,
		Content:   content,
		CreatedAt: m.SentAt,
	}
}

// NewSchemaMessage creates a database entity from domain model
func NewSchemaMessage(msg chat.Message) *Message {
	entity := &Message{
		PublicID: msg.PublicID,
		Sender:   msg.Sender,
		Body:     msg.Text(),
		SentAt:   msg.CreatedAt,
	}
	if voice, ok := msg.Content.(chat.VoiceContent); ok && voice.AudioRef != "" {
		ref := voice.AudioRef
		entity.AudioRef = &ref
	}
	return entity
}
