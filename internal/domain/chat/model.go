package chat

import (
	"time"

	"github.com/google/uuid"
)

// Sender identifies who authored a transcript message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderCompanion Sender = "companion"
	// SenderGameSystem marks messages emitted by a mini-game's own logic.
	SenderGameSystem Sender = "game_system"
	// SenderCompanionInGame marks companion-styled messages produced inside a
	// game turn. They contribute to the relationship score at a reduced rate.
	SenderCompanionInGame Sender = "companion_in_game"
)

// TypingPlaceholderText is the exact body of the transient placeholder that
// sits at the tail of the transcript while a provider call is in flight.
const TypingPlaceholderText = "Typing..."

// Content is the payload of a message. Voice-originated user turns carry an
// audio reference alongside the transcribed text; everything else is plain.
type Content interface {
	Text() string
	isContent()
}

// PlainContent is ordinary text.
type PlainContent struct {
	Body string
}

func (c PlainContent) Text() string { return c.Body }
func (PlainContent) isContent()     {}

// VoiceContent is a transcribed voice recording. AudioRef is an opaque handle
// the UI can use to replay the original audio.
type VoiceContent struct {
	Body     string
	AudioRef string
}

func (c VoiceContent) Text() string { return c.Body }
func (VoiceContent) isContent()     {}

// Message is one transcript entry. The transcript is append-only; the only
// permitted retraction is removal of the typing placeholder immediately
// before the real reply is appended.
type Message struct {
	PublicID  string
	Sender    Sender
	Content   Content
	CreatedAt time.Time
}

// NewMessage creates a plain-text message.
func NewMessage(sender Sender, text string) Message {
	return Message{
		PublicID:  uuid.NewString(),
		Sender:    sender,
		Content:   PlainContent{Body: text},
		CreatedAt: time.Now(),
	}
}

// NewVoiceMessage creates a voice-originated user message.
func NewVoiceMessage(sender Sender, transcript, audioRef string) Message {
	return Message{
		PublicID:  uuid.NewString(),
		Sender:    sender,
		Content:   VoiceContent{Body: transcript, AudioRef: audioRef},
		CreatedAt: time.Now(),
	}
}

// Text is shorthand for the message body.
func (m Message) Text() string { return m.Content.Text() }

// IsTypingPlaceholder reports whether this message is the transient
// placeholder appended while awaiting a provider reply.
func (m Message) IsTypingPlaceholder() bool {
	return m.Sender == SenderCompanion && m.Text() == TypingPlaceholderText
}
