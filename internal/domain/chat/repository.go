package chat

import "context"

// Page is one page of transcript history, newest-last.
type Page struct {
	Messages []Message
	Total    int64
}

// Repository persists the conversation transcript.
type Repository interface {
	// Append adds messages to the end of the transcript in order.
	Append(ctx context.Context, msgs ...Message) error
	// Tail returns the most recent n messages in chronological order.
	Tail(ctx context.Context, n int) ([]Message, error)
	// Last returns the final message, or ok=false on an empty transcript.
	Last(ctx context.Context) (Message, bool, error)
	// DeleteByPublicID removes a single message. Used only to retract the
	// typing placeholder.
	DeleteByPublicID(ctx context.Context, publicID string) error
	// Page returns one page of history. pageIndex is 1-based.
	Page(ctx context.Context, pageIndex, pageSize int) (Page, error)
	// Clear drops the whole transcript.
	Clear(ctx context.Context) error
	// Count returns the transcript length.
	Count(ctx context.Context) (int64, error)
}
