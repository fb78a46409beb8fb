package game

import (
	"context"
	"time"

	"companion-api/internal/domain/chat"
	"companion-api/internal/domain/llm"
)

// ID is a catalog key for one game.
type ID string

const (
	IDTwentyQuestions ID = "20questions"
	IDTrivia          ID = "trivia"
	IDStoryBuilding   ID = "storybuilding"
	IDWordAssociation ID = "wordassociation"
	IDWouldYouRather  ID = "wouldyourather"
	IDSongGuess       ID = "songguess"
	IDMovieGuess      ID = "movieguess"
	IDRoleplay        ID = "roleplay"
	IDLoveQuiz        ID = "lovequiz"
)

// Session is one running game instance. Its state field is owned exclusively
// by the game's processor; the generation ties deferred work to this
// particular instance.
type Session struct {
	GameID     ID
	generation uint64
	state      any
}

// Result is what one processed turn emits.
type Result struct {
	// GameID is stamped by the manager with the session that produced the
	// result. Processors leave it empty.
	GameID   ID
	Messages []chat.Message
	// ContinueToCompanion reports whether the companion should also reply
	// to this turn. Turn-exclusive games keep it false so the companion
	// never talks over a scored response.
	ContinueToCompanion bool
	// Deferred, when set, is follow-up work scheduled after the turn
	// completes. It is dropped unfired if the session is torn down first.
	Deferred *Deferred
}

// Deferred is a delayed emission tied to the session that produced it.
type Deferred struct {
	Delay time.Duration
	Fire  func(ctx context.Context) []chat.Message
}

// Processor is the per-game state machine contract.
type Processor interface {
	ID() ID
	Title() string
	// Welcome is the game's opening instruction, emitted once on start.
	Welcome() string
	Process(ctx context.Context, s *Session, input string) Result
}

// Completer generates text for the games that need provider help. It is a
// narrow view of the llm.Provider contract.
type Completer interface {
	Complete(ctx context.Context, req llm.CompletionRequest) (string, error)
}

func systemMessage(text string) chat.Message {
	return chat.NewMessage(chat.SenderGameSystem, text)
}

func systemMessages(texts ...string) []chat.Message {
	msgs := make([]chat.Message, 0, len(texts))
	for _, t := range texts {
		msgs = append(msgs, systemMessage(t))
	}
	return msgs
}

// stateOf returns the session's private state, initializing it on first use.
func stateOf[T any](s *Session, init func() *T) *T {
	if existing, ok := s.state.(*T); ok {
		return existing
	}
	fresh := init()
	s.state = fresh
	return fresh
}
