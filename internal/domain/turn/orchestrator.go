package turn

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"companion-api/internal/domain/chat"
	"companion-api/internal/domain/game"
	"companion-api/internal/domain/llm"
	"companion-api/internal/domain/persona"
	"companion-api/internal/domain/relationship"
	"companion-api/internal/domain/settings"
)

// ExitCommand tears down the active game when sent as a whole message.
const ExitCommand = "/exit"

// DefaultHistoryWindow is how many trailing transcript messages are sent as
// context with each completion call.
const DefaultHistoryWindow = 8

var (
	// ErrEmptyInput rejects a blank submission before anything happens.
	ErrEmptyInput = errors.New("empty input")
	// ErrTurnInFlight rejects a second submission while one is being
	// processed. Only one turn may be in flight at a time.
	ErrTurnInFlight = errors.New("another turn is already in flight")
)

// ProviderFactory builds a completion client for the currently selected
// provider. It returns llm.ConfigurationError when no usable credential is
// stored for that provider.
type ProviderFactory interface {
	Provider(s settings.Settings) (llm.Provider, error)
}

// Result is everything one processed turn appended, plus the relationship
// display after any increments.
type Result struct {
	Messages     []chat.Message
	Relationship relationship.Display
}

// Orchestrator is the single entry point for user turns. It routes exit
// commands, runs the active game, assembles the prompt, calls the provider,
// and keeps the transcript and relationship score consistent.
type Orchestrator struct {
	transcript chat.Repository
	games      *game.Manager
	tracker    *relationship.Tracker
	factory    ProviderFactory
	store      settings.Store
	window     int
	log        zerolog.Logger

	// inFlight rejects a second user submission outright. flight serializes
	// every transcript mutation, including game start, exit, and deferred
	// game emissions, so nothing interleaves with a turn in progress.
	inFlight atomic.Bool
	flight   sync.Mutex
}

type Option func(*Orchestrator)

// WithHistoryWindow overrides the trailing-context size.
func WithHistoryWindow(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.window = n
		}
	}
}

func NewOrchestrator(
	transcript chat.Repository,
	games *game.Manager,
	tracker *relationship.Tracker,
	factory ProviderFactory,
	store settings.Store,
	log zerolog.Logger,
	opts ...Option,
) *Orchestrator {
	o := &Orchestrator{
		transcript: transcript,
		games:      games,
		tracker:    tracker,
		factory:    factory,
		store:      store,
		window:     DefaultHistoryWindow,
		log:        log.With().Str("component", "orchestrator").Logger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// HandleUserTurn processes one submitted text message end to end.
func (o *Orchestrator) HandleUserTurn(ctx context.Context, rawInput string) (Result, error) {
	input := strings.TrimSpace(rawInput)
	if input == "" {
		return Result{}, ErrEmptyInput
	}
	if !o.inFlight.CompareAndSwap(false, true) {
		return Result{}, ErrTurnInFlight
	}
	defer o.inFlight.Store(false)
	o.flight.Lock()
	defer o.flight.Unlock()

	return o.runTurn(ctx, chat.NewMessage(chat.SenderUser, input))
}

// HandleVoiceTurn transcribes the recording with the selected provider and
// then processes the transcription as a normal user turn. The original audio
// stays attached to the user's transcript entry.
func (o *Orchestrator) HandleVoiceTurn(ctx context.Context, audio []byte, filename, audioRef string) (Result, error) {
	if len(audio) == 0 {
		return Result{}, ErrEmptyInput
	}
	if !o.inFlight.CompareAndSwap(false, true) {
		return Result{}, ErrTurnInFlight
	}
	defer o.inFlight.Store(false)
	o.flight.Lock()
	defer o.flight.Unlock()

	cfg, err := o.store.Load(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load settings: %w", err)
	}
	provider, err := o.factory.Provider(cfg)
	if err != nil {
		return Result{}, err
	}

	text, err := provider.Transcribe(ctx, audio, filename)
	if err != nil {
		return Result{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}, ErrEmptyInput
	}

	return o.runTurn(ctx, chat.NewVoiceMessage(chat.SenderUser, text, audioRef))
}

// ExitGame tears down the active game outside a chat turn, for the explicit
// exit endpoint. The second return is false when no game was running.
func (o *Orchestrator) ExitGame(ctx context.Context) (Result, bool, error) {
	o.flight.Lock()
	defer o.flight.Unlock()

	msgs, ok := o.games.Exit()
	if !ok {
		return Result{}, false, nil
	}
	res := Result{Relationship: o.tracker.Display()}
	if err := o.appendAll(ctx, &res, msgs...); err != nil {
		return res, true, err
	}
	return res, true, nil
}

// StartGame begins a session for the given game and appends its opening
// messages to the transcript.
func (o *Orchestrator) StartGame(ctx context.Context, id game.ID) (Result, error) {
	o.flight.Lock()
	defer o.flight.Unlock()

	msgs, err := o.games.Start(id)
	if err != nil {
		return Result{}, err
	}
	res := Result{Relationship: o.tracker.Display()}
	if err := o.appendAll(ctx, &res, msgs...); err != nil {
		return res, err
	}
	return res, nil
}

// EmitGameMessage appends a game message produced outside a user turn, such
// as a deferred next question. It waits for any in-flight turn to finish so
// the message never lands while a typing placeholder sits at the transcript
// tail.
func (o *Orchestrator) EmitGameMessage(ctx context.Context, msg chat.Message) error {
	o.flight.Lock()
	defer o.flight.Unlock()

	var res Result
	return o.appendAll(ctx, &res, msg)
}

func (o *Orchestrator) runTurn(ctx context.Context, userMsg chat.Message) (Result, error) {
	res := Result{Relationship: o.tracker.Display()}

	// Exit turns bypass the provider entirely.
	if strings.EqualFold(userMsg.Text(), ExitCommand) {
		if exitMsgs, active := o.games.Exit(); active {
			if err := o.appendAll(ctx, &res, exitMsgs...); err != nil {
				return res, err
			}
			echo := chat.NewMessage(chat.SenderUser, ExitCommand)
			if err := o.appendAll(ctx, &res, echo); err != nil {
				return res, err
			}
			return res, nil
		}
	}

	cfg, err := o.store.Load(ctx)
	if err != nil {
		return res, fmt.Errorf("load settings: %w", err)
	}

	// The credential check happens before the transcript is touched so a
	// misconfigured provider aborts cleanly.
	provider, err := o.factory.Provider(cfg)
	if err != nil {
		return res, err
	}

	if err := o.appendAll(ctx, &res, userMsg); err != nil {
		return res, err
	}

	// Process reports whether a game actually handled the turn, so a game
	// torn down moments earlier still falls through to the companion.
	continueToCompanion := true
	gameRes, gameActive := o.games.Process(ctx, userMsg.Text())
	if gameActive {
		if err := o.appendAll(ctx, &res, gameRes.Messages...); err != nil {
			return res, err
		}
		continueToCompanion = gameRes.ContinueToCompanion
	}
	if !continueToCompanion {
		return res, nil
	}

	placeholder := chat.NewMessage(chat.SenderCompanion, chat.TypingPlaceholderText)
	if err := o.transcript.Append(ctx, placeholder); err != nil {
		return res, fmt.Errorf("append typing placeholder: %w", err)
	}

	req, err := o.buildRequest(ctx, cfg, gameRes.GameID, gameActive, userMsg.Text())
	if err != nil {
		o.removePlaceholder(ctx, placeholder)
		return res, err
	}

	reply, err := provider.Complete(ctx, req)
	o.removePlaceholder(ctx, placeholder)
	if err != nil {
		return res, o.appendFailure(ctx, &res, err)
	}

	companionMsg := chat.NewMessage(chat.SenderCompanion, strings.TrimSpace(reply))
	if err := o.appendAll(ctx, &res, companionMsg); err != nil {
		return res, err
	}
	return res, nil
}

// appendFailure converts a provider failure into a companion-voiced
// transcript message so the user keeps continuity. The relationship score is
// not incremented for error messages.
func (o *Orchestrator) appendFailure(ctx context.Context, res *Result, cause error) error {
	var text string
	if pe, ok := llm.AsProviderError(cause); ok {
		text = pe.UserMessage()
	} else {
		text = "Sorry, I encountered an error. Please try again in a moment."
	}
	o.log.Warn().Err(cause).Msg("completion failed")

	msg := chat.NewMessage(chat.SenderCompanion, text)
	if err := o.transcript.Append(ctx, msg); err != nil {
		return fmt.Errorf("append error message: %w", err)
	}
	res.Messages = append(res.Messages, msg)
	return nil
}

// removePlaceholder retracts the typing placeholder, which must still be the
// exact tail of the transcript. Anything else indicates a concurrency bug
// and is logged rather than acted on.
func (o *Orchestrator) removePlaceholder(ctx context.Context, placeholder chat.Message) {
	last, ok, err := o.transcript.Last(ctx)
	if err != nil {
		o.log.Error().Err(err).Msg("read transcript tail")
		return
	}
	if !ok || last.PublicID != placeholder.PublicID || !last.IsTypingPlaceholder() {
		o.log.Error().Str("tail_id", last.PublicID).Msg("typing placeholder is not the transcript tail")
		return
	}
	if err := o.transcript.DeleteByPublicID(ctx, placeholder.PublicID); err != nil {
		o.log.Error().Err(err).Msg("remove typing placeholder")
	}
}

// appendAll writes messages to the transcript and applies the relationship
// increment rule per sender.
func (o *Orchestrator) appendAll(ctx context.Context, res *Result, msgs ...chat.Message) error {
	for _, msg := range msgs {
		if err := o.transcript.Append(ctx, msg); err != nil {
			return fmt.Errorf("append %s message: %w", msg.Sender, err)
		}
		if _, err := o.tracker.ApplyIncrement(ctx, msg.Sender); err != nil {
			return err
		}
		res.Messages = append(res.Messages, msg)
	}
	res.Relationship = o.tracker.Display()
	return nil
}

func (o *Orchestrator) buildRequest(ctx context.Context, cfg settings.Settings, activeGame game.ID, gameActive bool, userMessage string) (llm.CompletionRequest, error) {
	prompt := persona.ResolvePrompt(cfg.Personality, o.tracker.Display().Tier, cfg.Gender, cfg.Restricted)
	if gameActive {
		prompt += gameAwarenessClause(activeGame)
	}

	// Over-fetch by one so the typing placeholder at the tail does not
	// shrink the context window.
	tail, err := o.transcript.Tail(ctx, o.window+1)
	if err != nil {
		return llm.CompletionRequest{}, fmt.Errorf("load history window: %w", err)
	}
	history := make([]llm.HistoryEntry, 0, len(tail))
	for _, msg := range tail {
		if msg.IsTypingPlaceholder() {
			continue
		}
		history = append(history, llm.HistoryEntry{Role: historyRole(msg.Sender), Text: msg.Text()})
	}
	if len(history) > o.window {
		history = history[len(history)-o.window:]
	}

	return llm.CompletionRequest{
		SystemPrompt: prompt,
		History:      history,
		UserMessage:  userMessage,
	}, nil
}

// gameAwarenessClause keeps the companion engaged with the running game.
// Twenty Questions gets the strict variant so the companion never competes
// with the game's own question flow.
func gameAwarenessClause(id game.ID) string {
	if id == game.IDTwentyQuestions {
		return "\n\nYou are currently playing 20 Questions with the user. The GAME SYSTEM handles all the questions - DO NOT ask any yes/no questions yourself. Only react to their answers with encouragement and excitement. Let the game system do the questioning while you provide emotional support and commentary. Do not interfere with the game flow."
	}
	return fmt.Sprintf("\n\nYou are currently playing %s with the user. You can see all the game messages in the chat history and should respond naturally while being engaged with the game. Be encouraging, react to their moves, make comments about the game progress, and make the experience fun and interactive. Look at the recent game system messages to understand what's happening in the game.", id)
}

func historyRole(sender chat.Sender) string {
	switch sender {
	case chat.SenderUser:
		return "User"
	case chat.SenderCompanion, chat.SenderCompanionInGame:
		return "You"
	default:
		return "Game System"
	}
}
