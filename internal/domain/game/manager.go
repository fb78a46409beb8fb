package game

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"companion-api/internal/domain/chat"
)

// ErrUnknownGame is returned when a start request names a game that is not
// in the catalog.
type ErrUnknownGame struct{ GameID ID }

func (e *ErrUnknownGame) Error() string {
	return fmt.Sprintf("unknown game %q", e.GameID)
}

// Sink receives messages emitted outside a user turn, such as a deferred
// next question firing after its delay.
type Sink interface {
	Append(ctx context.Context, msg chat.Message) error
}

// Info describes one catalog entry.
type Info struct {
	ID    ID     `json:"id"`
	Title string `json:"title"`
}

// Manager owns the single active game session. Starting a game discards any
// previous session; exiting bumps the generation so that pending deferred
// work from the old session becomes a no-op.
type Manager struct {
	mu         sync.Mutex
	processors map[ID]Processor
	order      []ID
	sink       Sink
	log        zerolog.Logger

	active     *Session
	generation uint64
}

func NewManager(processors []Processor, sink Sink, log zerolog.Logger) *Manager {
	m := &Manager{
		processors: make(map[ID]Processor, len(processors)),
		sink:       sink,
		log:        log.With().Str("component", "game-manager").Logger(),
	}
	for _, p := range processors {
		m.processors[p.ID()] = p
		m.order = append(m.order, p.ID())
	}
	return m
}

// Catalog lists every registered game in registration order.
func (m *Manager) Catalog() []Info {
	m.mu.Lock()
	defer m.mu.Unlock()
	infos := make([]Info, 0, len(m.order))
	for _, id := range m.order {
		infos = append(infos, Info{ID: id, Title: m.processors[id].Title()})
	}
	return infos
}

// ActiveID reports the currently running game, if any.
func (m *Manager) ActiveID() (ID, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil {
		return "", false
	}
	return m.active.GameID, true
}

// Start begins a new session for the given game, tearing down any previous
// one, and returns the start announcement plus the game's welcome message.
func (m *Manager) Start(id ID) ([]chat.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.processors[id]
	if !ok {
		return nil, &ErrUnknownGame{GameID: id}
	}

	m.generation++
	m.active = &Session{GameID: id, generation: m.generation}
	m.log.Info().Str("game", string(id)).Msg("game started")

	return []chat.Message{
		systemMessage(fmt.Sprintf("🎮 Starting %s... (Type '/exit' anytime to quit the game)", id)),
		systemMessage(p.Welcome()),
	}, nil
}

// Exit tears down the active session. The second return is false when no
// game was running.
func (m *Manager) Exit() ([]chat.Message, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active == nil {
		return nil, false
	}
	id := m.active.GameID
	m.generation++
	m.active = nil
	m.log.Info().Str("game", string(id)).Msg("game exited")

	return []chat.Message{
		systemMessage(fmt.Sprintf("🎮 Exiting %s. Thanks for playing!", id)),
	}, true
}

// Process routes one user turn to the active game's processor and schedules
// any deferred follow-up it produced. Processor calls and deferred firing are
// serialized under the manager's lock, so session state is only ever touched
// by one goroutine at a time. The second return is false when no game is
// active.
func (m *Manager) Process(ctx context.Context, input string) (Result, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil {
		return Result{}, false
	}
	session := m.active

	res := m.processors[session.GameID].Process(ctx, session, input)
	res.GameID = session.GameID
	if res.Deferred != nil {
		m.schedule(session, res.Deferred)
		res.Deferred = nil
	}
	return res, true
}

// schedule runs the deferred emission after its delay, dropping it if the
// session it belongs to has been torn down in the meantime.
func (m *Manager) schedule(session *Session, d *Deferred) {
	gen := session.generation
	fire := d.Fire
	timer := newTimer(d.Delay)
	go func() {
		<-timer
		msgs, live := m.fireForSession(gen, fire)
		if !live {
			return
		}
		for _, msg := range msgs {
			if err := m.sink.Append(context.Background(), msg); err != nil {
				m.log.Error().Err(err).Str("game", string(session.GameID)).Msg("deferred game message dropped")
				return
			}
		}
	}()
}

// fireForSession runs the deferred callback under the same lock as Process,
// so its session mutations never race with a user turn. A stale generation
// means the session is gone and the work is dropped. The sink append happens
// outside the lock because the sink takes the orchestrator's turn lock.
func (m *Manager) fireForSession(gen uint64, fire func(ctx context.Context) []chat.Message) ([]chat.Message, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil || m.active.generation != gen {
		return nil, false
	}
	return fire(context.Background()), true
}
