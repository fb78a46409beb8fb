package handlers_test

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"

	"companion-api/internal/domain/chat"
	"companion-api/internal/domain/game"
	"companion-api/internal/domain/relationship"
	"companion-api/internal/domain/settings"
	"companion-api/internal/domain/turn"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockTurnService is a hand-rolled mock for the orchestrator facade.
type MockTurnService struct {
	HandleUserTurnFunc  func(ctx context.Context, rawInput string) (turn.Result, error)
	HandleVoiceTurnFunc func(ctx context.Context, audio []byte, filename, audioRef string) (turn.Result, error)
}

func (m *MockTurnService) HandleUserTurn(ctx context.Context, rawInput string) (turn.Result, error) {
	if m.HandleUserTurnFunc != nil {
		return m.HandleUserTurnFunc(ctx, rawInput)
	}
	return turn.Result{}, nil
}

func (m *MockTurnService) HandleVoiceTurn(ctx context.Context, audio []byte, filename, audioRef string) (turn.Result, error) {
	if m.HandleVoiceTurnFunc != nil {
		return m.HandleVoiceTurnFunc(ctx, audio, filename, audioRef)
	}
	return turn.Result{}, nil
}

// MockGameService is a hand-rolled mock for the game facade.
type MockGameService struct {
	CatalogFunc   func() []game.Info
	ActiveIDFunc  func() (game.ID, bool)
	StartGameFunc func(ctx context.Context, id game.ID) (turn.Result, error)
	ExitGameFunc  func(ctx context.Context) (turn.Result, bool, error)
}

func (m *MockGameService) Catalog() []game.Info {
	if m.CatalogFunc != nil {
		return m.CatalogFunc()
	}
	return nil
}

func (m *MockGameService) ActiveID() (game.ID, bool) {
	if m.ActiveIDFunc != nil {
		return m.ActiveIDFunc()
	}
	return "", false
}

func (m *MockGameService) StartGame(ctx context.Context, id game.ID) (turn.Result, error) {
	if m.StartGameFunc != nil {
		return m.StartGameFunc(ctx, id)
	}
	return turn.Result{}, nil
}

func (m *MockGameService) ExitGame(ctx context.Context) (turn.Result, bool, error) {
	if m.ExitGameFunc != nil {
		return m.ExitGameFunc(ctx)
	}
	return turn.Result{}, false, nil
}

// MockRelationshipService is a hand-rolled mock for the tracker facade.
type MockRelationshipService struct {
	DisplayFunc  func() relationship.Display
	ResetFunc    func(ctx context.Context) error
	AdminSetFunc func(ctx context.Context, value int) (int, error)
}

func (m *MockRelationshipService) Display() relationship.Display {
	if m.DisplayFunc != nil {
		return m.DisplayFunc()
	}
	return relationship.Display{}
}

func (m *MockRelationshipService) Reset(ctx context.Context) error {
	if m.ResetFunc != nil {
		return m.ResetFunc(ctx)
	}
	return nil
}

func (m *MockRelationshipService) AdminSet(ctx context.Context, value int) (int, error) {
	if m.AdminSetFunc != nil {
		return m.AdminSetFunc(ctx, value)
	}
	return value, nil
}

// MockTranscript is an in-memory chat.Repository.
type MockTranscript struct {
	mu       sync.Mutex
	messages []chat.Message
}

func (m *MockTranscript) Append(ctx context.Context, msgs ...chat.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msgs...)
	return nil
}

func (m *MockTranscript) Tail(ctx context.Context, n int) ([]chat.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n > len(m.messages) {
		n = len(m.messages)
	}
	out := make([]chat.Message, n)
	copy(out, m.messages[len(m.messages)-n:])
	return out, nil
}

func (m *MockTranscript) Last(ctx context.Context) (chat.Message, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.messages) == 0 {
		return chat.Message{}, false, nil
	}
	return m.messages[len(m.messages)-1], true, nil
}

func (m *MockTranscript) DeleteByPublicID(ctx context.Context, publicID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, msg := range m.messages {
		if msg.PublicID == publicID {
			m.messages = append(m.messages[:i], m.messages[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MockTranscript) Page(ctx context.Context, pageIndex, pageSize int) (chat.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	start := (pageIndex - 1) * pageSize
	if start >= len(m.messages) {
		return chat.Page{Total: int64(len(m.messages))}, nil
	}
	end := start + pageSize
	if end > len(m.messages) {
		end = len(m.messages)
	}
	out := make([]chat.Message, end-start)
	copy(out, m.messages[start:end])
	return chat.Page{Messages: out, Total: int64(len(m.messages))}, nil
}

func (m *MockTranscript) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = nil
	return nil
}

func (m *MockTranscript) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.messages)), nil
}

// MockSettingsStore is an in-memory settings.Store.
type MockSettingsStore struct {
	mu      sync.Mutex
	current settings.Settings
	loadErr error
	saveErr error
}

func NewMockSettingsStore(s settings.Settings) *MockSettingsStore {
	return &MockSettingsStore{current: s}
}

func (m *MockSettingsStore) Load(ctx context.Context) (settings.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current, m.loadErr
}

func (m *MockSettingsStore) Save(ctx context.Context, s settings.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.current = s
	return nil
}
