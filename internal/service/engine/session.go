package engine

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sandevgo/veractbot/internal/core"
	"github.com/sandevgo/veractbot/internal/service/session"
)

// Session binds a memory to the shared engine. Turns within a session are
// strictly sequential; the mutex enforces that when a transport delivers
// concurrent updates for the same conversation.
type Session struct {
	id     string
	engine *Engine
	mem    *session.Memory
	mu     sync.Mutex
}

func (e *Engine) NewSession() *Session {
	return &Session{
		id:     uuid.NewString(),
		engine: e,
		mem:    session.New(),
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Memory() core.Memory {
	return s.mem
}

// Process runs one full turn and returns the assistant response. It never
// returns an error; every failure path produces a response string.
func (s *Session) Process(ctx context.Context, text string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mem.Append(core.RoleUser, text)
	response := s.engine.runTurn(ctx, text, s.mem)
	s.mem.Append(core.RoleAssistant, response)
	return response
}

// Reset discards the session's memory back to defaults.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mem.Reset()
}

// Manager hands out one session per transport conversation key.
type Manager struct {
	engine   *Engine
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(e *Engine) *Manager {
	return &Manager{
		engine:   e,
		sessions: make(map[string]*Session),
	}
}

func (m *Manager) Session(key string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[key]; ok {
		return s
	}
	s := m.engine.NewSession()
	m.sessions[key] = s
	return s
}

func (m *Manager) Reset(key string) {
	m.mu.Lock()
	s, ok := m.sessions[key]
	m.mu.Unlock()

	if ok {
		s.Reset()
	}
}
