package session

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/sandevgo/veractbot/internal/core"
)

// Memory is per-conversation state: the message log, the context map and the
// single pending-action slot. One session processes turns sequentially, but
// slash commands may reach the memory from another goroutine, so access is
// guarded anyway.
type Memory struct {
	mu       sync.Mutex
	messages []core.Message
	context  map[string]any
	pending  *core.PendingAction
}

func New() *Memory {
	return &Memory{context: defaultContext()}
}

// defaultContext seeds every known context key. Keys are advisory: Set on an
// unknown key succeeds and the key is kept.
func defaultContext() map[string]any {
	return map[string]any{
		core.CtxLastProduct:       nil,
		core.CtxLastProductID:     nil,
		core.CtxLastFilters:       map[string]any{},
		core.CtxLastSearchResults: []core.Product{},
		core.CtxCurrentTopic:      nil,
		core.CtxUserPreferences: map[string]any{
			"price_range":          nil,
			"preferred_categories": []string{},
			"preferred_brands":     []string{},
		},
		core.CtxSessionStart:      time.Now().Format(time.RFC3339),
		core.CtxCustomerID:        nil,
		core.CtxLastSale:          nil,
		core.CtxConversationCount: 0,
	}
}

func (m *Memory) Append(role, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.messages = append(m.messages, core.Message{
		Role:      role,
		Content:   text,
		Timestamp: time.Now(),
	})
	if n, ok := m.context[core.CtxConversationCount].(int); ok {
		m.context[core.CtxConversationCount] = n + 1
	}
}

func (m *Memory) Recent(n int) []core.Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	if n <= 0 || n >= len(m.messages) {
		n = len(m.messages)
	}
	out := make([]core.Message, n)
	copy(out, m.messages[len(m.messages)-n:])
	return out
}

func (m *Memory) Get(key string) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.context[key]
	return value, ok
}

func (m *Memory) Set(key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.context[key] = value
}

// ContextJSON serializes the context map for classifier prompts.
func (m *Memory) ContextJSON() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := json.MarshalIndent(m.context, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

// StagePending replaces any previously staged action: at most one mutation
// is ever awaiting confirmation.
func (m *Memory) StagePending(action core.PendingAction) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pending = &action
}

func (m *Memory) Pending() (core.PendingAction, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pending == nil {
		return core.PendingAction{}, false
	}
	return *m.pending, true
}

func (m *Memory) ClearPending() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pending = nil
}

// Reset restores construction-time defaults. All-or-nothing: there is no
// partial reset.
func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.messages = nil
	m.context = defaultContext()
	m.pending = nil
}
