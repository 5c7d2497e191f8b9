package core

import "context"

// CompletionRequest is a single text-completion call. Both the intent
// classifier and the general-chat generator speak this shape.
type CompletionRequest struct {
	System      string
	User        string
	Temperature float64
}

// LLM is the injected text-completion capability. Implementations live in
// internal/providers/llm; tests substitute deterministic stubs.
type LLM interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// Handler turns a classified turn into a response, optionally staging a
// pending action on the session memory.
type Handler interface {
	Handle(ctx context.Context, turn *Turn, mem Memory) (string, error)
}

// Command is a slash command available in every transport.
type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, sessionID string, args []string) (string, error)
}

type CmdRouter interface {
	Execute(ctx context.Context, sessionID, input string) (string, bool)
	ListCommands() []Command
}
