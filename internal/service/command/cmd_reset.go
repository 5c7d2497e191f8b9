package command

import (
	"context"

	"github.com/sandevgo/veractbot/internal/core"
	"github.com/sandevgo/veractbot/internal/service/engine"
)

type ResetCommand struct {
	sessions  *engine.Manager
	formatter *ResponseFormatter
}

func NewResetCommand(sessions *engine.Manager) core.Command {
	return &ResetCommand{
		sessions:  sessions,
		formatter: NewResponseFormatter(),
	}
}

func (c *ResetCommand) Name() string {
	return "reset"
}

func (c *ResetCommand) Description() string {
	return "Clear conversation history and start fresh"
}

func (c *ResetCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	c.sessions.Reset(sessionID)
	return c.formatter.Success("Session reset. Conversation history and pending actions cleared."), nil
}
