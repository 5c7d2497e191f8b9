package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/veractbot/internal/core"
	"github.com/sandevgo/veractbot/internal/service/engine"
)

type PendingCommand struct {
	sessions  *engine.Manager
	formatter *ResponseFormatter
}

func NewPendingCommand(sessions *engine.Manager) core.Command {
	return &PendingCommand{
		sessions:  sessions,
		formatter: NewResponseFormatter(),
	}
}

func (c *PendingCommand) Name() string {
	return "pending"
}

func (c *PendingCommand) Description() string {
	return "Show the action waiting for confirmation, if any"
}

func (c *PendingCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	mem := c.sessions.Session(sessionID).Memory()
	pending, ok := mem.Pending()
	if !ok {
		return c.formatter.Combine(
			c.formatter.Info("Pending Action"),
			c.formatter.Label("Status", "nothing staged"),
			c.formatter.Tip("Create or update a product or sale to stage an action"),
		), nil
	}

	lines := []string{fmt.Sprintf("kind: %s", pending.Kind)}
	switch {
	case pending.Product != nil:
		lines = append(lines, fmt.Sprintf("product: %s (%s)", pending.Product.Name, pending.Product.ID))
	case pending.Sale != nil:
		lines = append(lines, fmt.Sprintf("sale: %s", pending.Sale.ID))
	case pending.TargetID != "":
		lines = append(lines, fmt.Sprintf("target: %s (%d change(s))", pending.TargetID, len(pending.Changes)))
	}

	return c.formatter.Combine(
		c.formatter.Info("Pending Action"),
		c.formatter.List(lines),
		c.formatter.Tip("Say 'yes' to execute it or 'no' to cancel"),
	), nil
}
