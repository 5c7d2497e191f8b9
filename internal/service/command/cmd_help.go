package command

import (
	"context"

	"github.com/sandevgo/veractbot/internal/core"
)

type HelpCommand struct {
	formatter *ResponseFormatter
}

func NewHelpCommand() core.Command {
	return &HelpCommand{
		formatter: NewResponseFormatter(),
	}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Description() string {
	return "Show what the assistant can do"
}

func (c *HelpCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	return c.formatter.Combine(
		c.formatter.Info("Veract Sales Assistant"),
		c.formatter.List([]string{
			"Search products — *show me electronics under 50000*",
			"Product details — *details for prod_001*",
			"Create or update products — *add a new product called ...*",
			"Search sales — *show pending sales for cust_001*",
			"Record or update sales — *create a sale for cust_002*",
			"Analytics — *give me a sales summary*",
			"Recommendations — *what are your top rated products?*",
			"Vendors — *list our vendors*",
		}),
		c.formatter.List([]string{
			"/reset — start a fresh conversation",
			"/pending — show the action waiting for confirmation",
			"/help — this message",
		}),
		c.formatter.Tip("Create and update actions always ask for a Yes/No confirmation before touching your data"),
	), nil
}
