package command

import (
	"github.com/sandevgo/veractbot/internal/core"
	"github.com/sandevgo/veractbot/internal/service/engine"
)

func NewCommands(sessions *engine.Manager) []core.Command {
	return []core.Command{
		NewHelpCommand(),
		NewResetCommand(sessions),
		NewPendingCommand(sessions),
	}
}
