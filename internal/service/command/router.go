package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/veractbot/internal/core"
)

// Router dispatches slash-prefixed input to registered commands. Anything
// without the prefix is left for the conversation engine.
type Router struct {
	commands map[string]core.Command
}

func New(commands []core.Command) *Router {
	r := &Router{
		commands: make(map[string]core.Command, len(commands)),
	}
	for _, cmd := range commands {
		r.commands[strings.ToLower(cmd.Name())] = cmd
	}
	return r
}

// Execute returns (response, true) when the input was a command, handled or
// not. Command names are case-insensitive; arguments are passed through.
func (r *Router) Execute(ctx context.Context, sessionID, input string) (string, bool) {
	if !strings.HasPrefix(input, "/") {
		return "", false
	}

	parts := strings.Fields(input)
	name := strings.ToLower(strings.TrimPrefix(parts[0], "/"))

	cmd, ok := r.commands[name]
	if !ok {
		return fmt.Sprintf("Unknown command: /%s", name), true
	}

	result, err := cmd.Execute(ctx, sessionID, parts[1:])
	if err != nil {
		return fmt.Sprintf("Error: %v", err), true
	}
	return result, true
}

func (r *Router) ListCommands() []core.Command {
	res := make([]core.Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		res = append(res, cmd)
	}
	return res
}
