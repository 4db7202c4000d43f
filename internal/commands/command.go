package commands

import (
	"strings"

	"golang.org/x/text/width"

	"github.com/pixil98/go-chat/internal/game"
)

// Command is one entry in the dispatch table. Matches decides whether the
// command claims a line of input; Execute runs its effect against the
// world. A returned *UserError is shown to the invoking avatar; any other
// error is a system failure.
type Command interface {
	Matches(text string) bool
	Execute(a *game.Avatar, text string) error
}

// Publisher provides the ability to publish messages to subjects.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Dispatcher evaluates commands in a fixed priority order; the first
// match wins. Say is last and claims any non-empty input, so it acts as
// the catch-all.
type Dispatcher struct {
	commands []Command
}

func NewDispatcher(world *game.World, pub Publisher) *Dispatcher {
	return &Dispatcher{
		commands: []Command{
			&MoveCommand{world: world},
			&LookCommand{world: world},
			&WhoCommand{world: world},
			&ShoutCommand{pub: pub},
			&SayCommand{world: world},
		},
	}
}

// Dispatch routes one line of input to the first matching command. Empty
// input matches nothing and is a no-op.
func (d *Dispatcher) Dispatch(a *game.Avatar, text string) error {
	for _, c := range d.commands {
		if c.Matches(text) {
			return c.Execute(a, text)
		}
	}
	return nil
}

// fold normalizes a command token for matching: full-width characters are
// narrowed (clients of the original service typed full-width ASCII) and
// the result is lowercased.
func fold(s string) string {
	return strings.ToLower(width.Narrow.String(s))
}
