package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pixil98/go-chat/internal/game"
	"github.com/pixil98/go-chat/internal/message"
)

// MoveCommand transfers the invoking avatar through an exit of its
// current room. Grammar: "move <direction>", or a bare direction word as
// shorthand.
type MoveCommand struct {
	world *game.World
}

func (c *MoveCommand) Matches(text string) bool {
	fields := strings.Fields(fold(text))
	if len(fields) == 0 {
		return false
	}
	if fields[0] == "move" {
		return true
	}
	_, ok := game.ParseDirection(fields[0])
	return ok && len(fields) == 1
}

func (c *MoveCommand) Execute(a *game.Avatar, text string) error {
	fields := strings.Fields(fold(text))

	var token string
	switch {
	case fields[0] != "move":
		token = fields[0]
	case len(fields) > 1:
		token = fields[1]
	}

	d, ok := game.ParseDirection(token)
	if !ok {
		return NewUserError("Specify a direction.")
	}

	from := c.world.FindByAvatar(a)
	if from == nil {
		return fmt.Errorf("avatar %q is not in any room", a.Handle())
	}

	to, err := c.world.MoveAvatar(a, d)
	if err != nil {
		if errors.Is(err, game.ErrNoSuchExit) {
			return NewUserError("There is no path that way.")
		}
		return err
	}

	// Let both rooms know; the mover gets the look of the new room instead.
	c.world.Broadcast(from.Id(),
		message.NewColored(a.Name(), a.NameColor()).
			AddColored(fmt.Sprintf(" leaves %s.\n", d), message.ColorOlive), a)
	c.world.Broadcast(to.Id(),
		message.NewColored(a.Name(), a.NameColor()).
			AddColored(" arrives.\n", message.ColorOlive), a)

	a.Send(renderLook(c.world, to, a))
	return nil
}
