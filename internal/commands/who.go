package commands

import (
	"fmt"

	"github.com/pixil98/go-chat/internal/display"
	"github.com/pixil98/go-chat/internal/game"
	"github.com/pixil98/go-chat/internal/message"
)

// WhoCommand lists the current room's occupants, the requester included,
// each name rendered in its owner's chosen color. Sent only to the
// requester.
type WhoCommand struct {
	world *game.World
}

func (c *WhoCommand) Matches(text string) bool {
	return fold(text) == "who"
}

func (c *WhoCommand) Execute(a *game.Avatar, text string) error {
	room := c.world.FindByAvatar(a)
	if room == nil {
		return fmt.Errorf("avatar %q is not in any room", a.Handle())
	}

	msg := message.NewColored("Players here:\n", message.ColorWhite)
	for i, o := range room.Occupants() {
		msg.AddColored(display.Pad(o.Name(), display.RosterColumnWidth), o.NameColor())
		if i%display.RosterRowLength == display.RosterRowLength-1 {
			msg.Add("\n")
		}
	}
	msg.Add("\n")

	a.Send(msg)
	return nil
}
