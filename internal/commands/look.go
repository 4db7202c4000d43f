package commands

import (
	"fmt"

	"github.com/pixil98/go-chat/internal/display"
	"github.com/pixil98/go-chat/internal/game"
	"github.com/pixil98/go-chat/internal/message"
)

// LookCommand shows the invoking avatar its current room: name,
// description, the other occupants, and the exits. It has no side effect
// on world state and sends only to the invoker.
type LookCommand struct {
	world *game.World
}

func (c *LookCommand) Matches(text string) bool {
	return fold(text) == "look"
}

func (c *LookCommand) Execute(a *game.Avatar, text string) error {
	room := c.world.FindByAvatar(a)
	if room == nil {
		return fmt.Errorf("avatar %q is not in any room", a.Handle())
	}

	a.Send(renderLook(c.world, room, a))
	return nil
}

// renderLook composes the look message for an avatar standing in room.
// Move reuses it so a mover immediately sees the new room.
func renderLook(world *game.World, room *game.RoomInstance, a *game.Avatar) *message.Message {
	msg := message.NewColored(fmt.Sprintf("[%s]\n", room.Name()), message.ColorWhite)

	if room.Description() != "" {
		msg.Add(display.Wrap(room.Description()) + "\n")
	}

	var others []*game.Avatar
	for _, o := range room.Occupants() {
		if o != a {
			others = append(others, o)
		}
	}
	if len(others) > 0 {
		msg.AddColored("You can see:\n", message.ColorOlive)
		for i, o := range others {
			msg.AddColored(display.Pad(o.Name(), display.RosterColumnWidth), message.ColorOlive)
			if i%display.RosterRowLength == display.RosterRowLength-1 {
				msg.Add("\n")
			}
		}
		msg.AddColored("here with you.\n", message.ColorOlive)
	}

	if exits := world.Exits(room.Id()); len(exits) > 0 {
		msg.Add("[Exits]\n")
		for _, e := range exits {
			msg.Add(fmt.Sprintf("  %s: %s\n", e.Direction, e.RoomName))
		}
	}

	return msg
}
