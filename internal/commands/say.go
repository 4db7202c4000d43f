package commands

import (
	"fmt"

	"github.com/pixil98/go-chat/internal/display"
	"github.com/pixil98/go-chat/internal/game"
	"github.com/pixil98/go-chat/internal/message"
)

// SayCommand is the dispatch fallback: any non-empty input that no other
// command claimed is spoken to the room. The speaker hears their own line
// through the room broadcast, once.
type SayCommand struct {
	world *game.World
}

func (c *SayCommand) Matches(text string) bool {
	return text != ""
}

func (c *SayCommand) Execute(a *game.Avatar, text string) error {
	if text == "" {
		return nil
	}

	room := c.world.FindByAvatar(a)
	if room == nil {
		return fmt.Errorf("avatar %q is not in any room", a.Handle())
	}

	msg := message.NewColored(a.Name(), a.NameColor()).
		Add(": ").
		Add(display.Wrap(text) + "\n")
	c.world.Broadcast(room.Id(), msg, nil)
	return nil
}
