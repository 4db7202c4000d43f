package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pixil98/go-chat/internal/game"
)

// ShoutSubject is the broker subject server-wide shouts travel on.
const ShoutSubject = "chat.shout"

// ShoutPayload is the wire form of a shout as published to the broker.
type ShoutPayload struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Text  string `json:"text"`
}

// ShoutCommand publishes a line to the server-wide shout subject. The
// session service's relay delivers it to every connected avatar,
// including those on other transports.
type ShoutCommand struct {
	pub Publisher
}

func (c *ShoutCommand) Matches(text string) bool {
	fields := strings.Fields(fold(text))
	return len(fields) > 0 && fields[0] == "shout"
}

func (c *ShoutCommand) Execute(a *game.Avatar, text string) error {
	fields := strings.Fields(text)
	rest := strings.Join(fields[1:], " ")
	if rest == "" {
		return NewUserError("Shout what?")
	}

	if c.pub == nil {
		return NewUserError("Shouting is not available right now.")
	}

	data, err := json.Marshal(ShoutPayload{
		Name:  a.Name(),
		Color: a.NameColor(),
		Text:  rest,
	})
	if err != nil {
		return fmt.Errorf("marshalling shout: %w", err)
	}

	if err := c.pub.Publish(ShoutSubject, data); err != nil {
		return fmt.Errorf("publishing shout: %w", err)
	}
	return nil
}
