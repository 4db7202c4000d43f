package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-chat/internal/display"
	"github.com/pixil98/go-chat/internal/game"
)

const defaultServerName = "Fantasy World"

type WorldConfig struct {
	Rooms      AssetConfig[*game.Room] `json:"rooms"`
	StartRoom  string                  `json:"start_room"`
	ServerName string                  `json:"server_name,omitempty"`
	BannerPath string                  `json:"banner_path,omitempty"`
}

func (c *WorldConfig) validate() error {
	el := errors.NewErrorList()

	el.Add(c.Rooms.Validate("rooms"))

	if c.StartRoom == "" {
		el.Add(fmt.Errorf("start_room is required"))
	}

	if c.BannerPath != "" {
		if _, err := os.Stat(c.BannerPath); err != nil {
			el.Add(fmt.Errorf("invalid banner_path %q: %w", c.BannerPath, err))
		}
	}

	return el.Err()
}

func (c *WorldConfig) BuildWorld() (*game.World, error) {
	store, err := c.Rooms.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating room store: %w", err)
	}

	world, err := game.NewWorld(store.GetAll(), game.WithStore(store))
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}

	if world.Room(c.StartRoom) == nil {
		return nil, fmt.Errorf("start_room %q not found in room assets", c.StartRoom)
	}

	return world, nil
}

// Banner returns the welcome banner template, loaded from banner_path
// when one is configured.
func (c *WorldConfig) Banner() (string, error) {
	if c.BannerPath == "" {
		return display.DefaultBanner, nil
	}

	data, err := os.ReadFile(c.BannerPath)
	if err != nil {
		return "", fmt.Errorf("reading banner %q: %w", c.BannerPath, err)
	}
	return string(data), nil
}

func (c *WorldConfig) serverName() string {
	if c.ServerName == "" {
		return defaultServerName
	}
	return c.ServerName
}
