package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-chat/internal/commands"
	"github.com/pixil98/go-chat/internal/driver"
	"github.com/pixil98/go-chat/internal/game"
	"github.com/pixil98/go-chat/internal/listener"
	"github.com/pixil98/go-chat/internal/message"
	"github.com/pixil98/go-chat/internal/session"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Build the world from room assets
	world, err := cfg.World.BuildWorld()
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}

	// Embedded broker carrying the server-wide shout channel
	nats, err := cfg.Nats.BuildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	banner, err := cfg.World.Banner()
	if err != nil {
		return nil, fmt.Errorf("loading banner: %w", err)
	}

	// Session service: the single event loop behind every transport
	registry := game.NewRegistry()
	dispatcher := commands.NewDispatcher(world, nats)
	svc := session.NewService(registry, world, dispatcher, banner, cfg.World.serverName(), cfg.World.StartRoom)
	relay := session.NewShoutRelay(nats, svc)

	// Create Listeners
	cm := listener.NewConnectionManager(svc, message.NewANSIEncoder())
	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		lst, err := l.BuildListener(cm)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = lst
	}

	// Setup the tick driver
	var driverOpts []driver.DriverOpt
	if cfg.TickInterval != "" {
		d, err := time.ParseDuration(cfg.TickInterval)
		if err != nil {
			return nil, fmt.Errorf("parsing tick_interval: %w", err)
		}
		driverOpts = append(driverOpts, driver.WithTickLength(d))
	}
	ticker := driver.NewDriver([]driver.Manager{world}, driverOpts...)

	// Create a worker list
	return service.WorkerList{
		"nats":      nats,
		"relay":     relay,
		"driver":    ticker,
		"listeners": &listeners,
	}, nil
}
