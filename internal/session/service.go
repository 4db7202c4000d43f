package session

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/pixil98/go-chat/internal/commands"
	"github.com/pixil98/go-chat/internal/display"
	"github.com/pixil98/go-chat/internal/game"
	"github.com/pixil98/go-chat/internal/message"
)

// Service is the single entry point for everything the transports raise:
// connects, inbound lines, disconnects, and relayed shouts. A coarse
// mutex serializes events, so one event resolves completely (including
// the broadcasts it causes) before the next begins, and every event ends
// with one flush of all outbound buffers.
type Service struct {
	mu sync.Mutex

	registry   *game.Registry
	world      *game.World
	dispatcher *commands.Dispatcher

	sessions   map[string]*Session
	banner     string
	serverName string
	startRoom  string
}

func NewService(registry *game.Registry, world *game.World, dispatcher *commands.Dispatcher, banner, serverName, startRoom string) *Service {
	return &Service{
		registry:   registry,
		world:      world,
		dispatcher: dispatcher,
		sessions:   map[string]*Session{},
		banner:     banner,
		serverName: serverName,
		startRoom:  startRoom,
	}
}

// Connect admits a new connection: the avatar is registered under its
// handle, the welcome banner is shown, and onboarding starts at the name
// prompt.
func (s *Service) Connect(handle string, conn game.Conn, enc message.Encoder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := game.NewAvatar(handle, conn, enc)
	if err := s.registry.Add(handle, a); err != nil {
		return fmt.Errorf("connecting %q: %w", handle, err)
	}

	banner, err := display.RenderBanner(s.banner, display.BannerData{ServerName: s.serverName})
	if err != nil {
		slog.Error("rendering banner", "err", err)
	} else {
		a.Send(message.NewColored(banner, message.ColorYellow))
	}

	sess := &Session{svc: s, avatar: a}
	s.sessions[handle] = sess
	sess.setPhase(&namePhase{s: sess})

	s.registry.FlushAll()
	return nil
}

// Receive handles one line of input from a connection. An empty line is
// not given to the live phase; it still buffers an empty message so the
// flush re-paints the prompt.
func (s *Service) Receive(handle, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.registry.FindByHandle(handle)
	if err != nil {
		return fmt.Errorf("receiving input: %w", err)
	}

	if text == "" {
		a.Send(message.New(""))
	} else {
		s.sessions[handle].handle(text)
	}

	s.registry.FlushAll()
	return nil
}

// Disconnect tears down a connection's session. The phase's leave hook
// runs first so an active avatar can announce its departure, then the
// avatar is dropped from the registry.
func (s *Service) Disconnect(handle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[handle]
	if !ok {
		return fmt.Errorf("disconnecting %q: %w", handle, game.ErrAvatarNotFound)
	}
	sess.end()
	delete(s.sessions, handle)

	if err := s.registry.RemoveByHandle(handle); err != nil {
		return fmt.Errorf("disconnecting: %w", err)
	}

	s.registry.FlushAll()
	return nil
}

// DeliverShout fans a relayed shout out to every avatar currently placed
// in the world, onboarding sessions excluded.
func (s *Service) DeliverShout(data []byte) {
	var p commands.ShoutPayload
	if err := json.Unmarshal(data, &p); err != nil {
		slog.Warn("unmarshalling shout", "err", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m := message.NewColored(p.Name, p.Color).
		AddColored(" shouts: ", message.ColorWhite).
		Add(display.Wrap(p.Text) + "\n")

	s.registry.ForEach(func(a *game.Avatar) {
		if s.world.FindByAvatar(a) != nil {
			a.Send(m)
		}
	})

	s.registry.FlushAll()
}
