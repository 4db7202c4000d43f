package session

import (
	"errors"
	"log/slog"

	"github.com/pixil98/go-chat/internal/commands"
	"github.com/pixil98/go-chat/internal/message"
)

// activePhase is the steady state: the avatar is placed in the world and
// every line of input goes through the command dispatcher.
type activePhase struct {
	s *Session
}

func (p *activePhase) enter() {
	a := p.s.avatar
	if err := p.s.svc.world.AddAvatar(p.s.svc.startRoom, a); err != nil {
		slog.Error("placing avatar", "name", a.Name(), "err", err)
		return
	}

	p.s.svc.world.Broadcast(p.s.svc.startRoom,
		message.NewColored(a.Name(), a.NameColor()).AddColored(" has entered the room.\n", message.ColorOlive), a)

	if err := p.s.svc.dispatcher.Dispatch(a, "look"); err != nil {
		slog.Error("initial look", "name", a.Name(), "err", err)
	}
}

func (p *activePhase) handle(text string) {
	err := p.s.svc.dispatcher.Dispatch(p.s.avatar, text)
	if err == nil {
		return
	}

	var ue *commands.UserError
	if errors.As(err, &ue) {
		p.s.avatar.Send(message.NewColored(ue.Message+"\n", message.ColorMaroon))
		return
	}
	slog.Error("dispatching command", "name", p.s.avatar.Name(), "err", err)
}

// leave announces the departure to the room before membership is removed,
// so the notice reaches the avatar's (soon to be former) roommates.
func (p *activePhase) leave() {
	a := p.s.avatar
	if room := p.s.svc.world.FindByAvatar(a); room != nil {
		p.s.svc.world.Broadcast(room.Id(),
			message.NewColored(a.Name(), a.NameColor()).AddColored(" has left the room.\n", message.ColorOlive), a)
	}
	p.s.svc.world.RemoveAvatar(a)
}
