package session

import (
	"errors"
	"fmt"

	"github.com/pixil98/go-chat/internal/game"
	"github.com/pixil98/go-chat/internal/message"
)

// namePhase is the initial onboarding phase: prompt for a name until a
// valid, unused one arrives. Failures never mutate the stored name.
type namePhase struct {
	s *Session
}

func (p *namePhase) enter() {
	p.s.avatar.Send(message.NewColored("\nPlease enter a name.\n", message.ColorWhite))
}

func (p *namePhase) handle(text string) {
	if !p.checkName(text) {
		p.enter()
		return
	}

	p.s.avatar.Rename(text)
	p.s.setPhase(&colorPhase{s: p.s})
}

func (p *namePhase) leave() {}

func (p *namePhase) checkName(name string) bool {
	switch err := game.CheckName(name); {
	case errors.Is(err, game.ErrNameInvalidCharacter):
		p.s.avatar.Send(message.NewColored("Names may not contain symbols or spaces.\n", message.ColorMaroon))
		return false
	case errors.Is(err, game.ErrNameTooLong):
		p.s.avatar.Send(message.NewColored(
			fmt.Sprintf("Names longer than %d bytes cannot be used.\n", game.MaxNameLength), message.ColorMaroon))
		return false
	}

	if p.s.svc.registry.FindByName(name) != nil {
		p.s.avatar.Send(message.NewColored("That name is already taken.\n", message.ColorMaroon))
		return false
	}

	return true
}
