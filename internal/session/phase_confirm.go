package session

import (
	"strings"

	"golang.org/x/text/width"

	"github.com/pixil98/go-chat/internal/message"
)

// confirmPhase shows the chosen name in its chosen color and asks for a
// yes/no. "no" restarts onboarding from the name prompt.
type confirmPhase struct {
	s *Session
}

func (p *confirmPhase) enter() {
	a := p.s.avatar
	a.Send(message.NewColored("\nAre you happy with this name and color? ", message.ColorWhite).
		AddColored("(yes/no)\n", message.ColorYellow))
	a.Send(message.NewColored(a.Name()+"\n", a.NameColor()))
}

func (p *confirmPhase) handle(text string) {
	switch strings.ToLower(width.Narrow.String(text)) {
	case "yes":
		p.s.setPhase(&activePhase{s: p.s})
	case "no":
		p.s.avatar.Rename("")
		p.s.setPhase(&namePhase{s: p.s})
	default:
		p.enter()
	}
}

func (p *confirmPhase) leave() {}
