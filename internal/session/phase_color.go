package session

import (
	"strings"

	"golang.org/x/text/width"

	"github.com/pixil98/go-chat/internal/display"
	"github.com/pixil98/go-chat/internal/message"
)

// colorPhase lets the participant pick a name color from the fixed
// palette, matched case-insensitively.
type colorPhase struct {
	s *Session
}

func (p *colorPhase) enter() {
	p.s.avatar.Send(message.NewColored("\nChoose a color for your name.\n", message.ColorWhite))
	for i, color := range message.Palette {
		p.s.avatar.Send(message.NewColored(display.Pad(color+" ", display.RosterColumnWidth), color))
		if i%display.RosterRowLength == display.RosterRowLength-1 {
			p.s.avatar.Send(message.New("\n"))
		}
	}
}

func (p *colorPhase) handle(text string) {
	choice := strings.ToLower(width.Narrow.String(text))
	if !message.PaletteContains(choice) {
		p.s.avatar.Send(message.NewColored("Please choose a color from the list.\n", message.ColorMaroon))
		p.enter()
		return
	}

	p.s.avatar.SetNameColor(choice)
	p.s.setPhase(&confirmPhase{s: p.s})
}

func (p *colorPhase) leave() {}
