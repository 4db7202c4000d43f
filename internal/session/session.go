package session

import (
	"github.com/pixil98/go-chat/internal/game"
)

// phase is one state of the onboarding/chat state machine. Exactly one
// phase is live per session; leave of the old phase completes before
// enter of the next begins.
type phase interface {
	enter()
	handle(text string)
	leave()
}

// Session is the per-participant state machine. It interprets inbound
// text according to the current phase: naming, color selection,
// confirmation, then active chat.
type Session struct {
	svc    *Service
	avatar *game.Avatar
	phase  phase
}

func (s *Session) setPhase(p phase) {
	if s.phase != nil {
		s.phase.leave()
	}
	s.phase = p
	p.enter()
}

func (s *Session) handle(text string) {
	s.phase.handle(text)
}

// end runs the live phase's leave hook. Called on disconnect, before the
// avatar is removed from the registry, so the active phase can still read
// room membership for its departure notice.
func (s *Session) end() {
	if s.phase != nil {
		s.phase.leave()
		s.phase = nil
	}
}
