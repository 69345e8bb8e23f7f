package loop

import "github.com/tomz197/lonely-shooter/internal/object"

// SessionState is the phase of a play session.
type SessionState int

const (
	StateMenu SessionState = iota
	StatePlaying
	StateGameOverPending
)

func (s SessionState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOverPending:
		return "game_over_pending"
	default:
		return "unknown"
	}
}

// Session holds the score and the menu/playing state.
type Session struct {
	State SessionState
	Score int
}

// Start resets the score and enters play.
func (s *Session) Start() {
	s.State = StatePlaying
	s.Score = 0
}

// AddScore adds n points. The score never drops below zero.
func (s *Session) AddScore(n int) {
	s.Score += n
	if s.Score < 0 {
		s.Score = 0
	}
}

// Advance moves a playing session to GameOverPending once the player is out
// of lives and the last destruction explosion has finished. It reports
// whether the transition happened; it happens at most once per session.
func (s *Session) Advance(p *object.Player) bool {
	if s.State != StatePlaying || p == nil || p.Lives > 0 {
		return false
	}
	if p.LastDeath == nil || !p.LastDeath.Done() {
		return false
	}
	s.State = StateGameOverPending
	return true
}

// ReturnToMenu leaves the session. The score is kept for display.
func (s *Session) ReturnToMenu() {
	s.State = StateMenu
}
