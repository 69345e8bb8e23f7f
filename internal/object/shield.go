package object

import "github.com/tomz197/lonely-shooter/internal/physics"

const (
	shieldOverlaySize = 85
	shieldVisibleFrom = 31
)

// ShieldOverlay is the energy bubble drawn around the ship while the
// shield is strong. It never collides.
type ShieldOverlay struct {
	Rect   physics.Rect
	player *Player
	screen Screen
}

// NewShieldOverlay attaches an overlay to p.
func NewShieldOverlay(p *Player, screen Screen) *ShieldOverlay {
	s := &ShieldOverlay{player: p, screen: screen}
	s.follow()
	return s
}

// Update tracks the ship, or parks off-screen when the shield is weak.
func (s *ShieldOverlay) Update(UpdateContext) bool {
	s.follow()
	return false
}

// Visible reports whether the overlay is over the ship.
func (s *ShieldOverlay) Visible() bool {
	return s.player.Active() && s.player.Shield >= shieldVisibleFrom
}

func (s *ShieldOverlay) follow() {
	if !s.Visible() {
		s.Rect = physics.RectFromCenter(s.screen.W()/2, s.screen.H()+115, shieldOverlaySize, shieldOverlaySize)
		return
	}
	cx, cy := s.player.Rect.Center()
	s.Rect = physics.RectFromCenter(cx, cy, shieldOverlaySize, shieldOverlaySize)
}

// Sprite implements Object.
func (s *ShieldOverlay) Sprite() Sprite {
	return Sprite{Key: "shield", Rect: s.Rect}
}
