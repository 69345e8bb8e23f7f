package object

import (
	"github.com/tomz197/lonely-shooter/internal/physics"
)

// PowerUpKind is the benefit a pickup grants.
type PowerUpKind int

const (
	PowerUpShield PowerUpKind = iota
	PowerUpMissile
)

var powerUpSizes = [...]float64{
	PowerUpShield:  35,
	PowerUpMissile: 45,
}

var powerUpFallSpeed = perFrame(6)

// PowerUp is a falling pickup.
type PowerUp struct {
	lifecycle
	Kind PowerUpKind
	Rect physics.Rect
}

// NewPowerUp creates a power-up of the given kind centred on (x, y).
func NewPowerUp(kind PowerUpKind, x, y float64) *PowerUp {
	size := powerUpSizes[kind]
	return &PowerUp{
		Kind: kind,
		Rect: physics.RectFromCenter(x, y, size, size),
	}
}

// NewRandomPowerUp picks the kind uniformly.
func NewRandomPowerUp(r Rand, x, y float64) *PowerUp {
	return NewPowerUp(PowerUpKind(r.Intn(2)), x, y)
}

// Update lets the power-up fall and drops it once it is below the screen.
func (p *PowerUp) Update(ctx UpdateContext) bool {
	if p.destroyed {
		return true
	}
	p.Rect.Y += step(powerUpFallSpeed, ctx.Delta)
	return p.Rect.Top() > ctx.Screen.H()+10
}

// Body returns the pickup rect.
func (p *PowerUp) Body() physics.Body {
	return physics.Body{Rect: p.Rect}
}

// Sprite implements Object.
func (p *PowerUp) Sprite() Sprite {
	key := "powerup_shield"
	if p.Kind == PowerUpMissile {
		key = "powerup_missile"
	}
	return Sprite{Key: key, Rect: p.Rect}
}
