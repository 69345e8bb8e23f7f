package object

import (
	"github.com/tomz197/lonely-shooter/internal/physics"
)

// ProjectileKind distinguishes the straight-line movers.
type ProjectileKind int

const (
	KindBullet ProjectileKind = iota
	KindMissile
	KindEnemyBullet
)

// hudBand is the height of the top status bar. Player shots vanish under it.
const hudBand = 35

type projectileSpec struct {
	key    string
	w, h   float64
	speedY float64 // px/s, negative is up
}

var projectileSpecs = [...]projectileSpec{
	KindBullet:      {key: "bullet", w: 8, h: 23, speedY: perFrame(-15)},
	KindMissile:     {key: "missile", w: 25, h: 38, speedY: perFrame(-10)},
	KindEnemyBullet: {key: "enemy_bullet", w: 8, h: 23, speedY: perFrame(15)},
}

// Projectile is a bullet, missile or enemy bullet.
type Projectile struct {
	lifecycle
	Kind ProjectileKind
	Rect physics.Rect
	VY   float64 // px/s, sign gives direction
}

// newProjectile places a projectile with its horizontal centre at x and its bottom at y.
func newProjectile(kind ProjectileKind, x, y float64) *Projectile {
	spec := projectileSpecs[kind]
	return &Projectile{
		Kind: kind,
		Rect: physics.Rect{X: x - spec.w/2, Y: y - spec.h, W: spec.w, H: spec.h},
		VY:   spec.speedY,
	}
}

// NewBullet creates a player bullet centred on x with its bottom at y.
func NewBullet(x, y float64) *Projectile { return newProjectile(KindBullet, x, y) }

// NewMissile creates a player side missile centred on x with its bottom at y.
func NewMissile(x, y float64) *Projectile { return newProjectile(KindMissile, x, y) }

// NewEnemyBullet creates an enemy shot centred on x with its bottom at y.
func NewEnemyBullet(x, y float64) *Projectile { return newProjectile(KindEnemyBullet, x, y) }

// Hostile reports whether the projectile was fired by an enemy.
func (p *Projectile) Hostile() bool {
	return p.Kind == KindEnemyBullet
}

// Update moves the projectile and removes it once it leaves the play area.
func (p *Projectile) Update(ctx UpdateContext) bool {
	if p.destroyed {
		return true
	}

	p.Rect.Y += step(p.VY, ctx.Delta)

	if p.Hostile() {
		return p.Rect.Bottom() > ctx.Screen.H()
	}
	return p.Rect.Bottom() < hudBand
}

// Body returns the projectile's collision rect.
func (p *Projectile) Body() physics.Body {
	return physics.Body{Rect: p.Rect}
}

// Sprite implements Object.
func (p *Projectile) Sprite() Sprite {
	return Sprite{Key: projectileSpecs[p.Kind].key, Rect: p.Rect}
}
