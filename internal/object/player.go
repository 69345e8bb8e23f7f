package object

import (
	"time"

	"github.com/tomz197/lonely-shooter/internal/physics"
	"github.com/tomz197/lonely-shooter/internal/timer"
)

const (
	MaxShield       = 100
	MaxUpgrade      = 3
	MinUpgrade      = 1
	playerSize      = 70
	playerTopLimit  = 200 // the ship cannot fly into the upper part of the field
	playerBottomGap = 10
	shootDelay      = 250 * time.Millisecond
	hideDuration    = 1500 * time.Millisecond
	upgradeDuration = 4500 * time.Millisecond
)

var playerSpeed = perFrame(9)

// Player is the controlled ship.
type Player struct {
	Rect    physics.Rect
	Shield  int
	Lives   int
	Upgrade int
	Hidden  bool

	// LastDeath is the explosion spawned by the most recent destruction.
	LastDeath *Effect

	screen       Screen
	hideStart    time.Duration
	upgradeStart time.Duration
	lastShot     time.Duration
}

// NewPlayer creates a ship at the spawn point with full shield.
func NewPlayer(screen Screen, lives int, now time.Duration) *Player {
	p := &Player{
		Rect:         physics.Rect{W: playerSize, H: playerSize},
		Shield:       MaxShield,
		Lives:        lives,
		Upgrade:      MinUpgrade,
		screen:       screen,
		hideStart:    now,
		upgradeStart: now,
		lastShot:     now,
	}
	p.moveToSpawn()
	return p
}

// SpawnPoint returns the rect the ship (re)appears at: horizontally
// centred, just above the bottom edge.
func SpawnPoint(screen Screen) physics.Rect {
	return physics.Rect{
		X: screen.W()/2 - playerSize/2,
		Y: screen.H() - playerBottomGap - playerSize,
		W: playerSize,
		H: playerSize,
	}
}

func (p *Player) moveToSpawn() {
	p.Rect = SpawnPoint(p.screen)
}

// park moves the ship below the visible field.
func (p *Player) park() {
	p.Rect = physics.RectFromCenter(p.screen.W()/2, p.screen.H()+100, playerSize, playerSize)
}

// Active reports whether the ship is in play.
func (p *Player) Active() bool {
	return !p.Hidden
}

// Update applies timers, then intent-driven movement and shooting.
func (p *Player) Update(ctx UpdateContext) bool {
	if p.Hidden && p.Lives > 0 && timer.Elapsed(p.hideStart, ctx.Now, hideDuration) {
		p.Hidden = false
		p.moveToSpawn()
	}

	if p.Upgrade > MinUpgrade && timer.Elapsed(p.upgradeStart, ctx.Now, upgradeDuration) {
		p.Upgrade--
		p.upgradeStart = ctx.Now
	}

	if p.Hidden {
		return false
	}

	intent := ctx.Intent.Normalize()
	p.Rect.X += step(float64(intent.MoveX)*playerSpeed, ctx.Delta)
	p.Rect.Y += step(float64(intent.MoveY)*playerSpeed, ctx.Delta)
	p.clamp()

	if intent.Firing && p.Rect.Top() <= p.screen.H() {
		p.Shoot(ctx)
	}
	return false
}

// clamp keeps the ship inside its playable rectangle.
func (p *Player) clamp() {
	p.Rect.X = physics.Clamp(p.Rect.X, 0, p.screen.W()-p.Rect.W)
	if p.Rect.Top() < playerTopLimit {
		p.Rect.Y = playerTopLimit
	}
	floor := p.screen.H() - playerBottomGap
	if p.Rect.Bottom() > p.screen.H()+playerBottomGap {
		// Unreachable through movement alone.
		p.park()
		return
	}
	if p.Rect.Bottom() > floor {
		p.Rect.Y = floor - p.Rect.H
	}
}

// Shoot fires the weapons for the current upgrade level if the cooldown
// allows. Returns whether anything was fired.
func (p *Player) Shoot(ctx UpdateContext) bool {
	if p.Hidden || !timer.Elapsed(p.lastShot, ctx.Now, shootDelay) {
		return false
	}
	p.lastShot = ctx.Now

	cx, cy := p.Rect.Center()
	ctx.spawn(NewBullet(cx, p.Rect.Top()))
	ctx.cue(CueBulletFired)

	if p.Upgrade >= 2 {
		ctx.spawn(NewMissile(p.Rect.Left(), cy))
	}
	if p.Upgrade >= 3 {
		ctx.spawn(NewMissile(p.Rect.Right(), cy))
	}
	if p.Upgrade >= 2 {
		ctx.cue(CueMissileFired)
	}
	return true
}

// Damage lowers the shield and destroys the ship when it runs out.
// A hidden ship takes no damage. Returns true if this hit destroyed the ship.
func (p *Player) Damage(amount int, ctx UpdateContext) bool {
	if p.Hidden || amount <= 0 {
		return false
	}
	p.Shield -= amount
	if p.Shield > 0 {
		return false
	}
	p.Shield = 0
	p.destroy(ctx)
	return true
}

// destroy leaves an explosion behind, costs a life and hides the ship.
func (p *Player) destroy(ctx UpdateContext) {
	cx, cy := p.Rect.Center()
	p.LastDeath = NewExplosion(ExplosionShip, cx, cy, ctx.Now)
	ctx.spawn(p.LastDeath)
	ctx.cue(CueShipExplosion)

	if p.Lives > 0 {
		p.Lives--
	}
	p.Shield = MaxShield
	p.Hidden = true
	p.hideStart = ctx.Now
	p.park()
}

// AddShield restores shield up to the maximum.
func (p *Player) AddShield(amount int) {
	p.Shield += amount
	if p.Shield > MaxShield {
		p.Shield = MaxShield
	}
	if p.Shield < 0 {
		p.Shield = 0
	}
}

// UpgradePower raises the weapon level (capped) and restarts the decay timer.
func (p *Player) UpgradePower(now time.Duration) {
	if p.Upgrade < MaxUpgrade {
		p.Upgrade++
	}
	p.upgradeStart = now
}

// Body returns the ship's collision rect.
func (p *Player) Body() physics.Body {
	return physics.Body{Rect: p.Rect}
}

// Sprite implements Object.
func (p *Player) Sprite() Sprite {
	return Sprite{Key: "player", Rect: p.Rect}
}
