package object

import (
	"time"

	"github.com/tomz197/lonely-shooter/internal/physics"
	"github.com/tomz197/lonely-shooter/internal/timer"
)

// EnemyPhase is the stage of an enemy's descent.
type EnemyPhase int

const (
	PhaseApproaching EnemyPhase = iota
	PhaseFiring
	PhaseDiving
	PhaseOffscreen
)

func (p EnemyPhase) String() string {
	switch p {
	case PhaseApproaching:
		return "approaching"
	case PhaseFiring:
		return "firing"
	case PhaseDiving:
		return "diving"
	case PhaseOffscreen:
		return "offscreen"
	default:
		return "unknown"
	}
}

// Descent bands, measured on the ship's bottom edge.
const (
	fireBandTop    = 50
	fireBandBottom = 130
	slowUntil      = 120
	diveFrom       = 140
)

const (
	enemySize           = 60
	enemyShotDelay      = 500 * time.Millisecond
	enemyShotsPerVolley = 2
)

var (
	enemyApproachSpeed = perFrame(4)
	enemyPauseSpeed    = perFrame(1)
	enemyDiveSpeed     = perFrame(30)
)

// EnemyShip descends, fires a volley, then divebombs through the bottom
// of the screen and respawns above it.
type EnemyShip struct {
	lifecycle
	Rect           physics.Rect
	Phase          EnemyPhase
	ShotsPerVolley int
	shotsFired     int
	lastShot       time.Duration
}

// NewEnemyShip creates an enemy at a random position above the screen.
func NewEnemyShip(r Rand, screen Screen, now time.Duration) *EnemyShip {
	cx := float64(randRange(r, 90, screen.Width-90))
	bottom := float64(randRange(r, -150, -20))
	return &EnemyShip{
		Rect:           physics.Rect{X: cx - enemySize/2, Y: bottom - enemySize, W: enemySize, H: enemySize},
		ShotsPerVolley: enemyShotsPerVolley,
		lastShot:       now,
	}
}

// Update runs one step of the descent state machine.
func (e *EnemyShip) Update(ctx UpdateContext) bool {
	if e.destroyed {
		return true
	}

	switch bottom := e.Rect.Bottom(); {
	case bottom <= slowUntil:
		e.Rect.Y += step(enemyApproachSpeed, ctx.Delta)
	case bottom < diveFrom:
		e.Rect.Y += step(enemyPauseSpeed, ctx.Delta)
	default:
		e.divebomb(ctx)
	}

	// The band is tested at the position the ship ends the update at.
	if bottom := e.Rect.Bottom(); bottom > fireBandTop && bottom < fireBandBottom {
		e.shoot(ctx)
	}

	e.advancePhase()

	if e.Rect.Top() > ctx.Screen.H() {
		e.Phase = PhaseOffscreen
		e.respawn(ctx)
	}
	return false
}

// advancePhase moves at most one phase forward per update, so a large
// delta can never skip the firing phase.
func (e *EnemyShip) advancePhase() {
	target := PhaseApproaching
	switch bottom := e.Rect.Bottom(); {
	case bottom >= diveFrom:
		target = PhaseDiving
	case bottom > fireBandTop:
		target = PhaseFiring
	}
	if target > e.Phase {
		e.Phase++
	}
}

func (e *EnemyShip) shoot(ctx UpdateContext) {
	if e.shotsFired >= e.ShotsPerVolley {
		return
	}
	if !timer.Elapsed(e.lastShot, ctx.Now, enemyShotDelay) {
		return
	}
	e.lastShot = ctx.Now
	e.shotsFired++
	cx, _ := e.Rect.Center()
	ctx.spawn(NewEnemyBullet(cx, e.Rect.Bottom()))
	ctx.cue(CueEnemyFired)
}

func (e *EnemyShip) divebomb(ctx UpdateContext) {
	if ctx.Delta <= 0 {
		return
	}
	cx, cy := e.Rect.Center()
	ctx.spawn(NewBoost(cx, cy, ctx.Now))
	e.Rect.Y += step(enemyDiveSpeed, ctx.Delta)
}

func (e *EnemyShip) respawn(ctx UpdateContext) {
	cx := float64(randRange(ctx.Rand, 50, ctx.Screen.Width-50))
	e.Rect.X = cx - e.Rect.W/2
	e.Rect.Y = float64(randRange(ctx.Rand, -200, -50))
	e.Phase = PhaseApproaching
	e.shotsFired = 0
}

// Body returns the enemy's collision rect.
func (e *EnemyShip) Body() physics.Body {
	return physics.Body{Rect: e.Rect}
}

// Sprite implements Object.
func (e *EnemyShip) Sprite() Sprite {
	return Sprite{Key: "enemy", Rect: e.Rect}
}
