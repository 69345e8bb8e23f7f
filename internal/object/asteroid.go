package object

import (
	"math"
	"time"

	"github.com/tomz197/lonely-shooter/internal/physics"
	"github.com/tomz197/lonely-shooter/internal/timer"
)

// AsteroidVariant is one of the rock images the field is populated from.
type AsteroidVariant struct {
	Key   string
	Width float64
}

var asteroidVariants = []AsteroidVariant{
	{Key: "asteroid_medium", Width: 45},
	{Key: "asteroid_medium", Width: 50},
	{Key: "asteroid_medium", Width: 55},
	{Key: "asteroid_big", Width: 100},
	{Key: "asteroid_tiny", Width: 30},
}

const asteroidRotationInterval = 50 * time.Millisecond

// Asteroid is a falling, rotating rock that respawns above the screen
// when it drifts out of the play field.
type Asteroid struct {
	lifecycle
	Variant       AsteroidVariant
	Rect          physics.Rect
	Radius        float64 // from the unrotated image; rotation never changes it
	VX, VY        float64 // px/s
	Angle         float64 // degrees
	RotationSpeed float64 // degrees per rotation tick
	lastRotation  time.Duration
}

// NewAsteroid creates an asteroid of a random variant above the screen.
func NewAsteroid(r Rand, screen Screen, now time.Duration) *Asteroid {
	v := asteroidVariants[r.Intn(len(asteroidVariants))]
	a := &Asteroid{
		Variant: v,
		Radius:  math.Floor(v.Width * .90 / 2),
		Rect: physics.Rect{
			X: float64(randRange(r, -25, screen.Width+25)),
			Y: float64(randRange(r, -200, -100)),
			W: v.Width,
			H: v.Width,
		},
		VY:            perFrame(float64(randRange(r, 5, 12))),
		VX:            perFrame(float64(randRange(r, -2, 2))),
		RotationSpeed: float64(randRange(r, -7, 7)),
		lastRotation:  now,
	}
	return a
}

// ScoreFactor is subtracted from the base reward, so small rocks are worth more.
func (a *Asteroid) ScoreFactor() int {
	return int(a.Radius)
}

// Update rotates and moves the asteroid, respawning it when it leaves the field.
func (a *Asteroid) Update(ctx UpdateContext) bool {
	if a.destroyed {
		return true
	}

	if timer.Elapsed(a.lastRotation, ctx.Now, asteroidRotationInterval) {
		a.lastRotation = ctx.Now
		a.Angle = math.Mod(a.Angle+a.RotationSpeed+360, 360)
	}

	a.Rect.Y += step(a.VY, ctx.Delta)
	a.Rect.X += step(a.VX, ctx.Delta)

	w := ctx.Screen.W()
	if a.Rect.Top() > ctx.Screen.H()+10 || a.Rect.Left() < -a.Rect.W || a.Rect.Right() > w+a.Rect.W {
		a.Rect.X = float64(randRange(ctx.Rand, 0, ctx.Screen.Width-int(a.Rect.W)))
		a.Rect.Y = float64(randRange(ctx.Rand, -100, -20))
		a.VY = perFrame(float64(randRange(ctx.Rand, 3, 10)))
	}
	return false
}

// Body returns the asteroid's collision circle.
func (a *Asteroid) Body() physics.Body {
	return physics.Body{Rect: a.Rect, Radius: a.Radius}
}

// Sprite implements Object.
func (a *Asteroid) Sprite() Sprite {
	return Sprite{Key: a.Variant.Key, Rect: a.Rect, Angle: a.Angle}
}
