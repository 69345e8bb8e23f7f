package object

import (
	"sync"
	"time"

	"github.com/tomz197/lonely-shooter/internal/physics"
	"github.com/tomz197/lonely-shooter/internal/timer"
)

// EffectKind selects an animation.
type EffectKind int

const (
	ExplosionLarge EffectKind = iota
	ExplosionSmall
	ExplosionShip
	Boost
)

type effectSpec struct {
	key      string
	size     float64
	frames   int
	interval time.Duration
}

var effectSpecs = [...]effectSpec{
	ExplosionLarge: {key: "explosion_large", size: 75, frames: 5, interval: 100 * time.Millisecond},
	ExplosionSmall: {key: "explosion_small", size: 45, frames: 5, interval: 100 * time.Millisecond},
	ExplosionShip:  {key: "explosion_ship", size: 100, frames: 10, interval: 100 * time.Millisecond},
	Boost:          {key: "boost", size: 50, frames: 8, interval: 35 * time.Millisecond},
}

// boostPool recycles boost trails, which a diving enemy drops every frame.
var boostPool = sync.Pool{
	New: func() any {
		return &Effect{}
	},
}

// Effect is a finite animation that removes itself after its last frame.
type Effect struct {
	lifecycle
	Kind      EffectKind
	Rect      physics.Rect
	Frame     int
	lastFrame time.Duration
	pooled    bool
}

// NewExplosion creates an explosion centred on (x, y) starting at now.
func NewExplosion(kind EffectKind, x, y float64, now time.Duration) *Effect {
	e := &Effect{}
	e.reset(kind, x, y, now)
	return e
}

// NewBoost takes a boost trail from the pool.
func NewBoost(x, y float64, now time.Duration) *Effect {
	e := boostPool.Get().(*Effect)
	e.reset(Boost, x, y, now)
	e.pooled = true
	return e
}

func (e *Effect) reset(kind EffectKind, x, y float64, now time.Duration) {
	spec := effectSpecs[kind]
	*e = Effect{
		Kind:      kind,
		Rect:      physics.RectFromCenter(x, y, spec.size, spec.size),
		lastFrame: now,
	}
}

// Release returns pooled effects to the pool. Explosions are not pooled
// because the player keeps a reference to its last death explosion.
func (e *Effect) Release() {
	if !e.pooled {
		return
	}
	e.pooled = false
	boostPool.Put(e)
}

// Frames returns the total number of frames of the animation.
func (e *Effect) Frames() int {
	return effectSpecs[e.Kind].frames
}

// Done reports whether the animation has fully played.
func (e *Effect) Done() bool {
	return e.destroyed || e.Frame >= e.Frames()
}

// Update advances the animation by at most one frame.
func (e *Effect) Update(ctx UpdateContext) bool {
	if e.Done() {
		e.MarkDestroyed()
		return true
	}
	spec := effectSpecs[e.Kind]
	if !timer.Elapsed(e.lastFrame, ctx.Now, spec.interval) {
		return false
	}
	e.lastFrame = ctx.Now
	e.Frame++
	if e.Frame >= spec.frames {
		e.MarkDestroyed()
		return true
	}
	return false
}

// Sprite implements Object.
func (e *Effect) Sprite() Sprite {
	return Sprite{Key: effectSpecs[e.Kind].key, Rect: e.Rect, Frame: e.Frame}
}
