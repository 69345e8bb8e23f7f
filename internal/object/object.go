package object

import (
	"time"

	"github.com/tomz197/lonely-shooter/internal/physics"
)

// referenceFPS is the frame rate the per-frame speeds below were tuned at.
// Speeds are stored per second so movement scales with the frame delta.
const referenceFPS = 30

// perFrame converts a per-reference-frame speed to pixels per second.
func perFrame(v float64) float64 {
	return v * referenceFPS
}

// step returns the distance covered at speed (px/s) during dt.
func step(speed float64, dt time.Duration) float64 {
	return speed * dt.Seconds()
}

// Spawner allows objects to spawn new objects during update.
// Spawned objects join the world when the current pass is committed.
type Spawner interface {
	Spawn(obj Object)
}

// Intent is the abstract input for one frame.
type Intent struct {
	MoveX  int // -1 left, 0, 1 right
	MoveY  int // -1 up, 0, 1 down
	Firing bool
}

// Normalize folds out-of-range axis values onto {-1, 0, 1}.
func (i Intent) Normalize() Intent {
	i.MoveX = sign(i.MoveX)
	i.MoveY = sign(i.MoveY)
	return i
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Rand is the random source behind every randomized outcome.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// randRange returns an int in [lo, hi), or lo when the range is empty.
func randRange(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo)
}

// Screen is the size of the play field in pixels.
type Screen struct {
	Width  int
	Height int
}

// W returns the width as a float.
func (s Screen) W() float64 { return float64(s.Width) }

// H returns the height as a float.
func (s Screen) H() float64 { return float64(s.Height) }

// UpdateContext provides all the information an object needs during update.
// Now is captured once per frame and shared by every object.
type UpdateContext struct {
	Now     time.Duration
	Delta   time.Duration
	Intent  Intent
	Screen  Screen
	Spawner Spawner
	Cues    CueSink
	Rand    Rand
}

// cue emits c if a sink is attached.
func (ctx UpdateContext) cue(c Cue) {
	if ctx.Cues != nil {
		ctx.Cues.Cue(c)
	}
}

// spawn queues obj if a spawner is attached.
func (ctx UpdateContext) spawn(obj Object) {
	if ctx.Spawner != nil {
		ctx.Spawner.Spawn(obj)
	}
}

// Object is an updatable game entity.
type Object interface {
	// Update advances the object to ctx.Now. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool)

	// Sprite describes the object for the renderer.
	Sprite() Sprite
}

// Collider is implemented by objects that take part in collision tests.
type Collider interface {
	Body() physics.Body
}

// Destructible is implemented by objects that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal at the end of the current pass.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// lifecycle implements Destructible for embedding.
type lifecycle struct {
	destroyed bool
}

func (l *lifecycle) MarkDestroyed()    { l.destroyed = true }
func (l *lifecycle) IsDestroyed() bool { return l.destroyed }

// Sprite is the read-only render view of an object.
type Sprite struct {
	Key   string
	Rect  physics.Rect
	Frame int
	Angle float64 // degrees, visual only
}
