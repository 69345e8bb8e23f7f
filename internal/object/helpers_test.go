package object

import (
	"math"
	"time"
)

const frame = time.Second / referenceFPS

var testScreen = Screen{Width: 480, Height: 600}

// seqRand replays scripted values; exhausted sequences yield 0 and 0.5.
type seqRand struct {
	ints   []int
	floats []float64
}

func (r *seqRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *seqRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

type recorder struct {
	spawned []Object
	cues    []Cue
}

func (r *recorder) Spawn(obj Object) { r.spawned = append(r.spawned, obj) }
func (r *recorder) Cue(c Cue)        { r.cues = append(r.cues, c) }

func (r *recorder) count(pred func(Object) bool) int {
	n := 0
	for _, o := range r.spawned {
		if pred(o) {
			n++
		}
	}
	return n
}

func isKind(k ProjectileKind) func(Object) bool {
	return func(o Object) bool {
		p, ok := o.(*Projectile)
		return ok && p.Kind == k
	}
}

func ctxAt(now, delta time.Duration, rec *recorder, r Rand) UpdateContext {
	return UpdateContext{
		Now:     now,
		Delta:   delta,
		Screen:  testScreen,
		Spawner: rec,
		Cues:    rec,
		Rand:    r,
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
