package loop

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tomz197/lonely-shooter/internal/config"
	"github.com/tomz197/lonely-shooter/internal/object"
)

const frame = time.Second / 30

// scriptRand replays scripted values; exhausted sequences yield 0 and 0.5.
type scriptRand struct {
	ints   []int
	floats []float64
}

func (r *scriptRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

type cueLog []object.Cue

func (c *cueLog) Cue(cue object.Cue) { *c = append(*c, cue) }

func (c cueLog) count(cue object.Cue) int {
	n := 0
	for _, x := range c {
		if x == cue {
			n++
		}
	}
	return n
}

// emptyField is the default field with nothing but the player in it.
func emptyField() config.GameConfig {
	cfg := config.Default().Game
	cfg.Enemies = 0
	cfg.Asteroids = 0
	return cfg
}

type testGame struct {
	*Game
	rng  *scriptRand
	cues *cueLog
	logs *observer.ObservedLogs
}

// startTestGame returns a game already playing at time zero.
func startTestGame(cfg config.GameConfig) *testGame {
	core, logs := observer.New(zapcore.DebugLevel)
	tg := &testGame{rng: &scriptRand{}, cues: &cueLog{}, logs: logs}
	tg.Game = NewGame(Options{
		Config: &cfg,
		Rand:   tg.rng,
		Cues:   tg.cues,
		Logger: zap.New(core),
	})
	tg.StartSession(0)
	return tg
}

// effects counts the live effects of a kind.
func (g *Game) effects(kind object.EffectKind) int {
	n := 0
	for _, obj := range g.world.Objects {
		if fx, ok := obj.(*object.Effect); ok && fx.Kind == kind {
			n++
		}
	}
	return n
}

// still builds an asteroid that does not move, with its top-left at (x, y).
func still(variant int, x, y float64) *object.Asteroid {
	a := object.NewAsteroid(&scriptRand{ints: []int{variant}}, object.Screen{Width: 480, Height: 600}, 0)
	a.VX, a.VY, a.RotationSpeed = 0, 0, 0
	a.Rect.X, a.Rect.Y = x, y
	return a
}

// enemyAt builds an enemy with its top-left at (x, y), held outside the firing band.
func enemyAt(x, y float64) *object.EnemyShip {
	e := object.NewEnemyShip(&scriptRand{}, object.Screen{Width: 480, Height: 600}, 0)
	e.Rect.X, e.Rect.Y = x, y
	e.ShotsPerVolley = 0
	return e
}
