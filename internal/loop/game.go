package loop

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/tomz197/lonely-shooter/internal/config"
	"github.com/tomz197/lonely-shooter/internal/object"
	"github.com/tomz197/lonely-shooter/internal/physics"
	"github.com/tomz197/lonely-shooter/internal/timer"
)

// Options configures a Game.
type Options struct {
	// Config is used as given after validation, so zero counts and chances
	// stay zero. Start from config.Default().Game to change single values.
	// Nil plays with the defaults.
	Config *config.GameConfig
	Rand   object.Rand
	Cues   object.CueSink
	Logger *zap.Logger
}

// HUD is the read-only status shown during play.
type HUD struct {
	State   SessionState
	Score   int
	Lives   int
	Shield  int
	Upgrade int
}

// Game is one player's simulation: the world, the session and the rules
// that connect them. It is not safe for concurrent use.
type Game struct {
	cfg    config.GameConfig
	screen object.Screen
	rng    object.Rand
	cues   object.CueSink
	log    *zap.Logger

	world   *World
	grid    *physics.SpatialGrid
	session Session
	player  *object.Player
	shield  *object.ShieldOverlay

	lastStep time.Duration
}

// NewGame creates a game sitting at the menu.
func NewGame(opts Options) *Game {
	full := config.Default()
	if opts.Config != nil {
		full.Game = *opts.Config
	}
	full.Validate()
	cfg := full.Game

	rng := opts.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	cues := opts.Cues
	if cues == nil {
		cues = object.Silent
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	screen := object.Screen{Width: cfg.Width, Height: cfg.Height}
	return &Game{
		cfg:    cfg,
		screen: screen,
		rng:    rng,
		cues:   cues,
		log:    logger,
		world:  NewWorld(),
		grid:   physics.NewSpatialGrid(screen.W(), screen.H(), gridCellSize),
	}
}

// Screen returns the play field size.
func (g *Game) Screen() object.Screen { return g.screen }

// State returns the session state.
func (g *Game) State() SessionState { return g.session.State }

// Score returns the current (or last) session score.
func (g *Game) Score() int { return g.session.Score }

// Player returns the session's ship, or nil at the menu.
func (g *Game) Player() *object.Player { return g.player }

// StartSession replaces the whole population with a fresh one: player,
// shield overlay, the starting enemies and asteroids.
func (g *Game) StartSession(now time.Duration) {
	g.world.Reset()

	g.player = object.NewPlayer(g.screen, g.cfg.Lives, now)
	g.shield = object.NewShieldOverlay(g.player, g.screen)
	g.world.Add(g.player)
	g.world.Add(g.shield)
	for i := 0; i < g.cfg.Enemies; i++ {
		g.world.Add(object.NewEnemyShip(g.rng, g.screen, now))
	}
	for i := 0; i < g.cfg.Asteroids; i++ {
		g.world.Add(object.NewAsteroid(g.rng, g.screen, now))
	}

	g.session.Start()
	g.lastStep = now
	g.log.Info("session started",
		zap.Int("lives", g.player.Lives),
		zap.Int("enemies", len(g.world.Enemies)),
		zap.Int("asteroids", len(g.world.Asteroids)),
	)
}

// ReturnToMenu tears the population down.
func (g *Game) ReturnToMenu() {
	g.log.Info("returned to menu", zap.Int("score", g.session.Score))
	g.world.Reset()
	g.player = nil
	g.shield = nil
	g.session.ReturnToMenu()
}

// Step advances a playing session to now: every object updates once with
// the same timestamp, then collisions are resolved, then the session
// checks for game over. Outside play it does nothing.
func (g *Game) Step(now time.Duration, intent object.Intent) SessionState {
	if g.session.State != StatePlaying {
		return g.session.State
	}

	delta := timer.Since(g.lastStep, now)
	g.lastStep = now

	ctx := object.UpdateContext{
		Now:     now,
		Delta:   delta,
		Intent:  intent.Normalize(),
		Screen:  g.screen,
		Spawner: g.world,
		Cues:    g.cues,
		Rand:    g.rng,
	}

	g.world.Update(ctx)
	g.resolveCollisions(ctx)
	// The overlay shows the ship as the frame ends, after any hit.
	g.shield.Update(ctx)

	if g.session.Advance(g.player) {
		g.log.Info("game over", zap.Int("score", g.session.Score))
	}
	return g.session.State
}

// Snapshot returns the render view of every live object in draw order.
func (g *Game) Snapshot() []object.Sprite {
	return g.world.Sprites()
}

// HUD returns the status values for display.
func (g *Game) HUD() HUD {
	h := HUD{State: g.session.State, Score: g.session.Score}
	if g.player != nil {
		h.Lives = g.player.Lives
		h.Shield = g.player.Shield
		h.Upgrade = g.player.Upgrade
	}
	return h
}
