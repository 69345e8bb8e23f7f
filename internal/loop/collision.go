package loop

import (
	"go.uber.org/zap"

	"github.com/tomz197/lonely-shooter/internal/object"
	"github.com/tomz197/lonely-shooter/internal/physics"
)

// collidable is an object with a collision body.
type collidable interface {
	object.Object
	object.Collider
}

// bulletHit is a target together with every player shot that reached it.
type bulletHit[T collidable] struct {
	target  T
	bullets []*object.Projectile
}

// resolveCollisions tests the group pairs in a fixed order. Every pair is
// matched against the current membership first, then its consequences are
// applied, then the world is flushed before the next pair looks at it.
func (g *Game) resolveCollisions(ctx object.UpdateContext) {
	g.bulletsVsAsteroids(ctx)
	g.world.Flush()

	g.bulletsVsEnemies(ctx)
	g.world.Flush()

	g.playerVsEnemyBullets(ctx)
	g.world.Flush()

	g.playerVsAsteroids(ctx)
	g.world.Flush()

	g.playerVsEnemies(ctx)
	g.world.Flush()

	g.playerVsPowerUps(ctx)
	g.world.Flush()
}

// matchBullets pairs each live target with the live player shots touching it.
// Shots and targets are tested as circles. A shot is claimed by the first
// target in group order that it touches.
func matchBullets[T collidable](grid *physics.SpatialGrid, targets []T, bullets []*object.Projectile) []bulletHit[T] {
	if len(targets) == 0 || len(bullets) == 0 {
		return nil
	}

	grid.Clear()
	for i, b := range bullets {
		if !b.IsDestroyed() {
			cx, cy := b.Rect.Center()
			grid.Insert(cx, cy, i)
		}
	}

	claimed := make([]bool, len(bullets))
	var hits []bulletHit[T]
	for _, t := range targets {
		if !Alive(t) {
			continue
		}
		body := t.Body().AsCircle()
		cx, cy := body.Rect.Center()

		var matched []*object.Projectile
		grid.QueryAround(cx, cy, func(i int) bool {
			if claimed[i] {
				return false
			}
			if physics.Collide(body, bullets[i].Body().AsCircle()) {
				claimed[i] = true
				matched = append(matched, bullets[i])
			}
			return false
		})
		if len(matched) > 0 {
			hits = append(hits, bulletHit[T]{target: t, bullets: matched})
		}
	}
	return hits
}

// touchingPlayer returns the live members of group whose rect overlaps the
// ship, in group order. A hidden ship touches nothing.
func touchingPlayer[T collidable](p *object.Player, group []T) []T {
	if p == nil || !p.Active() {
		return nil
	}
	var hits []T
	for _, o := range group {
		if Alive(o) && o.Body().Rect.Intersects(p.Rect) {
			hits = append(hits, o)
		}
	}
	return hits
}

func (g *Game) bulletsVsAsteroids(ctx object.UpdateContext) {
	for _, hit := range matchBullets(g.grid, g.world.Asteroids, g.world.Bullets) {
		a := hit.target
		for _, b := range hit.bullets {
			g.world.Remove(b)
		}
		g.world.Remove(a)

		g.session.AddScore(AsteroidBaseScore - a.ScoreFactor())
		g.cues.Cue(object.CueAsteroidExplosion)
		cx, cy := a.Rect.Center()
		g.world.Spawn(object.NewExplosion(object.ExplosionLarge, cx, cy, ctx.Now))
		g.dropPowerUp(g.cfg.AsteroidPowerUpChance, cx, cy)
		g.world.Spawn(object.NewAsteroid(g.rng, g.screen, ctx.Now))
	}
}

func (g *Game) bulletsVsEnemies(ctx object.UpdateContext) {
	for _, hit := range matchBullets(g.grid, g.world.Enemies, g.world.Bullets) {
		e := hit.target
		for _, b := range hit.bullets {
			g.world.Remove(b)
		}
		g.world.Remove(e)

		g.session.AddScore(EnemyScore)
		g.cues.Cue(object.CueShipExplosion)
		cx, cy := e.Rect.Center()
		g.world.Spawn(object.NewExplosion(object.ExplosionShip, cx, cy, ctx.Now))
		g.dropPowerUp(g.cfg.EnemyPowerUpChance, cx, cy)
		g.world.Spawn(object.NewEnemyShip(g.rng, g.screen, ctx.Now))
	}
}

func (g *Game) playerVsEnemyBullets(ctx object.UpdateContext) {
	for _, b := range touchingPlayer(g.player, g.world.EnemyBullets) {
		g.world.Remove(b)
		g.damagePlayer(EnemyBulletDamage, ctx)
	}
}

func (g *Game) playerVsAsteroids(ctx object.UpdateContext) {
	for _, a := range touchingPlayer(g.player, g.world.Asteroids) {
		g.world.Remove(a)
		if g.player.Active() {
			g.damagePlayer(AsteroidDamageMin+g.rng.Intn(AsteroidDamageMax-AsteroidDamageMin+1), ctx)
		}
		g.cues.Cue(object.CueSmallExplosion)
		cx, cy := a.Rect.Center()
		g.world.Spawn(object.NewExplosion(object.ExplosionSmall, cx, cy, ctx.Now))
		g.world.Spawn(object.NewAsteroid(g.rng, g.screen, ctx.Now))
	}
}

func (g *Game) playerVsEnemies(ctx object.UpdateContext) {
	for _, e := range touchingPlayer(g.player, g.world.Enemies) {
		g.world.Remove(e)
		g.damagePlayer(EnemyRamDamage, ctx)
		g.cues.Cue(object.CueShipExplosion)
		cx, cy := e.Rect.Center()
		g.world.Spawn(object.NewExplosion(object.ExplosionShip, cx, cy, ctx.Now))
		g.world.Spawn(object.NewEnemyShip(g.rng, g.screen, ctx.Now))
	}
}

func (g *Game) playerVsPowerUps(ctx object.UpdateContext) {
	for _, p := range touchingPlayer(g.player, g.world.PowerUps) {
		g.world.Remove(p)
		switch p.Kind {
		case object.PowerUpShield:
			g.session.AddScore(ShieldPickupScore)
			g.player.AddShield(ShieldPickupAmount)
		case object.PowerUpMissile:
			g.session.AddScore(MissilePickupScore)
			g.player.UpgradePower(ctx.Now)
		}
	}
}

// damagePlayer applies damage and logs a destruction. Damage to a hidden
// ship is ignored.
func (g *Game) damagePlayer(amount int, ctx object.UpdateContext) {
	if g.player.Damage(amount, ctx) {
		g.log.Debug("player destroyed",
			zap.Int("lives", g.player.Lives),
			zap.Int("score", g.session.Score),
		)
	}
}

// dropPowerUp spawns a random power-up at (x, y) with the given probability.
func (g *Game) dropPowerUp(chance, x, y float64) {
	if g.rng.Float64() < chance {
		g.world.Spawn(object.NewRandomPowerUp(g.rng, x, y))
	}
}
