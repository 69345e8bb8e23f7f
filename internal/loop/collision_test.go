package loop

import (
	"testing"

	"github.com/tomz197/lonely-shooter/internal/object"
)

// onPlayer returns the centre of the ship at its spawn point.
func onPlayer(g *testGame) (float64, float64) {
	return g.player.Rect.Center()
}

func TestBulletDestroysAsteroid(t *testing.T) {
	g := startTestGame(emptyField())
	rock := still(0, 100, 300)
	g.world.Add(rock)
	g.world.Add(object.NewBullet(122.5, 340))

	g.Step(0, object.Intent{})

	if !rock.IsDestroyed() {
		t.Fatal("asteroid survived a direct hit")
	}
	if len(g.world.Asteroids) != 1 || g.world.Asteroids[0] == rock {
		t.Errorf("asteroids = %d, want one replacement", len(g.world.Asteroids))
	}
	if len(g.world.Bullets) != 0 {
		t.Errorf("bullets = %d, want 0", len(g.world.Bullets))
	}
	if want := AsteroidBaseScore - rock.ScoreFactor(); g.Score() != want {
		t.Errorf("score = %d, want %d", g.Score(), want)
	}
	if n := g.effects(object.ExplosionLarge); n != 1 {
		t.Errorf("large explosions = %d, want 1", n)
	}
	if n := g.cues.count(object.CueAsteroidExplosion); n != 1 {
		t.Errorf("asteroid explosion cues = %d, want 1", n)
	}
	if len(g.world.PowerUps) != 0 {
		t.Error("power-up dropped above the drop chance")
	}
}

func TestBulletClaimedByFirstAsteroid(t *testing.T) {
	g := startTestGame(emptyField())
	first, second := still(0, 100, 300), still(0, 110, 300)
	g.world.Add(first)
	g.world.Add(second)
	g.world.Add(object.NewBullet(127.5, 340))

	g.Step(0, object.Intent{})

	if !first.IsDestroyed() || second.IsDestroyed() {
		t.Fatalf("destroyed = %v, %v; want only the first", first.IsDestroyed(), second.IsDestroyed())
	}
	if len(g.world.Asteroids) != 2 {
		t.Errorf("asteroids = %d, want 2", len(g.world.Asteroids))
	}
	if want := AsteroidBaseScore - first.ScoreFactor(); g.Score() != want {
		t.Errorf("score = %d, want %d", g.Score(), want)
	}
}

func TestTwoBulletsOneAsteroid(t *testing.T) {
	g := startTestGame(emptyField())
	rock := still(0, 100, 300)
	g.world.Add(rock)
	g.world.Add(object.NewBullet(118, 340))
	g.world.Add(object.NewBullet(127, 340))

	g.Step(0, object.Intent{})

	if len(g.world.Bullets) != 0 {
		t.Errorf("bullets = %d, want both consumed", len(g.world.Bullets))
	}
	if len(g.world.Asteroids) != 1 {
		t.Errorf("asteroids = %d, want 1", len(g.world.Asteroids))
	}
	if want := AsteroidBaseScore - rock.ScoreFactor(); g.Score() != want {
		t.Errorf("score = %d, want %d", g.Score(), want)
	}
	if n := g.effects(object.ExplosionLarge); n != 1 {
		t.Errorf("large explosions = %d, want 1", n)
	}
}

func TestMissileHitsAsteroid(t *testing.T) {
	g := startTestGame(emptyField())
	rock := still(3, 100, 200)
	g.world.Add(rock)
	g.world.Add(object.NewMissile(150, 330))

	g.Step(0, object.Intent{})

	if !rock.IsDestroyed() {
		t.Fatal("missile passed through the asteroid")
	}
	if want := AsteroidBaseScore - rock.ScoreFactor(); g.Score() != want {
		t.Errorf("score = %d, want %d", g.Score(), want)
	}
}

func TestBulletDestroysEnemy(t *testing.T) {
	g := startTestGame(emptyField())
	g.rng.floats = []float64{0.1}
	enemy := enemyAt(200, 100)
	g.world.Add(enemy)
	g.world.Add(object.NewBullet(230, 150))

	g.Step(0, object.Intent{})

	if !enemy.IsDestroyed() {
		t.Fatal("enemy survived a direct hit")
	}
	if len(g.world.Enemies) != 1 || g.world.Enemies[0] == enemy {
		t.Errorf("enemies = %d, want one replacement", len(g.world.Enemies))
	}
	if g.Score() != EnemyScore {
		t.Errorf("score = %d, want %d", g.Score(), EnemyScore)
	}
	if n := g.effects(object.ExplosionShip); n != 1 {
		t.Errorf("ship explosions = %d, want 1", n)
	}
	if n := g.cues.count(object.CueShipExplosion); n != 1 {
		t.Errorf("ship explosion cues = %d, want 1", n)
	}
	if len(g.world.PowerUps) != 1 {
		t.Errorf("power-ups = %d, want 1", len(g.world.PowerUps))
	}
}

func TestEnemyBulletsDestroyPlayerOnce(t *testing.T) {
	for _, shots := range []int{20, 25} {
		g := startTestGame(emptyField())
		cx, cy := onPlayer(g)
		for i := 0; i < shots; i++ {
			g.world.Add(object.NewEnemyBullet(cx, cy+10))
		}

		g.Step(0, object.Intent{})

		p := g.Player()
		if p.Lives != 2 {
			t.Errorf("%d shots: lives = %d, want 2", shots, p.Lives)
		}
		if p.Shield != object.MaxShield {
			t.Errorf("%d shots: shield = %d, want %d", shots, p.Shield, object.MaxShield)
		}
		if !p.Hidden {
			t.Errorf("%d shots: player still visible", shots)
		}
		if len(g.world.EnemyBullets) != 0 {
			t.Errorf("%d shots: %d enemy bullets left", shots, len(g.world.EnemyBullets))
		}
		if n := g.logs.FilterMessage("player destroyed").Len(); n != 1 {
			t.Errorf("%d shots: destruction logged %d times", shots, n)
		}
		if n := g.effects(object.ExplosionShip); n != 1 {
			t.Errorf("%d shots: ship explosions = %d, want 1", shots, n)
		}
	}
}

func TestEnemyBulletDamage(t *testing.T) {
	g := startTestGame(emptyField())
	cx, cy := onPlayer(g)
	g.world.Add(object.NewEnemyBullet(cx, cy))

	g.Step(0, object.Intent{})

	if want := object.MaxShield - EnemyBulletDamage; g.Player().Shield != want {
		t.Errorf("shield = %d, want %d", g.Player().Shield, want)
	}
}

func TestAsteroidHitsPlayer(t *testing.T) {
	g := startTestGame(emptyField())
	g.rng.ints = []int{5}
	rock := still(0, 220, 530)
	g.world.Add(rock)

	g.Step(0, object.Intent{})

	if g.Player().Shield != 85 {
		t.Errorf("shield = %d, want 85", g.Player().Shield)
	}
	if !rock.IsDestroyed() || len(g.world.Asteroids) != 1 {
		t.Errorf("asteroid not replaced: destroyed %v, count %d", rock.IsDestroyed(), len(g.world.Asteroids))
	}
	if n := g.effects(object.ExplosionSmall); n != 1 {
		t.Errorf("small explosions = %d, want 1", n)
	}
	if n := g.cues.count(object.CueSmallExplosion); n != 1 {
		t.Errorf("small explosion cues = %d, want 1", n)
	}
	if g.Score() != 0 {
		t.Errorf("score = %d, collisions with the ship score nothing", g.Score())
	}
}

func TestEnemyRamsPlayer(t *testing.T) {
	g := startTestGame(emptyField())
	enemy := enemyAt(210, 500)
	g.world.Add(enemy)

	g.Step(0, object.Intent{})

	if want := object.MaxShield - EnemyRamDamage; g.Player().Shield != want {
		t.Errorf("shield = %d, want %d", g.Player().Shield, want)
	}
	if !enemy.IsDestroyed() || len(g.world.Enemies) != 1 {
		t.Errorf("enemy not replaced: destroyed %v, count %d", enemy.IsDestroyed(), len(g.world.Enemies))
	}
	if n := g.effects(object.ExplosionShip); n != 1 {
		t.Errorf("ship explosions = %d, want 1", n)
	}
}

func TestPowerUpPickups(t *testing.T) {
	tests := []struct {
		name        string
		kind        object.PowerUpKind
		wantScore   int
		wantShield  int
		wantUpgrade int
	}{
		{"shield", object.PowerUpShield, ShieldPickupScore, 70, object.MinUpgrade},
		{"missile", object.PowerUpMissile, MissilePickupScore, 50, object.MinUpgrade + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := startTestGame(emptyField())
			g.Player().Shield = 50
			cx, cy := onPlayer(g)
			g.world.Add(object.NewPowerUp(tt.kind, cx, cy))

			g.Step(0, object.Intent{})

			p := g.Player()
			if g.Score() != tt.wantScore {
				t.Errorf("score = %d, want %d", g.Score(), tt.wantScore)
			}
			if p.Shield != tt.wantShield {
				t.Errorf("shield = %d, want %d", p.Shield, tt.wantShield)
			}
			if p.Upgrade != tt.wantUpgrade {
				t.Errorf("upgrade = %d, want %d", p.Upgrade, tt.wantUpgrade)
			}
			if len(g.world.PowerUps) != 0 {
				t.Error("power-up not consumed")
			}
		})
	}
}

func TestShieldPickupCapped(t *testing.T) {
	g := startTestGame(emptyField())
	g.Player().Shield = 95
	cx, cy := onPlayer(g)
	g.world.Add(object.NewPowerUp(object.PowerUpShield, cx, cy))

	g.Step(0, object.Intent{})

	if g.Player().Shield != object.MaxShield {
		t.Errorf("shield = %d, want %d", g.Player().Shield, object.MaxShield)
	}
}

func TestHiddenPlayerDoesNotCollide(t *testing.T) {
	g := startTestGame(emptyField())
	g.Player().Hidden = true
	cx, cy := onPlayer(g)
	shot := object.NewEnemyBullet(cx, cy)
	rock := still(0, cx-20, cy-20)
	pickup := object.NewPowerUp(object.PowerUpShield, cx, cy)
	g.world.Add(shot)
	g.world.Add(rock)
	g.world.Add(pickup)

	g.Step(0, object.Intent{})

	if shot.IsDestroyed() || rock.IsDestroyed() || pickup.IsDestroyed() {
		t.Error("hidden ship collided")
	}
	if g.Player().Shield != object.MaxShield || g.Score() != 0 {
		t.Errorf("shield = %d, score = %d", g.Player().Shield, g.Score())
	}
}
