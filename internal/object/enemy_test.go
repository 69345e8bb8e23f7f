package object

import (
	"testing"
	"time"
)

func newTestEnemy() *EnemyShip {
	// centre x = 90, bottom = -150
	return NewEnemyShip(&seqRand{ints: []int{0, 0}}, testScreen, 0)
}

func TestEnemyDescentPhaseSequence(t *testing.T) {
	e := newTestEnemy()
	if e.Phase != PhaseApproaching {
		t.Fatalf("new enemy phase = %v", e.Phase)
	}

	rec := &recorder{}
	rnd := &seqRand{}
	phases := []EnemyPhase{e.Phase}
	now := time.Duration(0)
	for i := 0; i < 1000 && len(phases) < 4; i++ {
		now += frame
		e.Update(ctxAt(now, frame, rec, rnd))
		if e.Phase != phases[len(phases)-1] {
			phases = append(phases, e.Phase)
		}
	}

	want := []EnemyPhase{PhaseApproaching, PhaseFiring, PhaseDiving, PhaseApproaching}
	if len(phases) != len(want) {
		t.Fatalf("phases = %v, want %v", phases, want)
	}
	for i := range want {
		if phases[i] != want[i] {
			t.Fatalf("phases = %v, want %v", phases, want)
		}
	}

	if got := rec.count(isKind(KindEnemyBullet)); got != enemyShotsPerVolley {
		t.Errorf("fired %d shots in one descent, want %d", got, enemyShotsPerVolley)
	}
	boosts := rec.count(func(o Object) bool {
		fx, ok := o.(*Effect)
		return ok && fx.Kind == Boost
	})
	if boosts == 0 {
		t.Error("diving enemy spawned no boost trail")
	}
	if e.Rect.Top() >= 0 {
		t.Errorf("respawned enemy should be above the screen, top=%v", e.Rect.Top())
	}
}

func TestEnemyCannotSkipFiring(t *testing.T) {
	e := newTestEnemy()
	e.Rect.Y = 40 - e.Rect.H // bottom at 40

	ctx := ctxAt(time.Second, time.Second, &recorder{}, &seqRand{})
	e.Update(ctx)
	if e.Phase != PhaseFiring {
		t.Fatalf("after a long step phase = %v, want firing", e.Phase)
	}
	ctx.Now += frame
	ctx.Delta = frame
	e.Update(ctx)
	if e.Phase != PhaseDiving {
		t.Fatalf("phase = %v, want diving", e.Phase)
	}
}

func TestEnemyVolleyIsCooldownGated(t *testing.T) {
	e := newTestEnemy()
	e.Rect.Y = 60 - e.Rect.H // bottom at 60, inside the firing band
	rec := &recorder{}

	e.Update(ctxAt(time.Second, 0, rec, &seqRand{}))
	e.Update(ctxAt(time.Second+100*time.Millisecond, 0, rec, &seqRand{}))
	if got := rec.count(isKind(KindEnemyBullet)); got != 1 {
		t.Fatalf("shots inside the cooldown = %d, want 1", got)
	}
	e.Update(ctxAt(time.Second+500*time.Millisecond, 0, rec, &seqRand{}))
	e.Update(ctxAt(3*time.Second, 0, rec, &seqRand{}))
	if got := rec.count(isKind(KindEnemyBullet)); got != 2 {
		t.Fatalf("volley shots = %d, want 2", got)
	}
	if len(rec.cues) != 2 || rec.cues[0] != CueEnemyFired {
		t.Errorf("cues = %v", rec.cues)
	}
}

func TestEnemyFiresOnEnteringBand(t *testing.T) {
	e := newTestEnemy()
	e.Rect.Y = 45 - e.Rect.H // just above the firing band
	rec := &recorder{}

	e.Update(ctxAt(time.Second, 100*time.Millisecond, rec, &seqRand{}))
	if got := rec.count(isKind(KindEnemyBullet)); got != 1 {
		t.Fatalf("shots on entering the band = %d, want 1", got)
	}

	e.Update(ctxAt(time.Second, 0, rec, &seqRand{}))
	if got := rec.count(isKind(KindEnemyBullet)); got != 1 {
		t.Errorf("repeated timestamp fired again: shots = %d", got)
	}
}

func TestEnemyDiveNeedsPositiveDelta(t *testing.T) {
	e := newTestEnemy()
	e.Rect.Y = 150 - e.Rect.H
	rec := &recorder{}
	e.Update(ctxAt(time.Second, 0, rec, &seqRand{}))
	if len(rec.spawned) != 0 || e.Rect.Bottom() != 150 {
		t.Errorf("zero delta dive changed state: spawned=%d bottom=%v", len(rec.spawned), e.Rect.Bottom())
	}
}
