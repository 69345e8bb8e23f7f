package object

// Cue names a fire-and-forget notification for the audio collaborator.
type Cue string

const (
	CueBulletFired       Cue = "bullet_fired"
	CueMissileFired      Cue = "missile_fired"
	CueEnemyFired        Cue = "enemy_bullet_fired"
	CueAsteroidExplosion Cue = "asteroid_explosion"
	CueShipExplosion     Cue = "ship_explosion"
	CueSmallExplosion    Cue = "small_explosion"
)

// CueSink receives cues. Implementations must not block the frame.
type CueSink interface {
	Cue(c Cue)
}

type silent struct{}

func (silent) Cue(Cue) {}

// Silent discards every cue.
var Silent CueSink = silent{}
