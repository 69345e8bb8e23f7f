package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/tomz197/lonely-shooter/internal/object"
)

// cueVolumes are the per-cue gains before the master volume.
var cueVolumes = map[object.Cue]float64{
	object.CueBulletFired:       0.25,
	object.CueMissileFired:      0.15,
	object.CueEnemyFired:        0.2,
	object.CueShipExplosion:     0.4,
	object.CueAsteroidExplosion: 0.1,
	object.CueSmallExplosion:    0.1,
}

// Sound builds the streamer for a cue, or nil for an unknown cue.
func Sound(c object.Cue, rate beep.SampleRate, master float64) beep.Streamer {
	vol, ok := cueVolumes[c]
	if !ok {
		return nil
	}

	var s beep.Streamer
	switch c {
	case object.CueBulletFired:
		s = newSweep(waveSquare, 1200, 400, 90*time.Millisecond, rate)
	case object.CueMissileFired:
		s = newSweep(waveSaw, 300, 120, 180*time.Millisecond, rate)
	case object.CueEnemyFired:
		s = newSweep(waveSquare, 500, 250, 110*time.Millisecond, rate)
	case object.CueAsteroidExplosion:
		s = newSweep(waveNoise, 0, 0, 400*time.Millisecond, rate)
	case object.CueSmallExplosion:
		s = newSweep(waveNoise, 0, 0, 200*time.Millisecond, rate)
	case object.CueShipExplosion:
		s = beep.Mix(
			newSweep(waveNoise, 0, 0, 700*time.Millisecond, rate),
			withVolume(newSweep(waveSine, 90, 30, 700*time.Millisecond, rate), 0.6),
		)
	}
	return withVolume(s, vol*master)
}
