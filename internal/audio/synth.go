package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

type wave int

const (
	waveSine wave = iota
	waveSquare
	waveSaw
	waveNoise
)

// sweep is a tone gliding linearly from one frequency to another while its
// amplitude decays to zero.
type sweep struct {
	wave     wave
	from, to float64 // Hz
	rate     beep.SampleRate
	total    int
	pos      int
	phase    float64
}

func newSweep(w wave, from, to float64, d time.Duration, rate beep.SampleRate) *sweep {
	return &sweep{wave: w, from: from, to: to, rate: rate, total: rate.N(d)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		progress := float64(s.pos) / float64(s.total)

		var val float64
		switch s.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case waveSquare:
			val = 1
			if s.phase >= 0.5 {
				val = -1
			}
		case waveSaw:
			val = 2 * (s.phase - 0.5)
		case waveNoise:
			val = rand.Float64()*2 - 1
		}
		val *= 1 - progress

		samples[i][0] = val
		samples[i][1] = val

		freq := s.from + (s.to-s.from)*progress
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// withVolume scales s linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
