// Package audio plays the game's cues as short synthesized sounds.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/tomz197/lonely-shooter/internal/config"
	"github.com/tomz197/lonely-shooter/internal/object"
)

// queueSize bounds the cues waiting to be mixed. Cues beyond it are dropped.
const queueSize = 32

// Player mixes cue sounds into the speaker. It implements object.CueSink;
// Cue never blocks the frame.
type Player struct {
	rate   beep.SampleRate
	master float64
	mixer  *beep.Mixer
	queue  chan object.Cue
	log    *zap.Logger

	// play adds a streamer to the output. Replaced in tests.
	play func(beep.Streamer)

	done chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

func newPlayer(rate beep.SampleRate, master float64, logger *zap.Logger) *Player {
	return &Player{
		rate:   rate,
		master: master,
		mixer:  &beep.Mixer{},
		queue:  make(chan object.Cue, queueSize),
		log:    logger,
		done:   make(chan struct{}),
	}
}

// New opens the speaker and starts mixing.
func New(cfg config.AudioConfig, logger *zap.Logger) (*Player, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	p := newPlayer(rate, cfg.Volume, logger)
	p.play = func(s beep.Streamer) {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
	speaker.Play(p.mixer)
	p.start()
	return p, nil
}

// NewSink returns a Player when audio is enabled and the device opens, and
// object.Silent otherwise. The returned close func is always safe to call.
func NewSink(cfg config.AudioConfig, logger *zap.Logger) (object.CueSink, func()) {
	if !cfg.Enabled {
		return object.Silent, func() {}
	}
	p, err := New(cfg, logger)
	if err != nil {
		logger.Warn("audio disabled", zap.Error(err))
		return object.Silent, func() {}
	}
	return p, p.Close
}

func (p *Player) start() {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		for {
			select {
			case c := <-p.queue:
				if s := Sound(c, p.rate, p.master); s != nil {
					p.play(s)
				}
			case <-p.done:
				return
			}
		}
	}()
}

// Cue queues the sound for c, dropping it when the queue is full.
func (p *Player) Cue(c object.Cue) {
	select {
	case p.queue <- c:
	default:
		p.log.Debug("audio cue dropped", zap.String("cue", string(c)))
	}
}

// Close stops mixing and closes the speaker.
func (p *Player) Close() {
	p.once.Do(func() {
		close(p.done)
		p.wg.Wait()
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
		speaker.Close()
	})
}
