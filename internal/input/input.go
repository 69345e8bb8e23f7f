// Package input turns raw terminal bytes into per-frame intents.
package input

import (
	"bufio"
	"time"

	"github.com/tomz197/lonely-shooter/internal/object"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report repeats, so a held key is a stream of presses.
const keyHoldDuration = 80 * time.Millisecond

// State is the input sampled for one frame.
type State struct {
	Intent object.Intent
	Enter  bool
	Quit   bool
}

type key int

const (
	keyLeft key = iota
	keyRight
	keyUp
	keyDown
	keyFire
	keyEnter
	keyQuit
	keyCount
)

// Keys tracks the last time each key was pressed.
type Keys struct {
	last [keyCount]time.Time
}

// Apply records the presses contained in buf, handling arrow-key escape
// sequences. Several keys in one buffer count as held together.
func (k *Keys) Apply(buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				k.last[keyUp] = now
			case 'B':
				k.last[keyDown] = now
			case 'C':
				k.last[keyRight] = now
			case 'D':
				k.last[keyLeft] = now
			}
			i += 2
			continue
		}

		switch b {
		case 'q', 'Q', 0x03: // 0x03 is Ctrl+C in raw mode
			k.last[keyQuit] = now
		case 'a', 'A', 'h', 'H':
			k.last[keyLeft] = now
		case 'd', 'D', 'l', 'L':
			k.last[keyRight] = now
		case 'w', 'W', 'k', 'K':
			k.last[keyUp] = now
		case 's', 'S', 'j', 'J':
			k.last[keyDown] = now
		case ' ':
			k.last[keyFire] = now
		case '\n', '\r':
			k.last[keyEnter] = now
		}
	}
}

func (k *Keys) held(which key, now time.Time) bool {
	t := k.last[which]
	return !t.IsZero() && now.Sub(t) < keyHoldDuration
}

// Snapshot builds the frame's state from the keys held at now.
// Opposite directions never cancel: right wins over left, down over up.
func (k *Keys) Snapshot(now time.Time) State {
	var intent object.Intent
	switch {
	case k.held(keyRight, now):
		intent.MoveX = 1
	case k.held(keyLeft, now):
		intent.MoveX = -1
	}
	switch {
	case k.held(keyDown, now):
		intent.MoveY = 1
	case k.held(keyUp, now):
		intent.MoveY = -1
	}
	intent.Firing = k.held(keyFire, now)

	return State{
		Intent: intent,
		Enter:  k.held(keyEnter, now),
		Quit:   k.held(keyQuit, now),
	}
}

// Reset forgets every press, so a key used on one screen does not leak
// into the next.
func (k *Keys) Reset() {
	k.last = [keyCount]time.Time{}
}

// Stream delivers input bytes via a channel and tracks key state.
type Stream struct {
	ch     chan byte
	closed bool
	keys   Keys
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Read drains all available bytes without blocking and returns the frame's
// state. A closed input (EOF, dropped SSH session) reads as Quit.
func (s *Stream) Read(now time.Time) State {
	var buf []byte
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	s.keys.Apply(buf, now)
	st := s.keys.Snapshot(now)
	if s.closed {
		st.Quit = true
	}
	return st
}

// Reset forgets held keys.
func (s *Stream) Reset() {
	s.keys.Reset()
}
