// Package loop runs the game: the object registry, collision rules, the
// session lifecycle and the terminal frame loop that drives them.
package loop

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/tomz197/lonely-shooter/internal/draw"
	"github.com/tomz197/lonely-shooter/internal/input"
)

// RunOptions configures a terminal play loop.
type RunOptions struct {
	Game         Options
	TermSizeFunc draw.TermSizeFunc
}

// Run starts the main game loop with the standard Input → Update → Draw cycle.
// It returns when the player quits from the menu or the input closes.
func Run(r *bufio.Reader, w io.Writer, opts RunOptions) error {
	game := NewGame(opts.Game)
	stream := input.StartStream(r)

	termSize := opts.TermSizeFunc
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}
	frameTime := time.Second / time.Duration(game.cfg.FPS)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	screen := game.Screen()
	termWidth, termHeight, _ := termSize()
	canvas := draw.NewCanvas(termWidth, termHeight, screen.W(), screen.H())
	out := draw.NewChunkWriter(w)

	start := time.Now()
	for {
		frameStart := time.Now()
		now := frameStart.Sub(start)

		// ===== INPUT PHASE =====
		in := stream.Read(frameStart)

		// ===== UPDATE PHASE =====
		if width, height, err := termSize(); err == nil {
			canvas.Resize(width, height)
		}

		switch game.State() {
		case StateMenu:
			if in.Quit {
				draw.ClearScreen(w)
				return nil
			}
			if in.Enter {
				stream.Reset()
				game.StartSession(now)
			}
		case StatePlaying:
			if in.Quit {
				stream.Reset()
				game.ReturnToMenu()
				break
			}
			game.Step(now, in.Intent)
		case StateGameOverPending:
			stream.Reset()
			game.ReturnToMenu()
		}

		// ===== DRAW PHASE =====
		if err := renderFrame(out, canvas, game); err != nil {
			return fmt.Errorf("render frame: %w", err)
		}

		// ===== FRAME TIMING =====
		if elapsed := time.Since(frameStart); elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
	}
}
