package main

import (
	"bufio"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/tomz197/lonely-shooter/internal/audio"
	"github.com/tomz197/lonely-shooter/internal/config"
	"github.com/tomz197/lonely-shooter/internal/loop"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs only go somewhere when a file is configured.
	logger := zap.NewNop()
	if cfg.Logging.File != "" {
		if logger, err = config.NewLogger(cfg.Logging); err != nil {
			return err
		}
	}
	defer func() { _ = logger.Sync() }()

	cues, closeAudio := audio.NewSink(cfg.Audio, logger)
	defer closeAudio()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	return loop.Run(reader, os.Stdout, loop.RunOptions{
		Game: loop.Options{
			Config: &cfg.Game,
			Cues:   cues,
			Logger: logger,
		},
	})
}
