// codee-chess is a terminal chess game against a small built-in engine.
package main

import (
	stderrors "errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/circuithack/codee-chess/internal/config"
	"github.com/circuithack/codee-chess/internal/errors"
	"github.com/circuithack/codee-chess/internal/game"
	"github.com/circuithack/codee-chess/internal/logx"
	"github.com/circuithack/codee-chess/internal/save"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("codee-chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if cfg.Search.Seed == 0 {
		cfg.Search.Seed = uint64(time.Now().UnixNano())
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger := logx.NewLogger(cfg.LogFile, cfg.LogLevel, cfg.Display.NoColor)

	store, err := save.New(cfg.Save.Path, save.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctrl := game.New(cfg.Search.Seed, game.WithLogger(logger))
	if cfg.Save.Resume {
		resumeGame(ctrl, store, logger)
	}

	shell := NewShell(cfg, ctrl, store, logger)
	if err := shell.Run(os.Stdin); err != nil {
		logger.Error().Err(err).Msg("reading input")
		store.Close()
		os.Exit(1)
	}
}

// resumeGame restores the saved game, keeping the fresh one when there is
// no save or it cannot be read.
func resumeGame(ctrl *game.Controller, store *save.Store, logger zerolog.Logger) {
	rec, err := store.Load()
	switch {
	case err == nil:
		ctrl.FromRecord(rec)
		logger.Info().Str("path", store.Path()).Msg("resumed saved game")
	case stderrors.Is(err, errors.ErrNoSave):
		logger.Debug().Str("path", store.Path()).Msg("no saved game")
	default:
		logger.Warn().Err(err).Msg("ignoring unreadable save")
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: codee-chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play White against the computer. Type \"help\" at the prompt for commands.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
