// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/circuithack/codee-chess/internal/config"
)

var (
	// Search options
	depth        = flag.Int("depth", config.DefaultDepth, "Computer search depth in plies (1-4)")
	seed         = flag.Uint64("seed", 0, "Seed for the computer's move choice (0 = time based)")
	perftWorkers = flag.Int("workers", runtime.NumCPU(), "Goroutines used by perft and analyze")

	// Save options
	savePath   = flag.String("save", config.DefaultSavePath, "Save file (a .zst suffix compresses it)")
	noAutosave = flag.Bool("noautosave", false, "Don't save after every move")
	freshGame  = flag.Bool("new", false, "Start a new game instead of resuming the save file")

	// Display options
	noColor  = flag.Bool("nocolor", false, "Disable coloured output")
	noCoords = flag.Bool("nocoords", false, "Don't print board coordinates")
	noSAN    = flag.Bool("nosan", false, "Print moves in coordinate form only")

	// Logging
	logLevel = flag.String("log", "warn", "Log level: debug, info, warn, error, disabled")

	// Meta
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applySearchFlags(cfg)
	applySaveFlags(cfg)
	applyDisplayFlags(cfg)
	cfg.LogLevel = *logLevel
}

// applySearchFlags configures the computer opponent.
func applySearchFlags(cfg *config.Config) {
	cfg.Search.Depth = *depth
	cfg.Search.Seed = *seed
	cfg.Search.PerftWorkers = *perftWorkers
}

// applySaveFlags configures persistence.
func applySaveFlags(cfg *config.Config) {
	cfg.Save.Path = *savePath
	cfg.Save.Autosave = !*noAutosave
	cfg.Save.Resume = !*freshGame
}

// applyDisplayFlags configures board rendering.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Display.NoColor = *noColor
	cfg.Display.ShowCoordinates = !*noCoords
	cfg.Display.ShowSAN = !*noSAN
}
