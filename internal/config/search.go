package config

import "github.com/circuithack/codee-chess/internal/errors"

// Search depth limits in plies.
const (
	MinDepth     = 1
	MaxDepth     = 4
	DefaultDepth = 2
)

// SearchConfig holds settings for the computer opponent.
type SearchConfig struct {
	// Depth is the fixed search depth in plies.
	Depth int

	// Seed drives the shuffle of candidate moves.
	Seed uint64

	// PerftWorkers is the number of goroutines used by the perft command.
	PerftWorkers int
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:        DefaultDepth,
		PerftWorkers: 1,
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.Depth < MinDepth || s.Depth > MaxDepth {
		return errors.Wrapf(errors.ErrInvalidConfig, "search depth %d outside %d..%d",
			s.Depth, MinDepth, MaxDepth)
	}
	if s.PerftWorkers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "perft workers must be at least 1, got %d",
			s.PerftWorkers)
	}
	return nil
}
