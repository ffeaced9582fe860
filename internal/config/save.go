package config

import "github.com/circuithack/codee-chess/internal/errors"

// DefaultSavePath is the save file used when none is given.
const DefaultSavePath = "save_chess.json"

// SaveConfig holds settings for game persistence.
type SaveConfig struct {
	// Path is the save file; a ".zst" suffix selects zstd compression.
	Path string

	// Autosave writes the game after every applied ply.
	Autosave bool

	// Resume loads the save file at startup.
	Resume bool
}

// NewSaveConfig creates a SaveConfig with default values.
func NewSaveConfig() *SaveConfig {
	return &SaveConfig{
		Path:     DefaultSavePath,
		Autosave: true,
		Resume:   true,
	}
}

// Validate checks that the save configuration is valid.
func (s *SaveConfig) Validate() error {
	if s.Path == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "save path is empty")
	}
	return nil
}
