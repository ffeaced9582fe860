package config

// DisplayConfig holds settings for rendering the board in the shell.
type DisplayConfig struct {
	// NoColor disables ANSI colours.
	NoColor bool

	// ShowCoordinates prints file letters and rank numbers around the board.
	ShowCoordinates bool

	// ShowSAN prints moves in standard algebraic notation as well as
	// coordinate form.
	ShowSAN bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		ShowCoordinates: true,
		ShowSAN:         true,
	}
}
