// Package config provides configuration for the codee-chess shell.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration, grouped by concern.
type Config struct {
	Search  *SearchConfig
	Save    *SaveConfig
	Display *DisplayConfig

	// LogLevel is a zerolog level name such as "info" or "debug".
	LogLevel string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Search:     NewSearchConfig(),
		Save:       NewSaveConfig(),
		Display:    NewDisplayConfig(),
		LogLevel:   "warn",
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks every sub-config.
func (c *Config) Validate() error {
	if err := c.Search.Validate(); err != nil {
		return err
	}
	return c.Save.Validate()
}

// SetOutput sets the writer the shell prints to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}
