package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDepth sets the search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithSeed sets the move shuffle seed.
func (b *ConfigBuilder) WithSeed(seed uint64) *ConfigBuilder {
	b.cfg.Search.Seed = seed
	return b
}

// WithPerftWorkers sets the number of perft worker goroutines.
func (b *ConfigBuilder) WithPerftWorkers(n int) *ConfigBuilder {
	b.cfg.Search.PerftWorkers = n
	return b
}

// WithSavePath sets the save file path.
func (b *ConfigBuilder) WithSavePath(path string) *ConfigBuilder {
	b.cfg.Save.Path = path
	return b
}

// WithAutosave controls saving after every ply.
func (b *ConfigBuilder) WithAutosave(enabled bool) *ConfigBuilder {
	b.cfg.Save.Autosave = enabled
	return b
}

// WithResume controls loading the save file at startup.
func (b *ConfigBuilder) WithResume(enabled bool) *ConfigBuilder {
	b.cfg.Save.Resume = enabled
	return b
}

// WithNoColor disables coloured output.
func (b *ConfigBuilder) WithNoColor(disabled bool) *ConfigBuilder {
	b.cfg.Display.NoColor = disabled
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}
