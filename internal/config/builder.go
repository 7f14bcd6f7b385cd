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

// WithDifficulty sets the default difficulty.
func (b *ConfigBuilder) WithDifficulty(d Difficulty) *ConfigBuilder {
	b.cfg.Difficulty = d
	return b
}

// WithDepths sets the Medium and Hard search depths.
func (b *ConfigBuilder) WithDepths(medium, hard int) *ConfigBuilder {
	b.cfg.Search.MediumDepth = medium
	b.cfg.Search.HardDepth = hard
	return b
}

// WithMaxCandidates caps the number of moves searched per node.
func (b *ConfigBuilder) WithMaxCandidates(n int) *ConfigBuilder {
	b.cfg.Search.MaxCandidates = n
	return b
}

// WithCaptureBias sets how often Easy plays its best capture.
func (b *ConfigBuilder) WithCaptureBias(p float64) *ConfigBuilder {
	b.cfg.Search.EasyCaptureBias = p
	return b
}

// WithWorkers sets the number of root search goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Search.Workers = n
	return b
}

// WithSeed fixes the random seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Search.Seed = seed
	return b
}

// WithPlayers assigns players to both sides.
func (b *ConfigBuilder) WithPlayers(white, black Player) *ConfigBuilder {
	b.cfg.Players.White = white
	b.cfg.Players.Black = black
	return b
}

// WithDataDir sets the database directory.
func (b *ConfigBuilder) WithDataDir(dir string) *ConfigBuilder {
	b.cfg.DataDir = dir
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
