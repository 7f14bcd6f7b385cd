// Package config provides configuration for chesscore sessions and tools.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chesscore/internal/errors"
)

// Difficulty selects how the computer chooses its moves.
type Difficulty int

const (
	Easy   Difficulty = iota // Random move, biased towards the best capture
	Medium                   // Shallow minimax
	Hard                     // Deeper alpha-beta search
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// ParseDifficulty accepts "easy", "medium" or "hard" in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Easy, fmt.Errorf("difficulty %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=results, 2=running commentary

	// Difficulty of computer moves when none is given explicitly
	Difficulty Difficulty

	Search  *SearchConfig
	Players *PlayersConfig

	// Directory holding the preferences and statistics database
	DataDir string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Difficulty: Medium,
		Search:     NewSearchConfig(),
		Players:    NewPlayersConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks the configuration and its sections.
func (c *Config) Validate() error {
	if c.Difficulty < Easy || c.Difficulty > Hard {
		return fmt.Errorf("%s: %w", c.Difficulty, errors.ErrInvalidConfig)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Search.Validate(); err != nil {
		return err
	}
	return c.Players.Validate()
}

// Logf writes running commentary to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
