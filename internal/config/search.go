package config

import (
	"fmt"

	"github.com/lgbarn/chesscore/internal/errors"
)

// SearchConfig holds settings for computer move selection.
type SearchConfig struct {
	// Plies searched at Medium and Hard
	MediumDepth int
	HardDepth   int

	// Root and interior candidate lists are cut to this many moves after
	// ordering; 0 means no cap
	MaxCandidates int

	// Probability that Easy plays its most valuable capture instead of a
	// random move
	EasyCaptureBias float64

	// Goroutines scoring root moves; 1 searches sequentially
	Workers int

	// Random seed for Easy; 0 seeds from the clock
	Seed int64
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		MediumDepth:     1,
		HardDepth:       3,
		MaxCandidates:   24,
		EasyCaptureBias: 0.7,
		Workers:         1,
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.MediumDepth < 1 || s.HardDepth < 1 {
		return fmt.Errorf("search depths (%d, %d) must be at least 1: %w",
			s.MediumDepth, s.HardDepth, errors.ErrInvalidConfig)
	}
	if s.MaxCandidates < 0 {
		return fmt.Errorf("candidate cap %d is negative: %w", s.MaxCandidates, errors.ErrInvalidConfig)
	}
	if s.EasyCaptureBias < 0 || s.EasyCaptureBias > 1 {
		return fmt.Errorf("capture bias %.2f outside [0, 1]: %w", s.EasyCaptureBias, errors.ErrInvalidConfig)
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers %d must be at least 1: %w", s.Workers, errors.ErrInvalidConfig)
	}
	return nil
}

// DepthFor returns the search depth used at the difficulty. Easy does not
// search and reports 0.
func (s *SearchConfig) DepthFor(d Difficulty) int {
	switch d {
	case Medium:
		return s.MediumDepth
	case Hard:
		return s.HardDepth
	default:
		return 0
	}
}
