package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// Player says who chooses the moves for one side.
type Player int

const (
	Human Player = iota
	Computer
)

func (p Player) String() string {
	if p == Computer {
		return "computer"
	}
	return "human"
}

// ParsePlayer accepts "human" or "computer" (or "h"/"c").
func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "human", "h":
		return Human, nil
	case "computer", "c", "cpu":
		return Computer, nil
	}
	return Human, fmt.Errorf("player %q: %w", s, errors.ErrInvalidConfig)
}

// PlayersConfig assigns a player to each side.
type PlayersConfig struct {
	White Player
	Black Player
}

// NewPlayersConfig creates the default setup: a human playing white
// against the computer.
func NewPlayersConfig() *PlayersConfig {
	return &PlayersConfig{White: Human, Black: Computer}
}

// Validate checks that both players are known.
func (p *PlayersConfig) Validate() error {
	for _, pl := range []Player{p.White, p.Black} {
		if pl != Human && pl != Computer {
			return fmt.Errorf("player %d: %w", int(pl), errors.ErrInvalidConfig)
		}
	}
	return nil
}

// For returns the player moving for the colour.
func (p *PlayersConfig) For(colour chess.Colour) Player {
	if colour == chess.Black {
		return p.Black
	}
	return p.White
}

// ComputerPlays reports whether the computer moves for the colour.
func (p *PlayersConfig) ComputerPlays(colour chess.Colour) bool {
	return p.For(colour) == Computer
}
