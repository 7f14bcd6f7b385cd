package config

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
	cerrors "github.com/lgbarn/chesscore/internal/errors"
)

// TestSearchConfig_Defaults verifies SearchConfig has sensible defaults
func TestSearchConfig_Defaults(t *testing.T) {
	cfg := NewSearchConfig()

	if cfg.MediumDepth != 1 {
		t.Errorf("MediumDepth = %d, want 1", cfg.MediumDepth)
	}
	if cfg.HardDepth != 3 {
		t.Errorf("HardDepth = %d, want 3", cfg.HardDepth)
	}
	if cfg.MaxCandidates != 24 {
		t.Errorf("MaxCandidates = %d, want 24", cfg.MaxCandidates)
	}
	if cfg.EasyCaptureBias != 0.7 {
		t.Errorf("EasyCaptureBias = %v, want 0.7", cfg.EasyCaptureBias)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

// TestSearchConfig_Validate verifies search config validation
func TestSearchConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*SearchConfig)
		wantErr bool
	}{
		{"defaults", func(*SearchConfig) {}, false},
		{"no cap", func(s *SearchConfig) { s.MaxCandidates = 0 }, false},
		{"zero depth", func(s *SearchConfig) { s.HardDepth = 0 }, true},
		{"negative cap", func(s *SearchConfig) { s.MaxCandidates = -1 }, true},
		{"bias above one", func(s *SearchConfig) { s.EasyCaptureBias = 1.5 }, true},
		{"no workers", func(s *SearchConfig) { s.Workers = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewSearchConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, cerrors.ErrInvalidConfig) {
				t.Errorf("error %v should wrap ErrInvalidConfig", err)
			}
		})
	}
}

// TestSearchConfig_DepthFor verifies difficulty to depth mapping
func TestSearchConfig_DepthFor(t *testing.T) {
	cfg := NewSearchConfig()
	if got := cfg.DepthFor(Easy); got != 0 {
		t.Errorf("DepthFor(Easy) = %d, want 0", got)
	}
	if got := cfg.DepthFor(Medium); got != 1 {
		t.Errorf("DepthFor(Medium) = %d, want 1", got)
	}
	if got := cfg.DepthFor(Hard); got != 3 {
		t.Errorf("DepthFor(Hard) = %d, want 3", got)
	}
}

// TestParseDifficulty verifies difficulty names
func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", Easy, false},
		{"Medium", Medium, false},
		{" HARD ", Hard, false},
		{"expert", Easy, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDifficulty(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDifficulty(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDifficulty(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
	if Hard.String() != "hard" || Difficulty(9).String() != "difficulty(9)" {
		t.Error("unexpected Difficulty.String output")
	}
}

// TestPlayersConfig verifies player assignment
func TestPlayersConfig(t *testing.T) {
	cfg := NewPlayersConfig()
	if cfg.ComputerPlays(chess.White) {
		t.Error("white should be human by default")
	}
	if !cfg.ComputerPlays(chess.Black) {
		t.Error("black should be the computer by default")
	}

	p, err := ParsePlayer("C")
	if err != nil || p != Computer {
		t.Errorf("ParsePlayer(C) = %v, %v", p, err)
	}
	if _, err := ParsePlayer("robot"); !errors.Is(err, cerrors.ErrInvalidConfig) {
		t.Errorf("ParsePlayer(robot) error = %v", err)
	}

	cfg.White = Player(7)
	if err := cfg.Validate(); err == nil {
		t.Error("unknown player should not validate")
	}
}

// TestConfig_Validate verifies top level validation reaches the sections
func TestConfig_Validate(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	cfg.Search.Workers = 0
	if err := cfg.Validate(); err == nil {
		t.Error("invalid search section should fail")
	}

	cfg = NewConfig()
	cfg.Difficulty = Difficulty(5)
	if err := cfg.Validate(); err == nil {
		t.Error("unknown difficulty should fail")
	}
}

// TestConfig_Logf verifies verbosity gating
func TestConfig_Logf(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := NewConfigBuilder().WithLogFile(buf).WithVerbosity(1).Build()

	cfg.Logf(1, "result %d\n", 1)
	cfg.Logf(2, "commentary\n")

	if got := buf.String(); got != "result 1\n" {
		t.Errorf("log = %q, want %q", got, "result 1\n")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithDifficulty(Hard).
		WithDepths(2, 4).
		WithMaxCandidates(12).
		WithCaptureBias(0.5).
		WithWorkers(4).
		WithSeed(42).
		WithPlayers(Computer, Human).
		WithDataDir("/tmp/chess").
		WithOutput(out).
		Build()

	if cfg.Difficulty != Hard {
		t.Errorf("Difficulty = %v, want hard", cfg.Difficulty)
	}
	if cfg.Search.MediumDepth != 2 || cfg.Search.HardDepth != 4 {
		t.Errorf("depths = %d/%d, want 2/4", cfg.Search.MediumDepth, cfg.Search.HardDepth)
	}
	if cfg.Search.MaxCandidates != 12 || cfg.Search.Workers != 4 || cfg.Search.Seed != 42 {
		t.Errorf("search = %+v", cfg.Search)
	}
	if cfg.Search.EasyCaptureBias != 0.5 {
		t.Errorf("EasyCaptureBias = %v, want 0.5", cfg.Search.EasyCaptureBias)
	}
	if !cfg.Players.ComputerPlays(chess.White) || cfg.Players.ComputerPlays(chess.Black) {
		t.Errorf("players = %+v", cfg.Players)
	}
	if cfg.DataDir != "/tmp/chess" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.OutputFile != out {
		t.Error("WithOutput did not set OutputFile")
	}
}
