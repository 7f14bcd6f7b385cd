// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/storage"
)

var (
	// Players and strength
	difficulty = flag.String("difficulty", "medium", "Computer strength: easy, medium, hard")
	whiteFlag  = flag.String("white", "human", "Who plays White: human or computer")
	blackFlag  = flag.String("black", "computer", "Who plays Black: human or computer")

	// Search options
	mediumDepth   = flag.Int("mediumdepth", 1, "Search depth for medium difficulty")
	hardDepth     = flag.Int("harddepth", 3, "Search depth for hard difficulty")
	maxCandidates = flag.Int("candidates", 24, "Maximum candidate moves per node")
	captureBias   = flag.Float64("capturebias", 0.7, "Probability that easy plays its best capture")
	seed          = flag.Int64("seed", 0, "Random seed for easy moves (0 = time based)")
	workers       = flag.Int("workers", 1, "Number of workers searching root moves in parallel")

	// Persistence
	dataDir = flag.String("db", "", "Directory for preferences and statistics (default: platform data dir)")
	noSave  = flag.Bool("nosave", false, "Don't open the database; nothing is saved")
	resume  = flag.Bool("resume", false, "Resume the saved unfinished game")
	stats   = flag.Bool("stats", false, "Show game statistics and exit")

	// Diagnostics
	perftDepth = flag.Int("perft", 0, "Count leaf nodes of the move tree to depth N and exit")
	logFile    = flag.String("l", "", "Write diagnostics to log file")
	verbosity  = flag.Int("v", 1, "Verbosity: 0=quiet, 1=results, 2=every move")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags builds the configuration from command-line flags.
func applyFlags() (*config.Config, error) {
	diff, err := config.ParseDifficulty(*difficulty)
	if err != nil {
		return nil, err
	}
	white, err := config.ParsePlayer(*whiteFlag)
	if err != nil {
		return nil, err
	}
	black, err := config.ParsePlayer(*blackFlag)
	if err != nil {
		return nil, err
	}

	cfg := config.NewConfigBuilder().
		WithDifficulty(diff).
		WithPlayers(white, black).
		WithDepths(*mediumDepth, *hardDepth).
		WithMaxCandidates(*maxCandidates).
		WithCaptureBias(*captureBias).
		WithSeed(*seed).
		WithWorkers(*workers).
		WithDataDir(*dataDir).
		WithVerbosity(*verbosity).
		Build()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogFile points diagnostics at the -l file when given.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// explicitFlags returns the names of the flags set on the command line.
func explicitFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// loadPreferences applies the stored preferences to cfg for every setting
// not given explicitly on the command line.
func loadPreferences(cfg *config.Config, store *storage.Storage, explicit map[string]bool) error {
	prefs, err := store.LoadPreferences()
	if err != nil {
		return err
	}
	if !explicit["difficulty"] && prefs.Difficulty >= config.Easy && prefs.Difficulty <= config.Hard {
		cfg.Difficulty = prefs.Difficulty
	}
	if !explicit["white"] && !explicit["black"] {
		cfg.Players.White, cfg.Players.Black = config.Human, config.Computer
		if prefs.HumanColour == chess.Black {
			cfg.Players.White, cfg.Players.Black = config.Computer, config.Human
		}
	}
	cfg.Logf(2, "preferences: %s, human plays %s\n", cfg.Difficulty, prefs.HumanColour)
	return nil
}
