// chessplay is a terminal front end for the chesscore rules engine and
// computer opponent.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/storage"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessplay version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := applyFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	setupLogFile(cfg)

	if *perftDepth > 0 {
		runPerft(cfg, *perftDepth)
		return
	}

	store := openStorage(cfg)
	if store != nil {
		defer store.Close()
		if err := loadPreferences(cfg, store, explicitFlags()); err != nil {
			cfg.Logf(1, "ignoring saved preferences: %v\n", err)
		}
	}

	if *stats {
		if store == nil {
			fmt.Fprintln(os.Stderr, "Error: statistics need the database (drop -nosave)")
			os.Exit(1)
		}
		if err := printStats(cfg, store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	p := newPlayer(cfg, store, os.Stdin)
	if *resume {
		if err := p.resume(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if err := p.run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openStorage opens the database unless -nosave was given. Failure to open
// it is reported and play continues without saving.
func openStorage(cfg *config.Config) *storage.Storage {
	if *noSave {
		return nil
	}
	store, err := storage.Open(cfg.DataDir)
	if err != nil {
		cfg.Logf(1, "database unavailable, nothing will be saved: %v\n", err)
		return nil
	}
	return store
}

// runPerft prints the leaf counts of the initial position for each depth.
func runPerft(cfg *config.Config, depth int) {
	board := chess.NewInitialBoard()
	for d := 1; d <= depth; d++ {
		fmt.Fprintf(cfg.OutputFile, "perft(%d) = %d\n", d, engine.Perft(board, d))
	}
}

// printStats writes the saved game statistics.
func printStats(cfg *config.Config, store *storage.Storage) error {
	st, err := store.LoadStats()
	if err != nil {
		return err
	}
	w := cfg.OutputFile
	fmt.Fprintf(w, "Games played: %d\n", st.GamesPlayed)
	fmt.Fprintf(w, "Wins: %d  Losses: %d  Draws: %d\n", st.Wins, st.Losses, st.Draws)
	for _, name := range st.Difficulties() {
		fmt.Fprintf(w, "  wins at %s: %d\n", name, st.WinsByDiff[name])
	}
	fmt.Fprintf(w, "Longest winning streak: %d\n", st.LongestWinStrk)
	fmt.Fprintf(w, "Time played: %s\n", st.TotalPlayTime.Round(time.Second))
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessplay [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess in the terminal against a person or the computer.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands during play:\n")
	fmt.Fprintf(os.Stderr, "  e2 e4    Move from e2 to e4 (e2e4 also works)\n")
	fmt.Fprintf(os.Stderr, "  e2       List the legal destinations of the piece on e2\n")
	fmt.Fprintf(os.Stderr, "  undo     Take back the last move (and the computer's reply)\n")
	fmt.Fprintf(os.Stderr, "  restart  Start a new game\n")
	fmt.Fprintf(os.Stderr, "  moves    Show the moves played so far\n")
	fmt.Fprintf(os.Stderr, "  eval     Show the material balance\n")
	fmt.Fprintf(os.Stderr, "  quit     Save the unfinished game and exit\n")
}
