package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/errors"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
	keySavedGame   = "saved_game"
)

// Preferences are the user's settings between runs.
type Preferences struct {
	Difficulty  config.Difficulty `json:"difficulty"`
	HumanColour chess.Colour      `json:"human_colour"`
	LastPlayed  time.Time         `json:"last_played"`
}

// DefaultPreferences returns the preferences of a first run.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Difficulty:  config.Medium,
		HumanColour: chess.White,
	}
}

// GameStats are totals over finished games, seen from the human side.
type GameStats struct {
	GamesPlayed    int            `json:"games_played"`
	Wins           int            `json:"wins"`
	Losses         int            `json:"losses"`
	Draws          int            `json:"draws"`
	WinsByDiff     map[string]int `json:"wins_by_difficulty"`
	TotalPlayTime  time.Duration  `json:"total_play_time"`
	TotalPlies     int            `json:"total_plies"`
	LongestWinStrk int            `json:"longest_win_streak"`
	CurrentStreak  int            `json:"current_streak"`
}

// NewGameStats returns empty game statistics.
func NewGameStats() *GameStats {
	return &GameStats{WinsByDiff: make(map[string]int)}
}

// Difficulties returns the difficulties with at least one win, sorted.
func (g *GameStats) Difficulties() []string {
	names := make([]string, 0, len(g.WinsByDiff))
	for name := range g.WinsByDiff {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// GameResult describes a finished game.
type GameResult struct {
	Won        bool
	Draw       bool
	Difficulty config.Difficulty
	Duration   time.Duration
	Plies      int
}

// SavedGame is an unfinished game: the moves played so far, in the
// coordinate form of game.PlayedMove.
type SavedGame struct {
	Moves       []string     `json:"moves"`
	HumanColour chess.Colour `json:"human_colour"`
	SavedAt     time.Time    `json:"saved_at"`
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// Open opens (creating if needed) the database under dataDir; an empty
// dataDir means the platform default.
func Open(dataDir string) (*Storage, error) {
	dbDir, err := DatabaseDir(dataDir)
	if err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", dbDir)
	}
	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// put stores v as JSON under key.
func (s *Storage) put(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// get decodes the JSON stored under key into v. It reports false, leaving
// v untouched, when the key does not exist.
func (s *Storage) get(key string, v interface{}) (bool, error) {
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
	return found, err
}

// SavePreferences saves user preferences.
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastPlayed = time.Now()
	return s.put(keyPreferences, prefs)
}

// LoadPreferences loads user preferences, returning defaults if none were saved.
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()
	_, err := s.get(keyPreferences, prefs)
	return prefs, err
}

// SaveStats saves game statistics.
func (s *Storage) SaveStats(stats *GameStats) error {
	return s.put(keyStats, stats)
}

// LoadStats loads game statistics, returning empty stats if none were saved.
func (s *Storage) LoadStats() (*GameStats, error) {
	stats := NewGameStats()
	if _, err := s.get(keyStats, stats); err != nil {
		return nil, err
	}
	if stats.WinsByDiff == nil {
		stats.WinsByDiff = make(map[string]int)
	}
	return stats, nil
}

// RecordGame adds a finished game to the statistics and returns the
// updated totals.
func (s *Storage) RecordGame(result GameResult) (*GameStats, error) {
	stats, err := s.LoadStats()
	if err != nil {
		return nil, err
	}

	stats.GamesPlayed++
	stats.TotalPlayTime += result.Duration
	stats.TotalPlies += result.Plies

	switch {
	case result.Draw:
		stats.Draws++
		stats.CurrentStreak = 0
	case result.Won:
		stats.Wins++
		stats.WinsByDiff[result.Difficulty.String()]++
		stats.CurrentStreak++
		if stats.CurrentStreak > stats.LongestWinStrk {
			stats.LongestWinStrk = stats.CurrentStreak
		}
	default:
		stats.Losses++
		stats.CurrentStreak = 0
	}

	if err := s.SaveStats(stats); err != nil {
		return nil, err
	}
	out := *stats
	out.WinsByDiff = make(map[string]int, len(stats.WinsByDiff))
	maps.Copy(out.WinsByDiff, stats.WinsByDiff)
	return &out, nil
}

// SaveGame stores the moves of an unfinished game, replacing any earlier one.
func (s *Storage) SaveGame(game *SavedGame) error {
	game.SavedAt = time.Now()
	return s.put(keySavedGame, game)
}

// LoadGame returns the saved unfinished game, or errors.ErrNoSavedGame.
func (s *Storage) LoadGame() (*SavedGame, error) {
	game := &SavedGame{}
	found, err := s.get(keySavedGame, game)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.ErrNoSavedGame
	}
	return game, nil
}

// ClearGame forgets the saved game. Clearing when nothing is saved is not
// an error.
func (s *Storage) ClearGame() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keySavedGame))
	})
}
