// play.go - Interactive game loop
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
	"github.com/lgbarn/chesscore/internal/game"
	"github.com/lgbarn/chesscore/internal/storage"
)

// player drives one session from line-oriented input.
type player struct {
	cfg     *config.Config
	store   *storage.Storage // nil when nothing is saved
	in      *bufio.Scanner
	session *game.Session
	started time.Time
}

func newPlayer(cfg *config.Config, store *storage.Storage, in io.Reader) *player {
	p := &player{
		cfg:     cfg,
		store:   store,
		in:      bufio.NewScanner(in),
		started: time.Now(),
	}
	p.session = game.NewSession(cfg, game.PrompterFunc(p.choosePromotion))
	return p
}

// choosePromotion reads the promotion choice from the same input as moves.
func (p *player) choosePromotion(colour chess.Colour, at chess.Square) (string, error) {
	fmt.Fprintf(p.cfg.OutputFile, "%s pawn promotes on %s. Choose q, r, b or n: ", colour, at)
	line, ok := p.readLine()
	if !ok {
		return "", io.EOF
	}
	return line, nil
}

func (p *player) readLine() (string, bool) {
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

// resume replays the saved unfinished game, if there is one.
func (p *player) resume() error {
	if p.store == nil {
		return errors.ErrNoSavedGame
	}
	saved, err := p.store.LoadGame()
	if err != nil {
		return err
	}
	moves := make([]game.PlayedMove, 0, len(saved.Moves))
	for _, s := range saved.Moves {
		m, err := game.ParsePlayedMove(s)
		if err != nil {
			return errors.Wrap(err, "saved game")
		}
		moves = append(moves, m)
	}
	if err := p.session.Replay(moves); err != nil {
		return errors.Wrap(err, "saved game")
	}
	p.cfg.Logf(1, "resumed game after %d moves\n", len(moves))
	return nil
}

// run plays until the game ends, the user quits or input runs out.
func (p *player) run() error {
	out := p.cfg.OutputFile
	for {
		board := p.session.Board()
		fmt.Fprintln(out, board.String())

		if outcome := p.session.Outcome(); outcome.Over() {
			fmt.Fprintf(out, "Game over: %s\n", outcome)
			return p.finish()
		}

		if p.cfg.Players.ComputerPlays(board.ToMove) {
			mover := board.ToMove
			res, ok := p.session.RequestComputerMove(p.cfg.Difficulty)
			if !ok {
				return fmt.Errorf("computer found no move for %s", mover)
			}
			moves := p.session.Moves()
			fmt.Fprintf(out, "%s plays %s (score %d, %d nodes)\n",
				mover, moves[len(moves)-1], res.Score, res.Nodes)
			continue
		}

		if engine.IsInCheck(board, board.ToMove) {
			fmt.Fprintf(out, "%s is in check.\n", board.ToMove)
		}
		fmt.Fprintf(out, "%s to move> ", board.ToMove)
		line, ok := p.readLine()
		if !ok {
			return p.suspend()
		}
		done, err := p.command(line)
		if err != nil {
			return err
		}
		if done {
			return p.suspend()
		}
	}
}

// command handles one line of input. It reports true when the user quits.
func (p *player) command(line string) (bool, error) {
	out := p.cfg.OutputFile
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "quit", "exit", "q":
		return true, nil
	case "undo", "u":
		p.undo()
		return false, nil
	case "restart", "new":
		p.session.Restart()
		p.started = time.Now()
		return false, nil
	case "moves":
		for i, m := range p.session.Moves() {
			fmt.Fprintf(out, "%d. %s\n", i+1, m)
		}
		return false, nil
	case "eval":
		fmt.Fprintf(out, "Material balance: %+.2f\n", p.session.Advantage())
		return false, nil
	}

	from, to, err := parseInputMove(fields)
	if err != nil {
		fmt.Fprintf(out, "Unrecognised input %q: %v\n", line, err)
		return false, nil
	}
	if to == nil {
		p.showTargets(from)
		return false, nil
	}

	played, err := p.session.PlayMove(from, *to)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return true, nil
		}
		return false, err
	}
	if !played {
		fmt.Fprintf(out, "Illegal move %s-%s.\n", from, *to)
	}
	return false, nil
}

// parseInputMove accepts "e2 e4", "e2e4" or a lone square. The second
// square is nil for a lone square.
func parseInputMove(fields []string) (chess.Square, *chess.Square, error) {
	if len(fields) == 1 && len(fields[0]) == 4 {
		fields = []string{fields[0][:2], fields[0][2:]}
	}
	from, err := chess.ParseSquare(fields[0])
	if err != nil {
		return chess.Square{}, nil, err
	}
	if len(fields) == 1 {
		return from, nil, nil
	}
	to, err := chess.ParseSquare(fields[1])
	if err != nil {
		return chess.Square{}, nil, err
	}
	return from, &to, nil
}

// showTargets selects the piece on sq and lists where it may go.
func (p *player) showTargets(sq chess.Square) {
	out := p.cfg.OutputFile
	if err := p.session.SelectSquare(sq); err != nil {
		fmt.Fprintf(out, "%v\n", err)
		return
	}
	moves := p.session.LegalMovesFor(sq)
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.To.String()
	}
	fmt.Fprintf(out, "%s can move to: %s\n", sq, strings.Join(names, " "))
}

// undo takes back the last move, and the computer's reply before it when
// playing against the computer, so the human is on move again.
func (p *player) undo() {
	if !p.session.UndoLastMove() {
		fmt.Fprintln(p.cfg.OutputFile, "Nothing to undo.")
		return
	}
	board := p.session.Board()
	if p.cfg.Players.ComputerPlays(board.ToMove) && !p.cfg.Players.ComputerPlays(board.ToMove.Opposite()) {
		p.session.UndoLastMove()
	}
}

// humanColour returns the side a lone human plays. It reports false when
// both or neither side is human, in which case no result is recorded.
func (p *player) humanColour() (chess.Colour, bool) {
	white := p.cfg.Players.ComputerPlays(chess.White)
	black := p.cfg.Players.ComputerPlays(chess.Black)
	switch {
	case !white && black:
		return chess.White, true
	case white && !black:
		return chess.Black, true
	}
	return chess.White, false
}

// finish records a finished game and forgets any saved copy of it.
func (p *player) finish() error {
	if p.store == nil {
		return nil
	}
	if err := p.store.ClearGame(); err != nil {
		return err
	}
	human, ok := p.humanColour()
	if !ok {
		return nil
	}
	outcome := p.session.Outcome()
	result := storage.GameResult{
		Won:        outcome.Status == engine.Checkmate && outcome.Winner == human,
		Draw:       outcome.Status == engine.Stalemate,
		Difficulty: p.cfg.Difficulty,
		Duration:   time.Since(p.started),
		Plies:      p.session.Board().Ply(),
	}
	st, err := p.store.RecordGame(result)
	if err != nil {
		return err
	}
	p.cfg.Logf(1, "record: %d wins, %d losses, %d draws\n", st.Wins, st.Losses, st.Draws)
	return p.store.SavePreferences(&storage.Preferences{Difficulty: p.cfg.Difficulty, HumanColour: human})
}

// suspend saves the unfinished game so -resume can continue it.
func (p *player) suspend() error {
	if p.store == nil || p.session.Outcome().Over() {
		return nil
	}
	moves := p.session.Moves()
	if len(moves) == 0 {
		return p.store.ClearGame()
	}
	human, _ := p.humanColour()
	saved := &storage.SavedGame{HumanColour: human, Moves: make([]string, len(moves))}
	for i, m := range moves {
		saved.Moves[i] = m.String()
	}
	if err := p.store.SaveGame(saved); err != nil {
		return err
	}
	fmt.Fprintf(p.cfg.OutputFile, "\nGame saved after %d moves; use -resume to continue.\n", len(moves))
	return nil
}
