// Package game drives a chess game for an interactive front end: square
// selection, move submission with promotion prompts, computer replies,
// undo and restart.
package game

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
	"github.com/lgbarn/chesscore/internal/search"
)

// PlayedMove is one committed move in coordinate form.
type PlayedMove struct {
	From      chess.Square
	To        chess.Square
	Promotion chess.Kind // NoKind unless a pawn promoted
}

// String returns the move as "e2e4", with a promotion letter such as
// "e7e8q" when a pawn promoted.
func (m PlayedMove) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != chess.NoKind {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s
}

// ParsePlayedMove parses the String form of a PlayedMove.
func ParsePlayedMove(s string) (PlayedMove, error) {
	if len(s) != 4 && len(s) != 5 {
		return PlayedMove{}, fmt.Errorf("move %q: %w", s, errors.ErrIllegalMove)
	}
	from, err := chess.ParseSquare(s[0:2])
	if err != nil {
		return PlayedMove{}, err
	}
	to, err := chess.ParseSquare(s[2:4])
	if err != nil {
		return PlayedMove{}, err
	}
	m := PlayedMove{From: from, To: to}
	if len(s) == 5 {
		if m.Promotion, err = chess.ParsePromotion(s[4:]); err != nil {
			return PlayedMove{}, err
		}
	}
	return m, nil
}

// Session owns one board and the state around it. It is not safe for
// concurrent use.
type Session struct {
	cfg      *config.Config
	board    *chess.Board
	searcher *search.Searcher
	prompter Prompter

	outcome     engine.Outcome
	played      []PlayedMove
	selected    chess.Square
	hasSelected bool
}

// NewSession starts a game from the initial position. prompter answers
// promotion questions for human moves; nil promotes to a queen.
func NewSession(cfg *config.Config, prompter Prompter) *Session {
	return &Session{
		cfg:      cfg,
		board:    chess.NewInitialBoard(),
		searcher: search.NewSearcher(cfg),
		prompter: prompter,
	}
}

// NewSessionFromBoard continues a game from an existing position.
func NewSessionFromBoard(cfg *config.Config, board *chess.Board, prompter Prompter) *Session {
	s := &Session{
		cfg:      cfg,
		board:    board,
		searcher: search.NewSearcher(cfg),
		prompter: prompter,
	}
	s.outcome = engine.Evaluate(board)
	return s
}

// Board returns the live board. Callers must treat it as read-only.
func (s *Session) Board() *chess.Board {
	return s.board
}

// SelectSquare marks sq as the piece the user is about to move. It fails
// unless sq holds a piece of the side to move.
func (s *Session) SelectSquare(sq chess.Square) error {
	p := s.board.At(sq)
	if p == nil || p.Colour != s.board.ToMove || s.outcome.Over() {
		s.hasSelected = false
		return &errors.GameError{Err: errors.ErrInvalidSelection, Ply: s.board.Ply(), Square: sq.String()}
	}
	s.selected = sq
	s.hasSelected = true
	return nil
}

// Selected returns the selected square, if any.
func (s *Session) Selected() (chess.Square, bool) {
	return s.selected, s.hasSelected
}

// LegalMovesFor returns the legal moves of the piece on sq when it belongs
// to the side to move and the game is still going.
func (s *Session) LegalMovesFor(sq chess.Square) []chess.Move {
	p := s.board.At(sq)
	if p == nil || p.Colour != s.board.ToMove || s.outcome.Over() {
		return nil
	}
	return engine.LegalMovesForPiece(s.board, p)
}

// HasLegalMoves reports whether the piece on sq can move now.
func (s *Session) HasLegalMoves(sq chess.Square) bool {
	return len(s.LegalMovesFor(sq)) > 0
}

// PlayMove plays the human move from -> to. An illegal move returns false
// with no error and leaves the game unchanged. When a pawn promotes the
// prompter is asked; if it fails, the error is returned and nothing moves.
func (s *Session) PlayMove(from, to chess.Square) (bool, error) {
	if s.outcome.Over() {
		return false, nil
	}
	p := s.board.At(from)
	if p == nil || p.Colour != s.board.ToMove {
		return false, nil
	}
	m, ok := engine.FindMove(s.board, from, to)
	if !ok {
		s.cfg.Logf(2, "ignored %s-%s: %v\n", from, to, errors.ErrIllegalMove)
		return false, nil
	}

	promote := chess.NoKind
	if engine.NeedsPromotion(s.board, from, m) {
		kind, err := s.askPromotion(p.Colour, to)
		if err != nil {
			return false, &errors.GameError{Err: err, Ply: s.board.Ply(), Square: to.String()}
		}
		promote = kind
	}
	s.commit(p, m, promote)
	return true, nil
}

// RequestComputerMove lets the search choose and play a move for the side
// to move. It reports false when the game is over or no move exists.
func (s *Session) RequestComputerMove(difficulty config.Difficulty) (search.Result, bool) {
	if s.outcome.Over() {
		return search.Result{}, false
	}
	res, ok := s.searcher.BestMove(s.board, difficulty)
	if !ok {
		s.cfg.Logf(1, "internal error: no move found for %s at ply %d but game not over\n",
			s.board.ToMove, s.board.Ply())
		s.outcome = engine.Evaluate(s.board)
		return search.Result{}, false
	}
	promote := chess.NoKind
	if engine.NeedsPromotion(s.board, res.From, res.Move) {
		promote = chess.Queen
	}
	s.commit(res.Piece, res.Move, promote)
	return res, true
}

// commit executes a legal move and refreshes the game status.
func (s *Session) commit(p *chess.Piece, m chess.Move, promote chess.Kind) {
	from := p.Square
	rec := engine.Execute(s.board, p, m, promote)
	pm := PlayedMove{From: from, To: m.To}
	if rec.Promotion != nil {
		pm.Promotion = rec.Promotion.Promoted.Kind
	}
	s.played = append(s.played, pm)
	s.hasSelected = false
	s.outcome = engine.Evaluate(s.board)
	s.cfg.Logf(2, "%d. %s %s\n", s.board.Ply(), rec.Colour, pm)
	if s.outcome.Over() {
		s.cfg.Logf(1, "game over: %s\n", s.outcome)
	}
}

// UndoLastMove takes back the latest move. It returns false when no move
// has been played.
func (s *Session) UndoLastMove() bool {
	if !engine.Undo(s.board) {
		return false
	}
	if len(s.played) > 0 {
		s.played = s.played[:len(s.played)-1]
	}
	s.hasSelected = false
	s.outcome = engine.Evaluate(s.board)
	return true
}

// Restart discards the game and sets up a fresh position.
func (s *Session) Restart() {
	s.board.SetupInitialPosition()
	s.played = nil
	s.hasSelected = false
	s.outcome = engine.Outcome{}
}

// Outcome returns the game status after the latest move.
func (s *Session) Outcome() engine.Outcome {
	return s.outcome
}

// Advantage returns the evaluation of the position in pawns, positive when
// white is better.
func (s *Session) Advantage() float64 {
	return search.Evaluate(s.board)
}

// Moves returns the moves played so far.
func (s *Session) Moves() []PlayedMove {
	out := make([]PlayedMove, len(s.played))
	copy(out, s.played)
	return out
}

// Replay plays moves in order without prompting. It stops at the first
// illegal move and returns an error naming it; earlier moves stay played.
func (s *Session) Replay(moves []PlayedMove) error {
	for _, pm := range moves {
		p := s.board.At(pm.From)
		m, ok := engine.FindMove(s.board, pm.From, pm.To)
		if p == nil || p.Colour != s.board.ToMove || !ok || s.outcome.Over() {
			return &errors.GameError{Err: errors.ErrIllegalMove, Ply: s.board.Ply(), Square: pm.From.String(), Move: pm.String()}
		}
		s.commit(p, m, pm.Promotion)
	}
	return nil
}
