package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
)

// MustLayout builds a board from diagram rows, calling t.Fatal on error.
// Rows may also be passed as a single newline separated string.
func MustLayout(t testing.TB, toMove chess.Colour, rows ...string) *chess.Board {
	t.Helper()
	if len(rows) == 1 {
		rows = strings.Split(strings.TrimSpace(rows[0]), "\n")
	}
	board, err := chess.ParseLayout(rows, toMove)
	if err != nil {
		t.Fatalf("bad layout: %v", err)
	}
	return board
}

// PieceState is the comparable view of one piece.
type PieceState struct {
	Letter    string
	Square    string
	HasMoved  bool
	Kingside  bool
	Queenside bool
}

// BoardSnapshot captures everything observable about a board, so two
// snapshots taken around an execute/undo pair can be diffed with cmp.
type BoardSnapshot struct {
	Diagram    string
	ToMove     chess.Colour
	MoveNumber int
	EnPassant  chess.EnPassantState
	Active     [chess.NumColours][]PieceState
	Taken      [chess.NumColours][]PieceState
	Rooks      [chess.NumColours][2]string
	Ply        int
}

// Snapshot records the observable state of the board.
func Snapshot(board *chess.Board) BoardSnapshot {
	s := BoardSnapshot{
		Diagram:    board.String(),
		ToMove:     board.ToMove,
		MoveNumber: board.MoveNumber,
		EnPassant:  board.EnPassant,
		Ply:        board.Ply(),
	}
	for colour := chess.White; colour <= chess.Black; colour++ {
		s.Active[colour] = pieceStates(board.Active(colour))
		s.Taken[colour] = pieceStates(board.Taken(colour))
		for side := chess.Queenside; side <= chess.Kingside; side++ {
			if rook := board.CastleRook(colour, side); rook != nil {
				s.Rooks[colour][side] = rook.Square.String()
			}
		}
	}
	return s
}

func pieceStates(pieces []*chess.Piece) []PieceState {
	out := make([]PieceState, 0, len(pieces))
	for _, p := range pieces {
		out = append(out, PieceState{
			Letter:    string(p.Letter()),
			Square:    p.Square.String(),
			HasMoved:  p.HasMoved,
			Kingside:  p.Kingside,
			Queenside: p.Queenside,
		})
	}
	return out
}
