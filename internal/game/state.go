package game

import (
	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
)

// Cell is what a display needs to draw one square. Kind is chess.NoKind
// for an empty square.
type Cell struct {
	Kind   chess.Kind
	Colour chess.Colour
}

// Empty reports whether the square holds no piece.
func (c Cell) Empty() bool {
	return c.Kind == chess.NoKind
}

// State is a read-only copy of everything a display renders.
type State struct {
	Cells      [chess.BoardSize][chess.BoardSize]Cell
	ToMove     chess.Colour
	MoveNumber int
	Ply        int
	InCheck    bool
	Outcome    engine.Outcome

	// Taken lists the kinds captured by each colour, in capture order.
	Taken [chess.NumColours][]chess.Kind

	// Selected is the square chosen with SelectSquare, if any.
	Selected    chess.Square
	HasSelected bool
}

// Over reports whether the game has ended.
func (st State) Over() bool {
	return st.Outcome.Over()
}

// Snapshot copies the current position and game status.
func (s *Session) Snapshot() State {
	st := State{
		ToMove:      s.board.ToMove,
		MoveNumber:  s.board.MoveNumber,
		Ply:         s.board.Ply(),
		InCheck:     engine.IsInCheck(s.board, s.board.ToMove),
		Outcome:     s.outcome,
		Selected:    s.selected,
		HasSelected: s.hasSelected,
	}
	for r := 0; r < chess.BoardSize; r++ {
		for c := 0; c < chess.BoardSize; c++ {
			if p := s.board.At(chess.Sq(r, c)); p != nil {
				st.Cells[r][c] = Cell{Kind: p.Kind, Colour: p.Colour}
			}
		}
	}
	for colour := chess.White; colour <= chess.Black; colour++ {
		for _, p := range s.board.Taken(colour) {
			st.Taken[colour] = append(st.Taken[colour], p.Kind)
		}
	}
	return st
}
