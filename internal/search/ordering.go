package search

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
)

// victimValue returns the value of the piece a move captures, or 0.
func victimValue(board *chess.Board, pm engine.PieceMove) int {
	switch {
	case pm.Move.Tag.IsEnPassant():
		return chess.Pawn.Value()
	case pm.Move.Tag == chess.Capture:
		if victim := board.At(pm.Move.To); victim != nil {
			return victim.Kind.Value()
		}
	}
	return 0
}

// orderMoves puts captures first, most valuable victim first, and keeps
// generation order otherwise. The result is cut to limit moves when limit
// is positive. moves is reordered in place.
func orderMoves(board *chess.Board, moves []engine.PieceMove, limit int) []engine.PieceMove {
	isCapture := func(pm engine.PieceMove) bool { return pm.Move.Tag.IsCapture() }
	slices.SortStableFunc(moves, func(a, b engine.PieceMove) int {
		ca, cb := isCapture(a), isCapture(b)
		switch {
		case ca && !cb:
			return -1
		case cb && !ca:
			return 1
		case ca && cb:
			return victimValue(board, b) - victimValue(board, a)
		}
		return 0
	})
	if limit > 0 && len(moves) > limit {
		moves = moves[:limit]
	}
	return moves
}

// bestCapture returns the capture with the most valuable victim, preferring
// the earliest in generation order on ties.
func bestCapture(board *chess.Board, moves []engine.PieceMove) (engine.PieceMove, bool) {
	best, bestValue := -1, 0
	for i, pm := range moves {
		if !pm.Move.Tag.IsCapture() {
			continue
		}
		if v := victimValue(board, pm); best < 0 || v > bestValue {
			best, bestValue = i, v
		}
	}
	if best < 0 {
		return engine.PieceMove{}, false
	}
	return moves[best], true
}
