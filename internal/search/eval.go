// Package search chooses computer moves: static evaluation, move ordering
// and minimax with alpha-beta pruning.
package search

import "github.com/lgbarn/chesscore/internal/chess"

// MateScore is the magnitude of a checkmate score: a mated white side
// scores -MateScore and a mated black side +MateScore. Material totals stay
// far below it.
const MateScore = 100000

// Material returns the material balance in pawns, positive when white is
// ahead. Kings count zero.
func Material(board *chess.Board) int {
	score := 0
	for _, p := range board.Active(chess.White) {
		score += p.Kind.Value()
	}
	for _, p := range board.Active(chess.Black) {
		score -= p.Kind.Value()
	}
	return score
}

// Positional bonuses in pawns.
const (
	centreBonus = 0.1
	shieldBonus = 0.05
)

var centreSquares = []chess.Square{
	chess.Sq(3, 3), chess.Sq(3, 4), // d5 e5
	chess.Sq(4, 3), chess.Sq(4, 4), // d4 e4
}

// Evaluate scores the position for display, in pawns, positive when white
// is better: material plus small bonuses for pawns and knights in the
// centre and for pawns sheltering the king. The search itself uses
// Material only.
func Evaluate(board *chess.Board) float64 {
	score := float64(Material(board))
	for _, sq := range centreSquares {
		p := board.At(sq)
		if p == nil || (p.Kind != chess.Pawn && p.Kind != chess.Knight) {
			continue
		}
		score += sign(p.Colour) * centreBonus
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		score += sign(colour) * shieldBonus * float64(pawnShield(board, colour))
	}
	return score
}

// pawnShield counts friendly pawns on the three squares in front of the king.
func pawnShield(board *chess.Board, colour chess.Colour) int {
	king := board.King(colour)
	if king == nil {
		return 0
	}
	n := 0
	for dc := -1; dc <= 1; dc++ {
		p := board.At(king.Square.Offset(colour.Forward(), dc))
		if p != nil && p.Kind == chess.Pawn && p.Colour == colour {
			n++
		}
	}
	return n
}

func sign(colour chess.Colour) float64 {
	if colour == chess.White {
		return 1
	}
	return -1
}
