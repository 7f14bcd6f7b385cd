package engine

import "github.com/lgbarn/chesscore/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.King(colour)
	if king == nil {
		return false // No king tracked
	}
	return IsAttacked(board, king.Square, colour)
}

// IsAttacked returns true if any piece of the opponent of defending attacks
// the square. The board is only read.
func IsAttacked(board *chess.Board, sq chess.Square, defending chess.Colour) bool {
	// Diagonal rays: bishops and queens anywhere, kings and pawns adjacent
	for _, dir := range diagonalDirs {
		if attacker := firstOnRay(board, sq, dir, defending); attacker != nil {
			dist := abs(attacker.Square.Row - sq.Row)
			switch attacker.Kind {
			case chess.Bishop, chess.Queen:
				return true
			case chess.King:
				if dist == 1 {
					return true
				}
			case chess.Pawn:
				if dist == 1 && dir[0] == -attacker.Colour.Forward() {
					return true
				}
			}
		}
	}

	// Orthogonal rays: rooks and queens anywhere, kings adjacent
	for _, dir := range straightDirs {
		if attacker := firstOnRay(board, sq, dir, defending); attacker != nil {
			dist := abs(attacker.Square.Row-sq.Row) + abs(attacker.Square.Col-sq.Col)
			switch attacker.Kind {
			case chess.Rook, chess.Queen:
				return true
			case chess.King:
				if dist == 1 {
					return true
				}
			}
		}
	}

	// Knight jumps
	for _, off := range knightOffsets {
		p := board.At(sq.Offset(off[0], off[1]))
		if p != nil && p.Kind == chess.Knight && p.Colour != defending {
			return true
		}
	}
	return false
}

// firstOnRay walks from sq in dir and returns the first piece met if it
// belongs to the opponent of defending.
func firstOnRay(board *chess.Board, sq chess.Square, dir [2]int, defending chess.Colour) *chess.Piece {
	for at := sq.Offset(dir[0], dir[1]); at.InBounds(); at = at.Offset(dir[0], dir[1]) {
		if p := board.At(at); p != nil {
			if p.Colour == defending {
				return nil
			}
			return p
		}
	}
	return nil
}
