// Package engine provides chess move generation, legality checking and
// board manipulation.
package engine

import "github.com/lgbarn/chesscore/internal/chess"

// generator produces the pseudo-legal moves of one piece kind.
type generator func(board *chess.Board, p *chess.Piece) []chess.Move

var generators = [chess.NumKinds]generator{
	chess.Pawn:   pawnMoves,
	chess.Knight: knightMoves,
	chess.Bishop: bishopMoves,
	chess.Rook:   rookMoves,
	chess.Queen:  queenMoves,
	chess.King:   kingMoves,
}

// PseudoLegalMoves returns the moves the piece's movement rules allow,
// ignoring whether they leave its own king in check.
func PseudoLegalMoves(board *chess.Board, p *chess.Piece) []chess.Move {
	if p == nil || p.Kind <= chess.NoKind || p.Kind >= chess.NumKinds {
		return nil
	}
	return generators[p.Kind](board, p)
}

func knightMoves(board *chess.Board, p *chess.Piece) []chess.Move {
	return stepMoves(board, p, knightOffsets, nil)
}

func bishopMoves(board *chess.Board, p *chess.Piece) []chess.Move {
	return slideMoves(board, p, diagonalDirs, nil)
}

func rookMoves(board *chess.Board, p *chess.Piece) []chess.Move {
	return slideMoves(board, p, straightDirs, nil)
}

func queenMoves(board *chess.Board, p *chess.Piece) []chess.Move {
	moves := slideMoves(board, p, diagonalDirs, nil)
	return slideMoves(board, p, straightDirs, moves)
}

func kingMoves(board *chess.Board, p *chess.Piece) []chess.Move {
	moves := stepMoves(board, p, royalDirs, nil)
	return appendCastleMoves(board, p, moves)
}

// stepMoves adds one move per offset: onto an empty square, or a capture of
// an enemy piece. Friendly squares and off-board targets are skipped.
func stepMoves(board *chess.Board, p *chess.Piece, offsets [][2]int, moves []chess.Move) []chess.Move {
	for _, off := range offsets {
		to := p.Square.Offset(off[0], off[1])
		if !to.InBounds() {
			continue
		}
		target := board.At(to)
		switch {
		case target == nil:
			moves = append(moves, chess.Move{To: to, Tag: chess.Normal})
		case target.Colour != p.Colour:
			moves = append(moves, chess.Move{To: to, Tag: chess.Capture})
		}
	}
	return moves
}

// slideMoves casts a ray per direction until the edge or the first piece.
// An enemy blocker yields a capture; a friendly one ends the ray.
func slideMoves(board *chess.Board, p *chess.Piece, dirs [][2]int, moves []chess.Move) []chess.Move {
	for _, dir := range dirs {
		to := p.Square.Offset(dir[0], dir[1])
		for to.InBounds() {
			target := board.At(to)
			if target != nil {
				if target.Colour != p.Colour {
					moves = append(moves, chess.Move{To: to, Tag: chess.Capture})
				}
				break // Blocked
			}
			moves = append(moves, chess.Move{To: to, Tag: chess.Normal})
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}
