package engine

import "github.com/lgbarn/chesscore/internal/chess"

// enPassantRow returns the row a pawn of the colour must stand on to
// capture en passant.
func enPassantRow(colour chess.Colour) int {
	if colour == chess.White {
		return 3
	}
	return 4
}

// pawnMoves generates pushes, captures and en passant candidates. Whether
// an en passant candidate is playable depends on the previous move and is
// decided by the legal-move filter.
func pawnMoves(board *chess.Board, p *chess.Piece) []chess.Move {
	var moves []chess.Move
	dir := p.Colour.Forward()

	one := p.Square.Offset(dir, 0)
	if board.IsEmpty(one) {
		moves = append(moves, chess.Move{To: one, Tag: chess.Normal})
		if p.Square.Row == p.Colour.PawnRow() {
			two := p.Square.Offset(2*dir, 0)
			if board.IsEmpty(two) {
				moves = append(moves, chess.Move{To: two, Tag: chess.Normal})
			}
		}
	}

	for _, dc := range []int{-1, 1} {
		to := p.Square.Offset(dir, dc)
		if !to.InBounds() {
			continue
		}
		if target := board.At(to); target != nil {
			if target.Colour != p.Colour {
				moves = append(moves, chess.Move{To: to, Tag: chess.Capture})
			}
			continue
		}
		if p.Square.Row != enPassantRow(p.Colour) {
			continue
		}
		beside := board.At(p.Square.Offset(0, dc))
		if beside != nil && beside.Kind == chess.Pawn && beside.Colour != p.Colour {
			moves = append(moves, chess.Move{To: to, Tag: chess.EnPassantTag(p.Colour, dc < 0)})
		}
	}
	return moves
}

// enPassantVictim returns the square of the pawn removed by an en passant
// capture from `from`: beside the capturer, on the destination file.
func enPassantVictim(from chess.Square, m chess.Move) chess.Square {
	return chess.Sq(from.Row, m.To.Col)
}

// enPassantAllowed reports whether the previous move opened an en passant
// window for this capture: a pawn advanced two squares and landed beside
// the capturer on the destination file.
func enPassantAllowed(board *chess.Board, p *chess.Piece, m chess.Move) bool {
	ep := board.EnPassant
	if !ep.Valid || ep.LastKind != chess.Pawn {
		return false
	}
	if abs(ep.FromRow-ep.Last.To.Row) != 2 {
		return false
	}
	return ep.Last.To == enPassantVictim(p.Square, m)
}

// needsPromotion reports whether moving p with m lands a pawn on its last rank.
func needsPromotion(p *chess.Piece, m chess.Move) bool {
	return p.Kind == chess.Pawn && m.To.Row == p.Colour.PromotionRow()
}

// NeedsPromotion reports whether playing m with the piece on from would
// promote a pawn.
func NeedsPromotion(board *chess.Board, from chess.Square, m chess.Move) bool {
	p := board.At(from)
	return p != nil && needsPromotion(p, m)
}
