package engine

import "github.com/lgbarn/chesscore/internal/chess"

// Castling geometry by side (chess.Queenside, chess.Kingside): the columns
// that must be empty, the king's destination and transit columns, and the
// rook's destination column.
var (
	castleEmptyCols   = [2][]int{chess.Queenside: {1, 2, 3}, chess.Kingside: {5, 6}}
	castleKingPath    = [2][]int{chess.Queenside: {4, 3, 2}, chess.Kingside: {4, 5, 6}}
	castleKingToCol   = [2]int{chess.Queenside: 2, chess.Kingside: 6}
	castleRookToCol   = [2]int{chess.Queenside: 3, chess.Kingside: 5}
	castleRookFromCol = [2]int{chess.Queenside: 0, chess.Kingside: 7}
)

// castleSide maps a castling tag to chess.Queenside or chess.Kingside.
func castleSide(tag chess.Tag) int {
	if tag.IsKingside() {
		return chess.Kingside
	}
	return chess.Queenside
}

// appendCastleMoves adds the castling moves whose rights are held and whose
// intervening squares are empty. Attacked squares are checked by the filter.
func appendCastleMoves(board *chess.Board, king *chess.Piece, moves []chess.Move) []chess.Move {
	home := king.Colour.HomeRow()
	if king.HasMoved || king.Square != chess.Sq(home, 4) {
		return moves
	}
	for _, side := range []int{chess.Kingside, chess.Queenside} {
		if !king.HasRight(side == chess.Kingside) {
			continue
		}
		clear := true
		for _, col := range castleEmptyCols[side] {
			if !board.IsEmpty(chess.Sq(home, col)) {
				clear = false
				break
			}
		}
		if clear {
			moves = append(moves, chess.Move{
				To:  chess.Sq(home, castleKingToCol[side]),
				Tag: chess.CastleTag(king.Colour, side == chess.Kingside),
			})
		}
	}
	return moves
}

// castlePathSafe reports whether none of the squares the king starts on,
// crosses or lands on is attacked.
func castlePathSafe(board *chess.Board, king *chess.Piece, m chess.Move) bool {
	home := king.Colour.HomeRow()
	for _, col := range castleKingPath[castleSide(m.Tag)] {
		if IsAttacked(board, chess.Sq(home, col), king.Colour) {
			return false
		}
	}
	return true
}

// castleRook returns the rook taking part in a castling move, or nil when
// the side's original rook is no longer in its corner.
func castleRook(board *chess.Board, colour chess.Colour, side int) *chess.Piece {
	rook := board.CastleRook(colour, side)
	if rook == nil || board.At(rook.Square) != rook {
		return nil
	}
	if rook.Square != chess.Sq(colour.HomeRow(), castleRookFromCol[side]) {
		return nil
	}
	return rook
}

// revokeRights clears the castling right bound to rook, if the rook is one
// of its side's original rooks. It returns the prior rights snapshot when
// something changed.
func revokeRights(board *chess.Board, rook *chess.Piece) *chess.RightsSnapshot {
	if rook.Kind != chess.Rook {
		return nil
	}
	king := board.King(rook.Colour)
	if king == nil {
		return nil
	}
	for _, side := range []int{chess.Queenside, chess.Kingside} {
		kingside := side == chess.Kingside
		if board.CastleRook(rook.Colour, side) == rook && king.HasRight(kingside) {
			snap := chess.SnapshotRights(king)
			king.SetRight(kingside, false)
			return &snap
		}
	}
	return nil
}
