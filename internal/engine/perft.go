package engine

import "github.com/lgbarn/chesscore/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Each pawn reaching the last rank counts once per promotion kind.
func Perft(board *chess.Board, depth int) int64 {
	if depth <= 0 {
		return 1
	}
	var nodes int64
	for _, pm := range AllLegalMoves(board, board.ToMove) {
		kinds := []chess.Kind{chess.Queen}
		if needsPromotion(pm.Piece, pm.Move) {
			kinds = promotionKinds
		}
		for _, kind := range kinds {
			if depth == 1 {
				nodes++
				continue
			}
			Execute(board, pm.Piece, pm.Move, kind)
			nodes += Perft(board, depth-1)
			Undo(board)
		}
	}
	return nodes
}

var promotionKinds = []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}
