package engine

import "github.com/lgbarn/chesscore/internal/chess"

// PieceMove pairs a piece with one of its legal moves.
type PieceMove struct {
	Piece *chess.Piece
	Move  chess.Move
}

// From returns the square the piece moves from.
func (pm PieceMove) From() chess.Square {
	return pm.Piece.Square
}

// WithTentativeMove places p on the move's destination, removing whatever
// the move would capture, runs fn and puts everything back before
// returning. Castling only moves the king; rights, rosters and the undo
// stack are never touched.
func WithTentativeMove[T any](board *chess.Board, p *chess.Piece, m chess.Move, fn func() T) T {
	from := p.Square
	captured := board.At(m.To)

	var victim *chess.Piece
	if m.Tag.IsEnPassant() {
		victimSq := enPassantVictim(from, m)
		victim = board.At(victimSq)
		if victim != nil {
			board.Clear(victimSq)
		}
	}
	board.Relocate(p, m.To)

	defer func() {
		board.Relocate(p, from)
		if captured != nil {
			board.Put(captured, m.To)
		}
		if victim != nil {
			board.Put(victim, victim.Square)
		}
	}()
	return fn()
}

// LegalMoves returns the legal moves of the piece on sq, or nil if the
// square is empty.
func LegalMoves(board *chess.Board, sq chess.Square) []chess.Move {
	p := board.At(sq)
	if p == nil {
		return nil
	}
	return LegalMovesForPiece(board, p)
}

// LegalMovesForPiece filters the pseudo-legal moves of p down to those
// that do not leave its own king attacked.
func LegalMovesForPiece(board *chess.Board, p *chess.Piece) []chess.Move {
	var legal []chess.Move
	for _, m := range PseudoLegalMoves(board, p) {
		if isLegal(board, p, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// isLegal applies the castling and en passant gates, then simulates the move.
func isLegal(board *chess.Board, p *chess.Piece, m chess.Move) bool {
	if m.Tag.IsCastle() && !castlePathSafe(board, p, m) {
		return false
	}
	if m.Tag.IsEnPassant() && !enPassantAllowed(board, p, m) {
		return false
	}
	return WithTentativeMove(board, p, m, func() bool {
		return !IsInCheck(board, p.Colour)
	})
}

// AllLegalMoves returns every legal move of the colour, in roster order.
func AllLegalMoves(board *chess.Board, colour chess.Colour) []PieceMove {
	var moves []PieceMove
	for _, p := range rosterCopy(board, colour) {
		for _, m := range LegalMovesForPiece(board, p) {
			moves = append(moves, PieceMove{Piece: p, Move: m})
		}
	}
	return moves
}

// HasLegalMoves returns true if the colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, p := range rosterCopy(board, colour) {
		for _, m := range PseudoLegalMoves(board, p) {
			if isLegal(board, p, m) {
				return true
			}
		}
	}
	return false
}

// FindMove returns the legal move of the piece on from that lands on to.
// Promotions produce a single move per destination.
func FindMove(board *chess.Board, from, to chess.Square) (chess.Move, bool) {
	for _, m := range LegalMoves(board, from) {
		if m.To == to {
			return m, true
		}
	}
	return chess.Move{}, false
}

// rosterCopy snapshots the active roster so callers may execute moves
// while iterating.
func rosterCopy(board *chess.Board, colour chess.Colour) []*chess.Piece {
	active := board.Active(colour)
	out := make([]*chess.Piece, len(active))
	copy(out, active)
	return out
}
