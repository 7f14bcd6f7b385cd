package engine

import (
	"fmt"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// Undo reverts the most recent move. It returns false if no move has been
// played.
func Undo(board *chess.Board) bool {
	rec := board.Pop()
	if rec == nil {
		return false
	}
	revert(board, rec)
	return true
}

// UndoRecordOf reverts rec, which must be the most recent record on the
// board's stack.
func UndoRecordOf(board *chess.Board, rec *chess.UndoRecord) error {
	if rec == nil || board.LastRecord() != rec {
		return fmt.Errorf("undo out of order at ply %d: %w", board.Ply(), errors.ErrStaleUndo)
	}
	board.Pop()
	revert(board, rec)
	return nil
}

// revert inverts Execute step by step, in reverse order.
func revert(board *chess.Board, rec *chess.UndoRecord) {
	board.ToMove = rec.Colour
	if rec.Colour == chess.Black {
		board.MoveNumber--
	}
	board.EnPassant = rec.PrevEnPassant

	if rec.Promotion != nil {
		board.Clear(rec.Move.To)
		board.ReplaceActive(rec.Promotion.Promoted, rec.Promotion.Pawn)
	}

	rec.Rights.Restore()
	if rec.OpponentRights != nil {
		rec.OpponentRights.Restore()
	}

	if c := rec.Castle; c != nil {
		board.Relocate(c.Rook, c.From)
		c.Rook.HasMoved = c.RookHasMoved
	}

	p := rec.Piece
	board.Put(p, rec.From)
	board.Clear(rec.Move.To)
	p.HasMoved = rec.PieceHasMoved

	if rec.Captured != nil {
		board.Put(rec.Captured, rec.Move.To)
		board.ActivateAt(rec.Captured, rec.CapturedIndex)
		board.Untake(rec.Colour, rec.Captured)
	}
	if v := rec.EnPassantVictim; v != nil {
		board.Put(v, v.Square)
		board.ActivateAt(v, rec.CapturedIndex)
		board.Untake(rec.Colour, v)
	}
}
