package engine

import "github.com/lgbarn/chesscore/internal/chess"

// Execute plays a move the legal-move filter produced and pushes its undo
// record on the board. promote names the piece a pawn reaching its last
// rank becomes; anything that is not a legal promotion kind means Queen.
func Execute(board *chess.Board, p *chess.Piece, m chess.Move, promote chess.Kind) *chess.UndoRecord {
	colour := p.Colour
	rec := &chess.UndoRecord{
		From:          p.Square,
		Piece:         p,
		Move:          m,
		Colour:        colour,
		CapturedIndex: -1,
		PieceHasMoved: p.HasMoved,
		PrevEnPassant: board.EnPassant,
	}
	if king := board.King(colour); king != nil {
		rec.Rights = chess.SnapshotRights(king)
	}

	// Captures
	if target := board.At(m.To); target != nil && target.Colour != colour {
		rec.Captured = target
		rec.CapturedIndex = board.Deactivate(target)
		board.Take(colour, target)
		rec.OpponentRights = revokeRights(board, target)
	}
	if m.Tag.IsEnPassant() {
		victimSq := enPassantVictim(p.Square, m)
		if victim := board.At(victimSq); victim != nil {
			rec.EnPassantVictim = victim
			rec.CapturedIndex = board.Deactivate(victim)
			board.Take(colour, victim)
			board.Clear(victimSq)
		}
	}

	board.Relocate(p, m.To)

	if m.Tag.IsCastle() {
		side := castleSide(m.Tag)
		if rook := castleRook(board, colour, side); rook != nil {
			rec.Castle = &chess.CastleUndo{
				Rook:         rook,
				From:         rook.Square,
				To:           chess.Sq(colour.HomeRow(), castleRookToCol[side]),
				RookHasMoved: rook.HasMoved,
			}
			board.Relocate(rook, rec.Castle.To)
			rook.HasMoved = true
		}
	}

	// Castling rights
	p.HasMoved = true
	if p.Kind == chess.Rook {
		revokeRights(board, p)
	}

	if needsPromotion(p, m) {
		kind := promote
		if !kind.CanPromoteTo() {
			kind = chess.Queen
		}
		promoted := chess.NewPiece(kind, colour, m.To)
		promoted.HasMoved = true
		board.ReplaceActive(p, promoted)
		board.Put(promoted, m.To)
		rec.Promotion = &chess.PromotionUndo{Pawn: p, Promoted: promoted}
	}

	board.EnPassant = chess.EnPassantState{
		Valid:    true,
		FromRow:  rec.From.Row,
		Last:     m,
		LastKind: p.Kind,
	}
	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()
	board.Push(rec)
	return rec
}
