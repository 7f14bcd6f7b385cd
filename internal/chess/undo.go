package chess

// RightsSnapshot holds a king's castling flags before a move.
type RightsSnapshot struct {
	King      *Piece
	HasMoved  bool
	Kingside  bool
	Queenside bool
}

// SnapshotRights captures the castling flags of a king.
func SnapshotRights(king *Piece) RightsSnapshot {
	return RightsSnapshot{
		King:      king,
		HasMoved:  king.HasMoved,
		Kingside:  king.Kingside,
		Queenside: king.Queenside,
	}
}

// Restore writes the snapshot back into its king.
func (s RightsSnapshot) Restore() {
	if s.King == nil {
		return
	}
	s.King.HasMoved = s.HasMoved
	s.King.Kingside = s.Kingside
	s.King.Queenside = s.Queenside
}

// CastleUndo describes the partner rook of a castling move.
type CastleUndo struct {
	Rook         *Piece
	From         Square
	To           Square
	RookHasMoved bool
}

// PromotionUndo holds both sides of a promotion: the pawn that left the
// board and the piece that replaced it.
type PromotionUndo struct {
	Pawn     *Piece
	Promoted *Piece
}

// UndoRecord holds everything needed to invert one executed move. Records
// form a strict stack on the board; only the latest may be undone.
type UndoRecord struct {
	From   Square
	Piece  *Piece
	Move   Move
	Colour Colour

	// Captured is the piece that stood on the destination, if any.
	Captured *Piece

	// CapturedIndex is the captured piece's position in its active roster.
	CapturedIndex int

	// PieceHasMoved is the mover's HasMoved flag before the move.
	PieceHasMoved bool

	// PrevEnPassant is the en passant state before the move.
	PrevEnPassant EnPassantState

	// Rights is the mover's king before the move.
	Rights RightsSnapshot

	// OpponentRights is set when the move captured an original rook and
	// cost the opponent a castling right.
	OpponentRights *RightsSnapshot

	Castle          *CastleUndo
	EnPassantVictim *Piece
	Promotion       *PromotionUndo
}

// remap copies the record, translating piece pointers through dup.
func (r *UndoRecord) remap(dup func(*Piece) *Piece) *UndoRecord {
	c := *r
	c.Piece = dup(r.Piece)
	c.Captured = dup(r.Captured)
	c.EnPassantVictim = dup(r.EnPassantVictim)
	c.Rights.King = dup(r.Rights.King)
	if r.OpponentRights != nil {
		opp := *r.OpponentRights
		opp.King = dup(opp.King)
		c.OpponentRights = &opp
	}
	if r.Castle != nil {
		castle := *r.Castle
		castle.Rook = dup(castle.Rook)
		c.Castle = &castle
	}
	if r.Promotion != nil {
		c.Promotion = &PromotionUndo{
			Pawn:     dup(r.Promotion.Pawn),
			Promoted: dup(r.Promotion.Promoted),
		}
	}
	return &c
}
