package chess

// Castling sides, used to index the original rooks of each colour.
const (
	Queenside = 0
	Kingside  = 1
)

// EnPassantState remembers the previous move, which is all en passant
// legality depends on: the row the last mover started from, the move it
// made and its kind. It is overwritten by every executed move.
type EnPassantState struct {
	Valid    bool
	FromRow  int
	Last     Move
	LastKind Kind
}

// Board represents a chess board with all state needed for the game.
type Board struct {
	squares [BoardSize][BoardSize]*Piece

	// Who has the next move.
	ToMove Colour

	// The current move number, incremented after each black move.
	MoveNumber int

	// State of the previous move for en passant detection.
	EnPassant EnPassantState

	active [NumColours][]*Piece
	taken  [NumColours][]*Piece
	kings  [NumColours]*Piece

	// The rooks each side started with, indexed by Queenside/Kingside.
	// Castling rights are bound to these pieces, not to squares.
	rooks [NumColours][2]*Piece

	history []*UndoRecord
}

// NewBoard creates a new empty board with white to move.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition discards every piece and places a fresh set of 32.
func (b *Board) SetupInitialPosition() {
	*b = Board{ToMove: White, MoveNumber: 1}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for _, colour := range []Colour{White, Black} {
		home := colour.HomeRow()
		for col, kind := range backRank {
			b.Add(NewPiece(kind, colour, Sq(home, col)))
			b.Add(NewPiece(Pawn, colour, Sq(colour.PawnRow(), col)))
		}
		b.rooks[colour][Queenside] = b.At(Sq(home, 0))
		b.rooks[colour][Kingside] = b.At(Sq(home, 7))
	}
}

// At returns the piece on the square, or nil if it is empty or off the board.
func (b *Board) At(sq Square) *Piece {
	if !sq.InBounds() {
		return nil
	}
	return b.squares[sq.Row][sq.Col]
}

// IsEmpty reports whether the square is on the board and unoccupied.
func (b *Board) IsEmpty(sq Square) bool {
	return sq.InBounds() && b.squares[sq.Row][sq.Col] == nil
}

// Put places the piece on the square, updating its square field. Whatever
// occupied the square is overwritten; rosters are untouched.
func (b *Board) Put(p *Piece, sq Square) {
	b.squares[sq.Row][sq.Col] = p
	p.Square = sq
}

// Clear empties the square.
func (b *Board) Clear(sq Square) {
	b.squares[sq.Row][sq.Col] = nil
}

// Relocate moves the piece from its current square to sq.
func (b *Board) Relocate(p *Piece, sq Square) {
	b.Clear(p.Square)
	b.Put(p, sq)
}

// Add places a new piece on its square and enters it in the active roster.
func (b *Board) Add(p *Piece) {
	b.Put(p, p.Square)
	b.active[p.Colour] = append(b.active[p.Colour], p)
	if p.Kind == King {
		b.kings[p.Colour] = p
	}
}

// Deactivate removes the piece from its colour's active roster and returns
// the index it held, or -1 if it was not active.
func (b *Board) Deactivate(p *Piece) int {
	list := b.active[p.Colour]
	for i, q := range list {
		if q == p {
			b.active[p.Colour] = append(list[:i], list[i+1:]...)
			return i
		}
	}
	return -1
}

// ActivateAt reinserts the piece into its colour's active roster at index,
// undoing a Deactivate. An out of range index appends.
func (b *Board) ActivateAt(p *Piece, index int) {
	list := b.active[p.Colour]
	if index < 0 || index > len(list) {
		b.active[p.Colour] = append(list, p)
		return
	}
	list = append(list, nil)
	copy(list[index+1:], list[index:])
	list[index] = p
	b.active[p.Colour] = list
}

// ReplaceActive swaps old for replacement in the active roster, keeping its
// position. It reports whether old was found.
func (b *Board) ReplaceActive(old, replacement *Piece) bool {
	list := b.active[old.Colour]
	for i, q := range list {
		if q == old {
			list[i] = replacement
			return true
		}
	}
	return false
}

// Take records that colour captured p.
func (b *Board) Take(colour Colour, p *Piece) {
	b.taken[colour] = append(b.taken[colour], p)
}

// Untake removes p from the pieces captured by colour.
func (b *Board) Untake(colour Colour, p *Piece) {
	b.taken[colour] = removePiece(b.taken[colour], p)
}

// removePiece deletes the last occurrence of p, preserving order.
func removePiece(list []*Piece, p *Piece) []*Piece {
	for i := len(list) - 1; i >= 0; i-- {
		if list[i] == p {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// Active returns the colour's pieces still on the board. The slice is
// shared with the board and must not be modified.
func (b *Board) Active(colour Colour) []*Piece {
	return b.active[colour]
}

// Taken returns the pieces captured by colour, in capture order.
func (b *Board) Taken(colour Colour) []*Piece {
	return b.taken[colour]
}

// King returns the colour's king.
func (b *Board) King(colour Colour) *Piece {
	return b.kings[colour]
}

// CastleRook returns the rook the colour started with on the given side
// (Queenside or Kingside), or nil if there is none.
func (b *Board) CastleRook(colour Colour, side int) *Piece {
	return b.rooks[colour][side]
}

// SetCastleRook binds a castling side to a rook.
func (b *Board) SetCastleRook(colour Colour, side int, rook *Piece) {
	b.rooks[colour][side] = rook
}

// Push records an executed move on the undo stack.
func (b *Board) Push(rec *UndoRecord) {
	b.history = append(b.history, rec)
}

// Pop removes and returns the most recent undo record, or nil if there is none.
func (b *Board) Pop() *UndoRecord {
	if len(b.history) == 0 {
		return nil
	}
	rec := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	return rec
}

// LastRecord returns the most recent undo record without removing it.
func (b *Board) LastRecord() *UndoRecord {
	if len(b.history) == 0 {
		return nil
	}
	return b.history[len(b.history)-1]
}

// Ply returns the number of moves on the undo stack.
func (b *Board) Ply() int {
	return len(b.history)
}

// Clone creates a deep copy of the board. Piece identities are remapped
// consistently, so rosters, rights and undo records of the copy refer to the
// copy's own pieces.
func (b *Board) Clone() *Board {
	clones := make(map[*Piece]*Piece, 40)
	dup := func(p *Piece) *Piece {
		if p == nil {
			return nil
		}
		if c, ok := clones[p]; ok {
			return c
		}
		c := *p
		clones[p] = &c
		return &c
	}
	dupList := func(list []*Piece) []*Piece {
		if list == nil {
			return nil
		}
		out := make([]*Piece, len(list))
		for i, p := range list {
			out[i] = dup(p)
		}
		return out
	}

	nb := &Board{
		ToMove:     b.ToMove,
		MoveNumber: b.MoveNumber,
		EnPassant:  b.EnPassant,
	}
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			nb.squares[r][c] = dup(b.squares[r][c])
		}
	}
	for colour := 0; colour < NumColours; colour++ {
		nb.active[colour] = dupList(b.active[colour])
		nb.taken[colour] = dupList(b.taken[colour])
		nb.kings[colour] = dup(b.kings[colour])
		nb.rooks[colour][Queenside] = dup(b.rooks[colour][Queenside])
		nb.rooks[colour][Kingside] = dup(b.rooks[colour][Kingside])
	}
	if len(b.history) > 0 {
		nb.history = make([]*UndoRecord, len(b.history))
		for i, rec := range b.history {
			nb.history[i] = rec.remap(dup)
		}
	}
	return nb
}
