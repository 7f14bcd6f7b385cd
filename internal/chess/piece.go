package chess

import "fmt"

// Piece is a single chessman. It is owned by exactly one board cell while
// active; captured pieces keep their last square for display.
type Piece struct {
	Kind   Kind
	Colour Colour
	Square Square

	// HasMoved is tracked for kings and rooks. A king that has moved can
	// no longer castle.
	HasMoved bool

	// Kingside and Queenside are the king's castling rights. They are
	// unused for other kinds.
	Kingside  bool
	Queenside bool
}

// NewPiece creates an unmoved piece on the given square. Kings start with
// both castling rights.
func NewPiece(kind Kind, colour Colour, sq Square) *Piece {
	p := &Piece{Kind: kind, Colour: colour, Square: sq}
	if kind == King {
		p.Kingside = true
		p.Queenside = true
	}
	return p
}

// Letter returns the diagram letter: uppercase for white, lowercase for black.
func (p *Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns a description such as "White Knight on g1".
func (p *Piece) String() string {
	return fmt.Sprintf("%s %s on %s", p.Colour, p.Kind, p.Square)
}

// HasRight reports whether a king still holds the castling right on the
// given side.
func (p *Piece) HasRight(kingside bool) bool {
	if p.Kind != King || p.HasMoved {
		return false
	}
	if kingside {
		return p.Kingside
	}
	return p.Queenside
}

// SetRight sets a king's castling right on the given side.
func (p *Piece) SetRight(kingside, allowed bool) {
	if kingside {
		p.Kingside = allowed
	} else {
		p.Queenside = allowed
	}
}
