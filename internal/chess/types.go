// Package chess provides core chess types and operations.
package chess

import (
	"fmt"

	"github.com/lgbarn/chesscore/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// NumColours is the number of sides; Colour values index per-side arrays.
const NumColours = 2

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row delta of a pawn step: white moves toward row 0.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// HomeRow returns the colour's back rank.
func (c Colour) HomeRow() int {
	if c == White {
		return 7
	}
	return 0
}

// PawnRow returns the row the colour's pawns start on.
func (c Colour) PawnRow() int {
	if c == White {
		return 6
	}
	return 1
}

// PromotionRow returns the row on which the colour's pawns promote.
func (c Colour) PromotionRow() int {
	return c.Opposite().HomeRow()
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Value returns the material value of the kind. Kings are worth nothing
// because they are never captured.
func (k Kind) Value() int {
	switch k {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	}
	return 0
}

// CanPromoteTo reports whether a pawn may promote to the kind.
func (k Kind) CanPromoteTo() bool {
	return k == Knight || k == Bishop || k == Rook || k == Queen
}

// ParsePromotion converts a promotion answer into a kind. The accepted
// answers are "q", "r", "b" and "k" (k is the knight, as the king is never a
// choice); full names are accepted too.
func ParsePromotion(answer string) (Kind, error) {
	switch answer {
	case "q", "Q", "queen", "Queen":
		return Queen, nil
	case "r", "R", "rook", "Rook":
		return Rook, nil
	case "b", "B", "bishop", "Bishop":
		return Bishop, nil
	case "k", "K", "n", "N", "knight", "Knight":
		return Knight, nil
	}
	return NoKind, errors.Wrapf(errors.ErrInvalidPromotion, "answer %q", answer)
}

// BoardSize is the number of rows and columns of the board.
const BoardSize = 8

// Square identifies a board cell. Row 0 is black's back rank, row 7 is
// white's back rank; column 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// InBounds reports whether the square lies on the board.
func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square dr rows and dc columns away.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// String returns the algebraic name of the square (row 7, col 4 is "e1").
func (s Square) String() string {
	if !s.InBounds() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{byte('a' + s.Col), byte('8' - s.Row)})
}

// ParseSquare converts an algebraic square name such as "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, errors.Wrapf(errors.ErrInvalidSquare, "%q", name)
	}
	file, rank := name[0], name[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, errors.Wrapf(errors.ErrInvalidSquare, "%q", name)
	}
	return Square{Row: int('8' - rank), Col: int(file - 'a')}, nil
}

// Tag classifies a move by the side effects it has when executed.
type Tag int

const (
	Normal Tag = iota
	Capture
	CastleKingsideWhite
	CastleQueensideWhite
	CastleKingsideBlack
	CastleQueensideBlack
	EnPassantLeftWhite
	EnPassantRightWhite
	EnPassantLeftBlack
	EnPassantRightBlack
)

var tagNames = [...]string{
	Normal:               "normal",
	Capture:              "capture",
	CastleKingsideWhite:  "castle-kingside-white",
	CastleQueensideWhite: "castle-queenside-white",
	CastleKingsideBlack:  "castle-kingside-black",
	CastleQueensideBlack: "castle-queenside-black",
	EnPassantLeftWhite:   "en-passant-left-white",
	EnPassantRightWhite:  "en-passant-right-white",
	EnPassantLeftBlack:   "en-passant-left-black",
	EnPassantRightBlack:  "en-passant-right-black",
}

// String returns the name of the tag.
func (t Tag) String() string {
	if t >= 0 && int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "unknown"
}

// IsCastle reports whether the tag is one of the four castling moves.
func (t Tag) IsCastle() bool {
	return t >= CastleKingsideWhite && t <= CastleQueensideBlack
}

// IsKingside reports whether a castling tag castles on the king's side.
func (t Tag) IsKingside() bool {
	return t == CastleKingsideWhite || t == CastleKingsideBlack
}

// IsEnPassant reports whether the tag is one of the en passant captures.
func (t Tag) IsEnPassant() bool {
	return t >= EnPassantLeftWhite && t <= EnPassantRightBlack
}

// IsCapture reports whether executing the move removes an enemy piece.
func (t Tag) IsCapture() bool {
	return t == Capture || t.IsEnPassant()
}

// CastleTag returns the castling tag for the colour and side.
func CastleTag(colour Colour, kingside bool) Tag {
	switch {
	case colour == White && kingside:
		return CastleKingsideWhite
	case colour == White:
		return CastleQueensideWhite
	case kingside:
		return CastleKingsideBlack
	default:
		return CastleQueensideBlack
	}
}

// EnPassantTag returns the en passant tag for the colour capturing towards
// the left (lower column) or right.
func EnPassantTag(colour Colour, left bool) Tag {
	switch {
	case colour == White && left:
		return EnPassantLeftWhite
	case colour == White:
		return EnPassantRightWhite
	case left:
		return EnPassantLeftBlack
	default:
		return EnPassantRightBlack
	}
}

// Move describes a destination square and the special handling it needs.
type Move struct {
	To  Square
	Tag Tag
}

// String returns the destination with its tag, e.g. "g1 (castle-kingside-white)".
func (m Move) String() string {
	if m.Tag == Normal {
		return m.To.String()
	}
	return fmt.Sprintf("%s (%s)", m.To, m.Tag)
}
