package chess

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chesscore/internal/errors"
)

// InitialLayout is the diagram of the standard starting position.
var InitialLayout = []string{
	"rnbqkbnr",
	"pppppppp",
	"........",
	"........",
	"........",
	"........",
	"PPPPPPPP",
	"RNBQKBNR",
}

// KindFromLetter converts a diagram letter to a piece kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'P', 'p':
		return Pawn
	default:
		return NoKind
	}
}

// ParseLayout builds a board from an 8-row diagram, row 0 first. Uppercase
// letters are white pieces, lowercase black, '.' an empty square; spaces are
// ignored. Each side needs exactly one king.
//
// Castling rights are inferred from the diagram: a king on its home square
// keeps the right on each side whose rook still stands in the corner, and
// that rook becomes the side's castling rook. Kings and rooks away from their
// starting squares count as moved.
func ParseLayout(rows []string, toMove Colour) (*Board, error) {
	if len(rows) != BoardSize {
		return nil, &errors.LayoutError{
			Err: errors.ErrInvalidLayout,
			Row: -1,
			Col: -1,
			Got: fmt.Sprintf("%d rows", len(rows)),
		}
	}

	board := NewBoard()
	board.ToMove = toMove

	for r, row := range rows {
		row = strings.ReplaceAll(row, " ", "")
		if len(row) != BoardSize {
			return nil, &errors.LayoutError{Err: errors.ErrInvalidLayout, Row: r, Col: -1, Got: fmt.Sprintf("%d columns", len(row))}
		}
		for c := 0; c < BoardSize; c++ {
			ch := row[c]
			if ch == '.' {
				continue
			}
			kind := KindFromLetter(ch)
			if kind == NoKind {
				return nil, &errors.LayoutError{Err: errors.ErrInvalidLayout, Row: r, Col: c, Got: fmt.Sprintf("%q", ch)}
			}
			colour := White
			if unicode.IsLower(rune(ch)) {
				colour = Black
			}
			if kind == King && board.King(colour) != nil {
				return nil, &errors.LayoutError{Err: errors.ErrInvalidLayout, Row: r, Col: c, Got: "second " + colour.String() + " king"}
			}
			board.Add(NewPiece(kind, colour, Sq(r, c)))
		}
	}

	for _, colour := range []Colour{White, Black} {
		if board.King(colour) == nil {
			return nil, &errors.LayoutError{Err: errors.ErrInvalidLayout, Row: -1, Col: -1, Got: "no " + colour.String() + " king"}
		}
		inferCastling(board, colour)
	}
	return board, nil
}

// inferCastling sets the colour's castling rights and HasMoved flags from
// piece placement alone.
func inferCastling(board *Board, colour Colour) {
	home := colour.HomeRow()
	for _, p := range board.Active(colour) {
		if p.Kind == Rook {
			p.HasMoved = !(p.Square.Row == home && (p.Square.Col == 0 || p.Square.Col == 7))
		}
	}

	king := board.King(colour)
	if king.Square != Sq(home, 4) {
		king.HasMoved = true
		king.Kingside = false
		king.Queenside = false
		return
	}

	for side, col := range [2]int{Queenside: 0, Kingside: 7} {
		rook := board.At(Sq(home, col))
		ok := rook != nil && rook.Kind == Rook && rook.Colour == colour
		if ok {
			board.SetCastleRook(colour, side, rook)
		}
		king.SetRight(side == Kingside, ok)
	}
}

// String returns the board as a diagram in the ParseLayout format, one row
// per line.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < BoardSize; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < BoardSize; c++ {
			if p := b.squares[r][c]; p != nil {
				sb.WriteByte(p.Letter())
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
