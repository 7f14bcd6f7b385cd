package chess

import (
	"strings"
	"testing"

	"github.com/lgbarn/chesscore/internal/errors"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("initial state", func(t *testing.T) {
		if b.ToMove != White {
			t.Errorf("ToMove = %v; want White", b.ToMove)
		}
		if b.MoveNumber != 1 {
			t.Errorf("MoveNumber = %d; want 1", b.MoveNumber)
		}
		if b.EnPassant.Valid {
			t.Error("EnPassant.Valid = true; want false")
		}
		if b.Ply() != 0 {
			t.Errorf("Ply() = %d; want 0", b.Ply())
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for r := 0; r < BoardSize; r++ {
			for c := 0; c < BoardSize; c++ {
				if p := b.At(Sq(r, c)); p != nil {
					t.Errorf("At(%v) = %v; want nil", Sq(r, c), p)
				}
			}
		}
	})

	t.Run("off board squares", func(t *testing.T) {
		for _, sq := range []Square{Sq(-1, 0), Sq(0, 8), Sq(8, 8), Sq(3, -2)} {
			if b.At(sq) != nil {
				t.Errorf("At(%v) != nil", sq)
			}
			if b.IsEmpty(sq) {
				t.Errorf("IsEmpty(%v) = true; want false for off-board square", sq)
			}
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		name   string
		sq     string
		kind   Kind
		colour Colour
	}{
		{"white rook a1", "a1", Rook, White},
		{"white knight b1", "b1", Knight, White},
		{"white bishop c1", "c1", Bishop, White},
		{"white queen d1", "d1", Queen, White},
		{"white king e1", "e1", King, White},
		{"white rook h1", "h1", Rook, White},
		{"white pawn e2", "e2", Pawn, White},
		{"black pawn d7", "d7", Pawn, Black},
		{"black queen d8", "d8", Queen, Black},
		{"black king e8", "e8", King, Black},
		{"black knight g8", "g8", Knight, Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sq, err := ParseSquare(tt.sq)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", tt.sq, err)
			}
			p := b.At(sq)
			if p == nil {
				t.Fatalf("At(%s) = nil", tt.sq)
			}
			if p.Kind != tt.kind || p.Colour != tt.colour {
				t.Errorf("At(%s) = %v; want %v %v", tt.sq, p, tt.colour, tt.kind)
			}
			if p.Square != sq {
				t.Errorf("piece square = %v; want %v", p.Square, sq)
			}
		})
	}

	t.Run("rosters", func(t *testing.T) {
		for _, colour := range []Colour{White, Black} {
			if n := len(b.Active(colour)); n != 16 {
				t.Errorf("len(Active(%v)) = %d; want 16", colour, n)
			}
			if n := len(b.Taken(colour)); n != 0 {
				t.Errorf("len(Taken(%v)) = %d; want 0", colour, n)
			}
		}
	})

	t.Run("castling rights", func(t *testing.T) {
		for _, colour := range []Colour{White, Black} {
			king := b.King(colour)
			if !king.HasRight(true) || !king.HasRight(false) {
				t.Errorf("%v king rights = %v/%v; want both", colour, king.Kingside, king.Queenside)
			}
			if b.CastleRook(colour, Kingside) != b.At(Sq(colour.HomeRow(), 7)) {
				t.Errorf("%v kingside castle rook is not the h-file rook", colour)
			}
			if b.CastleRook(colour, Queenside) != b.At(Sq(colour.HomeRow(), 0)) {
				t.Errorf("%v queenside castle rook is not the a-file rook", colour)
			}
		}
	})

	t.Run("restart builds fresh pieces", func(t *testing.T) {
		old := b.At(Sq(7, 4))
		b.SetupInitialPosition()
		if b.At(Sq(7, 4)) == old {
			t.Error("SetupInitialPosition reused the old king")
		}
	})
}

func TestSquare(t *testing.T) {
	tests := []struct {
		name string
		sq   Square
		want string
	}{
		{"a8", Sq(0, 0), "a8"},
		{"h1", Sq(7, 7), "h1"},
		{"e1", Sq(7, 4), "e1"},
		{"d5", Sq(3, 3), "d5"},
		{"off board", Sq(8, 0), "(8,0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sq.String(); got != tt.want {
				t.Errorf("String() = %q; want %q", got, tt.want)
			}
			if !tt.sq.InBounds() {
				return
			}
			back, err := ParseSquare(tt.want)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", tt.want, err)
			}
			if back != tt.sq {
				t.Errorf("ParseSquare(%q) = %v; want %v", tt.want, back, tt.sq)
			}
		})
	}
}

func TestParseSquare_Invalid(t *testing.T) {
	for _, name := range []string{"", "e", "e9", "i1", "e10", "11"} {
		if _, err := ParseSquare(name); !errors.Is(err, errors.ErrInvalidSquare) {
			t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidSquare", name, err)
		}
	}
	if sq, err := ParseSquare("E2"); err != nil || sq != Sq(6, 4) {
		t.Errorf("ParseSquare(\"E2\") = %v, %v; want e2", sq, err)
	}
}

func TestTags(t *testing.T) {
	tests := []struct {
		tag       Tag
		castle    bool
		enPassant bool
		capture   bool
	}{
		{Normal, false, false, false},
		{Capture, false, false, true},
		{CastleKingsideWhite, true, false, false},
		{CastleQueensideBlack, true, false, false},
		{EnPassantLeftWhite, false, true, true},
		{EnPassantRightBlack, false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			if got := tt.tag.IsCastle(); got != tt.castle {
				t.Errorf("IsCastle() = %v; want %v", got, tt.castle)
			}
			if got := tt.tag.IsEnPassant(); got != tt.enPassant {
				t.Errorf("IsEnPassant() = %v; want %v", got, tt.enPassant)
			}
			if got := tt.tag.IsCapture(); got != tt.capture {
				t.Errorf("IsCapture() = %v; want %v", got, tt.capture)
			}
		})
	}

	if CastleTag(Black, true) != CastleKingsideBlack || CastleTag(White, false) != CastleQueensideWhite {
		t.Error("CastleTag returned the wrong tag")
	}
	if EnPassantTag(White, false) != EnPassantRightWhite || EnPassantTag(Black, true) != EnPassantLeftBlack {
		t.Error("EnPassantTag returned the wrong tag")
	}
}

func TestParsePromotion(t *testing.T) {
	tests := []struct {
		answer string
		want   Kind
		ok     bool
	}{
		{"q", Queen, true},
		{"r", Rook, true},
		{"b", Bishop, true},
		{"k", Knight, true},
		{"n", Knight, true},
		{"Queen", Queen, true},
		{"", NoKind, false},
		{"p", NoKind, false},
		{"king", NoKind, false},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			got, err := ParsePromotion(tt.answer)
			if (err == nil) != tt.ok {
				t.Fatalf("ParsePromotion(%q) error = %v; want ok=%v", tt.answer, err, tt.ok)
			}
			if err != nil && !errors.Is(err, errors.ErrInvalidPromotion) {
				t.Errorf("error %v is not ErrInvalidPromotion", err)
			}
			if got != tt.want {
				t.Errorf("ParsePromotion(%q) = %v; want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestRosterBookkeeping(t *testing.T) {
	b := NewInitialBoard()
	victim := b.At(Sq(1, 3))

	idx := b.Deactivate(victim)
	if idx < 0 {
		t.Fatal("Deactivate returned -1 for an active piece")
	}
	if len(b.Active(Black)) != 15 {
		t.Fatalf("len(Active(Black)) = %d; want 15", len(b.Active(Black)))
	}
	b.Take(White, victim)

	b.Untake(White, victim)
	b.ActivateAt(victim, idx)
	if got := b.Active(Black)[idx]; got != victim {
		t.Errorf("Active(Black)[%d] = %v; want the restored pawn", idx, got)
	}
	if len(b.Taken(White)) != 0 {
		t.Errorf("len(Taken(White)) = %d; want 0", len(b.Taken(White)))
	}
	if b.Deactivate(NewPiece(Pawn, Black, Sq(2, 2))) != -1 {
		t.Error("Deactivate of an unknown piece should return -1")
	}
}

func TestClone(t *testing.T) {
	b := NewInitialBoard()
	pawn := b.At(Sq(6, 4))
	b.Relocate(pawn, Sq(4, 4))
	b.Push(&UndoRecord{From: Sq(6, 4), Piece: pawn, Move: Move{To: Sq(4, 4)}, Rights: SnapshotRights(b.King(White))})

	c := b.Clone()

	if c.String() != b.String() {
		t.Fatalf("clone diagram differs:\n%s\nvs\n%s", c.String(), b.String())
	}
	cp := c.At(Sq(4, 4))
	if cp == pawn {
		t.Fatal("clone shares piece pointers with the original")
	}
	if c.LastRecord().Piece != cp {
		t.Error("clone's undo record does not refer to the clone's piece")
	}
	if c.LastRecord().Rights.King != c.King(White) {
		t.Error("clone's rights snapshot does not refer to the clone's king")
	}
	if c.CastleRook(White, Kingside) != c.At(Sq(7, 7)) {
		t.Error("clone's castle rook is not the clone's h1 rook")
	}

	c.Relocate(cp, Sq(3, 4))
	if b.At(Sq(4, 4)) != pawn || pawn.Square != Sq(4, 4) {
		t.Error("mutating the clone changed the original")
	}
}

func TestParseLayout(t *testing.T) {
	t.Run("initial layout", func(t *testing.T) {
		b, err := ParseLayout(InitialLayout, White)
		if err != nil {
			t.Fatalf("ParseLayout error: %v", err)
		}
		if got, want := b.String(), NewInitialBoard().String(); got != want {
			t.Errorf("diagram mismatch:\n%s\nwant\n%s", got, want)
		}
		if !b.King(Black).HasRight(true) || !b.King(Black).HasRight(false) {
			t.Error("black king should keep both castling rights")
		}
	})

	t.Run("rights inferred from placement", func(t *testing.T) {
		b, err := ParseLayout([]string{
			"r...k...",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"....K..R",
		}, Black)
		if err != nil {
			t.Fatalf("ParseLayout error: %v", err)
		}
		wk, bk := b.King(White), b.King(Black)
		if !wk.HasRight(true) || wk.HasRight(false) {
			t.Errorf("white rights = %v/%v; want kingside only", wk.Kingside, wk.Queenside)
		}
		if bk.HasRight(true) || !bk.HasRight(false) {
			t.Errorf("black rights = %v/%v; want queenside only", bk.Kingside, bk.Queenside)
		}
		if b.ToMove != Black {
			t.Errorf("ToMove = %v; want Black", b.ToMove)
		}
	})

	t.Run("king off home square", func(t *testing.T) {
		b, err := ParseLayout([]string{
			"....k...",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"R.....KR",
		}, White)
		if err != nil {
			t.Fatalf("ParseLayout error: %v", err)
		}
		if !b.King(White).HasMoved || b.King(White).HasRight(true) {
			t.Error("white king off e1 should have no castling rights")
		}
	})

	t.Run("spaces ignored", func(t *testing.T) {
		rows := make([]string, len(InitialLayout))
		for i, row := range InitialLayout {
			rows[i] = strings.Join(strings.Split(row, ""), " ")
		}
		if _, err := ParseLayout(rows, White); err != nil {
			t.Errorf("ParseLayout with spaces error: %v", err)
		}
	})
}

func TestParseLayout_Errors(t *testing.T) {
	valid := func() []string { return append([]string(nil), InitialLayout...) }

	tests := []struct {
		name   string
		mutate func([]string) []string
	}{
		{"too few rows", func(r []string) []string { return r[:7] }},
		{"short row", func(r []string) []string { r[3] = "...."; return r }},
		{"bad letter", func(r []string) []string { r[3] = "...x...."; return r }},
		{"missing king", func(r []string) []string { r[0] = "rnbq.bnr"; return r }},
		{"two kings", func(r []string) []string { r[3] = "...K...."; return r }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLayout(tt.mutate(valid()), White)
			if !errors.Is(err, errors.ErrInvalidLayout) {
				t.Fatalf("ParseLayout error = %v; want ErrInvalidLayout", err)
			}
			var layoutErr *errors.LayoutError
			if !errors.As(err, &layoutErr) {
				t.Errorf("error %T is not a *LayoutError", err)
			}
		})
	}
}
