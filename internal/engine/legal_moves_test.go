package engine

import (
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/testutil"
)

// play executes the legal move from -> to, failing the test if it is not legal.
func play(t *testing.T, board *chess.Board, from, to string) *chess.UndoRecord {
	t.Helper()
	f, err := chess.ParseSquare(from)
	testutil.AssertNoError(t, err)
	d, err := chess.ParseSquare(to)
	testutil.AssertNoError(t, err)
	m, ok := FindMove(board, f, d)
	if !ok {
		t.Fatalf("%s-%s is not legal; have %v", from, to, LegalMoves(board, f))
	}
	return Execute(board, board.At(f), m, chess.Queen)
}

func TestAllLegalMoves_InitialPosition(t *testing.T) {
	board := chess.NewInitialBoard()
	testutil.AssertEqual(t, len(AllLegalMoves(board, chess.White)), 20)
	testutil.AssertEqual(t, len(AllLegalMoves(board, chess.Black)), 20)
	testutil.AssertTrue(t, HasLegalMoves(board, chess.White))
}

func TestLegalMoves_EmptySquare(t *testing.T) {
	board := chess.NewInitialBoard()
	testutil.AssertNil(t, LegalMoves(board, chess.Sq(4, 4)))
}

func TestLegalMoves_Pin(t *testing.T) {
	board := testutil.MustLayout(t, chess.White,
		"k...r...",
		"........",
		"........",
		"........",
		"........",
		"........",
		"....B...",
		"....K...",
	)
	testutil.AssertEqual(t, len(LegalMoves(board, chess.Sq(6, 4))), 0, "pinned bishop")

	// A pinned rook may still slide along the pin line.
	board = testutil.MustLayout(t, chess.White,
		"k...r...",
		"........",
		"........",
		"........",
		"........",
		"........",
		"....R...",
		"....K...",
	)
	got := moveSet(LegalMoves(board, chess.Sq(6, 4)))
	want := map[string]chess.Tag{
		"e3": chess.Normal, "e4": chess.Normal, "e5": chess.Normal,
		"e6": chess.Normal, "e7": chess.Normal, "e8": chess.Capture,
	}
	testutil.AssertEqual(t, got, want)
}

func TestLegalMoves_KingAvoidsAttackedSquares(t *testing.T) {
	board := testutil.MustLayout(t, chess.White,
		"k....r..",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"....K...",
	)
	got := moveSet(LegalMoves(board, chess.Sq(7, 4)))
	want := map[string]chess.Tag{"d1": chess.Normal, "d2": chess.Normal, "e2": chess.Normal}
	testutil.AssertEqual(t, got, want)
}

func TestLegalMoves_KingCannotCaptureDefendedPiece(t *testing.T) {
	board := testutil.MustLayout(t, chess.White,
		"k.......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"...r....",
		"...rK...",
	)
	// d1 and d2 defend each other. The d1 rook sees f1 once the king
	// has left e1.
	testutil.AssertEqual(t, len(LegalMoves(board, chess.Sq(7, 4))), 0)
	testutil.AssertTrue(t, IsCheckmate(board))
}

func TestLegalMoves_CastlingSafety(t *testing.T) {
	tests := []struct {
		name   string
		layout []string
		want   []string
	}{
		{
			name: "free to castle",
			layout: []string{
				"k.......", "........", "........", "........",
				"........", "........", "........", "R...K..R",
			},
			want: []string{"g1", "c1"},
		},
		{
			name: "transit square attacked",
			layout: []string{
				"k....r..", "........", "........", "........",
				"........", "........", "........", "R...K..R",
			},
			want: []string{"c1"},
		},
		{
			name: "destination attacked",
			layout: []string{
				"k.r.....", "........", "........", "........",
				"........", "........", "........", "R...K..R",
			},
			want: []string{"g1"},
		},
		{
			name: "king in check",
			layout: []string{
				"k...r...", "........", "........", "........",
				"........", "........", "........", "R...K..R",
			},
			want: nil,
		},
		{
			name: "b-file attack does not stop queenside",
			layout: []string{
				"kr......", "........", "........", "........",
				"........", "........", "........", "R...K..R",
			},
			want: []string{"g1", "c1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustLayout(t, chess.White, tt.layout...)
			var got []string
			for _, m := range LegalMoves(board, chess.Sq(7, 4)) {
				if m.Tag.IsCastle() {
					got = append(got, m.To.String())
				}
			}
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestLegalMoves_RookReturnDoesNotRestoreRight(t *testing.T) {
	board := testutil.MustLayout(t, chess.White,
		"...k....",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"R...K..R",
	)
	play(t, board, "h1", "h2")
	play(t, board, "d8", "c8")
	play(t, board, "h2", "h1")
	play(t, board, "c8", "d8")

	var castles []chess.Tag
	for _, m := range LegalMoves(board, chess.Sq(7, 4)) {
		if m.Tag.IsCastle() {
			castles = append(castles, m.Tag)
		}
	}
	testutil.AssertEqual(t, castles, []chess.Tag{chess.CastleQueensideWhite})
}

func TestLegalMoves_EnPassantWindow(t *testing.T) {
	layout := []string{
		"....k...",
		"...p....",
		"........",
		"....P...",
		"........",
		"........",
		"........",
		"....K...",
	}

	t.Run("immediately after double push", func(t *testing.T) {
		board := testutil.MustLayout(t, chess.Black, layout...)
		play(t, board, "d7", "d5")
		got := moveSet(LegalMoves(board, chess.Sq(3, 4)))
		want := map[string]chess.Tag{"e6": chess.Normal, "d6": chess.EnPassantLeftWhite}
		testutil.AssertEqual(t, got, want)

		play(t, board, "e5", "d6")
		testutil.AssertNil(t, board.At(chess.Sq(3, 3)), "victim removed")
		testutil.AssertEqual(t, len(board.Active(chess.Black)), 1)
		testutil.AssertEqual(t, len(board.Taken(chess.White)), 1)
	})

	t.Run("window closes after one move", func(t *testing.T) {
		board := testutil.MustLayout(t, chess.Black, layout...)
		play(t, board, "d7", "d5")
		play(t, board, "e1", "d1")
		play(t, board, "e8", "f8")
		got := moveSet(LegalMoves(board, chess.Sq(3, 4)))
		testutil.AssertEqual(t, got, map[string]chess.Tag{"e6": chess.Normal})
	})

	t.Run("intervening move by the capturing side closes it", func(t *testing.T) {
		board := testutil.MustLayout(t, chess.Black,
			"....k...",
			"...p....",
			"........",
			"....P...",
			".p......",
			"........",
			"..P.....",
			"....K...",
		)
		play(t, board, "d7", "d5")
		play(t, board, "c2", "c4")

		// Black to move: the new window is open, the old one is not.
		b4 := moveSet(LegalMoves(board, chess.Sq(4, 1)))
		testutil.AssertEqual(t, len(b4), 2)
		testutil.AssertTrue(t, b4["c3"].IsEnPassant(), "b4xc3 en passant offered")
		testutil.AssertEqual(t, moveSet(LegalMoves(board, chess.Sq(3, 4))), map[string]chess.Tag{"e6": chess.Normal})

		play(t, board, "e8", "f8")
		testutil.AssertEqual(t, moveSet(LegalMoves(board, chess.Sq(3, 4))), map[string]chess.Tag{"e6": chess.Normal})
		testutil.AssertEqual(t, moveSet(LegalMoves(board, chess.Sq(4, 1))), map[string]chess.Tag{"b3": chess.Normal})
	})

	t.Run("single steps do not open it", func(t *testing.T) {
		board := testutil.MustLayout(t, chess.Black, layout...)
		play(t, board, "d7", "d6")
		play(t, board, "e1", "d1")
		play(t, board, "d6", "d5")
		got := moveSet(LegalMoves(board, chess.Sq(3, 4)))
		testutil.AssertEqual(t, got, map[string]chess.Tag{"e6": chess.Normal})
	})
}

func TestLegalMoves_EnPassantDiscoveredCheck(t *testing.T) {
	board := testutil.MustLayout(t, chess.Black,
		".......k",
		"....p...",
		"........",
		"K..P...r",
		"........",
		"........",
		"........",
		"........",
	)
	play(t, board, "e7", "e5")
	got := moveSet(LegalMoves(board, chess.Sq(3, 3)))
	testutil.AssertEqual(t, got, map[string]chess.Tag{"d6": chess.Normal})
}

func TestWithTentativeMove_Restores(t *testing.T) {
	board := testutil.MustLayout(t, chess.Black,
		"....k...",
		"...p....",
		"........",
		"....P...",
		"........",
		"........",
		"........",
		"....K...",
	)
	play(t, board, "d7", "d5")
	before := testutil.Snapshot(board)

	pawn := board.At(chess.Sq(3, 4))
	m := chess.Move{To: chess.Sq(2, 3), Tag: chess.EnPassantLeftWhite}
	victimGone := WithTentativeMove(board, pawn, m, func() bool {
		return board.At(chess.Sq(3, 3)) == nil && board.At(chess.Sq(2, 3)) == pawn
	})
	testutil.AssertTrue(t, victimGone, "victim lifted during simulation")
	testutil.AssertEqual(t, testutil.Snapshot(board), before)

	func() {
		defer func() { _ = recover() }()
		WithTentativeMove(board, pawn, m, func() struct{} { panic("boom") })
	}()
	testutil.AssertEqual(t, testutil.Snapshot(board), before, "restored after panic")
}

func TestLegalMoves_LeavesBoardUntouched(t *testing.T) {
	board := testutil.MustLayout(t, chess.White, kiwipete...)
	before := testutil.Snapshot(board)
	AllLegalMoves(board, chess.White)
	AllLegalMoves(board, chess.Black)
	testutil.AssertEqual(t, testutil.Snapshot(board), before)
}

func BenchmarkAllLegalMoves(b *testing.B) {
	board := testutil.MustLayout(b, chess.White, kiwipete...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		AllLegalMoves(board, chess.White)
	}
}
