package engine_test

import (
	"math/rand"
	"testing"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/hashing"
	"github.com/lgbarn/chessboard-go/internal/notation"
	"github.com/lgbarn/chessboard-go/internal/testutil"
)

// TestMakeUnmake_Inverse plays every legal move in a series of positions and
// checks that taking it back restores the board exactly.
func TestMakeUnmake_Inverse(t *testing.T) {
	for i, fen := range gamePositions {
		b := testutil.MustBoard(t, fen, i%2 == 0)
		randomGame(t, b, int64(300+i), 40, func(engine.Move) {
			before := testutil.Take(b)
			for _, m := range append([]engine.Move(nil), b.LegalMoves()...) {
				b.MakeMove(m, engine.Legal)
				b.UnmakeMove()
				testutil.AssertSnapshot(t, b, before, "after %s", notation.FormatMove(b, m, true))
			}
		})
	}
}

func TestMakeUnmake_WholeGame(t *testing.T) {
	for i, fen := range gamePositions {
		b := testutil.MustBoard(t, fen, false)
		start := testutil.Take(b)
		played := randomGame(t, b, int64(400+i), 150, nil)
		testutil.AssertEqual(t, b.Ply(), played)
		for ; played > 0; played-- {
			b.UnmakeMove()
		}
		testutil.AssertSnapshot(t, b, start)
	}
}

// TestHashEquivalence checks the incremental key against a board built
// from scratch after every move.
func TestHashEquivalence(t *testing.T) {
	reg := hashing.NewRegistry()
	for i, fen := range gamePositions {
		b, err := notation.NewBoardFromFEN(fen, engine.Options{Registry: reg})
		testutil.AssertNoError(t, err)
		randomGame(t, b, int64(500+i), 150, func(engine.Move) {
			if err := b.Verify(); err != nil {
				t.Fatalf("%s: %v", notation.FEN(b), err)
			}
			fresh, err := notation.NewBoardFromFEN(notation.FEN(b), engine.Options{Registry: reg})
			if err != nil {
				t.Fatalf("rebuilding %s: %v", notation.FEN(b), err)
			}
			if fresh.Key() != b.Key() {
				t.Fatalf("%s: key %x, rebuilt %x", notation.FEN(b), b.Key(), fresh.Key())
			}
		})
	}
}

// TestPaddedMatchesPlain plays the same game on both layouts.
func TestPaddedMatchesPlain(t *testing.T) {
	for i, fen := range gamePositions {
		plain := testutil.MustBoard(t, fen, false)
		padded := testutil.MustBoard(t, fen, true)
		rnd := rand.New(rand.NewSource(int64(600 + i)))

		for ply := 0; ply < 100; ply++ {
			names := testutil.MoveNames(plain, plain.LegalMoves(), true)
			testutil.AssertEqual(t, testutil.MoveNames(padded, padded.LegalMoves(), true), names, "ply %d of %s", ply, fen)
			testutil.AssertEqual(t, padded.Key(), plain.Key(), "ply %d of %s", ply, fen)
			testutil.AssertEqual(t, notation.FEN(padded), notation.FEN(plain))
			testutil.AssertEqual(t, padded.Status(), plain.Status())
			if len(names) == 0 {
				break
			}
			move := names[rnd.Intn(len(names))]
			testutil.MustPlay(t, plain, move)
			testutil.MustPlay(t, padded, move)
		}
	}
}

func TestEnPassant(t *testing.T) {
	b := engine.NewStandard(engine.Options{})
	l := b.Layout()

	testutil.MustPlay(t, b, "e2e4")
	testutil.AssertEqual(t, b.EnPassant(), engine.NoSquare, "no black pawn can take on e3")

	testutil.MustPlay(t, b, "a7a6", "e4e5", "d7d5")
	testutil.AssertEqual(t, l.Algebraic(b.EnPassant()), "d6")
	testutil.AssertEqual(t, l.Algebraic(b.EnPassantPawn()), "d5")
	testutil.AssertEqual(t, b.EnPassantFile(), 3)
	before := testutil.Take(b)

	testutil.MustPlay(t, b, "e5d6")
	testutil.AssertEqual(t, b.PieceAt(l.MustParse("d5")), chess.Empty, "captured pawn removed")
	testutil.AssertEqual(t, b.PieceAt(l.MustParse("d6")), chess.W(chess.Pawn))
	testutil.AssertEqual(t, b.HalfMoveClock(), 0)
	testutil.AssertEqual(t, b.EnPassant(), engine.NoSquare)
	minors, others := b.Material(chess.Black)
	testutil.AssertEqual(t, [2]int{minors, others}, [2]int{4, 10})
	testutil.AssertNoError(t, b.Verify())

	b.UnmakeMove()
	testutil.AssertSnapshot(t, b, before)

	// the chance is gone after any other move
	testutil.MustPlay(t, b, "g1f3", "g8f6")
	testutil.AssertFalse(t, b.IsLegal(engine.NewMove(l.MustParse("e5"), l.MustParse("d6"))))
}

func TestEnPassant_Pinned(t *testing.T) {
	// after c7c5 the b5 pawn may not take: both pawns would leave the rank
	// and expose the king to the h5 rook
	b := testutil.MustBoard(t, "8/2p5/8/KP5r/8/8/8/4k3 b - - 0 1", false)
	testutil.MustPlay(t, b, "c7c5")

	testutil.AssertEqual(t, b.EnPassant(), engine.NoSquare)
	testutil.AssertEqual(t, testutil.Take(b).FEN, "8/8/8/KPp4r/8/8/8/4k3 w - - 0 2")
	l := b.Layout()
	testutil.AssertFalse(t, b.IsLegal(engine.NewMove(l.MustParse("b5"), l.MustParse("c6"))))
}

func TestCastlingRightsRevocation(t *testing.T) {
	tests := []struct {
		name  string
		moves []string
		want  string
	}{
		{"queen rook moves", []string{"a1a2"}, "Kkq"},
		{"king moves", []string{"e1e2"}, "kq"},
		{"rook captured", []string{"h1h8"}, "Qq"},
		{"rook returns", []string{"a1b1", "a8b8", "b1a1"}, "Kk"},
		{"castling", []string{"e1g1"}, "kq"},
		{"black castles long", []string{"a1a2", "e8c8"}, "K"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", false)
			testutil.MustPlay(t, b, tt.moves...)
			testutil.AssertEqual(t, b.CastlingRights().String(), tt.want)
			testutil.AssertEqual(t, b.Key(), hashing.KeyOf(b))
			testutil.AssertNoError(t, b.Verify())
		})
	}
}

func TestCastling_Chess960(t *testing.T) {
	// king b1 with the castling rook on a1: long castling leaves the king on
	// c1 and the rook on d1
	b := testutil.MustBoard(t, "rk5r/8/8/8/8/8/8/RK5R w AHah - 0 1", true)
	l := b.Layout()
	before := testutil.Take(b)

	m, err := notation.ParseMove(b, "b1a1")
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, b.MakeMove(m, engine.Unsafe))
	testutil.AssertEqual(t, b.PieceAt(l.MustParse("c1")), chess.W(chess.King))
	testutil.AssertEqual(t, b.PieceAt(l.MustParse("d1")), chess.W(chess.Rook))
	testutil.AssertEqual(t, b.PieceAt(l.MustParse("a1")), chess.Empty)
	testutil.AssertEqual(t, b.PieceAt(l.MustParse("b1")), chess.Empty)
	testutil.AssertEqual(t, notation.ShredderFEN(b), "rk5r/8/8/8/8/8/8/2KR3R b ah - 1 1")

	b.UnmakeMove()
	testutil.AssertSnapshot(t, b, before)

	// short castling: the king crosses c1 to g1, the rook goes to f1
	testutil.MustPlay(t, b, "b1h1")
	testutil.AssertEqual(t, b.PieceAt(l.MustParse("g1")), chess.W(chess.King))
	testutil.AssertEqual(t, b.PieceAt(l.MustParse("f1")), chess.W(chess.Rook))
}

func TestCastling_RookShieldsPath(t *testing.T) {
	// the b1 rook is all that stands between the a1 queen and the king,
	// which already sits on its long castling square
	b := testutil.MustBoard(t, "4k3/8/8/8/8/8/8/qRK4R w B - 0 1", false)
	l := b.Layout()
	testutil.AssertFalse(t, b.IsLegal(engine.NewMove(l.MustParse("c1"), l.MustParse("b1"))),
		"the castling rook cannot shield the king's path")
}

func TestPromotion(t *testing.T) {
	b := testutil.MustBoard(t, "1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1", false)
	l := b.Layout()

	names := testutil.MoveNames(b, b.LegalMoves(), false)
	testutil.AssertEqual(t, names, []string{
		"a7a8b", "a7a8n", "a7a8q", "a7a8r",
		"a7b8b", "a7b8n", "a7b8q", "a7b8r",
		"e1d1", "e1d2", "e1e2", "e1f1", "e1f2",
	})

	testutil.MustPlay(t, b, "a7b8n")
	testutil.AssertEqual(t, b.PieceAt(l.MustParse("b8")), chess.W(chess.Knight))
	minors, others := b.Material(chess.White)
	testutil.AssertEqual(t, [2]int{minors, others}, [2]int{1, 0})
	testutil.AssertNoError(t, b.Verify())
	testutil.AssertTrue(t, b.InsufficientMaterial())

	b.UnmakeMove()
	testutil.AssertEqual(t, b.PieceAt(l.MustParse("a7")), chess.W(chess.Pawn))
	testutil.AssertEqual(t, b.PieceAt(l.MustParse("b8")), chess.B(chess.Knight))
	testutil.AssertFalse(t, b.IsLegal(engine.NewMove(l.MustParse("a7"), l.MustParse("a8"))), "promotion piece required")
	testutil.AssertFalse(t, b.IsLegal(engine.NewPromotion(l.MustParse("a7"), l.MustParse("a8"), chess.King)))
}

func TestMakeMove_Confidence(t *testing.T) {
	b := testutil.MustBoard(t, "4k3/8/8/8/8/8/4r3/R3K2R w KQ - 0 1", false)
	l := b.Layout()
	before := testutil.Take(b)

	tests := []struct {
		name       string
		move       engine.Move
		confidence engine.Confidence
	}{
		{"unsafe: empty square", engine.NewMove(l.MustParse("d4"), l.MustParse("d5")), engine.Unsafe},
		{"unsafe: null move", engine.NewMove(l.MustParse("a1"), l.MustParse("a1")), engine.Unsafe},
		{"unsafe: knight move for a rook", engine.NewMove(l.MustParse("a1"), l.MustParse("b3")), engine.Unsafe},
		{"unsafe: king into check", engine.NewMove(l.MustParse("e1"), l.MustParse("d2")), engine.Unsafe},
		{"unsafe: castling in check", engine.NewMove(l.MustParse("e1"), l.MustParse("h1")), engine.Unsafe},
		{"pseudo-legal: ignores check", engine.NewMove(l.MustParse("a1"), l.MustParse("a2")), engine.PseudoLegal},
		{"pseudo-legal: castling in check", engine.NewMove(l.MustParse("e1"), l.MustParse("a1")), engine.PseudoLegal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertFalse(t, b.MakeMove(tt.move, tt.confidence))
			testutil.AssertSnapshot(t, b, before, "rejected move changed the board")
		})
	}

	testutil.AssertTrue(t, b.MakeMove(engine.NewMove(l.MustParse("e1"), l.MustParse("e2")), engine.Unsafe), "king takes the checking rook")
	testutil.AssertEqual(t, b.CastlingRights(), chess.CastlingRights(0))
}

func TestUnmakeMove_Empty(t *testing.T) {
	b := engine.NewStandard(engine.Options{})
	testutil.AssertPanics(t, b.UnmakeMove)

	testutil.MustPlay(t, b, "e2e4")
	b.UnmakeMove()
	testutil.AssertPanics(t, b.UnmakeMove)
}

func TestHalfMoveClock(t *testing.T) {
	b := engine.NewStandard(engine.Options{})
	testutil.MustPlay(t, b, "g1f3", "g8f6", "f3g1")
	testutil.AssertEqual(t, b.HalfMoveClock(), 3)
	testutil.AssertEqual(t, b.MoveNumber(), 2)

	testutil.MustPlay(t, b, "e7e5")
	testutil.AssertEqual(t, b.HalfMoveClock(), 0, "pawn move resets the clock")
	testutil.AssertEqual(t, b.MoveNumber(), 3)
	testutil.AssertEqual(t, len(b.History()), 4)
}
