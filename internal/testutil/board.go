package testutil

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/notation"
)

// Well-known perft positions.
const (
	Initial   = notation.InitialFEN
	Kiwipete  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	Position3 = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	Position4 = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	Position5 = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

// Perft pairs a position with its known leaf counts, Nodes[d-1] being the
// count at depth d.
type Perft struct {
	Name  string
	FEN   string
	Nodes []uint64
}

// PerftSuite lists positions with published node counts. Tests normally
// stop at the depth their time budget allows.
var PerftSuite = []Perft{
	{"initial", Initial, []uint64{20, 400, 8902, 197281}},
	{"kiwipete", Kiwipete, []uint64{48, 2039, 97862}},
	{"position 3", Position3, []uint64{14, 191, 2812, 43238}},
	{"position 4", Position4, []uint64{6, 264, 9467}},
	{"position 5", Position5, []uint64{44, 1486, 62379}},
}

// MustBoard builds a board from fen or fails the test.
func MustBoard(t testing.TB, fen string, padded bool) *engine.Board {
	t.Helper()
	b, err := notation.NewBoardFromFEN(fen, engine.Options{Padded: padded})
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q): %v", fen, err)
	}
	return b
}

// MustPlay plays moves in UCI notation or fails the test.
func MustPlay(t testing.TB, b *engine.Board, moves ...string) {
	t.Helper()
	if err := notation.PlayMoves(b, moves...); err != nil {
		t.Fatalf("PlayMoves(%v): %v", moves, err)
	}
}

// Snapshot is the observable state of a board, used to check that a
// sequence of make and unmake calls leaves the board as it found it.
type Snapshot struct {
	FEN        string
	Key        uint64
	History    []uint64
	Ply        int
	Checks     int
	LegalMoves []string
}

// Take records the observable state of b.
func Take(b *engine.Board) Snapshot {
	return Snapshot{
		FEN:        notation.ShredderFEN(b),
		Key:        b.Key(),
		History:    b.History(),
		Ply:        b.Ply(),
		Checks:     b.CheckCount(),
		LegalMoves: MoveNames(b, b.LegalMoves(), true),
	}
}

// AssertSnapshot fails the test when b no longer matches want.
func AssertSnapshot(t *testing.T, b *engine.Board, want Snapshot, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, Take(b)); diff != "" {
		report(t, "board changed (-want +got):\n"+diff, msgAndArgs...)
	}
}

// MoveNames returns the moves in UCI notation, sorted.
func MoveNames(b *engine.Board, moves []engine.Move, chess960 bool) []string {
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = notation.FormatMove(b, m, chess960)
	}
	sort.Strings(names)
	return names
}
