package engine_test

import (
	"math/rand"
	"testing"

	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/notation"
	"github.com/lgbarn/chessboard-go/internal/testutil"
)

// perft counts leaf nodes with Legal confidence and checks that every
// level is restored.
func perft(b *engine.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		b.MakeMove(m, engine.Legal)
		nodes += perft(b, depth-1)
		b.UnmakeMove()
	}
	return nodes
}

// randomGame plays up to plies random legal moves, calling visit after each
// one, and returns the number of moves played.
func randomGame(t *testing.T, b *engine.Board, seed int64, plies int, visit func(m engine.Move)) int {
	t.Helper()
	rnd := rand.New(rand.NewSource(seed))
	played := 0
	for ; played < plies; played++ {
		moves := b.LegalMoves()
		if len(moves) == 0 {
			break
		}
		m := moves[rnd.Intn(len(moves))]
		if !b.MakeMove(m, engine.Legal) {
			t.Fatalf("generated move %s refused", notation.FormatMove(b, m, true))
		}
		if visit != nil {
			visit(m)
		}
	}
	return played
}

// gamePositions are the starting points of the randomized tests.
var gamePositions = []string{
	testutil.Initial,
	testutil.Kiwipete,
	testutil.Position3,
	testutil.Position4,
	testutil.Position5,
	"bqnb1rkr/pp3ppp/3ppn2/2p5/5P2/P2P4/NPP1P1PP/BQ1BNRKR w HFhf - 2 9",
	"r3k2r/8/3Q4/8/8/5q2/8/R3K2R b KQkq - 0 1",
}
