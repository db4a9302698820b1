package engine_test

import (
	"testing"

	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/notation"
	"github.com/lgbarn/chessboard-go/internal/testutil"
)

var benchFENs = map[string]string{
	"Initial":   testutil.Initial,
	"Kiwipete":  testutil.Kiwipete,
	"Endgame":   testutil.Position3,
	"Promotion": testutil.Position4,
	"Chess960":  "bqnb1rkr/pp3ppp/3ppn2/2p5/5P2/P2P4/NPP1P1PP/BQ1BNRKR w HFhf - 2 9",
}

func BenchmarkLegalMoves(b *testing.B) {
	for name, fen := range benchFENs {
		for _, padded := range []bool{false, true} {
			layout := "plain"
			if padded {
				layout = "padded"
			}
			b.Run(name+"/"+layout, func(b *testing.B) {
				board := notation.MustBoard(fen, engine.Options{Padded: padded})
				buf := make([]engine.Move, 0, 256)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					buf = board.AppendLegalMoves(buf[:0])
				}
			})
		}
	}
}

func BenchmarkMakeUnmake(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board := notation.MustBoard(fen, engine.Options{Padded: true})
			moves := append([]engine.Move(nil), board.LegalMoves()...)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m := moves[i%len(moves)]
				board.MakeMove(m, engine.Legal)
				board.UnmakeMove()
			}
		})
	}
}

func BenchmarkIsCheck(b *testing.B) {
	board := notation.MustBoard(testutil.Kiwipete, engine.Options{})
	moves := append([]engine.Move(nil), board.LegalMoves()...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.MakeMove(moves[i%len(moves)], engine.Legal)
		board.IsCheck()
		board.UnmakeMove()
	}
}

func BenchmarkPerft(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board := notation.MustBoard(fen, engine.Options{Padded: true})
			for i := 0; i < b.N; i++ {
				perft(board, 3)
			}
		})
	}
}

func BenchmarkFork(b *testing.B) {
	board := notation.MustBoard(testutil.Kiwipete, engine.Options{})
	for i := 0; i < b.N; i++ {
		board.Fork()
	}
}
