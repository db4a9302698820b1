package perft

import (
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/errors"
	"github.com/lgbarn/chessboard-go/internal/notation"
)

// OracleDivide computes a divide with the dragontoothmg move generator. It
// only understands regular 8x8 chess; Chess960 castling is not supported.
func OracleDivide(fen string, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result
	}
	board := dragontoothmg.ParseFen(fen)
	for _, m := range board.GenerateLegalMoves() {
		undo := board.Apply(m)
		result[m.String()] = oracleCount(&board, depth-1)
		undo()
	}
	return result
}

func oracleCount(board *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := board.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo := board.Apply(m)
		nodes += oracleCount(board, depth-1)
		undo()
	}
	return nodes
}

// Oracle reports whether the reference generator can check b: a regular
// board whose castling rooks stand in the corners.
func Oracle(b *engine.Board) bool {
	if b.Dimension() != chess.Standard {
		return false
	}
	for _, r := range chess.AllCastlingRights {
		rook := b.CastlingRook(r)
		if rook == engine.NoSquare {
			continue
		}
		want := 7
		if r.Side() == chess.QueenSide {
			want = 0
		}
		if b.Layout().Col(rook) != want || b.Layout().Col(b.KingSquare(r.Colour())) != 4 {
			return false
		}
	}
	return true
}

// Mismatch is one root move on which two divides disagree. A count of -1
// means the move is missing on that side.
type Mismatch struct {
	Move   string
	Got    int64
	Oracle int64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: got %d, oracle %d", m.Move, m.Got, m.Oracle)
}

// Compare lists the root moves on which got and want differ, in move order.
func Compare(got, want map[string]uint64) []Mismatch {
	var out []Mismatch
	seen := make(map[string]bool, len(got)+len(want))
	for _, name := range append(SortedMoves(got), SortedMoves(want)...) {
		if seen[name] {
			continue
		}
		seen[name] = true
		g, gok := got[name]
		w, wok := want[name]
		if gok && wok && g == w {
			continue
		}
		m := Mismatch{Move: name, Got: -1, Oracle: -1}
		if gok {
			m.Got = int64(g)
		}
		if wok {
			m.Oracle = int64(w)
		}
		out = append(out, m)
	}
	return out
}

// Verify runs a divide on b and on the reference generator and returns an
// error wrapping ErrOracleMismatch listing any differences.
func Verify(b *engine.Board, depth int) error {
	if !Oracle(b) {
		return errors.Wrap(errors.ErrInvalidSetup, "position not supported by the reference generator")
	}
	fen := notation.FEN(b)
	mismatches := Compare(Divide(b, depth, false), OracleDivide(fen, depth))
	if len(mismatches) == 0 {
		return nil
	}
	lines := make([]string, len(mismatches))
	for i, m := range mismatches {
		lines[i] = m.String()
	}
	return errors.Wrapf(errors.ErrOracleMismatch, "%s depth %d:\n%s", fen, depth, strings.Join(lines, "\n"))
}
