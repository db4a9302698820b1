package engine

import (
	"fmt"

	"github.com/lgbarn/chessboard-go/internal/chess"
)

// Verify recomputes every incrementally maintained field of the board and
// reports the first mismatch. It is slow and meant for tests and the perft
// tool's paranoid mode.
func (b *Board) Verify() error {
	var kings [chess.NumColours]int
	kings[chess.Black], kings[chess.White] = NoSquare, NoSquare
	var counts [chess.NumColours]material

	for e := b.Squares(); e.Next(); {
		p := e.Piece()
		if p == chess.Off {
			return fmt.Errorf("sentinel on playable square %s", b.layout.Algebraic(e.Index()))
		}
		if !p.IsPiece() {
			continue
		}
		if p.Kind() == chess.King {
			kings[p.Colour()] = e.Index()
		}
		m := &counts[p.Colour()]
		switch kind := p.Kind(); {
		case kind.IsMinor():
			m.minors++
		case kind != chess.King:
			m.hope++
		}
	}

	if kings != b.kings {
		return fmt.Errorf("king squares %v, cached %v", kings, b.kings)
	}
	if counts != b.material {
		return fmt.Errorf("material %+v, cached %+v", counts, b.material)
	}
	if key := b.hasher.KeyOf(b); key != b.key {
		return fmt.Errorf("key %016x, incremental %016x", key, b.key)
	}
	for _, r := range chess.AllCastlingRights {
		if !b.castling.Has(r) {
			continue
		}
		if b.squares[b.rooks[r]] != chess.MakePiece(r.Colour(), chess.Rook) {
			return fmt.Errorf("castling %s without rook on %s", r, b.layout.Algebraic(b.rooks[r]))
		}
		if b.layout.Row(b.kings[r.Colour()]) != r.HomeRow(b.layout.Dimension()) {
			return fmt.Errorf("castling %s with king off home row", r)
		}
	}
	if b.enPassant != NoSquare {
		if b.squares[b.enPassant] != chess.Empty {
			return fmt.Errorf("en-passant target %s occupied", b.layout.Algebraic(b.enPassant))
		}
		if b.squares[b.epPawn] != chess.MakePiece(b.active.Opposite(), chess.Pawn) {
			return fmt.Errorf("en-passant pawn missing on %s", b.layout.Algebraic(b.epPawn))
		}
	}
	if len(b.history) < b.ply {
		return fmt.Errorf("history of %d keys at ply %d", len(b.history), b.ply)
	}
	return nil
}
