package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// castleSquares returns the from and to squares of the king and rook for a
// castling right.
func (b *Board) castleSquares(right chess.CastlingRight) (kingFrom, kingTo, rookFrom, rookTo int) {
	dim := b.layout.Dimension()
	row := right.HomeRow(dim)
	kingFrom = b.kings[right.Colour()]
	rookFrom = b.rooks[right]
	kingTo = b.layout.Index(row, right.KingColumn(dim))
	rookTo = b.layout.Index(row, right.RookColumn(dim))
	return kingFrom, kingTo, rookFrom, rookTo
}

// castlingRight identifies m as a castling move of the side to move, i.e. its
// king moving onto one of its own castling rooks.
func (b *Board) castlingRight(m Move) (chess.CastlingRight, bool) {
	if m.From != b.kings[b.active] || m.Promotion != chess.NoKind {
		return 0, false
	}
	for _, side := range [2]chess.Side{chess.KingSide, chess.QueenSide} {
		r := chess.MakeCastlingRight(b.active, side)
		if b.castling.Has(r) && b.rooks[r] == m.To {
			return r, true
		}
	}
	return 0, false
}

// canCastle reports whether castling with right is possible. The squares the
// king and rook travel over, destinations included, must be empty apart from
// the two castling pieces. With safety set the king must also not be in
// check nor cross or land on an attacked square.
func (b *Board) canCastle(right chess.CastlingRight, safety bool) bool {
	if !b.castling.Has(right) {
		return false
	}
	kingFrom, kingTo, rookFrom, rookTo := b.castleSquares(right)

	row := b.layout.Row(kingFrom)
	lo := min(b.layout.Col(kingFrom), b.layout.Col(kingTo), b.layout.Col(rookFrom), b.layout.Col(rookTo))
	hi := max(b.layout.Col(kingFrom), b.layout.Col(kingTo), b.layout.Col(rookFrom), b.layout.Col(rookTo))
	for col := lo; col <= hi; col++ {
		index := b.layout.Index(row, col)
		if index == kingFrom || index == rookFrom {
			continue
		}
		if b.squares[index] != chess.Empty {
			return false
		}
	}
	if !safety {
		return true
	}

	enemy := right.Colour().Opposite()
	if b.IsAttacked(kingFrom, enemy) {
		return false
	}

	// Lift both pieces: in Chess960 the castling rook may be the only thing
	// shielding a square the king crosses.
	king, rook := b.squares[kingFrom], b.squares[rookFrom]
	b.squares[kingFrom] = chess.Empty
	b.squares[rookFrom] = chess.Empty

	safe := true
	step := 1
	if kingTo < kingFrom {
		step = -1
	}
	for col := b.layout.Col(kingFrom); ; col += step {
		if b.IsAttacked(b.layout.Index(row, col), enemy) {
			safe = false
			break
		}
		if col == b.layout.Col(kingTo) {
			break
		}
	}

	b.squares[kingFrom] = king
	b.squares[rookFrom] = rook
	return safe
}
