package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// IsLegal reports whether m is a legal move for the side to move. It checks
// the move from scratch rather than searching the generated list.
func (b *Board) IsLegal(m Move) bool {
	if !b.layout.Contains(m.From) || !b.layout.Contains(m.To) || m.From == m.To {
		return false
	}
	moving := b.squares[m.From]
	if !moving.Is(b.active) {
		return false
	}

	v := b.newValidator()
	if r, ok := b.castlingRight(m); ok {
		return !v.inCheck() && b.canCastle(r, true)
	}
	if b.squares[m.To].Is(b.active) {
		return false
	}

	kind := moving.Kind()
	if kind == chess.Pawn {
		return b.legalPawn(m, &v)
	}
	if m.Promotion != chess.NoKind {
		return false
	}

	switch kind {
	case chess.King:
		for _, d := range chess.AllRays {
			if b.layout.Step(m.From, d) == m.To {
				return v.king(m.From, m.To)
			}
		}
		return false
	case chess.Knight:
		for _, d := range chess.KnightJumps {
			if b.layout.Step(m.From, d) == m.To {
				return v.piece(m.From, m.To)
			}
		}
		return false
	}

	d := chess.RayBetween(b.layout.Offset(m.From, m.To))
	if !kind.CanSlide(d) {
		return false
	}
	ray := b.Ray(m.From, d)
	for ray.Next() && ray.Index() != m.To {
		if ray.Piece() != chess.Empty {
			return false
		}
	}
	return ray.Index() == m.To && v.piece(m.From, m.To)
}

func (b *Board) legalPawn(m Move, v *validator) bool {
	own := b.active
	promotes := b.layout.Row(m.To) == b.lastRow(own)
	if promotes != (m.Promotion != chess.NoKind) {
		return false
	}
	if promotes {
		valid := false
		for _, kind := range chess.PromotionKinds {
			valid = valid || kind == m.Promotion
		}
		if !valid {
			return false
		}
	}

	push := pawnPush(own)
	target := b.squares[m.To]
	one := b.layout.Step(m.From, push)
	if m.To == one {
		return target == chess.Empty && v.piece(m.From, m.To)
	}
	if b.layout.Row(m.From) == b.startRow(own) && m.To == b.layout.Step(one, push) {
		return b.at(one) == chess.Empty && target == chess.Empty && v.piece(m.From, m.To)
	}

	for _, d := range pawnCaptures(own) {
		if b.layout.Step(m.From, d) != m.To {
			continue
		}
		if target.Is(own.Opposite()) {
			return v.piece(m.From, m.To)
		}
		if m.To == b.enPassant && b.enPassant != NoSquare {
			return v.enPassant(m.From, m.To, b.epPawn)
		}
		return false
	}
	return false
}
