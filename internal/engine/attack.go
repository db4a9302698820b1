package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// IsAttacked reports whether any piece of colour by attacks target. The
// target square itself may hold anything; only the lines to it matter.
func (b *Board) IsAttacked(target int, by chess.Colour) bool {
	for _, d := range chess.AllRays {
		_, p := b.firstPiece(target, d)
		if p.Is(by) && p.Kind().CanSlide(d) {
			return true
		}
	}

	knight := chess.MakePiece(by, chess.Knight)
	for _, d := range chess.KnightJumps {
		if b.at(b.layout.Step(target, d)) == knight {
			return true
		}
	}

	// A pawn of colour by attacks target from the squares it would capture
	// from, i.e. against its own capture directions.
	pawn := chess.MakePiece(by, chess.Pawn)
	for _, d := range pawnCaptures(by) {
		if b.at(b.layout.Step(target, d.Opposite())) == pawn {
			return true
		}
	}

	king := chess.MakePiece(by, chess.King)
	for _, d := range chess.AllRays {
		if b.at(b.layout.Step(target, d)) == king {
			return true
		}
	}
	return false
}

// safeAfter reports whether the king of the moving piece's colour would be
// safe after the piece moves from one square to another, optionally removing
// a piece captured elsewhere (en passant). The board is restored before
// returning.
func (b *Board) safeAfter(from, to, captured int) bool {
	moving := b.squares[from]
	colour := moving.Colour()
	target := b.squares[to]

	var taken chess.Piece
	if captured != NoSquare {
		taken = b.squares[captured]
		b.squares[captured] = chess.Empty
	}
	b.squares[from] = chess.Empty
	b.squares[to] = moving

	king := b.kings[colour]
	if moving.Kind() == chess.King {
		king = to
	}
	safe := !b.IsAttacked(king, colour.Opposite())

	b.squares[to] = target
	b.squares[from] = moving
	if captured != NoSquare {
		b.squares[captured] = taken
	}
	return safe
}
