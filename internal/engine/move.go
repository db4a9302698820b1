package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// Move is a move between two layout indices. Castling is encoded as the king
// moving onto the square of the rook it castles with, which keeps Chess960
// castling unambiguous.
type Move struct {
	From      int
	To        int
	Promotion chess.Kind // NoKind unless a pawn promotes
}

// NewMove creates a move without promotion.
func NewMove(from, to int) Move {
	return Move{From: from, To: to}
}

// NewPromotion creates a pawn move that promotes to kind.
func NewPromotion(from, to int, kind chess.Kind) Move {
	return Move{From: from, To: to, Promotion: kind}
}

// Confidence tells MakeMove how much of a move's legality is already known.
type Confidence uint8

const (
	// Unsafe moves are fully validated before being played.
	Unsafe Confidence = iota
	// PseudoLegal moves are known to follow piece movement rules; only king
	// safety is verified.
	PseudoLegal
	// Legal moves are played without checks. Passing an illegal move is a
	// contract violation and corrupts the board.
	Legal
)

// String returns the confidence name.
func (c Confidence) String() string {
	switch c {
	case Unsafe:
		return "unsafe"
	case PseudoLegal:
		return "pseudo-legal"
	case Legal:
		return "legal"
	}
	return "unknown"
}
