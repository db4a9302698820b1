package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// Status is the outcome of a position.
type Status uint8

const (
	Playing Status = iota
	WhiteWon
	BlackWon
	Draw
)

// String returns the PGN result token of the status.
func (s Status) String() string {
	switch s {
	case WhiteWon:
		return "1-0"
	case BlackWon:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	}
	return "*"
}

// FiftyMoveLimit is the half-move clock value at which the game is drawn.
const FiftyMoveLimit = 100

// Status evaluates the position: a draw by the fifty-move rule, insufficient
// material or threefold repetition, otherwise checkmate, stalemate or an
// ongoing game.
func (b *Board) Status() Status {
	if b.halfMoves >= FiftyMoveLimit || b.InsufficientMaterial() || b.IsRepetition() {
		return Draw
	}
	if b.HasLegalMoves() {
		return Playing
	}
	if !b.IsCheck() {
		return Draw
	}
	if b.active == chess.White {
		return BlackWon
	}
	return WhiteWon
}

// IsCheckmate reports whether the side to move is mated.
func (b *Board) IsCheckmate() bool {
	return b.IsCheck() && !b.HasLegalMoves()
}

// IsStalemate reports whether the side to move has no legal move and is not
// in check.
func (b *Board) IsStalemate() bool {
	return !b.IsCheck() && !b.HasLegalMoves()
}

// InsufficientMaterial reports whether neither side can mate: no pawns,
// rooks or queens on the board and at most one minor piece per side.
func (b *Board) InsufficientMaterial() bool {
	for _, m := range b.material {
		if m.hope > 0 || m.minors > 1 {
			return false
		}
	}
	return true
}

// IsRepetition reports whether the position occurred at least twice before
// with the same side to move since the last irreversible move.
func (b *Board) IsRepetition() bool {
	n := len(b.history)
	limit := max(n-b.halfMoves, 0)
	seen := 0
	for i := n - 2; i >= limit; i -= 2 {
		if b.history[i] == b.key {
			seen++
			if seen >= 2 {
				return true
			}
		}
	}
	return false
}
