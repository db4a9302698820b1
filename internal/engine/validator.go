package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// strategy selects how much work is needed to prove a pseudo-legal move
// legal. It is chosen once per position from the pin map.
type strategy uint8

const (
	// fastPath: not in check, nothing pinned. Only king moves need a test.
	fastPath strategy = iota
	// pinnedPath: not in check, some pieces pinned. Pinned pieces must stay
	// on their pin ray.
	pinnedPath
	// checkPath: a single check. Every move is tried on the board.
	checkPath
	// doubleCheckPath: only the king may move.
	doubleCheckPath
)

func (s strategy) String() string {
	switch s {
	case fastPath:
		return "fast"
	case pinnedPath:
		return "pinned"
	case checkPath:
		return "check"
	case doubleCheckPath:
		return "double check"
	}
	return "unknown"
}

// validator filters pseudo-legal moves of the side to move.
type validator struct {
	board    *Board
	strategy strategy
	pins     *pinMap
}

func (b *Board) newValidator() validator {
	pm := b.pins()
	v := validator{board: b, pins: pm}
	switch {
	case pm.checks > 1:
		v.strategy = doubleCheckPath
	case pm.checks == 1:
		v.strategy = checkPath
	case len(pm.pinned) > 0:
		v.strategy = pinnedPath
	default:
		v.strategy = fastPath
	}
	return v
}

// inCheck reports whether the validator was built for a position in check.
func (v *validator) inCheck() bool {
	return v.strategy >= checkPath
}

// piece validates an ordinary move of a non-king piece.
func (v *validator) piece(from, to int) bool {
	switch v.strategy {
	case fastPath:
		return true
	case pinnedPath:
		d := v.pins.dirs[from]
		if d == chess.NoDirection {
			return true
		}
		rows, cols := v.board.layout.Offset(from, to)
		return d.Axis(rows, cols)
	case checkPath:
		return v.board.safeAfter(from, to, NoSquare)
	}
	return false
}

// king validates a one-step king move.
func (v *validator) king(from, to int) bool {
	if v.inCheck() {
		// the king may not retreat along the checking ray, so it has to be
		// lifted before testing
		return v.board.safeAfter(from, to, NoSquare)
	}
	return !v.board.IsAttacked(to, v.board.active.Opposite())
}

// enPassant validates an en-passant capture. Removing two pawns from one rank
// can expose the king, so the capture is always tried on the board.
func (v *validator) enPassant(from, to, captured int) bool {
	if v.strategy == doubleCheckPath {
		return false
	}
	return v.board.safeAfter(from, to, captured)
}
