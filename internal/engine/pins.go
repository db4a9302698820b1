package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// cacheState tells whether a per-ply cache describes the current position.
type cacheState uint8

const (
	stale cacheState = iota
	fresh
)

// pinMap records, for the side to move, how many pieces give check and which
// own pieces are pinned to the king. It is computed lazily once per ply.
type pinMap struct {
	state  cacheState
	checks int
	// dirs[index] is the ray from the king through a pinned piece, or
	// NoDirection. pinned lists the indices set, so clearing is cheap.
	dirs   []chess.Direction
	pinned []int
}

func (p *pinMap) reset(size int) {
	if len(p.dirs) != size {
		p.dirs = make([]chess.Direction, size)
		p.pinned = p.pinned[:0]
	}
	for _, index := range p.pinned {
		p.dirs[index] = chess.NoDirection
	}
	p.pinned = p.pinned[:0]
	p.checks = 0
}

// pins returns the pin map of the current position, computing it on first
// use.
func (b *Board) pins() *pinMap {
	pm := &b.frames[b.ply].pins
	if pm.state == stale {
		b.loadPins(pm)
	}
	return pm
}

// loadPins walks the eight rays and the knight jumps around the king of the
// side to move.
func (b *Board) loadPins(pm *pinMap) {
	pm.reset(b.layout.Size())

	own := b.active
	enemy := own.Opposite()
	king := b.kings[own]
	if king == NoSquare {
		panic("engine: side to move has no king")
	}

	for _, d := range chess.AllRays {
		ray := b.Ray(king, d)
		for ray.Next() && ray.Piece() == chess.Empty {
		}
		p := ray.Piece()
		if !p.IsPiece() {
			continue
		}

		if p.Colour() == own {
			candidate := ray.Index()
			for ray.Next() && ray.Piece() == chess.Empty {
			}
			if q := ray.Piece(); q.Is(enemy) && q.Kind().CanSlide(d) {
				pm.dirs[candidate] = d
				pm.pinned = append(pm.pinned, candidate)
			}
			continue
		}

		switch {
		case p.Kind().CanSlide(d):
			pm.checks++
		case p.Kind() == chess.Pawn && ray.Distance() == 1 && givesPawnCheck(enemy, d):
			pm.checks++
		}
	}

	knight := chess.MakePiece(enemy, chess.Knight)
	for _, d := range chess.KnightJumps {
		if b.at(b.layout.Step(king, d)) == knight {
			pm.checks++
		}
	}
	pm.state = fresh
}

// givesPawnCheck reports whether a pawn of colour, found one step from the
// king along d, attacks the king.
func givesPawnCheck(colour chess.Colour, d chess.Direction) bool {
	for _, c := range pawnCaptures(colour) {
		if c == d.Opposite() {
			return true
		}
	}
	return false
}

// CheckCount returns the number of pieces giving check to the side to move.
func (b *Board) CheckCount() int {
	return b.pins().checks
}

// IsCheck reports whether the side to move is in check.
func (b *Board) IsCheck() bool {
	return b.pins().checks > 0
}

// IsDoubleCheck reports whether the side to move is attacked by two pieces.
func (b *Board) IsDoubleCheck() bool {
	return b.pins().checks > 1
}

// PinDirection returns the ray from the king of the side to move through the
// piece on index when that piece is pinned, or NoDirection.
func (b *Board) PinDirection(index int) chess.Direction {
	if !b.layout.Contains(index) {
		return chess.NoDirection
	}
	return b.pins().dirs[index]
}
