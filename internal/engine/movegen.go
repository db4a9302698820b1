package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// generator collects moves of the side to move. With legal set each
// candidate is passed through the validator.
type generator struct {
	board *Board
	v     validator
	legal bool
	moves []Move
}

func (g *generator) accept(from, to int) bool {
	return !g.legal || g.v.piece(from, to)
}

// run appends every move of the side to move.
func (g *generator) run() {
	b := g.board
	if g.legal && g.v.strategy == doubleCheckPath {
		g.king(b.kings[b.active])
		return
	}

	for e := b.Squares(); e.Next(); {
		p := e.Piece()
		if !p.Is(b.active) {
			continue
		}
		switch kind := p.Kind(); kind {
		case chess.Pawn:
			g.pawn(e.Index())
		case chess.Knight:
			g.jumps(e.Index())
		case chess.King:
			g.king(e.Index())
		default:
			g.slides(e.Index(), kind)
		}
	}
	g.castles()
}

func (g *generator) pawn(from int) {
	b := g.board
	own := b.active
	push := pawnPush(own)

	one := b.layout.Step(from, push)
	if b.at(one) == chess.Empty {
		g.addPawn(from, one)
		if b.layout.Row(from) == b.startRow(own) {
			two := b.layout.Step(one, push)
			if b.at(two) == chess.Empty && g.accept(from, two) {
				g.moves = append(g.moves, NewMove(from, two))
			}
		}
	}

	for _, d := range pawnCaptures(own) {
		to := b.layout.Step(from, d)
		target := b.at(to)
		switch {
		case target.Is(own.Opposite()):
			g.addPawn(from, to)
		case to == b.enPassant && b.enPassant != NoSquare:
			if !g.legal || g.v.enPassant(from, to, b.epPawn) {
				g.moves = append(g.moves, NewMove(from, to))
			}
		}
	}
}

// addPawn appends a single-step pawn move, expanding it into the four
// promotions on the last row.
func (g *generator) addPawn(from, to int) {
	if !g.accept(from, to) {
		return
	}
	b := g.board
	if b.layout.Row(to) != b.lastRow(b.active) {
		g.moves = append(g.moves, NewMove(from, to))
		return
	}
	for _, kind := range chess.PromotionKinds {
		g.moves = append(g.moves, NewPromotion(from, to, kind))
	}
}

func (g *generator) jumps(from int) {
	b := g.board
	for _, d := range chess.KnightJumps {
		to := b.layout.Step(from, d)
		target := b.at(to)
		if (target == chess.Empty || target.Is(b.active.Opposite())) && g.accept(from, to) {
			g.moves = append(g.moves, NewMove(from, to))
		}
	}
}

func (g *generator) slides(from int, kind chess.Kind) {
	b := g.board
	for _, d := range kind.Directions() {
		// a pinned piece can only move along its pin, so whole rays can be
		// skipped
		if g.legal && g.v.strategy == pinnedPath {
			if pin := g.v.pins.dirs[from]; pin != chess.NoDirection && pin != d && pin != d.Opposite() {
				continue
			}
		}
		ray := b.Ray(from, d)
		for ray.Next() {
			target := ray.Piece()
			if target.Is(b.active) {
				break
			}
			if g.accept(from, ray.Index()) {
				g.moves = append(g.moves, NewMove(from, ray.Index()))
			}
			if target != chess.Empty {
				break
			}
		}
	}
}

func (g *generator) king(from int) {
	b := g.board
	for _, d := range chess.AllRays {
		to := b.layout.Step(from, d)
		target := b.at(to)
		if target != chess.Empty && !target.Is(b.active.Opposite()) {
			continue
		}
		if !g.legal || g.v.king(from, to) {
			g.moves = append(g.moves, NewMove(from, to))
		}
	}
}

func (g *generator) castles() {
	b := g.board
	if g.legal && g.v.inCheck() {
		return
	}
	for _, side := range [2]chess.Side{chess.KingSide, chess.QueenSide} {
		r := chess.MakeCastlingRight(b.active, side)
		if b.canCastle(r, g.legal) {
			g.moves = append(g.moves, NewMove(b.kings[b.active], b.rooks[r]))
		}
	}
}

// AppendPseudoLegalMoves appends the moves of the side to move that follow
// piece movement rules, ignoring king safety, to dst.
func (b *Board) AppendPseudoLegalMoves(dst []Move) []Move {
	g := generator{board: b, moves: dst}
	g.run()
	return g.moves
}

// AppendLegalMoves appends the legal moves of the side to move to dst.
func (b *Board) AppendLegalMoves(dst []Move) []Move {
	g := generator{board: b, v: b.newValidator(), legal: true, moves: dst}
	g.run()
	return g.moves
}

// PseudoLegalMoves returns the pseudo-legal moves of the side to move.
func (b *Board) PseudoLegalMoves() []Move {
	return b.AppendPseudoLegalMoves(make([]Move, 0, 48))
}

// LegalMoves returns the legal moves of the side to move. The list is cached
// for the current ply; callers must not modify it.
func (b *Board) LegalMoves() []Move {
	cache := &b.frames[b.ply].moves
	if cache.state == stale {
		cache.list = b.AppendLegalMoves(make([]Move, 0, 48))
		cache.state = fresh
	}
	return cache.list
}

// HasLegalMoves reports whether the side to move has at least one legal move.
func (b *Board) HasLegalMoves() bool {
	return len(b.LegalMoves()) > 0
}
