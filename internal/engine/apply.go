package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// MakeMove plays m for the side to move and reports whether it was played.
//
// With Unsafe confidence the move is fully validated first. With PseudoLegal
// confidence only king safety is checked: the move is played and taken back
// if it leaves the mover's king attacked. With Legal confidence the move is
// trusted. A move that is not played leaves the board unchanged.
func (b *Board) MakeMove(m Move, confidence Confidence) bool {
	switch confidence {
	case Unsafe:
		if !b.IsLegal(m) {
			return false
		}
	case PseudoLegal:
		if r, ok := b.castlingRight(m); ok {
			if b.IsCheck() || !b.canCastle(r, true) {
				return false
			}
			break
		}
		mover := b.active
		b.play(m)
		if b.IsAttacked(b.kings[mover], mover.Opposite()) {
			b.UnmakeMove()
			return false
		}
		return true
	}
	b.play(m)
	return true
}

// play applies m without any validation.
func (b *Board) play(m Move) {
	if b.ply+1 == len(b.frames) {
		b.frames = append(b.frames, frame{})
	}
	u := &b.frames[b.ply].undo
	u.snapshot(b)
	b.history = append(b.history, b.key)

	h := b.hasher
	mover := b.active
	enemy := mover.Opposite()
	oldRights := b.castling
	prevEP, prevPawn := b.enPassant, b.epPawn
	if prevEP != NoSquare {
		b.key ^= h.EnPassant(b.layout.Col(prevEP))
	}
	b.enPassant, b.epPawn = NoSquare, NoSquare

	moving := b.squares[m.From]
	var doublePush bool

	if r, ok := b.castlingRight(m); ok {
		kingFrom, kingTo, rookFrom, rookTo := b.castleSquares(r)
		u.kind = undoCastling
		u.from, u.to = kingFrom, kingTo
		u.rookFrom, u.rookTo = rookFrom, rookTo
		king := b.remove(kingFrom)
		rook := b.remove(rookFrom)
		b.put(kingTo, king)
		b.put(rookTo, rook)
		b.kings[mover] = kingTo
		b.castling = b.castling.
			Without(chess.MakeCastlingRight(mover, chess.KingSide)).
			Without(chess.MakeCastlingRight(mover, chess.QueenSide))
		b.halfMoves++
	} else if moving.Kind() == chess.Pawn && m.To == prevEP && prevEP != NoSquare {
		u.kind = undoEnPassant
		u.from, u.to = m.From, m.To
		u.capture = prevPawn
		u.captured = b.remove(prevPawn)
		b.dropMaterial(u.captured)
		b.remove(m.From)
		b.put(m.To, moving)
		b.halfMoves = 0
	} else {
		u.kind = undoSimple
		u.from, u.to = m.From, m.To
		u.moved = moving
		u.captured = b.squares[m.To]

		if u.captured.IsPiece() {
			b.remove(m.To)
			b.dropMaterial(u.captured)
			b.loseRookRight(m.To)
		}
		b.remove(m.From)
		placed := moving
		if m.Promotion != chess.NoKind {
			placed = chess.MakePiece(mover, m.Promotion)
			b.dropMaterial(moving)
			b.addMaterial(placed)
		}
		b.put(m.To, placed)

		switch moving.Kind() {
		case chess.King:
			b.kings[mover] = m.To
			b.castling = b.castling.
				Without(chess.MakeCastlingRight(mover, chess.KingSide)).
				Without(chess.MakeCastlingRight(mover, chess.QueenSide))
		case chess.Rook:
			b.loseRookRight(m.From)
		}

		if moving.Kind() == chess.Pawn || u.captured.IsPiece() {
			b.halfMoves = 0
		} else {
			b.halfMoves++
		}
		if moving.Kind() == chess.Pawn {
			rows, _ := b.layout.Offset(m.From, m.To)
			doublePush = rows == 2 || rows == -2
		}
	}

	if changed := oldRights ^ b.castling; changed != 0 {
		b.key ^= h.CastlingMask(changed)
	}
	if mover == chess.Black {
		b.moveNumber++
	}
	b.active = enemy
	b.key ^= h.Turn()

	if doublePush {
		b.recordEnPassant(m.From, m.To)
	}
	b.pushFrame()
}

// loseRookRight clears any castling right whose rook stands on index.
func (b *Board) loseRookRight(index int) {
	for _, r := range chess.AllCastlingRights {
		if b.castling.Has(r) && b.rooks[r] == index {
			b.castling = b.castling.Without(r)
		}
	}
}

// recordEnPassant sets the en-passant target after a double pawn advance,
// but only when a pawn of the side now to move can legally take it.
func (b *Board) recordEnPassant(from, to int) {
	capturer := chess.MakePiece(b.active, chess.Pawn)
	target := b.layout.Step(from, pawnPush(b.active.Opposite()))
	for _, d := range [2]chess.Direction{chess.East, chess.West} {
		beside := b.layout.Step(to, d)
		if b.at(beside) != capturer {
			continue
		}
		if b.safeAfter(beside, target, to) {
			b.enPassant, b.epPawn = target, to
			b.key ^= b.hasher.EnPassant(b.layout.Col(target))
			return
		}
	}
}
