package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// undoKind tags the variant held by an undoRecord.
type undoKind uint8

const (
	undoSimple undoKind = iota
	undoEnPassant
	undoCastling
)

// undoRecord holds what is needed to take back one move without
// recomputation: the pieces it moved or captured and the scalar state of the
// position before it.
type undoRecord struct {
	kind undoKind

	from     int
	to       int
	moved    chess.Piece // undoSimple: piece on from before the move
	captured chess.Piece // undoSimple, undoEnPassant: piece removed
	capture  int         // undoEnPassant: square of the captured pawn
	rookFrom int         // undoCastling
	rookTo   int         // undoCastling

	castling   chess.CastlingRights
	enPassant  int
	epPawn     int
	halfMoves  int
	moveNumber int
	material   [chess.NumColours]material
	key        uint64
}

// moveCache holds the legal moves of a position once generated.
type moveCache struct {
	state cacheState
	list  []Move
}

// frame is the per-ply state of the board. Frames are reused as the search
// goes up and down, so their buffers are allocated once per depth.
type frame struct {
	undo  undoRecord
	pins  pinMap
	moves moveCache
}

// snapshot saves the scalar state of b into u.
func (u *undoRecord) snapshot(b *Board) {
	u.castling = b.castling
	u.enPassant = b.enPassant
	u.epPawn = b.epPawn
	u.halfMoves = b.halfMoves
	u.moveNumber = b.moveNumber
	u.material = b.material
	u.key = b.key
}

// restore puts the scalar state saved by snapshot back on b.
func (u *undoRecord) restore(b *Board) {
	b.castling = u.castling
	b.enPassant = u.enPassant
	b.epPawn = u.epPawn
	b.halfMoves = u.halfMoves
	b.moveNumber = u.moveNumber
	b.material = u.material
	b.key = u.key
}

// pushFrame advances to the next ply and marks its caches stale.
func (b *Board) pushFrame() {
	b.ply++
	if b.ply == len(b.frames) {
		b.frames = append(b.frames, frame{})
	}
	f := &b.frames[b.ply]
	f.pins.state = stale
	f.moves.state = stale
	f.moves.list = nil
}

// UnmakeMove takes back the last move. It panics when no move is left to
// undo.
func (b *Board) UnmakeMove() {
	if b.ply == 0 {
		panic("engine: UnmakeMove with no move to undo")
	}
	b.ply--
	u := &b.frames[b.ply].undo
	b.active = b.active.Opposite()

	switch u.kind {
	case undoCastling:
		king, rook := b.squares[u.to], b.squares[u.rookTo]
		b.squares[u.to] = chess.Empty
		b.squares[u.rookTo] = chess.Empty
		b.squares[u.from] = king
		b.squares[u.rookFrom] = rook
		b.kings[b.active] = u.from
	case undoEnPassant:
		b.squares[u.from] = b.squares[u.to]
		b.squares[u.to] = chess.Empty
		b.squares[u.capture] = u.captured
	default:
		b.squares[u.from] = u.moved
		b.squares[u.to] = u.captured
		if u.moved.Kind() == chess.King {
			b.kings[b.active] = u.from
		}
	}

	u.restore(b)
	b.history = b.history[:len(b.history)-1]
}
