// Package engine provides the mutable board, legal move generation,
// make/unmake with O(1) rollback, check and pin detection and game status.
//
// A Board is a single-threaded object with no internal locking. Give every
// goroutine its own board, produced with Fork.
package engine

import (
	"strings"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/hashing"
)

// NoSquare marks an absent square.
const NoSquare = chess.NoSquare

// Options control how a board is built.
type Options struct {
	// Padded selects the padded coordinate system, whose border sentinels
	// remove bounds checks from ray walks.
	Padded bool

	// Registry supplies the Zobrist hasher for the board's dimension. When
	// nil a hasher is built for this board alone; keys are reproducible
	// either way.
	Registry *hashing.Registry
}

func (o Options) hasher(dim chess.Dimension) *hashing.Hasher {
	if o.Registry != nil {
		return o.Registry.Get(dim)
	}
	return hashing.Build(dim)
}

// material tracks what a side still has to mate with.
type material struct {
	minors int // knights and bishops
	hope   int // pawns, rooks and queens
}

// Board is a chess position together with the history needed to undo moves
// and detect repetitions.
type Board struct {
	layout  chess.Layout
	hasher  *hashing.Hasher
	squares []chess.Piece

	active     chess.Colour
	castling   chess.CastlingRights
	rooks      [chess.NumCastlingRights]int
	enPassant  int
	epPawn     int
	halfMoves  int
	moveNumber int
	kings      [chess.NumColours]int
	material   [chess.NumColours]material
	key        uint64

	// history holds the key of every earlier position, oldest first.
	history []uint64
	// frames[ply] caches the pin map and legal moves of the position at
	// that ply, and records the move played from it.
	frames []frame
	ply    int
}

// Layout returns the coordinate system of the board.
func (b *Board) Layout() chess.Layout { return b.layout }

// Dimension returns the board size.
func (b *Board) Dimension() chess.Dimension { return b.layout.Dimension() }

// Hasher returns the Zobrist hasher the board keys itself with.
func (b *Board) Hasher() *hashing.Hasher { return b.hasher }

// at returns the piece on index, treating NoSquare as Off.
func (b *Board) at(index int) chess.Piece {
	if index < 0 {
		return chess.Off
	}
	return b.squares[index]
}

// PieceAt returns the piece on a layout index. Indices off the board
// return Off.
func (b *Board) PieceAt(index int) chess.Piece {
	if !b.layout.Contains(index) {
		return chess.Off
	}
	return b.squares[index]
}

// Piece returns the piece at (row, col). Coordinates off the board return
// Off.
func (b *Board) Piece(row, col int) chess.Piece {
	dim := b.layout.Dimension()
	if row < 0 || row >= dim.Height || col < 0 || col >= dim.Width {
		return chess.Off
	}
	return b.squares[b.layout.Index(row, col)]
}

// ActiveColour returns the side to move.
func (b *Board) ActiveColour() chess.Colour { return b.active }

// CastlingRights returns the rights still available.
func (b *Board) CastlingRights() chess.CastlingRights { return b.castling }

// CastlingRook returns the square of the rook a right castles with, or
// NoSquare when the right is gone.
func (b *Board) CastlingRook(right chess.CastlingRight) int {
	if !b.castling.Has(right) {
		return NoSquare
	}
	return b.rooks[right]
}

// EnPassant returns the en-passant target square, or NoSquare. A target is
// only recorded when a pawn can legally capture on it.
func (b *Board) EnPassant() int { return b.enPassant }

// EnPassantPawn returns the square of the pawn an en-passant capture would
// remove, or NoSquare.
func (b *Board) EnPassantPawn() int { return b.epPawn }

// EnPassantFile returns the file of the en-passant target, or -1.
func (b *Board) EnPassantFile() int {
	if b.enPassant == NoSquare {
		return -1
	}
	return b.layout.Col(b.enPassant)
}

// HalfMoveClock returns the number of half-moves since the last capture or
// pawn move.
func (b *Board) HalfMoveClock() int { return b.halfMoves }

// MoveNumber returns the full-move number, incremented after Black moves.
func (b *Board) MoveNumber() int { return b.moveNumber }

// Key returns the Zobrist key of the position.
func (b *Board) Key() uint64 { return b.key }

// KingSquare returns the square of the king of colour.
func (b *Board) KingSquare(colour chess.Colour) int { return b.kings[colour] }

// Ply returns the number of moves currently applied that can be undone.
func (b *Board) Ply() int { return b.ply }

// History returns a copy of the keys of every earlier position, oldest first.
func (b *Board) History() []uint64 {
	return append([]uint64(nil), b.history...)
}

// Material returns the number of minor pieces and of pawns, rooks and queens
// colour still has.
func (b *Board) Material(colour chess.Colour) (minors, others int) {
	m := b.material[colour]
	return m.minors, m.hope
}

// Fork returns an independent copy of the board. The copy shares no mutable
// state with b and keeps its key history, but it cannot undo moves played
// before the fork.
func (b *Board) Fork() *Board {
	c := *b
	c.squares = append([]chess.Piece(nil), b.squares...)
	c.history = append(make([]uint64, 0, len(b.history)+32), b.history...)
	c.frames = make([]frame, 1, 16)
	c.ply = 0
	return &c
}

// put places piece on an empty square and updates the key.
func (b *Board) put(index int, piece chess.Piece) {
	b.squares[index] = piece
	b.key ^= b.hasher.Piece(b.layout.Square(index), piece)
}

// remove clears a square and updates the key. It returns the removed piece.
func (b *Board) remove(index int) chess.Piece {
	piece := b.squares[index]
	if piece.IsPiece() {
		b.squares[index] = chess.Empty
		b.key ^= b.hasher.Piece(b.layout.Square(index), piece)
	}
	return piece
}

// addMaterial and dropMaterial keep the insufficient-material counters in
// step with the piece array.
func (b *Board) addMaterial(piece chess.Piece) {
	m := &b.material[piece.Colour()]
	switch kind := piece.Kind(); {
	case kind.IsMinor():
		m.minors++
	case kind != chess.King:
		m.hope++
	}
}

func (b *Board) dropMaterial(piece chess.Piece) {
	m := &b.material[piece.Colour()]
	switch kind := piece.Kind(); {
	case kind.IsMinor():
		m.minors--
	case kind != chess.King:
		m.hope--
	}
}

// pawnPush returns the direction pawns of colour advance in.
func pawnPush(colour chess.Colour) chess.Direction {
	if colour == chess.White {
		return chess.North
	}
	return chess.South
}

var pawnCaptureDirs = [chess.NumColours][2]chess.Direction{
	chess.Black: {chess.SouthEast, chess.SouthWest},
	chess.White: {chess.NorthEast, chess.NorthWest},
}

// pawnCaptures returns the directions pawns of colour capture in.
func pawnCaptures(colour chess.Colour) [2]chess.Direction {
	return pawnCaptureDirs[colour]
}

// startRow returns the row pawns of colour may double-advance from.
func (b *Board) startRow(colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return b.layout.Dimension().Height - 2
}

// lastRow returns the row pawns of colour promote on.
func (b *Board) lastRow(colour chess.Colour) int {
	if colour == chess.White {
		return b.layout.Dimension().Height - 1
	}
	return 0
}

// String draws the board, rank 1 at the bottom, one character per square.
func (b *Board) String() string {
	dim := b.layout.Dimension()
	var sb strings.Builder
	for row := dim.Height - 1; row >= 0; row-- {
		for col := 0; col < dim.Width; col++ {
			sb.WriteByte(b.squares[b.layout.Index(row, col)].Notation())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
