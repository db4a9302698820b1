// Package hashing provides Zobrist keys for board positions.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessboard-go/internal/chess"
)

// seedBase is mixed with the board dimension so every size gets its own,
// reproducible key set.
const seedBase = 0x5EEDC0DE

// Hasher holds the random keys for one board dimension. A Hasher is
// immutable once built and safe to share between goroutines.
type Hasher struct {
	dim       chess.Dimension
	pieces    [][12]uint64
	castling  [chess.NumCastlingRights]uint64
	enPassant []uint64
	turn      uint64
}

// Build generates the key set for dim from a fixed seed.
func Build(dim chess.Dimension) *Hasher {
	rnd := rand.New(rand.NewSource(int64(seedBase ^ dim.Width<<8 ^ dim.Height)))

	h := &Hasher{
		dim:       dim,
		pieces:    make([][12]uint64, dim.Squares()),
		enPassant: make([]uint64, dim.Width),
	}
	for sq := range h.pieces {
		for p := range h.pieces[sq] {
			h.pieces[sq][p] = rnd.Uint64()
		}
	}
	for r := range h.castling {
		h.castling[r] = rnd.Uint64()
	}
	for f := range h.enPassant {
		h.enPassant[f] = rnd.Uint64()
	}
	h.turn = rnd.Uint64()
	return h
}

// Dimension returns the dimension the keys were built for.
func (h *Hasher) Dimension() chess.Dimension { return h.dim }

// Piece returns the key of piece standing on a plain square number.
func (h *Hasher) Piece(square int, piece chess.Piece) uint64 {
	return h.pieces[square][piece.Index()]
}

// Castling returns the key of a single castling right.
func (h *Hasher) Castling(right chess.CastlingRight) uint64 {
	return h.castling[right]
}

// CastlingMask returns the combined key of every right set in rights.
func (h *Hasher) CastlingMask(rights chess.CastlingRights) uint64 {
	var key uint64
	for _, r := range chess.AllCastlingRights {
		if rights.Has(r) {
			key ^= h.castling[r]
		}
	}
	return key
}

// EnPassant returns the key of an en-passant target on file.
func (h *Hasher) EnPassant(file int) uint64 {
	return h.enPassant[file]
}

// Turn returns the key toggled when Black is to move.
func (h *Hasher) Turn() uint64 {
	return h.turn
}

// Position is the read-only view of a board the hasher needs to compute a
// key from scratch.
type Position interface {
	Dimension() chess.Dimension
	Piece(row, col int) chess.Piece
	ActiveColour() chess.Colour
	CastlingRights() chess.CastlingRights
	EnPassantFile() int
}

// KeyOf computes the key of pos from scratch.
func (h *Hasher) KeyOf(pos Position) uint64 {
	var key uint64
	dim := h.dim
	for row := 0; row < dim.Height; row++ {
		for col := 0; col < dim.Width; col++ {
			if p := pos.Piece(row, col); p.IsPiece() {
				key ^= h.Piece(row*dim.Width+col, p)
			}
		}
	}
	if pos.ActiveColour() == chess.Black {
		key ^= h.turn
	}
	key ^= h.CastlingMask(pos.CastlingRights())
	if file := pos.EnPassantFile(); file >= 0 {
		key ^= h.enPassant[file]
	}
	return key
}

// KeyOf computes the key of pos from scratch with a freshly built hasher.
// Prefer Hasher.KeyOf in loops.
func KeyOf(pos Position) uint64 {
	return Build(pos.Dimension()).KeyOf(pos)
}
