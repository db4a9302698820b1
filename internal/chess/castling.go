package chess

import (
	"fmt"

	"github.com/lgbarn/chessboard-go/internal/errors"
)

// Side is the wing of the board a castling move heads to.
type Side uint8

const (
	KingSide Side = iota
	QueenSide
)

// String returns the side name.
func (s Side) String() string {
	if s == KingSide {
		return "king side"
	}
	return "queen side"
}

// CastlingRight identifies one of the four castling options.
type CastlingRight uint8

const (
	WhiteKingSide CastlingRight = iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide
	NumCastlingRights
)

// AllCastlingRights lists the rights in mask bit order.
var AllCastlingRights = [NumCastlingRights]CastlingRight{
	WhiteKingSide, WhiteQueenSide, BlackKingSide, BlackQueenSide,
}

// MakeCastlingRight returns the right for a colour and side.
func MakeCastlingRight(colour Colour, side Side) CastlingRight {
	if colour == White {
		return CastlingRight(side)
	}
	return CastlingRight(2 + side)
}

// Colour returns the colour the right belongs to.
func (r CastlingRight) Colour() Colour {
	if r < BlackKingSide {
		return White
	}
	return Black
}

// Side returns the wing of the right.
func (r CastlingRight) Side() Side {
	return Side(r & 1)
}

// Mask returns the bit of the right in a CastlingRights mask.
func (r CastlingRight) Mask() CastlingRights {
	return CastlingRights(1) << r
}

// RookOffset returns the rook's destination column relative to the king's
// destination column.
func (r CastlingRight) RookOffset() int {
	if r.Side() == KingSide {
		return -1
	}
	return 1
}

// KingColumn returns the column the king lands on.
func (r CastlingRight) KingColumn(dim Dimension) int {
	if r.Side() == KingSide {
		return dim.Width - 2
	}
	return 2
}

// RookColumn returns the column the rook lands on.
func (r CastlingRight) RookColumn(dim Dimension) int {
	return r.KingColumn(dim) + r.RookOffset()
}

// HomeRow returns the row the king and rook castle on.
func (r CastlingRight) HomeRow(dim Dimension) int {
	if r.Colour() == White {
		return 0
	}
	return dim.Height - 1
}

// String returns the X-FEN letter of the right.
func (r CastlingRight) String() string {
	return string("KQkq"[r])
}

// CastlingRights is a 4-bit mask of castling rights.
type CastlingRights uint8

// AllRights is the mask with every right set.
const AllRights CastlingRights = 0x0F

// Has reports whether right is set.
func (c CastlingRights) Has(right CastlingRight) bool {
	return c&right.Mask() != 0
}

// Without returns the mask with right cleared.
func (c CastlingRights) Without(right CastlingRight) CastlingRights {
	return c &^ right.Mask()
}

// With returns the mask with right set.
func (c CastlingRights) With(right CastlingRight) CastlingRights {
	return c | right.Mask()
}

// String returns the rights in KQkq form, or "-" when empty.
func (c CastlingRights) String() string {
	if c == 0 {
		return "-"
	}
	out := make([]byte, 0, 4)
	for _, r := range AllCastlingRights {
		if c.Has(r) {
			out = append(out, "KQkq"[r])
		}
	}
	return string(out)
}

// Chess960Positions is the number of distinct Fischer-Random start positions.
const Chess960Positions = 960

// StandardChess960 is the Scharnagl number of the regular start position.
const StandardChess960 = 518

var knightPlacements = [10][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 2},
	{1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4},
}

// Chess960BackRank returns the back rank of Fischer-Random start position n,
// numbered with the Scharnagl scheme (518 is the regular arrangement).
func Chess960BackRank(n int) ([8]Kind, error) {
	var rank [8]Kind
	if n < 0 || n >= Chess960Positions {
		return rank, fmt.Errorf("chess960 position %d: %w", n, errors.ErrInvalidSetup)
	}
	rank[2*(n%4)+1] = Bishop
	n /= 4
	rank[2*(n%4)] = Bishop
	n /= 4
	placeNth(&rank, n%6, Queen)
	n /= 6
	knights := knightPlacements[n]
	// the second knight is counted before the first is placed
	placeNth(&rank, knights[1], Knight)
	placeNth(&rank, knights[0], Knight)
	placeNth(&rank, 0, Rook)
	placeNth(&rank, 0, King)
	placeNth(&rank, 0, Rook)
	return rank, nil
}

// placeNth puts kind on the n-th (0-based) empty file of rank.
func placeNth(rank *[8]Kind, n int, kind Kind) {
	for file := range rank {
		if rank[file] != NoKind {
			continue
		}
		if n == 0 {
			rank[file] = kind
			return
		}
		n--
	}
}
