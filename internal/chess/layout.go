package chess

import (
	"fmt"

	"github.com/lgbarn/chessboard-go/internal/errors"
)

// Dimension is the size of a board. Two boards are only comparable when
// their dimensions are equal.
type Dimension struct {
	Width  int
	Height int
}

// Standard is the regular 8x8 board.
var Standard = Dimension{Width: 8, Height: 8}

// Board size limits. Castling needs columns 2, 3, width-3 and width-2 to be
// distinct and files are named with single letters.
const (
	MinSize = 5
	MaxSize = 16
)

// Squares returns the number of playable squares.
func (d Dimension) Squares() int {
	return d.Width * d.Height
}

// Validate checks that the dimension can host a game.
func (d Dimension) Validate() error {
	if d.Width < MinSize || d.Width > MaxSize || d.Height < MinSize || d.Height > MaxSize {
		return fmt.Errorf("%dx%d: %w", d.Width, d.Height, errors.ErrInvalidDimension)
	}
	return nil
}

// String returns the dimension as WIDTHxHEIGHT.
func (d Dimension) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// NoSquare marks an absent square (no en-passant target, off the board in a
// plain layout, and so on).
const NoSquare = -1

// Layout padding. A padded layout surrounds the playable area with one
// sentinel column on each side and two sentinel rows above and below, so that
// every ray step and knight jump leaving the board lands on a sentinel.
const (
	padColumns = 1
	padRows    = 2
)

// Layout maps between square indices and (row, column) coordinates.
//
// A plain layout indexes squares as row*width+col. A padded layout adds
// border sentinels so ray walks never need bounds checks: stepping off the
// board lands on an Off square instead of wrapping into the next row. Both
// agree on algebraic notation. Row 0 is rank 1 and column 0 is file 'a'.
//
// Layouts are immutable values; copies share their lookup tables.
type Layout struct {
	dim    Dimension
	padded bool
	stride int
	origin int
	shift  int
	size   int
	deltas [NumDirections]int
	// toSquare maps a layout index to its plain square, or NoSquare for a
	// sentinel. toIndex is the reverse mapping.
	toSquare []int
	toIndex  []int
}

// NewLayout builds a plain or padded layout for dim.
func NewLayout(dim Dimension, padded bool) Layout {
	l := Layout{dim: dim, padded: padded, stride: dim.Width}
	rows := dim.Height
	if padded {
		l.stride = dim.Width + 2*padColumns
		l.origin = padRows*l.stride + padColumns
		l.shift = padColumns
		rows = dim.Height + 2*padRows
	}
	l.size = rows * l.stride
	for d := North; d < NumDirections; d++ {
		l.deltas[d] = d.RowDelta()*l.stride + d.ColDelta()
	}
	l.toSquare = make([]int, l.size)
	for i := range l.toSquare {
		l.toSquare[i] = NoSquare
	}
	l.toIndex = make([]int, dim.Squares())
	for row := 0; row < dim.Height; row++ {
		for col := 0; col < dim.Width; col++ {
			index := l.origin + row*l.stride + col
			square := row*dim.Width + col
			l.toSquare[index] = square
			l.toIndex[square] = index
		}
	}
	return l
}

// Dimension returns the board dimension of the layout.
func (l Layout) Dimension() Dimension { return l.dim }

// Padded reports whether the layout carries border sentinels.
func (l Layout) Padded() bool { return l.padded }

// Size returns the length of a piece array over this layout, sentinels
// included.
func (l Layout) Size() int { return l.size }

// Index returns the index of (row, col). The coordinates must be on the board.
func (l Layout) Index(row, col int) int {
	return l.origin + row*l.stride + col
}

// Row returns the row of an on-board index.
func (l Layout) Row(index int) int {
	return (index - l.origin + l.shift) / l.stride
}

// Col returns the column of an on-board index.
func (l Layout) Col(index int) int {
	return (index-l.origin+l.shift)%l.stride - l.shift
}

// Contains reports whether index is a playable square.
func (l Layout) Contains(index int) bool {
	return index >= 0 && index < l.size && l.toSquare[index] != NoSquare
}

// Square converts a layout index to its plain square number
// (row*width+col), or NoSquare for sentinels.
func (l Layout) Square(index int) int {
	if index < 0 || index >= l.size {
		return NoSquare
	}
	return l.toSquare[index]
}

// FromSquare converts a plain square number to a layout index.
func (l Layout) FromSquare(square int) int {
	if square < 0 || square >= len(l.toIndex) {
		return NoSquare
	}
	return l.toIndex[square]
}

// Step returns the index one step from index along d. In a padded layout the
// result may be a sentinel; in a plain layout leaving the board yields
// NoSquare.
func (l Layout) Step(index int, d Direction) int {
	if l.padded {
		return index + l.deltas[d]
	}
	row, col := index/l.stride+d.RowDelta(), index%l.stride+d.ColDelta()
	if row < 0 || row >= l.dim.Height || col < 0 || col >= l.dim.Width {
		return NoSquare
	}
	return row*l.stride + col
}

// Algebraic returns the algebraic name of an index, such as "e4".
// Sentinels and NoSquare render as "-".
func (l Layout) Algebraic(index int) string {
	if !l.Contains(index) {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+l.Col(index), l.Row(index)+1)
}

// Parse converts an algebraic square name to an index.
func (l Layout) Parse(algebraic string) (int, error) {
	if len(algebraic) < 2 || len(algebraic) > 3 {
		return NoSquare, fmt.Errorf("square %q: %w", algebraic, errors.ErrInvalidSquare)
	}
	col := int(algebraic[0]) - 'a'
	row := 0
	for _, c := range algebraic[1:] {
		if c < '0' || c > '9' {
			return NoSquare, fmt.Errorf("square %q: %w", algebraic, errors.ErrInvalidSquare)
		}
		row = row*10 + int(c-'0')
	}
	row--
	if col < 0 || col >= l.dim.Width || row < 0 || row >= l.dim.Height {
		return NoSquare, fmt.Errorf("square %q: %w", algebraic, errors.ErrInvalidSquare)
	}
	return l.Index(row, col), nil
}

// MustParse is like Parse but panics on malformed input. It is meant for
// constants in tests and tables.
func (l Layout) MustParse(algebraic string) int {
	index, err := l.Parse(algebraic)
	if err != nil {
		panic(err)
	}
	return index
}

// Offset returns the (rows, cols) displacement between two on-board indices.
func (l Layout) Offset(from, to int) (rows, cols int) {
	return l.Row(to) - l.Row(from), l.Col(to) - l.Col(from)
}
