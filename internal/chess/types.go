// Package chess provides the value types shared by every layer of the board
// engine: colours, piece kinds, pieces, directions, dimensions and the two
// coordinate systems a board can be laid out on.
package chess

// Colour represents the colour of a piece or player.
type Colour uint8

const (
	Black Colour = iota
	White
)

// NumColours is the number of playing colours, used to size per-colour arrays.
const NumColours = 2

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	return c ^ 1
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// Kind is the colourless kind of a chess piece.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

type kindInfo struct {
	name       string
	letter     byte
	value      int
	sliding    bool
	directions []Direction
}

var kindTable = [NumKinds]kindInfo{
	NoKind: {name: "None", letter: ' '},
	Pawn:   {name: "Pawn", letter: 'P', value: 1},
	Knight: {name: "Knight", letter: 'N', value: 3, directions: KnightJumps[:]},
	Bishop: {name: "Bishop", letter: 'B', value: 3, sliding: true, directions: DiagonalRays[:]},
	Rook:   {name: "Rook", letter: 'R', value: 5, sliding: true, directions: StraightRays[:]},
	Queen:  {name: "Queen", letter: 'Q', value: 9, sliding: true, directions: AllRays[:]},
	King:   {name: "King", letter: 'K', value: 1000, directions: AllRays[:]},
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k < NumKinds {
		return kindTable[k].name
	}
	return "Unknown"
}

// Letter returns the single upper-case letter for the kind.
func (k Kind) Letter() byte {
	if k < NumKinds {
		return kindTable[k].letter
	}
	return '?'
}

// Value returns the conventional material value of the kind.
func (k Kind) Value() int {
	if k < NumKinds {
		return kindTable[k].value
	}
	return 0
}

// IsSliding reports whether the kind moves any distance along its directions.
func (k Kind) IsSliding() bool {
	return k < NumKinds && kindTable[k].sliding
}

// Directions returns the movement directions of the kind. Pawns return nil:
// their moves depend on colour and are generated separately.
// The returned slice must not be modified.
func (k Kind) Directions() []Direction {
	if k < NumKinds {
		return kindTable[k].directions
	}
	return nil
}

// CanSlide reports whether a piece of this kind attacks along d over any
// distance.
func (k Kind) CanSlide(d Direction) bool {
	switch k {
	case Queen:
		return d.IsRay()
	case Rook:
		return d.IsStraight()
	case Bishop:
		return d.IsDiagonal()
	}
	return false
}

// IsMinor reports whether the kind is a knight or a bishop.
func (k Kind) IsMinor() bool {
	return k == Knight || k == Bishop
}

// KindFromLetter converts a piece letter of either case to a kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return NoKind
}

// PromotionKinds lists the kinds a pawn may promote to, in generation order.
var PromotionKinds = [...]Kind{Knight, Bishop, Rook, Queen}

// Piece is a coloured piece, or one of the two square markers Empty and Off.
// Pieces are interned: every value is one of a small fixed set.
type Piece uint8

const (
	Empty Piece = 0 // Empty square
	Off   Piece = 1 // Off the board (border sentinel of a padded layout)
)

// NumPieces bounds the values a Piece can take; useful for sizing tables.
const NumPieces = Piece(NumKinds) << 1

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, kind Kind) Piece {
	return Piece(uint8(kind)<<1 | uint8(colour))
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// Kind extracts the kind of a coloured piece. Empty and Off return NoKind.
func (p Piece) Kind() Kind {
	return Kind(p >> 1)
}

// Colour extracts the colour of a coloured piece.
// The result is meaningless for Empty and Off.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// IsPiece reports whether p is an actual piece rather than a square marker.
func (p Piece) IsPiece() bool {
	return p > Off
}

// Is reports whether p is a piece of the given colour.
func (p Piece) Is(colour Colour) bool {
	return p > Off && p.Colour() == colour
}

// Index returns a dense index in [0, 12) for a coloured piece, used by hash
// tables.
func (p Piece) Index() int {
	return int(p) - 2
}

// Notation returns the single character notation of the piece: upper case for
// White, lower case for Black, '.' for Empty and '#' for Off.
func (p Piece) Notation() byte {
	switch p {
	case Empty:
		return '.'
	case Off:
		return '#'
	}
	letter := p.Kind().Letter()
	if p.Colour() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns the notation of the piece as a string.
func (p Piece) String() string {
	return string(p.Notation())
}

// PieceFromNotation converts a notation character into a piece. Upper case
// letters are White, lower case Black. It returns Empty for anything else.
func PieceFromNotation(c byte) Piece {
	kind := KindFromLetter(c)
	if kind == NoKind {
		return Empty
	}
	if c >= 'a' && c <= 'z' {
		return B(kind)
	}
	return W(kind)
}

// AllPieces lists every coloured piece.
var AllPieces = func() []Piece {
	pieces := make([]Piece, 0, 12)
	for k := Pawn; k < NumKinds; k++ {
		pieces = append(pieces, W(k), B(k))
	}
	return pieces
}()
