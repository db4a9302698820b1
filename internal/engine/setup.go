package engine

import (
	"fmt"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// Setup describes a position to build a board from.
type Setup struct {
	Dimension chess.Dimension
	// Pieces lists the content of every square in plain order,
	// row*width+col, rank 1 first.
	Pieces       []chess.Piece
	ActiveColour chess.Colour
	Castling     chess.CastlingRights
	// RookFiles pins the file of a castling rook. Rights missing from the
	// map castle with the outermost rook on that side of the king.
	RookFiles map[chess.CastlingRight]int
	// EnPassantFile is the file of the en-passant target, or -1.
	EnPassantFile int
	HalfMoveClock int
	MoveNumber    int
}

// NewSetup returns an empty setup for dim with White to move, no rights and
// move number 1.
func NewSetup(dim chess.Dimension) Setup {
	return Setup{
		Dimension:     dim,
		Pieces:        make([]chess.Piece, dim.Squares()),
		ActiveColour:  chess.White,
		EnPassantFile: -1,
		MoveNumber:    1,
	}
}

// Place puts a piece on (row, col).
func (s *Setup) Place(row, col int, piece chess.Piece) {
	s.Pieces[row*s.Dimension.Width+col] = piece
}

// At returns the piece on (row, col).
func (s *Setup) At(row, col int) chess.Piece {
	return s.Pieces[row*s.Dimension.Width+col]
}

// New builds a board from setup. It rejects setups that cannot be played,
// returning a *errors.SetupError that wraps one of the sentinel errors.
// An en-passant file is accepted when the pawn and empty target are there,
// but only recorded when a pawn can legally capture.
func New(setup Setup, opts Options) (*Board, error) {
	dim := setup.Dimension
	if err := dim.Validate(); err != nil {
		return nil, &errors.SetupError{Err: errors.ErrInvalidDimension, Detail: dim.String()}
	}
	if len(setup.Pieces) != dim.Squares() {
		return nil, &errors.SetupError{
			Err:    errors.ErrInvalidSetup,
			Detail: fmt.Sprintf("%d pieces for %d squares", len(setup.Pieces), dim.Squares()),
		}
	}
	if setup.MoveNumber < 1 {
		return nil, &errors.SetupError{Err: errors.ErrInvalidMoveNumber, Detail: fmt.Sprint(setup.MoveNumber)}
	}
	if setup.HalfMoveClock < 0 {
		return nil, &errors.SetupError{Err: errors.ErrInvalidHalfMoveClock, Detail: fmt.Sprint(setup.HalfMoveClock)}
	}

	layout := chess.NewLayout(dim, opts.Padded)
	b := &Board{
		layout:     layout,
		hasher:     opts.hasher(dim),
		squares:    make([]chess.Piece, layout.Size()),
		active:     setup.ActiveColour,
		enPassant:  NoSquare,
		epPawn:     NoSquare,
		halfMoves:  setup.HalfMoveClock,
		moveNumber: setup.MoveNumber,
		kings:      [chess.NumColours]int{NoSquare, NoSquare},
		frames:     make([]frame, 1, 16),
	}
	for i := range b.squares {
		if !layout.Contains(i) {
			b.squares[i] = chess.Off
		}
	}

	if err := b.placePieces(setup); err != nil {
		return nil, err
	}
	if err := b.loadCastling(setup); err != nil {
		return nil, err
	}
	if err := b.loadEnPassant(setup.EnPassantFile); err != nil {
		return nil, err
	}

	if b.IsAttacked(b.kings[b.active.Opposite()], b.active) {
		return nil, &errors.SetupError{
			Err:    errors.ErrInvalidSetup,
			Square: layout.Algebraic(b.kings[b.active.Opposite()]),
			Detail: "side not to move is in check",
		}
	}

	b.key = b.hasher.KeyOf(b)
	return b, nil
}

func (b *Board) placePieces(setup Setup) error {
	dim := setup.Dimension
	for square, p := range setup.Pieces {
		if p == chess.Empty {
			continue
		}
		row, col := square/dim.Width, square%dim.Width
		index := b.layout.Index(row, col)
		if !p.IsPiece() || p.Kind() >= chess.NumKinds {
			return &errors.SetupError{
				Err:    errors.ErrInvalidSetup,
				Square: b.layout.Algebraic(index),
				Detail: "not a piece",
			}
		}
		if p.Kind() == chess.Pawn && (row == 0 || row == dim.Height-1) {
			return &errors.SetupError{
				Err:    errors.ErrInvalidSetup,
				Square: b.layout.Algebraic(index),
				Detail: "pawn on back rank",
			}
		}
		if p.Kind() == chess.King {
			if b.kings[p.Colour()] != NoSquare {
				return &errors.SetupError{
					Err:    errors.ErrTooManyKings,
					Square: b.layout.Algebraic(index),
					Detail: p.Colour().String(),
				}
			}
			b.kings[p.Colour()] = index
		}
		b.squares[index] = p
		b.addMaterial(p)
	}
	for c := chess.Black; c <= chess.White; c++ {
		if b.kings[c] == NoSquare {
			return &errors.SetupError{Err: errors.ErrMissingKing, Detail: c.String()}
		}
	}
	return nil
}

func (b *Board) loadCastling(setup Setup) error {
	dim := setup.Dimension
	for _, r := range chess.AllCastlingRights {
		if !setup.Castling.Has(r) {
			continue
		}
		colour := r.Colour()
		row := r.HomeRow(dim)
		king := b.kings[colour]
		if b.layout.Row(king) != row {
			return &errors.SetupError{
				Err:    errors.ErrInvalidCastling,
				Square: b.layout.Algebraic(king),
				Right:  r.String(),
				Detail: "king not on home row",
			}
		}
		kingCol := b.layout.Col(king)
		rook := chess.MakePiece(colour, chess.Rook)

		file, pinned := setup.RookFiles[r]
		if !pinned {
			file = outermostRook(b, row, kingCol, r.Side(), rook)
			if file < 0 {
				return &errors.SetupError{Err: errors.ErrInvalidCastling, Right: r.String(), Detail: "no rook"}
			}
		}
		if file < 0 || file >= dim.Width {
			return &errors.SetupError{Err: errors.ErrInvalidCastling, Right: r.String(), Detail: "rook file off the board"}
		}
		index := b.layout.Index(row, file)
		onSide := (r.Side() == chess.KingSide && file > kingCol) || (r.Side() == chess.QueenSide && file < kingCol)
		if b.squares[index] != rook || !onSide {
			return &errors.SetupError{
				Err:    errors.ErrInvalidCastling,
				Square: b.layout.Algebraic(index),
				Right:  r.String(),
				Detail: "no castling rook",
			}
		}
		b.rooks[r] = index
		b.castling = b.castling.With(r)
	}
	return nil
}

// outermostRook returns the file of the rook farthest from the king on side,
// or -1.
func outermostRook(b *Board, row, kingCol int, side chess.Side, rook chess.Piece) int {
	width := b.layout.Dimension().Width
	if side == chess.KingSide {
		for col := width - 1; col > kingCol; col-- {
			if b.squares[b.layout.Index(row, col)] == rook {
				return col
			}
		}
		return -1
	}
	for col := 0; col < kingCol; col++ {
		if b.squares[b.layout.Index(row, col)] == rook {
			return col
		}
	}
	return -1
}

func (b *Board) loadEnPassant(file int) error {
	if file < 0 {
		return nil
	}
	dim := b.layout.Dimension()
	if file >= dim.Width {
		return &errors.SetupError{Err: errors.ErrInvalidSetup, Detail: fmt.Sprintf("en-passant file %d", file)}
	}

	// the pawn that just advanced belongs to the side not to move
	mover := b.active.Opposite()
	pawnRow := b.startRow(mover) + 2*chess.ColourOffset(mover)
	targetRow := b.startRow(mover) + chess.ColourOffset(mover)
	target := b.layout.Index(targetRow, file)
	pawn := b.layout.Index(pawnRow, file)
	origin := b.layout.Index(b.startRow(mover), file)

	if b.squares[target] != chess.Empty {
		return &errors.SetupError{Err: errors.ErrEnPassantOccupied, Square: b.layout.Algebraic(target)}
	}
	if b.squares[pawn] != chess.MakePiece(mover, chess.Pawn) {
		return &errors.SetupError{Err: errors.ErrEnPassantPawnMissing, Square: b.layout.Algebraic(pawn)}
	}

	// the key is recomputed once construction completes
	b.recordEnPassant(origin, pawn)
	return nil
}

// NewStandard builds the regular start position.
func NewStandard(opts Options) *Board {
	b, err := NewChess960(chess.StandardChess960, opts)
	if err != nil {
		panic(err)
	}
	return b
}

// NewChess960 builds Fischer-Random start position n (Scharnagl numbering).
func NewChess960(n int, opts Options) (*Board, error) {
	rank, err := chess.Chess960BackRank(n)
	if err != nil {
		return nil, &errors.SetupError{Err: errors.ErrInvalidSetup, Detail: err.Error()}
	}
	setup := NewSetup(chess.Standard)
	setup.Castling = chess.AllRights
	setup.RookFiles = make(map[chess.CastlingRight]int, chess.NumCastlingRights)
	rook := 0
	for col, kind := range rank {
		setup.Place(0, col, chess.W(kind))
		setup.Place(1, col, chess.W(chess.Pawn))
		setup.Place(6, col, chess.B(chess.Pawn))
		setup.Place(7, col, chess.B(kind))
		if kind == chess.Rook {
			side := chess.QueenSide
			if rook > 0 {
				side = chess.KingSide
			}
			setup.RookFiles[chess.MakeCastlingRight(chess.White, side)] = col
			setup.RookFiles[chess.MakeCastlingRight(chess.Black, side)] = col
			rook++
		}
	}
	return New(setup, opts)
}
