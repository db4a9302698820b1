// Package notation reads and writes positions and moves as text: FEN (with
// Shredder and X-FEN castling for Chess960) and UCI long algebraic moves.
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN decodes a FEN string into a setup. The board dimension is taken
// from the placement field, so boards other than 8x8 are accepted. Missing
// trailing fields default to "w - - 0 1".
func ParseFEN(fen string) (engine.Setup, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return engine.Setup{}, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: "placement", Expected: "piece placement"}
	}
	if len(fields) > 6 {
		return engine.Setup{}, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Expected: "at most 6 fields", Got: strconv.Itoa(len(fields))}
	}
	for len(fields) < 6 {
		fields = append(fields, []string{"w", "-", "-", "0", "1"}[len(fields)-1])
	}

	setup, err := parsePlacement(fen, fields[0])
	if err != nil {
		return engine.Setup{}, err
	}

	switch fields[1] {
	case "w":
		setup.ActiveColour = chess.White
	case "b":
		setup.ActiveColour = chess.Black
	default:
		return engine.Setup{}, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: "side to move", Expected: "w or b", Got: fields[1]}
	}

	if err := parseCastling(&setup, fen, fields[2]); err != nil {
		return engine.Setup{}, err
	}

	if fields[3] != "-" {
		layout := chess.NewLayout(setup.Dimension, false)
		index, err := layout.Parse(fields[3])
		if err != nil {
			return engine.Setup{}, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: "en passant", Expected: "square or -", Got: fields[3]}
		}
		setup.EnPassantFile = layout.Col(index)
	}

	if setup.HalfMoveClock, err = strconv.Atoi(fields[4]); err != nil {
		return engine.Setup{}, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: "half-move clock", Expected: "number", Got: fields[4]}
	}
	if setup.MoveNumber, err = strconv.Atoi(fields[5]); err != nil {
		return engine.Setup{}, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: "move number", Expected: "number", Got: fields[5]}
	}
	return setup, nil
}

// parsePlacement reads the piece placement field, top rank first.
func parsePlacement(fen, placement string) (engine.Setup, error) {
	ranks := strings.Split(placement, "/")
	rows := make([][]chess.Piece, len(ranks))
	column := 1
	for i, rank := range ranks {
		run := 0
		for j := 0; j < len(rank); j++ {
			c := rank[j]
			if c >= '0' && c <= '9' {
				run = run*10 + int(c-'0')
				continue
			}
			for ; run > 0; run-- {
				rows[i] = append(rows[i], chess.Empty)
			}
			piece := chess.PieceFromNotation(c)
			if piece == chess.Empty {
				return engine.Setup{}, &errors.ParseError{
					Err: errors.ErrInvalidFEN, Input: fen, Field: "placement",
					Column: column + j, Expected: "piece letter or digit", Got: string(c),
				}
			}
			rows[i] = append(rows[i], piece)
		}
		for ; run > 0; run-- {
			rows[i] = append(rows[i], chess.Empty)
		}
		if len(rows[i]) != len(rows[0]) {
			return engine.Setup{}, &errors.ParseError{
				Err: errors.ErrInvalidFEN, Input: fen, Field: "placement", Column: column,
				Expected: fmt.Sprintf("%d files", len(rows[0])), Got: strconv.Itoa(len(rows[i])),
			}
		}
		column += len(rank) + 1
	}

	dim := chess.Dimension{Width: len(rows[0]), Height: len(rows)}
	if err := dim.Validate(); err != nil {
		return engine.Setup{}, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: "placement", Got: dim.String()}
	}
	setup := engine.NewSetup(dim)
	for i, row := range rows {
		for col, piece := range row {
			setup.Place(dim.Height-1-i, col, piece)
		}
	}
	return setup, nil
}

// parseCastling reads KQkq letters or, for Chess960, rook file letters
// (upper case for White).
func parseCastling(setup *engine.Setup, fen, field string) error {
	if field == "-" {
		return nil
	}
	dim := setup.Dimension
	for i := 0; i < len(field); i++ {
		c := field[i]
		colour := chess.White
		lower := c
		if c >= 'a' && c <= 'z' {
			colour = chess.Black
		} else {
			lower = c - 'A' + 'a'
		}

		switch lower {
		case 'k':
			setup.Castling = setup.Castling.With(chess.MakeCastlingRight(colour, chess.KingSide))
			continue
		case 'q':
			setup.Castling = setup.Castling.With(chess.MakeCastlingRight(colour, chess.QueenSide))
			continue
		}

		file := int(lower - 'a')
		if lower < 'a' || file >= dim.Width {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: "castling", Expected: "KQkq or rook files", Got: string(c)}
		}
		kingCol := kingColumn(setup, colour)
		if kingCol < 0 {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: "castling", Expected: "king on home row", Got: string(c)}
		}
		side := chess.QueenSide
		if file > kingCol {
			side = chess.KingSide
		}
		right := chess.MakeCastlingRight(colour, side)
		setup.Castling = setup.Castling.With(right)
		if setup.RookFiles == nil {
			setup.RookFiles = make(map[chess.CastlingRight]int, chess.NumCastlingRights)
		}
		setup.RookFiles[right] = file
	}
	return nil
}

// kingColumn returns the column of colour's king on its home row, or -1.
func kingColumn(setup *engine.Setup, colour chess.Colour) int {
	row := chess.MakeCastlingRight(colour, chess.KingSide).HomeRow(setup.Dimension)
	king := chess.MakePiece(colour, chess.King)
	for col := 0; col < setup.Dimension.Width; col++ {
		if setup.At(row, col) == king {
			return col
		}
	}
	return -1
}

// NewBoardFromFEN decodes fen and builds a board from it.
func NewBoardFromFEN(fen string, opts engine.Options) (*engine.Board, error) {
	setup, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	b, err := engine.New(setup, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "FEN %q", fen)
	}
	return b, nil
}

// MustBoard is like NewBoardFromFEN but panics on error. It is meant for
// fixed positions in tests and tables.
func MustBoard(fen string, opts engine.Options) *engine.Board {
	b, err := NewBoardFromFEN(fen, opts)
	if err != nil {
		panic(err)
	}
	return b
}

// FEN encodes the board. Castling rights use KQkq when the rook is the
// outermost one on its side and the rook file letter otherwise (X-FEN).
func FEN(b *engine.Board) string {
	return encode(b, false)
}

// ShredderFEN encodes the board with castling rights always written as rook
// file letters.
func ShredderFEN(b *engine.Board) string {
	return encode(b, true)
}

func encode(b *engine.Board, shredder bool) string {
	var sb strings.Builder

	writePlacement(&sb, b)
	sb.WriteByte(' ')
	if b.ActiveColour() == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastling(&sb, b, shredder)
	sb.WriteByte(' ')
	sb.WriteString(b.Layout().Algebraic(b.EnPassant()))
	fmt.Fprintf(&sb, " %d %d", b.HalfMoveClock(), b.MoveNumber())

	return sb.String()
}

func writePlacement(sb *strings.Builder, b *engine.Board) {
	dim := b.Dimension()
	for row := dim.Height - 1; row >= 0; row-- {
		empty := 0
		for col := 0; col < dim.Width; col++ {
			piece := b.Piece(row, col)
			if piece == chess.Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(piece.Notation())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
}

func writeCastling(sb *strings.Builder, b *engine.Board, shredder bool) {
	rights := b.CastlingRights()
	if rights == 0 {
		sb.WriteByte('-')
		return
	}
	layout := b.Layout()
	for _, r := range chess.AllCastlingRights {
		if !rights.Has(r) {
			continue
		}
		rook := b.CastlingRook(r)
		if !shredder && isOutermost(b, r, rook) {
			sb.WriteString(r.String())
			continue
		}
		letter := byte('a' + layout.Col(rook))
		if r.Colour() == chess.White {
			letter -= 'a' - 'A'
		}
		sb.WriteByte(letter)
	}
}

// isOutermost reports whether no other rook of the right's colour stands
// between rook and the edge on the right's side.
func isOutermost(b *engine.Board, r chess.CastlingRight, rook int) bool {
	layout := b.Layout()
	row, col := layout.Row(rook), layout.Col(rook)
	piece := chess.MakePiece(r.Colour(), chess.Rook)
	step := 1
	if r.Side() == chess.QueenSide {
		step = -1
	}
	for c := col + step; c >= 0 && c < layout.Dimension().Width; c += step {
		if b.Piece(row, c) == piece {
			return false
		}
	}
	return true
}
