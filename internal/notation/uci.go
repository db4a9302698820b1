package notation

import (
	"strings"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// FormatMove writes m in UCI long algebraic form, e.g. "e2e4" or "e7e8q".
// Castling is written as the king's two-square move ("e1g1") unless
// chess960 is set, in which case it is written king-takes-rook ("e1h1").
func FormatMove(b *engine.Board, m engine.Move, chess960 bool) string {
	layout := b.Layout()
	to := m.To
	if !chess960 {
		if right, ok := castlingRightOf(b, m); ok {
			dim := layout.Dimension()
			to = layout.Index(right.HomeRow(dim), right.KingColumn(dim))
		}
	}

	var sb strings.Builder
	sb.WriteString(layout.Algebraic(m.From))
	sb.WriteString(layout.Algebraic(to))
	if m.Promotion != chess.NoKind {
		sb.WriteByte(m.Promotion.Letter() + 'a' - 'A')
	}
	return sb.String()
}

// castlingRightOf reports which right m castles with, if any.
func castlingRightOf(b *engine.Board, m engine.Move) (chess.CastlingRight, bool) {
	colour := b.ActiveColour()
	if m.From != b.KingSquare(colour) {
		return 0, false
	}
	for _, side := range [2]chess.Side{chess.KingSide, chess.QueenSide} {
		r := chess.MakeCastlingRight(colour, side)
		if rook := b.CastlingRook(r); rook != engine.NoSquare && rook == m.To {
			return r, true
		}
	}
	return 0, false
}

// ParseMove reads a UCI move for the side to move. Both castling forms are
// accepted: the king's two-square move and king-takes-rook. The move is
// decoded, not validated; use Board.IsLegal or MakeMove for that.
func ParseMove(b *engine.Board, text string) (engine.Move, error) {
	layout := b.Layout()
	from, rest, ok := splitSquare(text)
	if !ok {
		return engine.Move{}, &errors.ParseError{Err: errors.ErrInvalidMove, Input: text, Field: "from", Expected: "square"}
	}
	to, rest, ok := splitSquare(rest)
	if !ok {
		return engine.Move{}, &errors.ParseError{Err: errors.ErrInvalidMove, Input: text, Field: "to", Expected: "square"}
	}

	var m engine.Move
	var err error
	if m.From, err = layout.Parse(from); err != nil {
		return engine.Move{}, &errors.ParseError{Err: errors.ErrInvalidMove, Input: text, Field: "from", Got: from}
	}
	if m.To, err = layout.Parse(to); err != nil {
		return engine.Move{}, &errors.ParseError{Err: errors.ErrInvalidMove, Input: text, Field: "to", Got: to}
	}

	switch len(rest) {
	case 0:
	case 1:
		m.Promotion = chess.KindFromLetter(rest[0])
		if m.Promotion == chess.NoKind || m.Promotion == chess.Pawn || m.Promotion == chess.King {
			return engine.Move{}, &errors.ParseError{Err: errors.ErrInvalidMove, Input: text, Field: "promotion", Expected: "n, b, r or q", Got: rest}
		}
	default:
		return engine.Move{}, &errors.ParseError{Err: errors.ErrInvalidMove, Input: text, Expected: "end of move", Got: rest}
	}

	return translateCastling(b, m), nil
}

// splitSquare takes a file letter followed by a rank number off the front
// of s.
func splitSquare(s string) (square, rest string, ok bool) {
	if len(s) < 2 || s[0] < 'a' || s[0] > 'z' {
		return "", s, false
	}
	i := 1
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 1 {
		return "", s, false
	}
	return s[:i], s[i:], true
}

// translateCastling turns a king move of two or more files along its home
// row into the king-takes-rook encoding the engine uses.
func translateCastling(b *engine.Board, m engine.Move) engine.Move {
	colour := b.ActiveColour()
	if m.From != b.KingSquare(colour) || m.Promotion != chess.NoKind {
		return m
	}
	layout := b.Layout()
	rows, cols := layout.Offset(m.From, m.To)
	if rows != 0 || (cols > -2 && cols < 2) {
		return m
	}
	dim := layout.Dimension()
	for _, side := range [2]chess.Side{chess.KingSide, chess.QueenSide} {
		r := chess.MakeCastlingRight(colour, side)
		rook := b.CastlingRook(r)
		if rook == engine.NoSquare {
			continue
		}
		if layout.Col(m.To) == r.KingColumn(dim) {
			return engine.NewMove(m.From, rook)
		}
	}
	return m
}

// PlayMoves parses and plays UCI moves in order. It stops at the first move
// that cannot be decoded or is illegal.
func PlayMoves(b *engine.Board, moves ...string) error {
	for i, text := range moves {
		m, err := ParseMove(b, text)
		if err != nil {
			return err
		}
		if !b.MakeMove(m, engine.Unsafe) {
			return errors.Wrapf(errors.ErrIllegalMove, "move %d %q", i+1, text)
		}
	}
	return nil
}
