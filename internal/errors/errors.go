// Package errors provides sentinel errors and error types for the board engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidSetup indicates an initial layout that cannot be played.
	ErrInvalidSetup = errors.New("invalid setup")

	// ErrInvalidDimension indicates a board size outside the supported range.
	ErrInvalidDimension = errors.New("invalid board dimension")

	// ErrInvalidSquare indicates a malformed or off-board square name.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrMissingKing indicates a side without a king.
	ErrMissingKing = errors.New("missing king")

	// ErrTooManyKings indicates a side with more than one king.
	ErrTooManyKings = errors.New("too many kings")

	// ErrEnPassantOccupied indicates an en-passant target square holding a piece.
	ErrEnPassantOccupied = errors.New("en-passant square occupied")

	// ErrEnPassantPawnMissing indicates an en-passant file without the pawn
	// that just double-advanced.
	ErrEnPassantPawnMissing = errors.New("en-passant pawn missing")

	// ErrInvalidMoveNumber indicates a non-positive full-move number.
	ErrInvalidMoveNumber = errors.New("invalid move number")

	// ErrInvalidHalfMoveClock indicates a negative half-move clock.
	ErrInvalidHalfMoveClock = errors.New("invalid half-move clock")

	// ErrInvalidCastling indicates a castling right whose king or rook is not
	// where the right requires.
	ErrInvalidCastling = errors.New("invalid castling right")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidMove indicates malformed move text.
	ErrInvalidMove = errors.New("invalid move")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrOracleMismatch indicates a disagreement with a reference move generator.
	ErrOracleMismatch = errors.New("oracle mismatch")
)

// SetupError wraps a construction failure with the square or castling right
// that caused it. It implements the error interface and supports unwrapping
// via errors.Is() and errors.As().
type SetupError struct {
	Err    error  // The underlying error
	Square string // Algebraic square involved (if applicable)
	Right  string // Castling right involved (if applicable)
	Detail string // Free-form detail (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *SetupError) Error() string {
	var parts []string

	if e.Square != "" {
		parts = append(parts, "square "+e.Square)
	}
	if e.Right != "" {
		parts = append(parts, "castling "+e.Right)
	}
	if e.Detail != "" {
		parts = append(parts, e.Detail)
	}

	context := strings.Join(parts, ", ")

	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "setup error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the SetupError wrapper.
func (e *SetupError) Unwrap() error {
	return e.Err
}

// ParseError represents a notation parsing error with position context.
// It's used for FEN and move text errors.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Field    string // Name of the field being parsed (if known)
	Column   int    // Column number (1-based, 0 if unknown)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		loc := fmt.Sprintf("%q", e.Input)
		if e.Column > 0 {
			loc += fmt.Sprintf(":%d", e.Column)
		}
		parts = append(parts, loc)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
// It re-exports the standard library function so callers importing this
// package under the name errors keep access to it.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
