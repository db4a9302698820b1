package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidSetup", ErrInvalidSetup, ErrInvalidSetup},
		{"ErrInvalidDimension", ErrInvalidDimension, ErrInvalidDimension},
		{"ErrMissingKing", ErrMissingKing, ErrMissingKing},
		{"ErrEnPassantOccupied", ErrEnPassantOccupied, ErrEnPassantOccupied},
		{"ErrEnPassantPawnMissing", ErrEnPassantPawnMissing, ErrEnPassantPawnMissing},
		{"ErrInvalidMoveNumber", ErrInvalidMoveNumber, ErrInvalidMoveNumber},
		{"ErrInvalidHalfMoveClock", ErrInvalidHalfMoveClock, ErrInvalidHalfMoveClock},
		{"ErrInvalidCastling", ErrInvalidCastling, ErrInvalidCastling},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct verifies no two sentinels compare equal
func TestSentinelErrors_Distinct(t *testing.T) {
	sentinels := []error{
		ErrInvalidSetup, ErrInvalidDimension, ErrInvalidSquare, ErrMissingKing,
		ErrTooManyKings, ErrEnPassantOccupied, ErrEnPassantPawnMissing,
		ErrInvalidMoveNumber, ErrInvalidHalfMoveClock, ErrInvalidCastling,
		ErrInvalidFEN, ErrInvalidMove, ErrIllegalMove, ErrInvalidConfig,
		ErrOracleMismatch,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

// TestSetupError_Error verifies the error message format
func TestSetupError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *SetupError
		contains []string
	}{
		{
			name: "full context",
			err: &SetupError{
				Err:    ErrInvalidCastling,
				Square: "h1",
				Right:  "K",
				Detail: "rook not on home row",
			},
			contains: []string{"square h1", "castling K", "rook not on home row", "invalid castling right"},
		},
		{
			name: "square only",
			err: &SetupError{
				Err:    ErrEnPassantOccupied,
				Square: "e3",
			},
			contains: []string{"e3", "en-passant square occupied"},
		},
		{
			name:     "no context",
			err:      &SetupError{Err: ErrMissingKing},
			contains: []string{"missing king"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("SetupError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestSetupError_As verifies that errors.As works with SetupError
func TestSetupError_As(t *testing.T) {
	setupErr := &SetupError{Err: ErrEnPassantPawnMissing, Square: "d5"}
	wrapped := fmt.Errorf("building board: %w", setupErr)

	var extracted *SetupError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract SetupError")
	}
	if extracted.Square != "d5" {
		t.Errorf("extracted.Square = %q, want %q", extracted.Square, "d5")
	}
	if !errors.Is(wrapped, ErrEnPassantPawnMissing) {
		t.Error("errors.Is(wrapped, ErrEnPassantPawnMissing) = false, want true")
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Err:      ErrInvalidFEN,
		Input:    "rnbqkbnr/pppppppp/8/8 w",
		Field:    "piece placement",
		Column:   9,
		Expected: "8 ranks",
		Got:      "4",
	}

	msg := err.Error()

	for _, want := range []string{"piece placement", ":9", "expected 8 ranks, got 4", "invalid FEN"} {
		if !containsIgnoreCase(msg, want) {
			t.Errorf("ParseError.Error() = %q, should contain %q", msg, want)
		}
	}
}

// TestParseError_Unwrap verifies ParseError implements Unwrap
func TestParseError_Unwrap(t *testing.T) {
	parseErr := &ParseError{Err: ErrInvalidMove, Input: "e2e9"}

	if !errors.Is(parseErr, ErrInvalidMove) {
		t.Error("errors.Is(parseErr, ErrInvalidMove) = false, want true")
	}
	if Is(parseErr, ErrInvalidFEN) {
		t.Error("Is(parseErr, ErrInvalidFEN) = true, want false")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "decoding position")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "decoding position") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "anything") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "move %s at ply %d", "e1g1", 3)

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "move e1g1 at ply 3") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
