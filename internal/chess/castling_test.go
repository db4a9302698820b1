package chess

import (
	"strings"
	"testing"
)

func TestCastlingRight_Columns(t *testing.T) {
	tests := []struct {
		right          CastlingRight
		colour         Colour
		side           Side
		king, rook, hr int
	}{
		{WhiteKingSide, White, KingSide, 6, 5, 0},
		{WhiteQueenSide, White, QueenSide, 2, 3, 0},
		{BlackKingSide, Black, KingSide, 6, 5, 7},
		{BlackQueenSide, Black, QueenSide, 2, 3, 7},
	}

	for _, tt := range tests {
		t.Run(tt.right.String(), func(t *testing.T) {
			if tt.right.Colour() != tt.colour || tt.right.Side() != tt.side {
				t.Errorf("colour/side = %v/%v, want %v/%v", tt.right.Colour(), tt.right.Side(), tt.colour, tt.side)
			}
			if MakeCastlingRight(tt.colour, tt.side) != tt.right {
				t.Errorf("MakeCastlingRight(%v, %v) = %v", tt.colour, tt.side, MakeCastlingRight(tt.colour, tt.side))
			}
			if got := tt.right.KingColumn(Standard); got != tt.king {
				t.Errorf("KingColumn = %d, want %d", got, tt.king)
			}
			if got := tt.right.RookColumn(Standard); got != tt.rook {
				t.Errorf("RookColumn = %d, want %d", got, tt.rook)
			}
			if got := tt.right.HomeRow(Standard); got != tt.hr {
				t.Errorf("HomeRow = %d, want %d", got, tt.hr)
			}
		})
	}
}

func TestCastlingRights_Mask(t *testing.T) {
	var rights CastlingRights
	if rights.String() != "-" {
		t.Errorf("empty rights = %q, want -", rights.String())
	}
	rights = rights.With(WhiteKingSide).With(BlackQueenSide)
	if got := rights.String(); got != "Kq" {
		t.Errorf("rights = %q, want Kq", got)
	}
	rights = rights.Without(WhiteKingSide).Without(WhiteQueenSide)
	if got := rights.String(); got != "q" {
		t.Errorf("rights = %q, want q", got)
	}
	if AllRights.String() != "KQkq" {
		t.Errorf("AllRights = %q, want KQkq", AllRights.String())
	}
}

func backRankString(rank [8]Kind) string {
	var sb strings.Builder
	for _, k := range rank {
		sb.WriteByte(k.Letter())
	}
	return sb.String()
}

func TestChess960BackRank(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "BBQNNRKR"},
		{StandardChess960, "RNBQKBNR"},
		{959, "RKRNNQBB"},
	}

	for _, tt := range tests {
		rank, err := Chess960BackRank(tt.n)
		if err != nil {
			t.Fatalf("Chess960BackRank(%d): %v", tt.n, err)
		}
		if got := backRankString(rank); got != tt.want {
			t.Errorf("Chess960BackRank(%d) = %s, want %s", tt.n, got, tt.want)
		}
	}
}

// TestChess960BackRank_AllValid checks the placement rules on every
// position and that no two numbers give the same arrangement.
func TestChess960BackRank_AllValid(t *testing.T) {
	seen := make(map[string]int, Chess960Positions)
	for n := 0; n < Chess960Positions; n++ {
		rank, err := Chess960BackRank(n)
		if err != nil {
			t.Fatalf("Chess960BackRank(%d): %v", n, err)
		}
		s := backRankString(rank)
		if prev, dup := seen[s]; dup {
			t.Fatalf("positions %d and %d are both %s", prev, n, s)
		}
		seen[s] = n

		bishops := strings.Index(s, "B") + strings.LastIndex(s, "B")
		if bishops%2 == 0 {
			t.Errorf("%d %s: bishops on same colour", n, s)
		}
		king := strings.Index(s, "K")
		if !(strings.Index(s, "R") < king && king < strings.LastIndex(s, "R")) {
			t.Errorf("%d %s: king not between rooks", n, s)
		}
	}

	if _, err := Chess960BackRank(Chess960Positions); err == nil {
		t.Error("Chess960BackRank(960) should fail")
	}
}
