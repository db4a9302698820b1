package config

// NoChess960 marks that no Fischer-Random start position was requested.
const NoChess960 = -1

// PositionConfig holds settings that select the position to analyse.
type PositionConfig struct {
	// FEN is the position to start from; empty means the initial position
	FEN string

	// Chess960 is a Scharnagl start position number, or NoChess960
	Chess960 int

	// Moves are UCI moves played from the start position before counting
	Moves []string

	// Padded selects the padded board layout
	Padded bool

	// Chess960Notation writes castling moves as king-takes-rook
	Chess960Notation bool
}

// NewPositionConfig creates a PositionConfig with default values.
func NewPositionConfig() *PositionConfig {
	return &PositionConfig{
		Chess960: NoChess960,
	}
}
