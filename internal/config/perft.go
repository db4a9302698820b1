package config

import "time"

// PerftConfig holds settings for the node count itself.
type PerftConfig struct {
	// Depth is the number of plies to count
	Depth int

	// Divide reports the count below each root move
	Divide bool

	// Workers is the number of goroutines used for a divide
	Workers int

	// Verify cross-checks the divide against the reference generator
	Verify bool

	// Paranoid checks the board's incremental state at every node
	Paranoid bool

	// Timeout cancels the count after the given duration (0 = no limit)
	Timeout time.Duration
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Depth:   4,
		Workers: DefaultWorkers(),
	}
}
