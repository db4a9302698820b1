// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chessboard-go/internal/config"
)

var (
	// Position selection
	fenString = flag.String("fen", "", "Start position in FEN (default: initial position)")
	chess960  = flag.Int("chess960", config.NoChess960, "Start from Chess960 position N (0-959)")
	moveList  = flag.String("moves", "", "Space-separated UCI moves to play before counting")
	padded    = flag.Bool("padded", false, "Use the padded board layout")

	// Counting
	depth    = flag.Int("depth", 4, "Number of plies to count")
	divide   = flag.Bool("divide", false, "Print the node count below each root move")
	workers  = flag.Int("workers", config.DefaultWorkers(), "Worker goroutines for the divide")
	verify   = flag.Bool("verify", false, "Cross-check the divide against a reference generator")
	paranoid = flag.Bool("paranoid", false, "Verify incremental board state at every node")
	timeout  = flag.Duration("timeout", 0, "Abort after this long (0 = no limit)")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	quiet      = flag.Bool("s", false, "Silent mode: only print results")
	verbose    = flag.Bool("v", false, "Print timing for each root move")
	help       = flag.Bool("h", false, "Show help")
	version    = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyPositionFlags(cfg)
	applyPerftFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// applyPositionFlags configures the start position.
func applyPositionFlags(cfg *config.Config) {
	cfg.Position.FEN = *fenString
	cfg.Position.Chess960 = *chess960
	cfg.Position.Chess960Notation = *chess960 != config.NoChess960
	cfg.Position.Moves = strings.Fields(*moveList)
	cfg.Position.Padded = *padded
}

// applyPerftFlags configures the count.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *depth
	cfg.Perft.Divide = *divide
	cfg.Perft.Workers = *workers
	cfg.Perft.Verify = *verify
	cfg.Perft.Paranoid = *paranoid
	cfg.Perft.Timeout = *timeout
}
