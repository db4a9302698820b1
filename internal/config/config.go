// Package config provides configuration for the perft tool.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// MaxDepth bounds the perft depth accepted from the command line.
const MaxDepth = 12

// Config holds all program configuration.
type Config struct {
	// Verbosity: 0=results only, 1=summary, 2=per-move timing
	Verbosity int

	Position *PositionConfig
	Perft    *PerftConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Position:   NewPositionConfig(),
		Perft:      NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks the configuration for values the tool cannot run with.
// Every error wraps errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	p := c.Perft
	if p.Depth < 0 || p.Depth > MaxDepth {
		return fmt.Errorf("depth %d not in [0, %d]: %w", p.Depth, MaxDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers %d: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.Timeout < 0 {
		return fmt.Errorf("timeout %v: %w", p.Timeout, errors.ErrInvalidConfig)
	}

	pos := c.Position
	if pos.Chess960 != NoChess960 && (pos.Chess960 < 0 || pos.Chess960 >= chess.Chess960Positions) {
		return fmt.Errorf("chess960 position %d: %w", pos.Chess960, errors.ErrInvalidConfig)
	}
	if pos.Chess960 != NoChess960 && pos.FEN != "" {
		return fmt.Errorf("both a FEN and a chess960 position given: %w", errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("missing output stream: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a diagnostic line to the log stream when the verbosity is at
// least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity >= level && c.LogFile != nil {
		fmt.Fprintf(c.LogFile, format+"\n", args...)
	}
}

// DefaultWorkers is the default size of the perft worker pool.
func DefaultWorkers() int {
	return runtime.NumCPU()
}
