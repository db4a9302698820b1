package main

import (
	"context"
	"fmt"
	"time"

	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/errors"
	"github.com/lgbarn/chessboard-go/internal/hashing"
	"github.com/lgbarn/chessboard-go/internal/notation"
	"github.com/lgbarn/chessboard-go/internal/perft"
)

// registry shares hashers between every board the tool builds.
var registry = hashing.NewRegistry()

// buildBoard creates the start position and plays the configured moves.
func buildBoard(pos *config.PositionConfig) (*engine.Board, error) {
	opts := engine.Options{Padded: pos.Padded, Registry: registry}

	var b *engine.Board
	var err error
	switch {
	case pos.Chess960 != config.NoChess960:
		b, err = engine.NewChess960(pos.Chess960, opts)
	case pos.FEN != "":
		b, err = notation.NewBoardFromFEN(pos.FEN, opts)
	default:
		b = engine.NewStandard(opts)
	}
	if err != nil {
		return nil, err
	}
	if err := notation.PlayMoves(b, pos.Moves...); err != nil {
		return nil, err
	}
	return b, nil
}

// run counts the configured position and writes the report.
func run(cfg *config.Config) error {
	b, err := buildBoard(cfg.Position)
	if err != nil {
		return err
	}
	cfg.Logf(1, "%s", notation.FEN(b))
	cfg.Logf(2, "\n%s", b)

	ctx := context.Background()
	if cfg.Perft.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Perft.Timeout)
		defer cancel()
	}

	start := time.Now()
	var nodes uint64
	if cfg.Perft.Paranoid {
		nodes, err = perft.CountChecked(b, cfg.Perft.Depth)
		if err != nil {
			return err
		}
	} else {
		nodes, err = countNodes(ctx, cfg, b)
		if err != nil {
			return err
		}
	}
	elapsed := time.Since(start)

	fmt.Fprintf(cfg.OutputFile, "Nodes: %d\n", nodes)
	if secs := elapsed.Seconds(); secs > 0 {
		cfg.Logf(1, "depth %d: %d nodes in %v (%.0f nodes/s)", cfg.Perft.Depth, nodes, elapsed.Round(time.Millisecond), float64(nodes)/secs)
	}

	if cfg.Perft.Verify {
		if err := perft.Verify(b, cfg.Perft.Depth); err != nil {
			return err
		}
		cfg.Logf(1, "reference generator agrees")
	}
	return nil
}

// countNodes runs a parallel divide, printing it when requested.
func countNodes(ctx context.Context, cfg *config.Config, b *engine.Board) (uint64, error) {
	if cfg.Perft.Depth == 0 {
		return 1, nil
	}
	divide, err := perft.ParallelDivide(ctx, b, cfg.Perft.Depth, cfg.Perft.Workers, cfg.Position.Chess960Notation)
	if err != nil {
		return 0, errors.Wrapf(err, "depth %d", cfg.Perft.Depth)
	}
	if cfg.Perft.Divide {
		for _, move := range perft.SortedMoves(divide) {
			fmt.Fprintf(cfg.OutputFile, "%s: %d\n", move, divide[move])
		}
		fmt.Fprintln(cfg.OutputFile)
	}
	return perft.Total(divide), nil
}
