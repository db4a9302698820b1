// Package perft counts the leaf nodes of the legal move tree, the standard
// correctness benchmark for move generators.
package perft

import (
	"context"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/errors"
	"github.com/lgbarn/chessboard-go/internal/notation"
	"github.com/lgbarn/chessboard-go/internal/worker"
)

// Count returns the number of leaf nodes depth plies below the position.
// The board is restored before returning.
func Count(b *engine.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	buf := make([][]engine.Move, depth)
	return count(b, depth, buf)
}

// count reuses one move buffer per remaining depth.
func count(b *engine.Board, depth int, buf [][]engine.Move) uint64 {
	moves := b.AppendLegalMoves(buf[depth-1][:0])
	buf[depth-1] = moves
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		b.MakeMove(m, engine.Legal)
		nodes += count(b, depth-1, buf)
		b.UnmakeMove()
	}
	return nodes
}

// CountChecked is Count with the board's incremental state verified at
// every node and every move played with full validation. It is much slower
// and meant for hunting generator bugs.
func CountChecked(b *engine.Board, depth int) (uint64, error) {
	if err := b.Verify(); err != nil {
		return 0, errors.Wrapf(err, "%s", notation.FEN(b))
	}
	if depth <= 0 {
		return 1, nil
	}
	var nodes uint64
	for _, m := range b.LegalMoves() {
		if !b.MakeMove(m, engine.Unsafe) {
			return 0, errors.Wrapf(errors.ErrIllegalMove, "generated %s in %s", notation.FormatMove(b, m, true), notation.FEN(b))
		}
		n, err := CountChecked(b, depth-1)
		b.UnmakeMove()
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}

// Divide returns the leaf count below each root move, keyed by the move in
// UCI notation.
func Divide(b *engine.Board, depth int, chess960 bool) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range b.LegalMoves() {
		text := notation.FormatMove(b, m, chess960)
		b.MakeMove(m, engine.Legal)
		result[text] = Count(b, depth-1)
		b.UnmakeMove()
	}
	return result
}

// ParallelDivide is Divide with the root moves spread over a worker pool,
// each on its own fork of the board. It stops early, returning the context's
// error, when ctx is cancelled.
func ParallelDivide(ctx context.Context, b *engine.Board, depth, workers int, chess960 bool) (map[string]uint64, error) {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result, nil
	}
	moves := b.LegalMoves()
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = notation.FormatMove(b, m, chess960)
	}

	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		if err := ctx.Err(); err != nil {
			return worker.ProcessResult{Index: item.Index, Move: item.Move, Error: err}
		}
		item.Board.MakeMove(item.Move, engine.Legal)
		nodes := Count(item.Board, item.Depth)
		return worker.ProcessResult{Index: item.Index, Move: item.Move, Nodes: nodes}
	}, worker.WithWorkers(workers), worker.WithBufferSize(len(moves)+1))
	pool.Start()

	go func() {
		for i, m := range moves {
			if ctx.Err() != nil {
				pool.Stop()
				break
			}
			pool.Submit(worker.WorkItem{Board: b.Fork(), Move: m, Depth: depth - 1, Index: i})
		}
		pool.Close()
	}()

	var firstErr error
	for r := range pool.Results() {
		if r.Error != nil {
			if firstErr == nil {
				firstErr = r.Error
			}
			pool.Stop()
			continue
		}
		result[names[r.Index]] = r.Nodes
	}
	if firstErr == nil {
		firstErr = ctx.Err()
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return result, nil
}

// Total sums a divide result.
func Total(divide map[string]uint64) uint64 {
	var total uint64
	for _, n := range divide {
		total += n
	}
	return total
}

// SortedMoves returns the moves of a divide result in lexical order.
func SortedMoves(divide map[string]uint64) []string {
	keys := maps.Keys(divide)
	slices.Sort(keys)
	return keys
}
