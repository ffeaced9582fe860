package worker

import (
	"context"
	"sort"

	"github.com/circuithack/codee-chess/internal/chess"
	"github.com/circuithack/codee-chess/internal/engine"
	"github.com/circuithack/codee-chess/internal/search"
)

// PerftFunc counts the leaf nodes below the item's move.
func PerftFunc(item WorkItem) ProcessResult {
	next := engine.ApplyMoveToBoard(&item.Board, item.Move)
	return ProcessResult{
		Move:  item.Move,
		Index: item.Index,
		Nodes: engine.Perft(&next, item.Side.Opposite(), item.Depth-1),
	}
}

// ScoreFunc scores the item's move with a full-window negamax search.
func ScoreFunc(item WorkItem) ProcessResult {
	next := engine.ApplyMoveToBoard(&item.Board, item.Move)
	return ProcessResult{
		Move:  item.Move,
		Index: item.Index,
		Score: -search.Negamax(&next, item.Side.Opposite(), item.Depth-1, -search.Infinity, search.Infinity),
	}
}

// runRootJobs submits one item per legal root move and returns the
// results ordered by Index. Cancelling ctx stops the pool; queued moves
// are skipped and ctx's error is returned.
func runRootJobs(ctx context.Context, board *chess.Board, side chess.Side, depth, workers int, fn ProcessFunc) ([]ProcessResult, error) {
	moves := engine.AllLegalMoves(board, side)
	pool := NewPoolWithOptions(fn, WithWorkers(workers), WithBufferSize(len(moves)+1))
	pool.Start()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			pool.Stop()
		case <-done:
		}
	}()

	go func() {
		for i, m := range moves {
			pool.Submit(WorkItem{Board: *board, Side: side, Move: m, Depth: depth, Index: i})
		}
		pool.Close()
	}()

	results := make([]ProcessResult, len(moves))
	for r := range pool.Results() {
		results[r.Index] = r
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Divide is engine.Divide with the root moves spread over workers goroutines.
func Divide(ctx context.Context, board *chess.Board, side chess.Side, depth, workers int) ([]engine.DivideEntry, error) {
	if depth < 1 {
		return nil, nil
	}
	results, err := runRootJobs(ctx, board, side, depth, workers, PerftFunc)
	if err != nil {
		return nil, err
	}
	entries := make([]engine.DivideEntry, 0, len(results))
	for _, r := range results {
		entries = append(entries, engine.DivideEntry{Move: r.Move, Nodes: r.Nodes})
	}
	engine.SortDivide(entries)
	return entries, nil
}

// ScoreMoves is search.ScoreMoves with the root moves spread over workers
// goroutines, returned best first. Equal scores keep generation order.
func ScoreMoves(ctx context.Context, board *chess.Board, side chess.Side, depth, workers int) ([]search.ScoredMove, error) {
	if depth < 1 {
		depth = 1
	}
	results, err := runRootJobs(ctx, board, side, depth, workers, ScoreFunc)
	if err != nil {
		return nil, err
	}
	scored := make([]search.ScoredMove, 0, len(results))
	for _, r := range results {
		scored = append(scored, search.ScoredMove{Move: r.Move, Score: r.Score})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored, nil
}
