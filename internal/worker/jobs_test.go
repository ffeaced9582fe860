package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/circuithack/codee-chess/internal/chess"
	"github.com/circuithack/codee-chess/internal/engine"
	"github.com/circuithack/codee-chess/internal/search"
)

func TestPerftFunc(t *testing.T) {
	board := chess.InitialBoard()
	got := PerftFunc(WorkItem{
		Board: board,
		Side:  chess.White,
		Move:  chess.NewMove(4, 6, 4, 4),
		Depth: 2,
		Index: 3,
	})
	if got.Nodes != 20 || got.Index != 3 {
		t.Errorf("PerftFunc(e2e4, depth 2) = %+v, want 20 nodes at index 3", got)
	}
}

func TestDivide_MatchesSequential(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			board, side := engine.MustBoardFromFEN(fen)
			want := engine.Divide(&board, side, 2)
			for _, workers := range []int{1, 4} {
				got, err := Divide(context.Background(), &board, side, 2, workers)
				if err != nil {
					t.Fatalf("workers=%d: Divide() error = %v", workers, err)
				}
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("workers=%d: Divide mismatch (-want +got):\n%s", workers, diff)
				}
			}
		})
	}
}

func TestDivide_StartPositionTotals(t *testing.T) {
	board := chess.InitialBoard()
	tests := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, tt := range tests {
		entries, err := Divide(context.Background(), &board, chess.White, tt.depth, 4)
		if err != nil {
			t.Fatalf("Divide(depth %d) error = %v", tt.depth, err)
		}
		var total uint64
		for _, e := range entries {
			total += e.Nodes
		}
		if total != tt.want {
			t.Errorf("Divide(depth %d) total = %d, want %d", tt.depth, total, tt.want)
		}
	}
}

func TestDivide_NoMoves(t *testing.T) {
	board, side := engine.MustBoardFromFEN("k5R1/8/1K6/8/8/8/8/8 b - - 0 1")
	got, err := Divide(context.Background(), &board, side, 2, 2)
	if err != nil || len(got) != 0 {
		t.Errorf("Divide(checkmated) = %v, %v; want empty, nil", got, err)
	}
	got, err = Divide(context.Background(), &board, side, 0, 2)
	if err != nil || got != nil {
		t.Errorf("Divide(depth 0) = %v, %v; want nil, nil", got, err)
	}
}

func TestDivide_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	board := chess.InitialBoard()
	got, err := Divide(ctx, &board, chess.White, 3, 2)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Divide(cancelled) error = %v, want context.Canceled", err)
	}
	if got != nil {
		t.Errorf("Divide(cancelled) = %v, want nil", got)
	}
}

func TestScoreMoves_MatchesSequential(t *testing.T) {
	board, side := engine.MustBoardFromFEN("4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1")
	want := make(map[chess.Move]int)
	for _, s := range search.ScoreMoves(&board, side, 2) {
		want[s.Move] = s.Score
	}

	got, err := ScoreMoves(context.Background(), &board, side, 2, 3)
	if err != nil {
		t.Fatalf("ScoreMoves() error = %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("ScoreMoves() returned %d moves, want %d", len(got), len(want))
	}
	for i, s := range got {
		if s.Score != want[s.Move] {
			t.Errorf("score of %v = %d, want %d", s.Move, s.Score, want[s.Move])
		}
		if i > 0 && got[i-1].Score < s.Score {
			t.Errorf("results not sorted best first at %d: %d < %d", i, got[i-1].Score, s.Score)
		}
	}
	if got[0].Move.String() != "d1d5" {
		t.Errorf("best move = %v, want d1d5", got[0].Move)
	}
}

func TestScoreMoves_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	board := chess.InitialBoard()
	if _, err := ScoreMoves(ctx, &board, chess.White, 2, 2); !errors.Is(err, context.Canceled) {
		t.Errorf("ScoreMoves(cancelled) error = %v, want context.Canceled", err)
	}
}
