package search

import (
	"testing"

	"github.com/circuithack/codee-chess/internal/chess"
	"github.com/circuithack/codee-chess/internal/engine"
)

func TestMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want int
	}{
		{"initial", engine.InitialFEN, 0},
		{"black queen missing", "rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1", 900},
		{"white rook missing", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/1NBQKBNR w - - 0 1", -500},
		{"kings only", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", 0},
		{"lone white king", "8/8/8/8/8/8/8/4K3 w - - 0 1", 20000},
		{"minor pieces", "4k3/8/8/8/8/8/8/1NB1K3 w - - 0 1", 650},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _ := engine.MustBoardFromFEN(tt.fen)
			if got := Material(&board); got != tt.want {
				t.Errorf("Material() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		"4k3/8/8/8/8/8/8/3QK3 w - - 0 1",
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w - - 4 4",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			board, _ := engine.MustBoardFromFEN(fen)
			white := len(engine.AllLegalMoves(&board, chess.White))
			black := len(engine.AllLegalMoves(&board, chess.Black))
			want := Material(&board) + 2*(white-black)
			if got := Evaluate(&board); got != want {
				t.Errorf("Evaluate() = %d, want %d", got, want)
			}
		})
	}
}

func TestEvaluate_InitialIsBalanced(t *testing.T) {
	board := chess.InitialBoard()
	if got := Evaluate(&board); got != 0 {
		t.Errorf("Evaluate(initial) = %d, want 0", got)
	}
}

func BenchmarkEvaluate(b *testing.B) {
	board := chess.InitialBoard()
	for i := 0; i < b.N; i++ {
		Evaluate(&board)
	}
}

func BenchmarkPickBestMove(b *testing.B) {
	board := chess.InitialBoard()
	for i := 0; i < b.N; i++ {
		PickBestMove(&board, chess.White, 2, orderShuffler{})
	}
}
