package engine

import (
	"testing"

	"github.com/circuithack/codee-chess/internal/chess"
)

// Castling and en passant cannot occur within three plies of the
// starting position, so the standard counts apply unchanged.
func TestPerft_Initial(t *testing.T) {
	tests := []struct {
		depth int
		want  uint64
	}{
		{0, 1},
		{1, 20},
		{2, 400},
		{3, 8902},
	}

	board := chess.InitialBoard()
	for _, tt := range tests {
		if got := Perft(&board, chess.White, tt.depth); got != tt.want {
			t.Errorf("Perft(depth %d) = %d, want %d", tt.depth, got, tt.want)
		}
	}
}

func TestPerft_KiwipeteWithoutCastling(t *testing.T) {
	board, side := MustBoardFromFEN(oracleFENs["Kiwipete"])
	// 48 in the standard position, minus the two castling moves.
	if got := Perft(&board, side, 1); got != 46 {
		t.Errorf("Perft(depth 1) = %d, want 46", got)
	}
}

func TestDivide(t *testing.T) {
	board := chess.InitialBoard()
	entries := Divide(&board, chess.White, 2)

	if len(entries) != 20 {
		t.Fatalf("len(Divide) = %d, want 20", len(entries))
	}
	var total uint64
	for i, e := range entries {
		if e.Nodes != 20 {
			t.Errorf("Divide[%v] = %d, want 20", e.Move, e.Nodes)
		}
		if i > 0 && entries[i-1].Move.String() >= e.Move.String() {
			t.Errorf("Divide not sorted at %d: %v >= %v", i, entries[i-1].Move, e.Move)
		}
		total += e.Nodes
	}
	if total != Perft(&board, chess.White, 2) {
		t.Errorf("Divide total = %d, want Perft(2)", total)
	}
	if Divide(&board, chess.White, 0) != nil {
		t.Error("Divide(depth 0) should be nil")
	}
}
