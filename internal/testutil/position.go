package testutil

import (
	"sort"
	"testing"

	"github.com/circuithack/codee-chess/internal/chess"
	"github.com/circuithack/codee-chess/internal/engine"
)

// ParseTestBoard parses a FEN string and returns the board and side to
// move. ok is false if the FEN is invalid. Use this for tests where a
// parse failure is an acceptable outcome.
func ParseTestBoard(fen string) (board chess.Board, side chess.Side, ok bool) {
	board, side, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return chess.Board{}, chess.White, false
	}
	return board, side, true
}

// MustParseBoard parses a FEN string and returns the board and side to move.
// It calls t.Fatal if parsing fails.
func MustParseBoard(t *testing.T, fen string) (chess.Board, chess.Side) {
	t.Helper()
	board, side, ok := ParseTestBoard(fen)
	if !ok {
		t.Fatalf("failed to parse test FEN: %s", fen)
	}
	return board, side
}

// MustParseMoves parses coordinate moves such as "e2e4" or "e7e8q".
// It calls t.Fatal on the first invalid move.
func MustParseMoves(t *testing.T, texts ...string) []chess.Move {
	t.Helper()
	moves := make([]chess.Move, 0, len(texts))
	for _, text := range texts {
		m, ok := chess.ParseMove(text)
		if !ok {
			t.Fatalf("failed to parse test move: %q", text)
		}
		moves = append(moves, m)
	}
	return moves
}

// MoveStrings returns the sorted coordinate form of moves, which makes
// move lists comparable with AssertEqual regardless of generation order.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}
