package engine

import (
	"sort"

	"github.com/circuithack/codee-chess/internal/chess"
)

// Perft counts the leaf nodes of the legal move tree of the given depth.
func Perft(board *chess.Board, side chess.Side, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := AllLegalMoves(board, side)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		next := ApplyMoveToBoard(board, m)
		nodes += Perft(&next, side.Opposite(), depth-1)
	}
	return nodes
}

// DivideEntry is the perft count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Divide returns the perft count below each root move, sorted by move text.
func Divide(board *chess.Board, side chess.Side, depth int) []DivideEntry {
	if depth < 1 {
		return nil
	}
	moves := AllLegalMoves(board, side)
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		next := ApplyMoveToBoard(board, m)
		entries = append(entries, DivideEntry{Move: m, Nodes: Perft(&next, side.Opposite(), depth-1)})
	}
	SortDivide(entries)
	return entries
}

// SortDivide orders entries by move text.
func SortDivide(entries []DivideEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Move.String() < entries[j].Move.String()
	})
}
