package engine

import "github.com/circuithack/codee-chess/internal/chess"

// IsCheckmate returns true if side is in check and has no legal move.
func IsCheckmate(board *chess.Board, side chess.Side) bool {
	return IsSideInCheck(board, side) && !HasLegalMoves(board, side)
}

// IsStalemate returns true if side is not in check but has no legal move.
func IsStalemate(board *chess.Board, side chess.Side) bool {
	return !IsSideInCheck(board, side) && !HasLegalMoves(board, side)
}
