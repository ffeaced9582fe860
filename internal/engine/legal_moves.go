package engine

import "github.com/circuithack/codee-chess/internal/chess"

// AllLegalMoves returns every legal move for side. Each pseudo-legal
// move is played on a copy of the board and kept only if the mover's
// king is not attacked afterwards.
func AllLegalMoves(board *chess.Board, side chess.Side) []chess.Move {
	var legal []chess.Move
	var pseudo []chess.Move
	for y := 0; y < chess.BoardSize; y++ {
		for x := 0; x < chess.BoardSize; x++ {
			piece := board.Get(x, y)
			if piece.IsEmpty() || piece.Side() != side {
				continue
			}
			pseudo = appendPseudoLegalMoves(board, x, y, pseudo[:0])
			for _, m := range pseudo {
				if leavesKingSafe(board, m, side) {
					legal = append(legal, m)
				}
			}
		}
	}
	return legal
}

// LegalMovesFrom returns the legal moves of the side's piece on (x, y).
// It returns nil if (x, y) does not hold a piece of that side.
func LegalMovesFrom(board *chess.Board, side chess.Side, x, y int) []chess.Move {
	piece := board.Get(x, y)
	if piece.IsEmpty() || piece.Side() != side {
		return nil
	}
	var legal []chess.Move
	for _, m := range PseudoLegalMoves(board, x, y) {
		if leavesKingSafe(board, m, side) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if the given side has at least one legal move.
func HasLegalMoves(board *chess.Board, side chess.Side) bool {
	var pseudo []chess.Move
	for y := 0; y < chess.BoardSize; y++ {
		for x := 0; x < chess.BoardSize; x++ {
			piece := board.Get(x, y)
			if piece.IsEmpty() || piece.Side() != side {
				continue
			}
			pseudo = appendPseudoLegalMoves(board, x, y, pseudo[:0])
			for _, m := range pseudo {
				if leavesKingSafe(board, m, side) {
					return true
				}
			}
		}
	}
	return false
}

// ApplyMoveToBoard returns a copy of board with m played: the origin is
// cleared and the moving (or promoted) piece written to the destination.
// The input board is not modified.
func ApplyMoveToBoard(board *chess.Board, m chess.Move) chess.Board {
	next := *board
	piece := next.At(m.From)
	next.Set(m.From.X, m.From.Y, chess.Empty)
	if m.IsPromotion() && !piece.IsEmpty() {
		piece = chess.MakeCell(piece.Side(), m.Promotion)
	}
	next.Set(m.To.X, m.To.Y, piece)
	return next
}

// leavesKingSafe makes a move on a copied board and checks the mover's
// king is not attacked afterwards.
func leavesKingSafe(board *chess.Board, m chess.Move, side chess.Side) bool {
	next := ApplyMoveToBoard(board, m)
	return !IsSideInCheck(&next, side)
}
