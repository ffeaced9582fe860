package engine

import "github.com/circuithack/codee-chess/internal/chess"

// IsSideInCheck returns true if the given side's king is attacked.
// A side without a king is treated as in check.
func IsSideInCheck(board *chess.Board, side chess.Side) bool {
	king, ok := board.FindKing(side)
	if !ok {
		return true
	}
	return IsSquareAttacked(board, king.X, king.Y, side.Opposite())
}

// IsSquareAttacked returns true if any piece of bySide attacks (x, y).
// Attackers are probed directly from the target square rather than by
// generating the attacking side's moves.
func IsSquareAttacked(board *chess.Board, x, y int, bySide chess.Side) bool {
	// Check pawn attacks: an attacking pawn sits one row behind the
	// target relative to its own push direction.
	pawn := chess.MakeCell(bySide, chess.Pawn)
	py := y - chess.PawnDirection(bySide)
	for dx := -1; dx <= 1; dx += 2 {
		if chess.InBounds(x+dx, py) && board.Get(x+dx, py) == pawn {
			return true
		}
	}

	// Check knight attacks
	knight := chess.MakeCell(bySide, chess.Knight)
	for _, offset := range knightOffsets {
		nx, ny := x+offset[0], y+offset[1]
		if chess.InBounds(nx, ny) && board.Get(nx, ny) == knight {
			return true
		}
	}

	// Check sliding pieces (bishop, rook, queen)
	queen := chess.MakeCell(bySide, chess.Queen)
	if rayHits(board, x, y, diagonalDirs, chess.MakeCell(bySide, chess.Bishop), queen) {
		return true
	}
	if rayHits(board, x, y, straightDirs, chess.MakeCell(bySide, chess.Rook), queen) {
		return true
	}

	// Check king attacks
	king := chess.MakeCell(bySide, chess.King)
	for _, offset := range kingOffsets {
		nx, ny := x+offset[0], y+offset[1]
		if chess.InBounds(nx, ny) && board.Get(nx, ny) == king {
			return true
		}
	}

	return false
}

// rayHits reports whether the first piece met along any of dirs from
// (x, y) is one of the two given attackers.
func rayHits(board *chess.Board, x, y int, dirs [][2]int, slider, queen chess.Cell) bool {
	for _, dir := range dirs {
		nx, ny := x+dir[0], y+dir[1]
		for chess.InBounds(nx, ny) {
			piece := board.Get(nx, ny)
			if !piece.IsEmpty() {
				if piece == slider || piece == queen {
					return true
				}
				break // Blocked
			}
			nx += dir[0]
			ny += dir[1]
		}
	}
	return false
}
