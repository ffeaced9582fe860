package engine

import "github.com/circuithack/codee-chess/internal/chess"

// Offsets and ray directions as (dx, dy) pairs.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirs     = append(append([][2]int{}, diagonalDirs...), straightDirs...)
)

// generator appends the pseudo-legal moves of the side's piece on (x, y).
type generator func(board *chess.Board, x, y int, side chess.Side, moves []chess.Move) []chess.Move

// generators is indexed by piece kind.
var generators = [...]generator{
	chess.NoPiece: nil,
	chess.Pawn:    pawnMoves,
	chess.Knight:  knightMoves,
	chess.Bishop:  bishopMoves,
	chess.Rook:    rookMoves,
	chess.Queen:   queenMoves,
	chess.King:    kingMoves,
}

// PseudoLegalMoves returns the moves of the piece on (x, y) without
// checking whether they leave the mover's king attacked.
// An empty or off-board square yields no moves.
func PseudoLegalMoves(board *chess.Board, x, y int) []chess.Move {
	return appendPseudoLegalMoves(board, x, y, nil)
}

func appendPseudoLegalMoves(board *chess.Board, x, y int, moves []chess.Move) []chess.Move {
	cell := board.Get(x, y)
	if cell.IsEmpty() {
		return moves
	}
	piece := cell.Piece()
	if piece <= chess.NoPiece || int(piece) >= len(generators) {
		return moves
	}
	return generators[piece](board, x, y, cell.Side(), moves)
}

// canLand reports whether a piece of side may finish on (x, y).
func canLand(board *chess.Board, x, y int, side chess.Side) bool {
	if !chess.InBounds(x, y) {
		return false
	}
	target := board.Get(x, y)
	return target.IsEmpty() || target.Side() != side
}

func pawnMoves(board *chess.Board, x, y int, side chess.Side, moves []chess.Move) []chess.Move {
	dir := chess.PawnDirection(side)
	promotionRow := chess.PromotionRow(side)

	// Forward pushes
	ny := y + dir
	if chess.InBounds(x, ny) && board.Get(x, ny).IsEmpty() {
		moves = append(moves, pawnMove(x, y, x, ny, promotionRow))
		if y == chess.PawnStartRow(side) {
			ny2 := y + 2*dir
			if chess.InBounds(x, ny2) && board.Get(x, ny2).IsEmpty() {
				moves = append(moves, chess.NewMove(x, y, x, ny2))
			}
		}
	}

	// Captures
	for dx := -1; dx <= 1; dx += 2 {
		nx := x + dx
		if !chess.InBounds(nx, ny) {
			continue
		}
		target := board.Get(nx, ny)
		if !target.IsEmpty() && target.Side() != side {
			moves = append(moves, pawnMove(x, y, nx, ny, promotionRow))
		}
	}
	return moves
}

// pawnMove builds a pawn move, promoting to a queen on the far rank.
func pawnMove(x, y, nx, ny, promotionRow int) chess.Move {
	m := chess.NewMove(x, y, nx, ny)
	if ny == promotionRow {
		m.Promotion = chess.Queen
	}
	return m
}

func knightMoves(board *chess.Board, x, y int, side chess.Side, moves []chess.Move) []chess.Move {
	return offsetMoves(board, x, y, side, knightOffsets, moves)
}

func kingMoves(board *chess.Board, x, y int, side chess.Side, moves []chess.Move) []chess.Move {
	return offsetMoves(board, x, y, side, kingOffsets, moves)
}

func offsetMoves(board *chess.Board, x, y int, side chess.Side, offsets [8][2]int, moves []chess.Move) []chess.Move {
	for _, offset := range offsets {
		nx, ny := x+offset[0], y+offset[1]
		if canLand(board, nx, ny, side) {
			moves = append(moves, chess.NewMove(x, y, nx, ny))
		}
	}
	return moves
}

func bishopMoves(board *chess.Board, x, y int, side chess.Side, moves []chess.Move) []chess.Move {
	return slidingMoves(board, x, y, side, diagonalDirs, moves)
}

func rookMoves(board *chess.Board, x, y int, side chess.Side, moves []chess.Move) []chess.Move {
	return slidingMoves(board, x, y, side, straightDirs, moves)
}

func queenMoves(board *chess.Board, x, y int, side chess.Side, moves []chess.Move) []chess.Move {
	return slidingMoves(board, x, y, side, queenDirs, moves)
}

// slidingMoves casts a ray in each direction until the edge, an own
// piece (excluded) or an enemy piece (included as a capture).
func slidingMoves(board *chess.Board, x, y int, side chess.Side, dirs [][2]int, moves []chess.Move) []chess.Move {
	for _, dir := range dirs {
		nx, ny := x+dir[0], y+dir[1]
		for chess.InBounds(nx, ny) {
			target := board.Get(nx, ny)
			if !target.IsEmpty() {
				if target.Side() != side {
					moves = append(moves, chess.NewMove(x, y, nx, ny))
				}
				break // Blocked
			}
			moves = append(moves, chess.NewMove(x, y, nx, ny))
			nx += dir[0]
			ny += dir[1]
		}
	}
	return moves
}
