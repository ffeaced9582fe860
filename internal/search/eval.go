package search

import (
	"github.com/circuithack/codee-chess/internal/chess"
	"github.com/circuithack/codee-chess/internal/engine"
)

// PieceValues are material values in centipawns, indexed by piece kind.
var PieceValues = [...]int{
	chess.NoPiece: 0,
	chess.Pawn:    100,
	chess.Knight:  320,
	chess.Bishop:  330,
	chess.Rook:    500,
	chess.Queen:   900,
	chess.King:    20000,
}

// MobilityWeight scales the legal move count difference in Evaluate.
const MobilityWeight = 2

// Material returns the signed material balance: White positive, Black negative.
func Material(board *chess.Board) int {
	score := 0
	for y := 0; y < chess.BoardSize; y++ {
		for x := 0; x < chess.BoardSize; x++ {
			cell := board.Get(x, y)
			if cell.IsEmpty() {
				continue
			}
			value := PieceValues[cell.Piece()]
			if cell.Side() == chess.White {
				score += value
			} else {
				score -= value
			}
		}
	}
	return score
}

// Evaluate returns the static score of board from White's point of view:
// material plus a mobility term from both sides' full legal move lists.
func Evaluate(board *chess.Board) int {
	white := len(engine.AllLegalMoves(board, chess.White))
	black := len(engine.AllLegalMoves(board, chess.Black))
	return Material(board) + MobilityWeight*(white-black)
}
