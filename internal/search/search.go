// Package search implements the built-in opponent: a fixed-depth
// negamax search with alpha-beta pruning over copied boards.
package search

import (
	"github.com/circuithack/codee-chess/internal/chess"
	"github.com/circuithack/codee-chess/internal/engine"
)

// Score constants.
const (
	Infinity  = 1_000_000_000
	MateScore = 100000
	DrawScore = 0
)

// Shuffler permutes n elements through swap. *rand.Rand from math/rand
// and golang.org/x/exp/rand both satisfy it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Negamax returns the score of board for side searched to depth plies,
// where a higher score is always better for side.
//
// A side with no legal moves scores -MateScore+(2-depth) when in check
// and DrawScore otherwise, so mates found with more depth remaining
// (nearer the root) score further from zero.
func Negamax(board *chess.Board, side chess.Side, depth, alpha, beta int) int {
	legal := engine.AllLegalMoves(board, side)
	if depth <= 0 || len(legal) == 0 {
		if len(legal) == 0 {
			if engine.IsSideInCheck(board, side) {
				return -MateScore + (2 - depth)
			}
			return DrawScore
		}
		score := Evaluate(board)
		if side == chess.Black {
			return -score
		}
		return score
	}

	best := -Infinity
	for _, m := range legal {
		child := engine.ApplyMoveToBoard(board, m)
		score := -Negamax(&child, side.Opposite(), depth-1, -beta, -alpha)
		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break // beta cutoff
		}
	}
	return best
}

// PickBestMove returns the best move for side searched to depth plies.
// The root moves are shuffled with rng before scoring and ties keep the
// first move seen, so a fixed seed gives a reproducible choice.
// ok is false when side has no legal move.
func PickBestMove(board *chess.Board, side chess.Side, depth int, rng Shuffler) (best chess.Move, ok bool) {
	legal := engine.AllLegalMoves(board, side)
	if len(legal) == 0 {
		return chess.Move{}, false
	}
	if depth < 1 {
		depth = 1
	}
	if rng != nil {
		rng.Shuffle(len(legal), func(i, j int) {
			legal[i], legal[j] = legal[j], legal[i]
		})
	}

	bestScore := -Infinity
	for _, m := range legal {
		child := engine.ApplyMoveToBoard(board, m)
		score := -Negamax(&child, side.Opposite(), depth-1, -Infinity, Infinity)
		if !ok || score > bestScore {
			best, bestScore, ok = m, score, true
		}
	}
	return best, ok
}

// ScoredMove is a root move with its negamax score.
type ScoredMove struct {
	Move  chess.Move
	Score int
}

// ScoreMoves scores every legal root move for side without shuffling,
// in generation order.
func ScoreMoves(board *chess.Board, side chess.Side, depth int) []ScoredMove {
	if depth < 1 {
		depth = 1
	}
	legal := engine.AllLegalMoves(board, side)
	scored := make([]ScoredMove, 0, len(legal))
	for _, m := range legal {
		child := engine.ApplyMoveToBoard(board, m)
		scored = append(scored, ScoredMove{
			Move:  m,
			Score: -Negamax(&child, side.Opposite(), depth-1, -Infinity, Infinity),
		})
	}
	return scored
}
