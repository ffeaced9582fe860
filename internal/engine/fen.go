// Package engine provides chess move generation, attack detection and
// legal move filtering over a plain 8x8 board.
package engine

import (
	"strings"

	"github.com/circuithack/codee-chess/internal/chess"
	"github.com/circuithack/codee-chess/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
// Castling is never available in this engine, so the rights field is "-".
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// NewBoardFromFEN creates a board and side to move from a FEN string.
// Only the piece placement and side-to-move fields are used; castling,
// en passant and clock fields are accepted and ignored.
func NewBoardFromFEN(fen string) (chess.Board, chess.Side, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return chess.Board{}, chess.White, errors.Wrap(errors.ErrInvalidFEN, "empty FEN string")
	}

	board, err := parsePiecePositions(parts[0])
	if err != nil {
		return chess.Board{}, chess.White, err
	}

	side, err := parseSideToMove(parts)
	if err != nil {
		return chess.Board{}, chess.White, err
	}
	return board, side, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(positions string) (chess.Board, error) {
	var board chess.Board
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return board, errors.Wrapf(errors.ErrInvalidFEN, "expected %d ranks, got %d", chess.BoardSize, len(ranks))
	}

	for y, rank := range ranks {
		x := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			switch {
			case c >= '1' && c <= '8':
				x += int(c - '0')
			default:
				cell, ok := chess.CellFromLetter(c)
				if !ok || cell.IsEmpty() {
					return board, errors.Wrapf(errors.ErrInvalidFEN, "invalid piece character %c", c)
				}
				if x >= chess.BoardSize {
					return board, errors.Wrap(errors.ErrInvalidFEN, "position out of bounds")
				}
				board[y][x] = cell
				x++
			}
		}
		if x != chess.BoardSize {
			return board, errors.Wrapf(errors.ErrInvalidFEN, "rank %d has %d files", chess.BoardSize-y, x)
		}
	}
	return board, nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Side, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, errors.Wrapf(errors.ErrInvalidFEN, "invalid side to move %s", parts[1])
	}
}

// BoardToFEN converts a board and side to move to a FEN string.
func BoardToFEN(board *chess.Board, side chess.Side) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if side == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteString(" - - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for y := 0; y < chess.BoardSize; y++ {
		emptyCount := 0
		for x := 0; x < chess.BoardSize; x++ {
			piece := board.Get(x, y)
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if y < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// MustBoardFromFEN is like NewBoardFromFEN but panics on error.
// It is intended for fixed positions in tests and tools.
func MustBoardFromFEN(fen string) (chess.Board, chess.Side) {
	board, side, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return board, side
}
