// Package notation converts between engine moves and standard algebraic
// notation (SAN) using github.com/notnil/chess as the SAN codec.
package notation

import (
	notnil "github.com/notnil/chess"

	"github.com/circuithack/codee-chess/internal/chess"
	"github.com/circuithack/codee-chess/internal/engine"
	"github.com/circuithack/codee-chess/internal/errors"
)

// position builds a notnil position from the board and side to move.
func position(board *chess.Board, side chess.Side) (*notnil.Position, error) {
	fen, err := notnil.FEN(engine.BoardToFEN(board, side))
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidFEN, "%v", err)
	}
	return notnil.NewGame(fen).Position(), nil
}

// SAN renders m, played by side on board, in standard algebraic notation,
// e.g. "Nf3", "exd5", "e8=Q+" or "Rg8#".
func SAN(board *chess.Board, side chess.Side, m chess.Move) (string, error) {
	pos, err := position(board, side)
	if err != nil {
		return "", err
	}
	nm, err := notnil.UCINotation{}.Decode(pos, m.String())
	if err != nil {
		return "", &errors.MoveError{Err: errors.ErrIllegalMove, MoveText: m.String(), Reason: err.Error()}
	}
	// UCI decoding does not check legality, so match against the valid
	// moves, which also carry the check and capture tags SAN needs.
	for _, valid := range pos.ValidMoves() {
		if valid.S1() == nm.S1() && valid.S2() == nm.S2() && valid.Promo() == nm.Promo() {
			return notnil.AlgebraicNotation{}.Encode(pos, valid), nil
		}
	}
	return "", &errors.MoveError{Err: errors.ErrIllegalMove, MoveText: m.String()}
}

// SANOrCoordinate is like SAN but falls back to coordinate notation
// ("e2e4") when the move cannot be encoded.
func SANOrCoordinate(board *chess.Board, side chess.Side, m chess.Move) string {
	s, err := SAN(board, side, m)
	if err != nil {
		return m.String()
	}
	return s
}

// ParseSAN decodes a SAN move such as "Nf3" or "e8=Q" for side on board.
// Under-promotions are rejected since pawns always promote to a queen.
func ParseSAN(board *chess.Board, side chess.Side, text string) (chess.Move, error) {
	pos, err := position(board, side)
	if err != nil {
		return chess.Move{}, err
	}
	nm, err := notnil.AlgebraicNotation{}.Decode(pos, text)
	if err != nil {
		return chess.Move{}, &errors.MoveError{Err: errors.ErrIllegalMove, MoveText: text, Reason: err.Error()}
	}

	m := chess.Move{From: fromSquare(nm.S1()), To: fromSquare(nm.S2())}
	switch nm.Promo() {
	case notnil.NoPieceType:
	case notnil.Queen:
		m.Promotion = chess.Queen
	default:
		return chess.Move{}, &errors.MoveError{Err: errors.ErrIllegalMove, MoveText: text, Reason: "pawns only promote to a queen"}
	}
	return m, nil
}

// fromSquare maps a notnil square (a1 = 0, h8 = 63) to board coordinates.
func fromSquare(sq notnil.Square) chess.Square {
	return chess.Square{X: int(sq.File()), Y: chess.BoardSize - 1 - int(sq.Rank())}
}
