package chess

// Move is a from/to pair with an optional promotion piece.
// Promotion is NoPiece unless a pawn reaches the far rank, in which
// case it is always Queen.
type Move struct {
	From      Square
	To        Square
	Promotion Piece
}

// NewMove creates a move between two coordinate pairs.
func NewMove(fromX, fromY, toX, toY int) Move {
	return Move{From: Square{X: fromX, Y: fromY}, To: Square{X: toX, Y: toY}}
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPiece
}

// PromotionLetter returns the uppercase promotion letter, or "" when
// the move does not promote.
func (m Move) PromotionLetter() string {
	if !m.IsPromotion() {
		return ""
	}
	return string(m.Promotion.Letter())
}

// String returns the move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

// ParseMove parses a long algebraic move such as "e2e4" or "e7e8q".
// The promotion suffix is accepted but not required.
func ParseMove(text string) (Move, bool) {
	if len(text) != 4 && len(text) != 5 {
		return Move{}, false
	}
	from, ok := ParseSquare(text[0:2])
	if !ok {
		return Move{}, false
	}
	to, ok := ParseSquare(text[2:4])
	if !ok {
		return Move{}, false
	}
	m := Move{From: from, To: to}
	if len(text) == 5 {
		m.Promotion = PieceFromLetter(text[4])
		if m.Promotion == NoPiece {
			return Move{}, false
		}
	}
	return m, true
}
