// Package chess provides core chess types and operations.
package chess

// Side represents the colour of a piece or player.
type Side int

const (
	White Side = iota
	Black
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite side.
func (s Side) Opposite() Side {
	if s == White {
		return Black
	}
	return White
}

// Opposite returns the opposite of side.
func Opposite(side Side) Side {
	return side.Opposite()
}

// Piece represents a chess piece kind, independent of colour.
type Piece int

const (
	NoPiece Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceFromLetter converts a piece letter of either case to a piece kind.
// Unknown letters map to NoPiece.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPiece
	}
}

// Board dimensions.
const (
	BoardSize = 8

	FirstFile = 'a'
	LastRank  = '8'
)

// Cell is the content of one square: Empty or a coloured piece.
type Cell uint8

// Empty is an unoccupied square.
const Empty Cell = 0

// PieceShift is used for encoding coloured pieces.
const PieceShift = 1

// MakeCell creates a cell holding a piece of the given side.
func MakeCell(side Side, piece Piece) Cell {
	return Cell(int(piece)<<PieceShift | int(side))
}

// W creates a white piece.
func W(piece Piece) Cell {
	return MakeCell(White, piece)
}

// B creates a black piece.
func B(piece Piece) Cell {
	return MakeCell(Black, piece)
}

// IsEmpty reports whether the cell holds no piece.
func (c Cell) IsEmpty() bool {
	return c == Empty
}

// Piece extracts the piece kind from a cell.
func (c Cell) Piece() Piece {
	return Piece(c >> PieceShift)
}

// Side extracts the side from an occupied cell.
func (c Cell) Side() Side {
	return Side(c & 0x01)
}

// Is reports whether the cell holds the given side's piece.
func (c Cell) Is(side Side, piece Piece) bool {
	return c == MakeCell(side, piece)
}

// Letter returns the record letter for a cell: uppercase for White,
// lowercase for Black and '.' for an empty square.
func (c Cell) Letter() byte {
	if c.IsEmpty() {
		return '.'
	}
	letter := c.Piece().Letter()
	if c.Side() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// CellFromLetter converts a record letter to a cell.
// ok is false for anything other than '.', PNBRQK or pnbrqk.
func CellFromLetter(c byte) (cell Cell, ok bool) {
	if c == '.' {
		return Empty, true
	}
	piece := PieceFromLetter(c)
	if piece == NoPiece {
		return Empty, false
	}
	if c >= 'a' && c <= 'z' {
		return B(piece), true
	}
	return W(piece), true
}

// Square is a board coordinate. X grows toward the h-file and Y grows
// from rank 8 (Y=0) down to rank 1 (Y=7).
type Square struct {
	X int
	Y int
}

// Sq is shorthand for Square{X: x, Y: y}.
func Sq(x, y int) Square {
	return Square{X: x, Y: y}
}

// InBounds reports whether (x, y) lies on the board.
func InBounds(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return InBounds(s.X, s.Y)
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(FirstFile + s.X), byte(LastRank - s.Y)})
}

// ParseSquare converts an algebraic square name such as "e4".
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return Square{}, false
	}
	file := name[0]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	sq := Square{X: int(file) - FirstFile, Y: LastRank - int(name[1])}
	if !sq.Valid() {
		return Square{}, false
	}
	return sq, true
}

// PromotionRow returns the far rank row for the side's pawns.
func PromotionRow(side Side) int {
	if side == White {
		return 0
	}
	return BoardSize - 1
}

// PawnStartRow returns the row the side's pawns start on.
func PawnStartRow(side Side) int {
	if side == White {
		return BoardSize - 2
	}
	return 1
}

// PawnDirection returns -1 for White, +1 for Black (row delta of a push).
func PawnDirection(side Side) int {
	if side == White {
		return -1
	}
	return 1
}
