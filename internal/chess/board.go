package chess

import "strings"

// Board is the 8x8 grid of cells indexed [y][x]. It is a value type:
// assigning a Board copies every square.
type Board [BoardSize][BoardSize]Cell

// backRank is the piece order on each side's first rank, a-file first.
var backRank = [BoardSize]Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// InitialBoard returns the standard starting position.
func InitialBoard() Board {
	var b Board
	for x := 0; x < BoardSize; x++ {
		b[0][x] = B(backRank[x])
		b[1][x] = B(Pawn)
		b[BoardSize-2][x] = W(Pawn)
		b[BoardSize-1][x] = W(backRank[x])
	}
	return b
}

// Get returns the cell at (x, y). Off-board coordinates read as Empty.
func (b *Board) Get(x, y int) Cell {
	if !InBounds(x, y) {
		return Empty
	}
	return b[y][x]
}

// Set places a cell at (x, y). Off-board coordinates are ignored.
func (b *Board) Set(x, y int, c Cell) {
	if InBounds(x, y) {
		b[y][x] = c
	}
}

// At returns the cell on the given square.
func (b *Board) At(sq Square) Cell {
	return b.Get(sq.X, sq.Y)
}

// FindKing returns the square of the side's king.
// ok is false when the side has no king on the board.
func (b *Board) FindKing(side Side) (sq Square, ok bool) {
	king := MakeCell(side, King)
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if b[y][x] == king {
				return Square{X: x, Y: y}, true
			}
		}
	}
	return Square{}, false
}

// Rows renders the board as eight strings, rank 8 first, using the
// record letters of Cell.Letter.
func (b *Board) Rows() []string {
	rows := make([]string, BoardSize)
	var row [BoardSize]byte
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			row[x] = b[y][x].Letter()
		}
		rows[y] = string(row[:])
	}
	return rows
}

// BoardFromRows parses eight rows of eight record letters.
// ok is false if the row count, a row length or any letter is invalid.
func BoardFromRows(rows []string) (Board, bool) {
	var b Board
	if len(rows) != BoardSize {
		return b, false
	}
	for y, row := range rows {
		if len(row) != BoardSize {
			return Board{}, false
		}
		for x := 0; x < BoardSize; x++ {
			cell, ok := CellFromLetter(row[x])
			if !ok {
				return Board{}, false
			}
			b[y][x] = cell
		}
	}
	return b, true
}

// String renders the board as newline-separated rows.
func (b Board) String() string {
	return strings.Join(b.Rows(), "\n")
}
