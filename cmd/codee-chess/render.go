package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/circuithack/codee-chess/internal/chess"
	"github.com/circuithack/codee-chess/internal/config"
)

// Renderer draws the board as text, optionally with ANSI colours.
type Renderer struct {
	noColor         bool
	showCoordinates bool
}

// NewRenderer creates a renderer from the display settings.
func NewRenderer(cfg *config.DisplayConfig) *Renderer {
	return &Renderer{
		noColor:         cfg.NoColor,
		showCoordinates: cfg.ShowCoordinates,
	}
}

// squareColor picks the background and foreground for one square.
func (r *Renderer) squareColor(x, y int, cell chess.Cell, highlight bool) *color.Color {
	bg := color.BgGreen
	if (x+y)%2 == 0 {
		bg = color.BgHiYellow
	}
	if highlight {
		bg = color.BgHiCyan
	}
	fg := color.FgHiWhite
	if cell.Side() == chess.Black {
		fg = color.FgBlack
	}
	c := color.New(bg, fg, color.Bold)
	if r.noColor {
		c.DisableColor()
	}
	return c
}

// Board writes board to w, rank 8 first. The squares of last are
// highlighted when colours are on.
func (r *Renderer) Board(w io.Writer, board *chess.Board, last *chess.Move) {
	var sb strings.Builder
	for y := 0; y < chess.BoardSize; y++ {
		if r.showCoordinates {
			fmt.Fprintf(&sb, "%d ", chess.BoardSize-y)
		}
		for x := 0; x < chess.BoardSize; x++ {
			cell := board.Get(x, y)
			highlight := last != nil && (last.From == chess.Sq(x, y) || last.To == chess.Sq(x, y))
			sb.WriteString(r.squareColor(x, y, cell, highlight).Sprint(" " + r.glyph(cell) + " "))
		}
		sb.WriteByte('\n')
	}
	if r.showCoordinates {
		sb.WriteString("  ")
		for x := 0; x < chess.BoardSize; x++ {
			fmt.Fprintf(&sb, " %c ", chess.FirstFile+x)
		}
		sb.WriteByte('\n')
	}
	io.WriteString(w, sb.String())
}

// glyph returns the letter shown for a cell. Empty squares are blank
// when the square colour already marks them.
func (r *Renderer) glyph(cell chess.Cell) string {
	if cell.IsEmpty() && !r.noColor {
		return " "
	}
	return string(cell.Letter())
}
