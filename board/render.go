package board

import (
	"strconv"
	"strings"
)

var glyphs = [2][7]string{
	White: {"", "♙", "♘", "♗", "♖", "♕", "♔"},
	Black: {"", "♟", "♞", "♝", "♜", "♛", "♚"},
}

// Glyph returns the chess symbol for piece, or a space for an empty cell.
func Glyph(piece Piece) string {
	if piece.IsEmpty() {
		return " "
	}
	return glyphs[piece.Color][piece.Type]
}

// String draws the grid with column numbers above and below and row numbers
// on both sides.
func (g Grid) String() string {
	var sb strings.Builder
	header := func() {
		sb.WriteString(" ")
		for col := 0; col < g.width; col++ {
			sb.WriteString(" " + strconv.Itoa(col) + " ")
		}
		sb.WriteString("\n")
	}
	rule := strings.Repeat("----", g.width) + "\n"

	header()
	for r := 0; r < g.height; r++ {
		sb.WriteString(rule)
		sb.WriteString(strconv.Itoa(r))
		for c := 0; c < g.width; c++ {
			piece, _ := g.At(Pos(r, c))
			sb.WriteString("|" + Glyph(piece) + " ")
		}
		sb.WriteString("|" + strconv.Itoa(r) + "\n")
	}
	sb.WriteString(rule)
	header()
	return sb.String()
}
