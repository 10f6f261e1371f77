package board

import (
	"fmt"
	"strings"
)

// Color identifies a side. Black is the maximizing side of the engine.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Colors lists both sides in a fixed order.
var Colors = [2]Color{White, Black}

// Opponent returns the other side.
func (c Color) Opponent() Color { return c ^ 1 }

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// ParseColor accepts "black" or "white" in any case.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(s) {
	case "black":
		return Black, nil
	case "white":
		return White, nil
	}
	return White, fmt.Errorf("%w: color %q", ErrUnknownPiece, s)
}

// PieceType is a colorless piece kind. The zero value marks an empty cell.
type PieceType uint8

const (
	NoPieceType PieceType = 0
	Pawn        PieceType = 1
	Knight      PieceType = 2
	Bishop      PieceType = 3
	Rook        PieceType = 4
	Queen       PieceType = 5
	King        PieceType = 6
)

// PieceTypes lists every real piece type in ascending order.
var PieceTypes = [6]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

var pieceTypeNames = [7]string{"", "pawn", "knight", "bishop", "rook", "queen", "king"}

func (t PieceType) String() string {
	if int(t) < len(pieceTypeNames) {
		return pieceTypeNames[t]
	}
	return fmt.Sprintf("PieceType(%d)", uint8(t))
}

// ParsePieceType converts a lower-case piece name ("pawn", "rook", ...).
func ParsePieceType(s string) (PieceType, error) {
	s = strings.ToLower(s)
	for i := 1; i < len(pieceTypeNames); i++ {
		if pieceTypeNames[i] == s {
			return PieceType(i), nil
		}
	}
	return NoPieceType, fmt.Errorf("%w: piece type %q", ErrUnknownPiece, s)
}

// Piece is the identity of one piece on the board. Index tells apart pieces
// of the same color and type and stays fixed while the piece moves.
// Pieces do not know where they stand; the Grid does.
type Piece struct {
	Color Color
	Type  PieceType
	Index int
}

// IsEmpty reports whether p is the zero value used for empty cells.
func (p Piece) IsEmpty() bool { return p.Type == NoPieceType }

// Less orders pieces by color, type and then index.
func (p Piece) Less(o Piece) bool {
	if p.Color != o.Color {
		return p.Color < o.Color
	}
	if p.Type != o.Type {
		return p.Type < o.Type
	}
	return p.Index < o.Index
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return fmt.Sprintf("%s_%s%d", p.Color, p.Type, p.Index)
}

// Position is a (row, column) coordinate. Row 0 is black's back rank.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position { return Position{Row: row, Col: col} }

// Less orders positions row-major.
func (p Position) Less(o Position) bool {
	if p.Row != o.Row {
		return p.Row < o.Row
	}
	return p.Col < o.Col
}

// Square returns the 0..63 index of p within an 8x8 layout.
func (p Position) Square() uint8 { return uint8(p.Row*MaxDimension + p.Col) }

// PositionOf is the inverse of Position.Square.
func PositionOf(sq uint8) Position {
	return Position{Row: int(sq) / MaxDimension, Col: int(sq) % MaxDimension}
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Move is an ordered pair of positions. It carries no board content, so the
// same Move value can mean different things in different positions.
type Move struct {
	From Position
	To   Position
}

func (m Move) String() string { return m.From.String() + "->" + m.To.String() }
