package board

import "fmt"

// MaxDimension is the largest supported height or width.
const MaxDimension = 8

// Grid is the occupancy grid: one cell per position of a height x width
// rectangle, each either empty or holding one Piece.
type Grid struct {
	height int
	width  int
	cells  []Piece
}

// NewGrid returns an empty grid.
func NewGrid(height, width int) (Grid, error) {
	if height < 1 || height > MaxDimension || width < 1 || width > MaxDimension {
		return Grid{}, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, height, width)
	}
	return Grid{height: height, width: width, cells: make([]Piece, height*width)}, nil
}

func (g Grid) Height() int { return g.height }
func (g Grid) Width() int  { return g.width }

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// At returns the piece standing on p. ok is false when p is empty or off the grid.
func (g Grid) At(p Position) (piece Piece, ok bool) {
	if !g.Contains(p) {
		return Piece{}, false
	}
	piece = g.cells[p.Row*g.width+p.Col]
	return piece, !piece.IsEmpty()
}

func (g *Grid) set(p Position, piece Piece) {
	g.cells[p.Row*g.width+p.Col] = piece
}

func (g *Grid) clear(p Position) {
	g.cells[p.Row*g.width+p.Col] = Piece{}
}

// Clone returns an independent copy of g.
func (g Grid) Clone() Grid {
	cells := make([]Piece, len(g.cells))
	copy(cells, g.cells)
	return Grid{height: g.height, width: g.width, cells: cells}
}

// Each calls fn for every occupied cell in row-major order.
func (g Grid) Each(fn func(Position, Piece)) {
	for i, piece := range g.cells {
		if piece.IsEmpty() {
			continue
		}
		fn(Position{Row: i / g.width, Col: i % g.width}, piece)
	}
}

// Occupancy returns bitboards (8x8 layout, see Position.Square) of the
// squares held by each color.
func (g Grid) Occupancy() (bb [2]uint64) {
	g.Each(func(p Position, piece Piece) {
		bb[piece.Color] |= uint64(1) << p.Square()
	})
	return bb
}

// OffBoard returns the 8x8 bitboard of squares outside the grid.
func (g Grid) OffBoard() uint64 {
	var mask uint64
	for row := 0; row < MaxDimension; row++ {
		for col := 0; col < MaxDimension; col++ {
			if row >= g.height || col >= g.width {
				mask |= uint64(1) << uint(row*MaxDimension+col)
			}
		}
	}
	return mask
}
