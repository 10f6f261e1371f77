package board

import (
	"fmt"
	"sort"
)

// State is one board position: the occupancy grid plus the move sets of both
// colors, indexed by Color.
type State struct {
	Grid  Grid
	Moves [2]MoveSet
}

// NewState places arr on a fresh height x width grid and computes the move
// set of every piece. Pieces of one color and type get indices in row-major
// order of their starting squares.
func NewState(height, width int, arr Arrangement, gen Generator) (*State, error) {
	grid, err := NewGrid(height, width)
	if err != nil {
		return nil, err
	}
	if arr == nil {
		arr = StandardArrangement()
	}

	keys := make([]string, 0, len(arr))
	for key := range arr {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		color, pieceType, err := ParseKey(key)
		if err != nil {
			return nil, err
		}
		positions := append([]Position(nil), arr[key]...)
		sort.Slice(positions, func(i, j int) bool { return positions[i].Less(positions[j]) })

		index := 0
		for i, pos := range positions {
			if i > 0 && positions[i-1] == pos {
				continue
			}
			if !grid.Contains(pos) {
				return nil, fmt.Errorf("%w: %s at %v on %dx%d", ErrOutOfBounds, key, pos, height, width)
			}
			if other, ok := grid.At(pos); ok {
				return nil, fmt.Errorf("%w: %v holds %v and %s", ErrOccupied, pos, other, key)
			}
			grid.set(pos, Piece{Color: color, Type: pieceType, Index: index})
			index++
		}
	}

	return FromGrid(grid, gen), nil
}

// FromGrid builds a State from scratch, asking gen for every piece on grid.
func FromGrid(grid Grid, gen Generator) *State {
	s := &State{Grid: grid, Moves: [2]MoveSet{{}, {}}}
	grid.Each(func(pos Position, piece Piece) {
		s.refresh(gen, piece, pos)
	})
	return s
}

// Recompute returns a copy of s whose move sets are rebuilt from the grid
// alone. For a consistent state the result equals s.
func (s *State) Recompute(gen Generator) *State {
	return FromGrid(s.Grid.Clone(), gen)
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	return &State{
		Grid:  s.Grid.Clone(),
		Moves: [2]MoveSet{s.Moves[White].Clone(), s.Moves[Black].Clone()},
	}
}

// MoveSet returns the move set of color c.
func (s *State) MoveSet(c Color) MoveSet { return s.Moves[c] }

// refresh recomputes piece's entry as if it stands on at.
func (s *State) refresh(gen Generator, piece Piece, at Position) {
	dests := gen.Destinations(piece.Color, piece.Type, at, s.Grid)
	moves := make([]Move, len(dests))
	for i, to := range dests {
		moves[i] = Move{From: at, To: to}
	}
	s.Moves[piece.Color][piece] = moves
}
