package board

import (
	"fmt"
	"sort"
)

// Apply returns the state that results from playing m. s is not modified;
// the result shares no memory with it.
//
// Only the pieces whose geometry can change are asked for new moves: the
// mover, and every piece the generator reports as affected by the occupancy
// change on the destination or on the vacated origin. A captured piece loses
// its entry altogether.
func (s *State) Apply(gen Generator, m Move) (*State, error) {
	if !s.Grid.Contains(m.From) || !s.Grid.Contains(m.To) {
		return nil, fmt.Errorf("%w: move %v", ErrOutOfBounds, m)
	}
	mover, ok := s.Grid.At(m.From)
	if !ok {
		return nil, fmt.Errorf("%w: move %v", ErrEmptyOrigin, m)
	}

	next := s.Clone()
	next.Moves[mover.Color][mover] = []Move{}

	if victim, captured := next.Grid.At(m.To); captured {
		delete(next.Moves[victim.Color], victim)
	}

	next.Grid.clear(m.From)
	next.Grid.set(m.To, mover)

	next.refresh(gen, mover, m.To)

	for _, pos := range affectedBy(gen, next.Grid, m.From, m.To) {
		piece, ok := next.Grid.At(pos)
		if !ok || piece == mover {
			continue
		}
		next.Moves[piece.Color][piece] = []Move{}
		next.refresh(gen, piece, pos)
	}
	return next, nil
}

// affectedBy merges the generator's answers for several squares into one
// sorted list without duplicates.
func affectedBy(gen Generator, g Grid, squares ...Position) []Position {
	seen := make(map[Position]bool)
	var out []Position
	for _, sq := range squares {
		for _, pos := range gen.Affected(sq, g) {
			if !seen[pos] {
				seen[pos] = true
				out = append(out, pos)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
