package board

import (
	"sort"

	"golang.org/x/exp/maps"
)

// MoveSet maps each piece of one color to the moves it may currently make.
// An entry exists exactly while the piece is on the grid; its slice may be
// empty.
type MoveSet map[Piece][]Move

// Clone returns a deep copy of ms.
func (ms MoveSet) Clone() MoveSet {
	out := make(MoveSet, len(ms))
	for piece, moves := range ms {
		cp := make([]Move, len(moves))
		copy(cp, moves)
		out[piece] = cp
	}
	return out
}

// Has reports whether piece has an entry.
func (ms MoveSet) Has(piece Piece) bool {
	_, ok := ms[piece]
	return ok
}

// Pieces returns the pieces with an entry, sorted.
func (ms MoveSet) Pieces() []Piece {
	pieces := maps.Keys(ms)
	sort.Slice(pieces, func(i, j int) bool { return pieces[i].Less(pieces[j]) })
	return pieces
}

// Moves flattens every entry into one slice, in piece order.
func (ms MoveSet) Moves() []Move {
	var n int
	for _, moves := range ms {
		n += len(moves)
	}
	all := make([]Move, 0, n)
	for _, piece := range ms.Pieces() {
		all = append(all, ms[piece]...)
	}
	return all
}

// Contains reports whether m is one of the moves in ms.
func (ms MoveSet) Contains(m Move) bool {
	for _, moves := range ms {
		for _, candidate := range moves {
			if candidate == m {
				return true
			}
		}
	}
	return false
}
