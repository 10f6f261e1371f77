package engine

import (
	"fmt"
	"sort"

	"chess-minimax/board"
)

// PriorityTable keeps a score per move, used to order root moves so that
// good-looking ones are searched first. Moves are keyed by coordinates only,
// so a score is a hint carried over from earlier positions and never a
// cached result.
type PriorityTable struct {
	scores map[board.Move]int32
	seq    map[board.Move]int
}

// NewPriorityTable returns an empty table.
func NewPriorityTable() *PriorityTable {
	return &PriorityTable{
		scores: make(map[board.Move]int32),
		seq:    make(map[board.Move]int),
	}
}

// Len returns the number of moves in the table.
func (pt *PriorityTable) Len() int { return len(pt.scores) }

// Get returns the score of m. Moves are inserted when first generated, so a
// missing move is an error.
func (pt *PriorityTable) Get(m board.Move) (int32, error) {
	score, ok := pt.scores[m]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownMove, m)
	}
	return score, nil
}

// Set records score for m, inserting it if needed.
func (pt *PriorityTable) Set(m board.Move, score int32) {
	if _, ok := pt.scores[m]; !ok {
		pt.seq[m] = len(pt.seq)
	}
	pt.scores[m] = score
}

// Insert adds m with score 0 unless it is already present. It reports
// whether m was new.
func (pt *PriorityTable) Insert(m board.Move) bool {
	if _, ok := pt.scores[m]; ok {
		return false
	}
	pt.Set(m, 0)
	return true
}

// Extend inserts every move of ms.
func (pt *PriorityTable) Extend(ms board.MoveSet) {
	for _, m := range ms.Moves() {
		pt.Insert(m)
	}
}

// Order returns moves sorted by descending score. Equal scores keep the
// order in which the moves entered the table; moves not in the table sort
// as score 0 after every known move with score 0.
func (pt *PriorityTable) Order(moves []board.Move) []board.Move {
	out := append([]board.Move(nil), moves...)
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := pt.scores[out[i]], pt.scores[out[j]]
		if si != sj {
			return si > sj
		}
		return pt.rank(out[i]) < pt.rank(out[j])
	})
	return out
}

func (pt *PriorityTable) rank(m board.Move) int {
	if n, ok := pt.seq[m]; ok {
		return n
	}
	return len(pt.seq)
}
