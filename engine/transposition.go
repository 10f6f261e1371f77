package engine

import "unsafe"

const (
	// Flags
	AlphaFlag int8 = iota // upper bound: no move beat alpha
	BetaFlag              // lower bound: the node was cut off
	ExactFlag

	clusterSize = 4
)

// TransTable caches search results by Zobrist key of the grid and side to
// move, so unlike the priority table it is tied to actual board content.
type TransTable struct {
	entries      []TTEntry
	clusterCount uint64
}

type TTEntry struct {
	Hash  uint64
	Depth int8
	Score int32
	Flag  int8
}

// NewTransTable allocates a table of roughly sizeMB megabytes.
func NewTransTable(sizeMB int) *TransTable {
	tt := &TransTable{}
	tt.init(Max(sizeMB, 1))
	return tt
}

func (tt *TransTable) init(sizeMB int) {
	entrySize := uint64(unsafe.Sizeof(TTEntry{}))
	totalBytes := uint64(sizeMB) * 1024 * 1024
	clusterCount := totalBytes / (entrySize * clusterSize)
	if clusterCount == 0 {
		clusterCount = 1
	}
	tt.clusterCount = clusterCount
	tt.entries = make([]TTEntry, clusterCount*clusterSize)
}

// Clear drops every entry.
func (tt *TransTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
}

func (tt *TransTable) probe(hash uint64) (*TTEntry, bool) {
	start := int((hash % tt.clusterCount) * clusterSize)
	for i := 0; i < clusterSize; i++ {
		e := &tt.entries[start+i]
		if e.Hash == hash && e.Depth > 0 {
			return e, true
		}
	}
	return nil, false
}

// useEntry reports whether a stored result settles a node searched to depth
// with window (alpha, beta).
func (tt *TransTable) useEntry(e *TTEntry, depth int8, alpha, beta int32) (bool, int32) {
	if e == nil || e.Depth < depth {
		return false, 0
	}
	switch e.Flag {
	case ExactFlag:
		return true, e.Score
	case AlphaFlag:
		if e.Score <= alpha {
			return true, e.Score
		}
	case BetaFlag:
		if e.Score >= beta {
			return true, e.Score
		}
	}
	return false, 0
}

// store keeps the result in its cluster: same position first, then an empty
// slot, otherwise the shallowest entry is replaced.
func (tt *TransTable) store(hash uint64, depth int8, score int32, flag int8) {
	base := int((hash % tt.clusterCount) * clusterSize)
	target := -1

	for i := 0; i < clusterSize; i++ {
		if tt.entries[base+i].Hash == hash {
			target = base + i
			break
		}
	}
	if target == -1 {
		for i := 0; i < clusterSize; i++ {
			if tt.entries[base+i].Depth == 0 {
				target = base + i
				break
			}
		}
	}
	if target == -1 {
		target = base
		for i := 1; i < clusterSize; i++ {
			if tt.entries[base+i].Depth < tt.entries[target].Depth {
				target = base + i
			}
		}
	}

	tt.entries[target] = TTEntry{Hash: hash, Depth: depth, Score: score, Flag: flag}
}
