package engine

import (
	"fmt"
	"io"
)

// CutStatistics counts what the search did.
type CutStatistics struct {
	Nodes       uint64
	Leaves      uint64
	BetaCutoffs uint64
	TTCutoffs   uint64
}

func dumpCutStats(w io.Writer, s CutStatistics) {
	fmt.Fprintln(w, "info string Cut statistics:")
	fmt.Fprintf(w, "info string   Nodes: %d\n", s.Nodes)
	fmt.Fprintf(w, "info string   Leaves: %d\n", s.Leaves)
	fmt.Fprintf(w, "info string   Alpha-beta cutoffs: %d\n", s.BetaCutoffs)
	fmt.Fprintf(w, "info string   TT cutoffs: %d\n", s.TTCutoffs)
}
