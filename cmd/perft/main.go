package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"sort"
	"time"

	"chess-minimax/board"
	"chess-minimax/engine"
	"chess-minimax/movegen"
)

func main() {
	height := flag.Int("height", 8, "board height (1-8)")
	width := flag.Int("width", 8, "board width (1-8)")
	small := flag.Bool("small", false, "use the small 8x4 arrangement")
	fen := flag.String("fen", "", "8x8 FEN string (defaults to the standard arrangement)")
	side := flag.String("side", "white", "side to move first")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	var arr board.Arrangement
	switch {
	case *fen != "":
		var err error
		if arr, err = board.ArrangementFromFEN(*fen); err != nil {
			fmt.Fprintf(os.Stderr, "FEN error: %v\n", err)
			os.Exit(2)
		}
		*height, *width = 8, 8
	case *small:
		arr = board.SmallArrangement()
		*height, *width = 8, 4
	}
	color, err := board.ParseColor(*side)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	gen := movegen.New()
	st, err := board.NewState(*height, *width, arr, gen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "NewState error: %v\n", err)
		os.Exit(2)
	}

	// Optional divide output
	if *divide {
		div := engine.PerftDivide(gen, st, *depth, color)
		type kv struct {
			m board.Move
			n uint64
		}
		rows := make([]kv, 0, len(div))
		var sum uint64
		for m, n := range div {
			rows = append(rows, kv{m, n})
			sum += n
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].m.String() < rows[j].m.String() })
		for _, x := range rows {
			fmt.Printf("%s: %d\n", x.m.String(), x.n)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += engine.Perft(gen, st, *depth, color)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}
