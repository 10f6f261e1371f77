package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"chess-minimax/board"
	"chess-minimax/engine"
)

func main() {
	// --- Flags ---
	depthFlag := flag.Int("depth", 4, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	smallFlag := flag.Bool("small", false, "search the small 8x4 arrangement")
	fenFlag := flag.String("fen", "", "FEN to search (empty = standard arrangement)")
	sideFlag := flag.String("side", "white", "side to search for")
	noTT := flag.Bool("nott", false, "disable the transposition table")
	keepTT := flag.Bool("keeptt", false, "keep transposition table entries between runs")
	cutStats := flag.Bool("cutstats", false, "print cut statistics after each search")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	if *depthFlag <= 0 {
		log.Fatalf("depth must be positive, got %d", *depthFlag)
	}
	side, err := board.ParseColor(*sideFlag)
	if err != nil {
		log.Fatalf("side: %v", err)
	}

	// --- Optional CPU profiling setup ---
	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	cfg := engine.DefaultConfig()
	cfg.Depth = *depthFlag
	cfg.UseTT = !*noTT
	switch {
	case *fenFlag != "":
		if cfg.Arrangement, err = board.ArrangementFromFEN(*fenFlag); err != nil {
			log.Fatalf("fen: %v", err)
		}
	case *smallFlag:
		cfg.Height, cfg.Width = 8, 4
		cfg.Arrangement = board.SmallArrangement()
	}

	fmt.Printf("searchbench: %dx%d depth=%d repeat=%d tt=%v\n", cfg.Height, cfg.Width, cfg.Depth, *repeatFlag, cfg.UseTT)

	game, err := engine.NewGame(cfg, nil)
	if err != nil {
		log.Fatalf("new game: %v", err)
	}
	searcher := game.Searcher()
	searcher.Info = os.Stdout
	searcher.PrintCutStats = *cutStats

	startAll := time.Now()
	for i := 0; i < *repeatFlag; i++ {
		// Cold table for each run unless asked otherwise
		if searcher.TT != nil && !*keepTT {
			searcher.TT.Clear()
		}

		iterStart := time.Now()
		bestMove, value, err := game.BestMove(side)
		if err != nil {
			log.Fatalf("search: %v", err)
		}
		iterElapsed := time.Since(iterStart)

		fmt.Printf("iteration %d: bestmove %v value %d  time=%v\n", i+1, bestMove, value, iterElapsed)
	}
	fmt.Printf("total time: %v\n", time.Since(startAll))

	// --- Optional heap profile at the end ---
	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
}
