package bench

import (
	"testing"

	"chess-minimax/board"
	"chess-minimax/engine"
	"chess-minimax/movegen"
)

func benchApply(b *testing.B, height, width int, arr board.Arrangement, c board.Color) {
	gen := movegen.New()
	st, err := board.NewState(height, width, arr, gen)
	if err != nil {
		b.Fatalf("NewState: %v", err)
	}
	moves := st.MoveSet(c).Moves()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := st.Apply(gen, moves[i%len(moves)]); err != nil {
			b.Fatalf("Apply: %v", err)
		}
	}
}

func BenchmarkApply_Initial(b *testing.B) {
	benchApply(b, 8, 8, nil, board.White)
}

func BenchmarkApply_Small(b *testing.B) {
	benchApply(b, 8, 4, board.SmallArrangement(), board.Black)
}

func BenchmarkRecompute_Initial(b *testing.B) {
	gen := movegen.New()
	st, err := board.NewState(8, 8, nil, gen)
	if err != nil {
		b.Fatalf("NewState: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = st.Recompute(gen)
	}
}

func benchBestMove(b *testing.B, cfg engine.Config, depth int) {
	cfg.Depth = depth
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		game, err := engine.NewGame(cfg, nil)
		if err != nil {
			b.Fatalf("NewGame: %v", err)
		}
		if _, _, err := game.BestMove(board.White); err != nil {
			b.Fatalf("BestMove: %v", err)
		}
	}
}

func BenchmarkBestMove_Initial_D3(b *testing.B) {
	benchBestMove(b, engine.DefaultConfig(), 3)
}

func BenchmarkBestMove_Small_D4(b *testing.B) {
	cfg := engine.DefaultConfig()
	cfg.Height, cfg.Width = 8, 4
	cfg.Arrangement = board.SmallArrangement()
	benchBestMove(b, cfg, 4)
}

func BenchmarkBestMove_Small_D4_NoTT(b *testing.B) {
	cfg := engine.DefaultConfig()
	cfg.Height, cfg.Width = 8, 4
	cfg.Arrangement = board.SmallArrangement()
	cfg.UseTT = false
	benchBestMove(b, cfg, 4)
}
