package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"chess-minimax/board"
	"chess-minimax/engine"
)

func smallConfig() engine.Config {
	cfg := engine.DefaultConfig()
	cfg.Height, cfg.Width = 8, 4
	cfg.Arrangement = board.SmallArrangement()
	cfg.Depth = 1
	return cfg
}

func TestSelectArrangement(t *testing.T) {
	if arr, err := selectArrangement("standard", ""); err != nil || arr != nil {
		t.Fatalf("standard: %v %v", arr, err)
	}
	if arr, err := selectArrangement("small", ""); err != nil || len(arr) != len(board.SmallArrangement()) {
		t.Fatalf("small: %v %v", arr, err)
	}
	if _, err := selectArrangement("huge", ""); err == nil {
		t.Fatalf("expected an error for an unknown arrangement")
	}
	if _, err := selectArrangement("small", "not a fen"); !errors.Is(err, board.ErrInvalidFEN) {
		t.Fatalf("expected ErrInvalidFEN, got %v", err)
	}
}

func TestPlayAgainstRandom(t *testing.T) {
	var out bytes.Buffer
	cfg := smallConfig()
	cfg.Seed = 3
	opts := options{Player: board.White, MaxPlies: 30, Quiet: true}
	rec, err := play(context.Background(), cfg, opts, strings.NewReader(""), &out)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if rec.Plies == 0 || rec.Plies > 30 {
		t.Fatalf("unexpected ply count %d", rec.Plies)
	}
	if rec.AI != board.Black {
		t.Fatalf("expected the engine to play black, got %s", rec.AI)
	}
	if len(rec.Times) == 0 {
		t.Fatalf("no search times recorded")
	}
	if !strings.HasPrefix(out.String(), "player is: white, ai is: black\n") {
		t.Fatalf("unexpected output start: %q", out.String())
	}
}

func TestPlayHuman(t *testing.T) {
	var out bytes.Buffer
	opts := options{Player: board.White, Human: true, MaxPlies: 2, Quiet: true}
	rec, err := play(context.Background(), smallConfig(), opts, strings.NewReader("x\n99\n0\n"), &out)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if rec.Plies != 2 {
		t.Fatalf("expected 2 plies, got %d", rec.Plies)
	}
	if c := strings.Count(out.String(), "Move must be an integer"); c != 2 {
		t.Fatalf("expected 2 input errors, got %d in %q", c, out.String())
	}
}

func TestPlayHumanEOF(t *testing.T) {
	opts := options{Player: board.White, Human: true, MaxPlies: 2, Quiet: true}
	if _, err := play(context.Background(), smallConfig(), opts, strings.NewReader(""), &bytes.Buffer{}); err == nil {
		t.Fatalf("expected an error when input ends")
	}
}

func TestPlayWithoutKing(t *testing.T) {
	cfg := smallConfig()
	cfg.Arrangement = board.Arrangement{
		"black_king": {board.Pos(0, 2)},
		"white_rook": {board.Pos(7, 0)},
	}
	var out bytes.Buffer
	opts := options{Player: board.White, MaxPlies: 10, Quiet: true}
	rec, err := play(context.Background(), cfg, opts, strings.NewReader(""), &out)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if !rec.Won || rec.Winner != board.Black || rec.Plies != 0 {
		t.Fatalf("expected black to win without a move, got %+v", rec)
	}
	if !strings.Contains(out.String(), "white has no king") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestPlayStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	opts := options{Player: board.White, MaxPlies: 10, Quiet: true}
	rec, err := play(ctx, smallConfig(), opts, strings.NewReader(""), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if rec.Plies != 0 || rec.Won {
		t.Fatalf("expected no moves after cancellation, got %+v", rec)
	}
}

func TestWriteGameRecord(t *testing.T) {
	rec := gameRecord{
		When:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Winner: board.Black,
		Won:    true,
		Plies:  17,
		AI:     board.Black,
		Depth:  2,
		Height: 8,
		Width:  4,
		Times:  []time.Duration{time.Second, 3 * time.Second},
		Note:   "test",
	}
	mean, _ := rec.timeStats()
	if mean != 2 {
		t.Fatalf("mean = %v, want 2", mean)
	}

	var buf bytes.Buffer
	if err := writeGameRecord(&buf, rec); err != nil {
		t.Fatalf("writeGameRecord: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	if len(lines) != 7 || lines[0] != "" || lines[1] != logRule || lines[6] != logRule {
		t.Fatalf("unexpected layout: %q", buf.String())
	}
	if lines[3] != "The winner is: black in 17 moves" {
		t.Fatalf("win line = %q", lines[3])
	}
	if !strings.HasPrefix(lines[4], "The ai(black) took an average of 2.00s") {
		t.Fatalf("time line = %q", lines[4])
	}
	if lines[5] != "Note: test" {
		t.Fatalf("note line = %q", lines[5])
	}
}

func TestTimeStatsFewSamples(t *testing.T) {
	if mean, sd := (gameRecord{}).timeStats(); mean != 0 || sd != 0 {
		t.Fatalf("empty: %v %v", mean, sd)
	}
	rec := gameRecord{Times: []time.Duration{500 * time.Millisecond}}
	if mean, sd := rec.timeStats(); mean != 0.5 || sd != 0 {
		t.Fatalf("single: %v %v", mean, sd)
	}
}

func TestAppendGameLog(t *testing.T) {
	path := t.TempDir() + "/chess_log.txt"
	rec := gameRecord{When: time.Now(), Plies: 3, Note: "first"}
	if err := appendGameLog(path, rec); err != nil {
		t.Fatalf("appendGameLog: %v", err)
	}
	rec.Note = "second"
	if err := appendGameLog(path, rec); err != nil {
		t.Fatalf("appendGameLog: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if c := strings.Count(string(data), logRule); c != 4 {
		t.Fatalf("expected 4 rules, got %d", c)
	}
	if !strings.Contains(string(data), "No winner after 3 moves") {
		t.Fatalf("missing win text in %q", data)
	}
}
