package board_test

import (
	"errors"
	"math/rand"
	"testing"

	"chess-minimax/board"
	"chess-minimax/movegen"
)

func TestApplyDoesNotMutateInputs(t *testing.T) {
	gen := movegen.New()
	st, err := board.NewState(8, 8, nil, gen)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	snapshot := st.Clone()

	for _, c := range board.Colors {
		for _, m := range st.MoveSet(c).Moves() {
			next, err := st.Apply(gen, m)
			if err != nil {
				t.Fatalf("Apply %v: %v", m, err)
			}
			if diff := diffStates(snapshot, st); diff != "" {
				t.Fatalf("Apply %v changed its input (-before +after):\n%s", m, diff)
			}
			// The result must not alias the input either.
			delete(next.Moves[board.White], board.Piece{Color: board.White, Type: board.Pawn})
			if diff := diffStates(snapshot, st); diff != "" {
				t.Fatalf("result of %v aliases its input:\n%s", m, diff)
			}
		}
	}
}

func TestApplyCaptureRemovesVictim(t *testing.T) {
	gen := movegen.New()
	st, err := board.NewState(8, 4, board.Arrangement{
		"black_rook":   {board.Pos(0, 0)},
		"black_king":   {board.Pos(0, 3)},
		"white_knight": {board.Pos(4, 0)},
		"white_king":   {board.Pos(7, 3)},
	}, gen)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}

	knight := board.Piece{Color: board.White, Type: board.Knight}
	rook := board.Piece{Color: board.Black, Type: board.Rook}
	if !st.MoveSet(board.White).Has(knight) {
		t.Fatalf("knight missing before capture")
	}

	next, err := st.Apply(gen, board.Move{From: board.Pos(0, 0), To: board.Pos(4, 0)})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if next.MoveSet(board.White).Has(knight) {
		t.Fatalf("captured knight still has an entry")
	}
	moves, ok := next.MoveSet(board.Black)[rook]
	if !ok || len(moves) == 0 {
		t.Fatalf("rook entry missing or empty after capture: %v", moves)
	}
	for _, m := range moves {
		if m.From != board.Pos(4, 0) {
			t.Fatalf("rook move %v does not start from its new square", m)
		}
	}
	if got, _ := next.Grid.At(board.Pos(4, 0)); got != rook {
		t.Fatalf("expected rook on (4,0), got %v", got)
	}
	if _, ok := next.Grid.At(board.Pos(0, 0)); ok {
		t.Fatalf("origin still occupied")
	}
}

func TestApplyRejectsEmptyOrigin(t *testing.T) {
	gen := movegen.New()
	st, err := board.NewState(8, 8, nil, gen)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	_, err = st.Apply(gen, board.Move{From: board.Pos(4, 4), To: board.Pos(3, 4)})
	if !errors.Is(err, board.ErrEmptyOrigin) {
		t.Fatalf("expected ErrEmptyOrigin, got %v", err)
	}
	_, err = st.Apply(gen, board.Move{From: board.Pos(1, 0), To: board.Pos(-1, 0)})
	if !errors.Is(err, board.ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

// Incremental updates must agree with rebuilding every move set from the grid.
func TestApplyMatchesRecompute(t *testing.T) {
	gen := movegen.New()
	setups := []struct {
		name          string
		height, width int
		arr           board.Arrangement
	}{
		{"standard", 8, 8, board.StandardArrangement()},
		{"small", 8, 4, board.SmallArrangement()},
	}

	for _, setup := range setups {
		t.Run(setup.name, func(t *testing.T) {
			rnd := rand.New(rand.NewSource(7))
			for game := 0; game < 20; game++ {
				st, err := board.NewState(setup.height, setup.width, setup.arr, gen)
				if err != nil {
					t.Fatalf("NewState: %v", err)
				}
				side := board.White
				for ply := 0; ply < 80; ply++ {
					moves := st.MoveSet(side).Moves()
					if len(moves) == 0 {
						break
					}
					m := moves[rnd.Intn(len(moves))]
					st, err = st.Apply(gen, m)
					if err != nil {
						t.Fatalf("Apply %v: %v", m, err)
					}
					if diff := diffStates(st.Recompute(gen), st); diff != "" {
						t.Fatalf("game %d ply %d after %v (-full +incremental):\n%s", game, ply, m, diff)
					}
					king := board.Piece{Color: side.Opponent(), Type: board.King}
					if !st.MoveSet(side.Opponent()).Has(king) {
						break
					}
					side = side.Opponent()
				}
			}
		})
	}
}
