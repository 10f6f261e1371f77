package board_test

import (
	"errors"
	"testing"

	"chess-minimax/board"
	"chess-minimax/movegen"
)

func TestNewStateRejectsDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 8}, {9, 8}, {8, 0}, {8, 9}, {-1, 3}} {
		_, err := board.NewState(dims[0], dims[1], board.Arrangement{}, movegen.New())
		if !errors.Is(err, board.ErrInvalidDimensions) {
			t.Fatalf("%dx%d: expected ErrInvalidDimensions, got %v", dims[0], dims[1], err)
		}
	}
}

func TestNewStateRejectsBadArrangements(t *testing.T) {
	tests := []struct {
		name string
		arr  board.Arrangement
		want error
	}{
		{"unknown type", board.Arrangement{"black_dragon": {board.Pos(0, 0)}}, board.ErrUnknownPiece},
		{"unknown color", board.Arrangement{"red_king": {board.Pos(0, 0)}}, board.ErrUnknownPiece},
		{"no separator", board.Arrangement{"king": {board.Pos(0, 0)}}, board.ErrUnknownPiece},
		{"out of bounds", board.Arrangement{"black_king": {board.Pos(0, 4)}}, board.ErrOutOfBounds},
		{"occupied", board.Arrangement{
			"black_king": {board.Pos(0, 0)},
			"white_king": {board.Pos(0, 0)},
		}, board.ErrOccupied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := board.NewState(8, 4, tt.arr, movegen.New())
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestNewStateAssignsIndicesRowMajor(t *testing.T) {
	st, err := board.NewState(8, 8, nil, movegen.New())
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}

	checks := map[board.Position]board.Piece{
		board.Pos(1, 0): {Color: board.Black, Type: board.Pawn, Index: 0},
		board.Pos(1, 7): {Color: board.Black, Type: board.Pawn, Index: 7},
		board.Pos(0, 0): {Color: board.Black, Type: board.Rook, Index: 0},
		board.Pos(0, 7): {Color: board.Black, Type: board.Rook, Index: 1},
		board.Pos(7, 1): {Color: board.White, Type: board.Knight, Index: 0},
		board.Pos(7, 6): {Color: board.White, Type: board.Knight, Index: 1},
		board.Pos(7, 4): {Color: board.White, Type: board.King, Index: 0},
	}
	for pos, want := range checks {
		got, ok := st.Grid.At(pos)
		if !ok || got != want {
			t.Fatalf("at %v: got %v (occupied=%v), want %v", pos, got, ok, want)
		}
	}

	// Same arrangement, same identities, whatever the input order.
	arr := board.StandardArrangement()
	pawns := arr["white_pawn"]
	for i, j := 0, len(pawns)-1; i < j; i, j = i+1, j-1 {
		pawns[i], pawns[j] = pawns[j], pawns[i]
	}
	again, err := board.NewState(8, 8, arr, movegen.New())
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	if diff := diffStates(st, again); diff != "" {
		t.Fatalf("states differ (-first +second):\n%s", diff)
	}
}

func TestNewStateMoveSets(t *testing.T) {
	st, err := board.NewState(8, 8, nil, movegen.New())
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	for _, c := range board.Colors {
		ms := st.MoveSet(c)
		if len(ms) != 16 {
			t.Fatalf("%s: expected 16 entries, got %d", c, len(ms))
		}
		// 8 pawns with two pushes each plus 2 knights with two jumps each.
		if got := len(ms.Moves()); got != 20 {
			t.Fatalf("%s: expected 20 opening moves, got %d", c, got)
		}
		rook := board.Piece{Color: c, Type: board.Rook}
		if moves, ok := ms[rook]; !ok || len(moves) != 0 {
			t.Fatalf("%s: expected empty entry for blocked rook, got %v (present=%v)", c, moves, ok)
		}
	}
}

func TestMoveSetPiecesSorted(t *testing.T) {
	st, err := board.NewState(8, 4, board.SmallArrangement(), movegen.New())
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	pieces := st.MoveSet(board.Black).Pieces()
	for i := 1; i < len(pieces); i++ {
		if !pieces[i-1].Less(pieces[i]) {
			t.Fatalf("pieces not sorted at %d: %v then %v", i, pieces[i-1], pieces[i])
		}
	}
}
