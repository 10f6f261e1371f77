package board_test

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"chess-minimax/board"
)

var stateOpts = []cmp.Option{
	cmp.AllowUnexported(board.Grid{}),
	cmpopts.EquateEmpty(),
}

func diffStates(want, got *board.State) string {
	return cmp.Diff(want, got, stateOpts...)
}
