package engine

import "errors"

var (
	// ErrNoLegalMoves is returned when the side to move still has its king
	// but no move at all. Stalemate is not modelled beyond this.
	ErrNoLegalMoves = errors.New("no legal moves")

	// ErrUnimplementedRule is returned by rule queries the engine does not
	// support, such as check detection.
	ErrUnimplementedRule = errors.New("rule not implemented")

	// ErrIllegalMove is returned when a real move is not in the mover's move set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrUnknownMove is returned by priority lookups for a move never recorded.
	ErrUnknownMove = errors.New("move not in priority table")

	// ErrGameOver is returned when asked to move after a king was captured.
	ErrGameOver = errors.New("game is over")

	// errSearchAborted unwinds the search when time runs out or the context
	// is cancelled.
	errSearchAborted = errors.New("search aborted")
)
