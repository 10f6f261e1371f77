package board

import "errors"

var (
	// ErrInvalidDimensions is returned when a height or width is outside 1..8.
	ErrInvalidDimensions = errors.New("height and width must be between 1 and 8")

	// ErrUnknownPiece is returned for an arrangement key that is not "{color}_{type}".
	ErrUnknownPiece = errors.New("unknown piece")

	// ErrOutOfBounds is returned for a position outside the grid.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrOccupied is returned when an arrangement places two pieces on one square.
	ErrOccupied = errors.New("square already occupied")

	// ErrEmptyOrigin is returned when a move starts on an empty square.
	ErrEmptyOrigin = errors.New("no piece on origin square")

	// ErrInvalidFEN is returned when a FEN string cannot be imported.
	ErrInvalidFEN = errors.New("invalid FEN string")
)
