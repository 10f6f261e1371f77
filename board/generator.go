package board

// Generator computes piece geometry. Legality is whatever the generator says
// it is; the rest of the engine trusts it.
type Generator interface {
	// Destinations returns the squares a piece of color c and type t standing
	// on at may move to on g, in row-major order.
	Destinations(c Color, t PieceType, at Position, g Grid) []Position

	// Affected returns the occupied squares, other than at itself, whose
	// pieces' destinations depend on the occupancy of at.
	Affected(at Position, g Grid) []Position
}
