// Package movegen is the default move generator for rectangular boards of
// up to 8x8. It knows piece geometry only: no check, castling, en passant or
// promotion. Kings may walk into attacks; the game is won by capturing one.
package movegen

import (
	"math/bits"

	"chess-minimax/board"

	"github.com/dylhunn/dragontoothmg"
)

// Generator implements board.Generator. The zero value is ready to use and
// holds no state, so one value can serve concurrent searches.
type Generator struct{}

// New returns a Generator.
func New() *Generator { return &Generator{} }

var _ board.Generator = (*Generator)(nil)

// layout is the bitboard view of a grid. Squares use board.Position.Square.
type layout struct {
	byColor [2]uint64
	byType  [7]uint64
	all     uint64
	off     uint64
}

func newLayout(g board.Grid) layout {
	l := layout{byColor: g.Occupancy()}
	g.Each(func(p board.Position, piece board.Piece) {
		l.byType[piece.Type] |= bit(p)
	})
	l.all = l.byColor[board.White] | l.byColor[board.Black]
	l.off = g.OffBoard()
	return l
}

// Destinations returns the squares reachable by a piece of color c and type t
// on at. Own pieces block; enemy pieces may be captured.
func (gen *Generator) Destinations(c board.Color, t board.PieceType, at board.Position, g board.Grid) []board.Position {
	l := newLayout(g)
	return positions(l.targets(c, t, at, g))
}

func (l layout) targets(c board.Color, t board.PieceType, at board.Position, g board.Grid) uint64 {
	sq := at.Square()
	// Off-board squares act as blockers so sliders stop at the grid edge.
	blockers := l.all | l.off

	var bb uint64
	switch t {
	case board.Pawn:
		bb = l.pawnTargets(c, at, g)
	case board.Knight:
		bb = knightMoves[sq]
	case board.Bishop:
		bb = dragontoothmg.CalculateBishopMoveBitboard(sq, blockers)
	case board.Rook:
		bb = dragontoothmg.CalculateRookMoveBitboard(sq, blockers)
	case board.Queen:
		bb = dragontoothmg.CalculateBishopMoveBitboard(sq, blockers) |
			dragontoothmg.CalculateRookMoveBitboard(sq, blockers)
	case board.King:
		bb = kingMoves[sq]
	}
	return bb &^ l.byColor[c] &^ l.off
}

// forward is the row direction pawns of color c advance in.
func forward(c board.Color) int {
	if c == board.Black {
		return 1
	}
	return -1
}

// homeRow is the row from which pawns of color c may advance two squares.
func homeRow(c board.Color, height int) int {
	if c == board.Black {
		return 1
	}
	return height - 2
}

func (l layout) pawnTargets(c board.Color, at board.Position, g board.Grid) uint64 {
	var bb uint64
	dir := forward(c)
	one := board.Pos(at.Row+dir, at.Col)
	if g.Contains(one) && l.all&bit(one) == 0 {
		bb |= bit(one)
		two := board.Pos(at.Row+2*dir, at.Col)
		if at.Row == homeRow(c, g.Height()) && g.Contains(two) && l.all&bit(two) == 0 {
			bb |= bit(two)
		}
	}
	bb |= pawnAttacks[c][at.Square()] & l.byColor[c.Opponent()]
	return bb
}

// Affected returns the occupied squares whose pieces can reach, pass through
// or push onto at. Their destinations must be recomputed whenever the
// occupancy of at changes. The answer may include pieces whose moves turn
// out unchanged.
func (gen *Generator) Affected(at board.Position, g board.Grid) []board.Position {
	l := newLayout(g)
	sq := at.Square()
	blockers := l.all | l.off

	var out uint64
	// The first piece on each ray from at is the one that sees it.
	orthogonal := dragontoothmg.CalculateRookMoveBitboard(sq, blockers) & l.all
	diagonal := dragontoothmg.CalculateBishopMoveBitboard(sq, blockers) & l.all
	out |= orthogonal & (l.byType[board.Rook] | l.byType[board.Queen])
	out |= diagonal & (l.byType[board.Bishop] | l.byType[board.Queen])

	out |= knightMoves[sq] & l.byType[board.Knight]
	out |= kingMoves[sq] & l.byType[board.King]

	pawns := l.byType[board.Pawn]
	// A pawn that captures onto at stands where an enemy pawn on at would capture.
	out |= pawnAttacks[board.White][sq] & pawns & l.byColor[board.Black]
	out |= pawnAttacks[board.Black][sq] & pawns & l.byColor[board.White]
	for _, c := range board.Colors {
		dir := forward(c)
		for step := 1; step <= 2; step++ {
			behind := board.Pos(at.Row-step*dir, at.Col)
			if g.Contains(behind) {
				out |= bit(behind) & pawns & l.byColor[c]
			}
		}
	}

	out &^= uint64(1) << sq
	return positions(out)
}

// positions lists the set squares of bb in row-major order.
func positions(bb uint64) []board.Position {
	out := make([]board.Position, 0, bits.OnesCount64(bb))
	for ; bb != 0; bb &= bb - 1 {
		out = append(out, board.PositionOf(uint8(bits.TrailingZeros64(bb))))
	}
	return out
}
