package movegen

import "chess-minimax/board"

// Step masks on the full 8x8 layout. Squares outside a smaller grid are
// masked off by the caller.
var knightMoves [64]uint64
var kingMoves [64]uint64

// pawnAttacks[color][sq] holds the squares a pawn of color on sq captures on.
var pawnAttacks [2][64]uint64

func init() {
	initAttackTables()
}

func initAttackTables() {
	knightOffsets := [8][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	kingOffsets := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	for sq := 0; sq < 64; sq++ {
		row, col := sq/8, sq%8
		knightMoves[sq] = offsetMask(row, col, knightOffsets[:])
		kingMoves[sq] = offsetMask(row, col, kingOffsets[:])
		pawnAttacks[board.Black][sq] = offsetMask(row, col, [][2]int{{1, 1}, {1, -1}})
		pawnAttacks[board.White][sq] = offsetMask(row, col, [][2]int{{-1, 1}, {-1, -1}})
	}
}

func offsetMask(row, col int, offsets [][2]int) uint64 {
	var mask uint64
	for _, off := range offsets {
		r, c := row+off[0], col+off[1]
		if r >= 0 && r < 8 && c >= 0 && c < 8 {
			mask |= uint64(1) << uint(r*8+c)
		}
	}
	return mask
}

func bit(p board.Position) uint64 { return uint64(1) << p.Square() }
