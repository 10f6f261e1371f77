package board

import "math/rand"

// Zobrist keys per color, piece slot and square. Slot 7 is used for kings
// other than index 0, which do not count for win detection.
var zobristPiece [2][8][64]uint64
var zobristSide uint64 // black to move

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed so hashes are stable between runs.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for c := 0; c < 2; c++ {
		for slot := 0; slot < 8; slot++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][slot][sq] = rnd.Uint64()
			}
		}
	}
	zobristSide = rnd.Uint64()
}

// Hash returns the Zobrist key of the grid with side to move.
func (g Grid) Hash(side Color) uint64 {
	var key uint64
	g.Each(func(p Position, piece Piece) {
		slot := int(piece.Type)
		if piece.Type == King && piece.Index != 0 {
			slot = 7
		}
		key ^= zobristPiece[piece.Color][slot][p.Square()]
	})
	if side == Black {
		key ^= zobristSide
	}
	return key
}
