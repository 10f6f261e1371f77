package engine

import "chess-minimax/board"

// Perft counts the leaves of the move tree below st, depth plies deep with
// side to move first. A position where a king has been captured is a leaf.
func Perft(gen board.Generator, st *board.State, depth int, side board.Color) uint64 {
	if depth <= 0 {
		return 1
	}
	if _, won := stateWinner(st); won {
		return 1
	}
	var nodes uint64
	for _, m := range st.Moves[side].Moves() {
		child, err := st.Apply(gen, m)
		if err != nil {
			// Moves come from the state itself.
			panic(err)
		}
		nodes += Perft(gen, child, depth-1, side.Opponent())
	}
	return nodes
}

// PerftDivide returns the Perft count below each root move.
func PerftDivide(gen board.Generator, st *board.State, depth int, side board.Color) map[board.Move]uint64 {
	div := make(map[board.Move]uint64)
	if depth <= 0 {
		return div
	}
	for _, m := range st.Moves[side].Moves() {
		child, err := st.Apply(gen, m)
		if err != nil {
			panic(err)
		}
		div[m] = Perft(gen, child, depth-1, side.Opponent())
	}
	return div
}
