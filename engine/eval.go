package engine

import "chess-minimax/board"

// Maximizer is the side whose material counts positive.
const Maximizer = board.Black

// PieceWorth is the material value of each piece type.
var PieceWorth = [7]int32{
	board.NoPieceType: 0,
	board.Pawn:        1,
	board.Knight:      3,
	board.Bishop:      3,
	board.Rook:        5,
	board.Queen:       9,
	board.King:        30,
}

// Evaluate returns the material balance of g: black pieces add their worth,
// white pieces subtract it.
func Evaluate(g board.Grid) int32 {
	var score int32
	g.Each(func(_ board.Position, piece board.Piece) {
		if piece.Color == Maximizer {
			score += PieceWorth[piece.Type]
		} else {
			score -= PieceWorth[piece.Type]
		}
	})
	return score
}

// HasWon reports the winner, if any. A side has lost once its king with
// index 0 no longer has a move set entry, i.e. has been captured. There is
// no checkmate.
func HasWon(black, white board.MoveSet) (winner board.Color, ok bool) {
	if !white.Has(board.Piece{Color: board.White, Type: board.King}) {
		return board.Black, true
	}
	if !black.Has(board.Piece{Color: board.Black, Type: board.King}) {
		return board.White, true
	}
	return board.White, false
}

func stateWinner(s *board.State) (board.Color, bool) {
	return HasWon(s.Moves[board.Black], s.Moves[board.White])
}
