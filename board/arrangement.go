package board

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// Arrangement maps "{color}_{type}" keys (for example "black_rook") to the
// squares holding such pieces.
type Arrangement map[string][]Position

// Key builds the arrangement key for a color and piece type.
func Key(c Color, t PieceType) string { return c.String() + "_" + t.String() }

// ParseKey splits an arrangement key into color and piece type.
func ParseKey(key string) (Color, PieceType, error) {
	colorName, typeName, ok := strings.Cut(key, "_")
	if !ok {
		return White, NoPieceType, fmt.Errorf("%w: key %q", ErrUnknownPiece, key)
	}
	color, err := ParseColor(colorName)
	if err != nil {
		return White, NoPieceType, err
	}
	pieceType, err := ParsePieceType(typeName)
	if err != nil {
		return White, NoPieceType, err
	}
	return color, pieceType, nil
}

func row(r, width int) []Position {
	out := make([]Position, width)
	for c := range out {
		out[c] = Pos(r, c)
	}
	return out
}

// StandardArrangement is the usual 8x8 starting position with black on rows
// 0 and 1.
func StandardArrangement() Arrangement {
	return Arrangement{
		"black_pawn":   row(1, 8),
		"black_rook":   {Pos(0, 0), Pos(0, 7)},
		"black_knight": {Pos(0, 1), Pos(0, 6)},
		"black_bishop": {Pos(0, 2), Pos(0, 5)},
		"black_queen":  {Pos(0, 3)},
		"black_king":   {Pos(0, 4)},
		"white_pawn":   row(6, 8),
		"white_rook":   {Pos(7, 0), Pos(7, 7)},
		"white_knight": {Pos(7, 1), Pos(7, 6)},
		"white_bishop": {Pos(7, 2), Pos(7, 5)},
		"white_queen":  {Pos(7, 3)},
		"white_king":   {Pos(7, 4)},
	}
}

// SmallArrangement is a reduced 8x4 set: no knights, one rook and one bishop
// per side.
func SmallArrangement() Arrangement {
	return Arrangement{
		"black_pawn":   row(1, 4),
		"black_rook":   {Pos(0, 0)},
		"black_queen":  {Pos(0, 1)},
		"black_king":   {Pos(0, 2)},
		"black_bishop": {Pos(0, 3)},
		"white_pawn":   row(6, 4),
		"white_rook":   {Pos(7, 0)},
		"white_queen":  {Pos(7, 1)},
		"white_king":   {Pos(7, 2)},
		"white_bishop": {Pos(7, 3)},
	}
}

// ArrangementFromFEN reads the piece placement of an 8x8 FEN string. Only the
// placement matters; the remaining fields are ignored. Rank 8 maps to row 0.
func ArrangementFromFEN(fen string) (Arrangement, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidFEN)
	}
	if err := checkPlacement(fields[0]); err != nil {
		return nil, err
	}
	b := dragontoothmg.ParseFen(fields[0] + " w - - 0 1")

	arr := Arrangement{}
	addBitboards(arr, White, &b.White)
	addBitboards(arr, Black, &b.Black)
	return arr, nil
}

func addBitboards(arr Arrangement, c Color, bb *dragontoothmg.Bitboards) {
	byType := map[PieceType]uint64{
		Pawn:   bb.Pawns,
		Knight: bb.Knights,
		Bishop: bb.Bishops,
		Rook:   bb.Rooks,
		Queen:  bb.Queens,
		King:   bb.Kings,
	}
	for _, t := range PieceTypes {
		for set := byType[t]; set != 0; set &= set - 1 {
			sq := bits.TrailingZeros64(set)
			// dragontoothmg numbers a1 as 0.
			pos := Pos(MaxDimension-1-sq/8, sq%8)
			arr[Key(c, t)] = append(arr[Key(c, t)], pos)
		}
	}
}

func checkPlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != MaxDimension {
		return fmt.Errorf("%w: want 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}
	for i, rank := range ranks {
		files := 0
		for _, ch := range rank {
			switch {
			case ch >= '1' && ch <= '8':
				files += int(ch - '0')
			case strings.ContainsRune("pnbrqkPNBRQK", ch):
				files++
			default:
				return fmt.Errorf("%w: bad character %q in rank %d", ErrInvalidFEN, ch, 8-i)
			}
		}
		if files != MaxDimension {
			return fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, 8-i, files)
		}
	}
	return nil
}
