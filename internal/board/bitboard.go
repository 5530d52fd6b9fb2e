package board

import (
	"math/bits"
	"strings"
)

// Bitboard is a set of squares, one bit per square.
// Bit 0 is a1, bit 7 is h1, bit 56 is a8 and bit 63 is h8.
type Bitboard uint64

// Rank masks.
const (
	Rank1 Bitboard = 0x00000000000000FF
	Rank2 Bitboard = 0x000000000000FF00
	Rank3 Bitboard = 0x0000000000FF0000
	Rank4 Bitboard = 0x00000000FF000000
	Rank5 Bitboard = 0x000000FF00000000
	Rank6 Bitboard = 0x0000FF0000000000
	Rank7 Bitboard = 0x00FF000000000000
	Rank8 Bitboard = 0xFF00000000000000
)

// File masks.
const (
	FileA Bitboard = 0x0101010101010101
	FileH Bitboard = 0x8080808080808080
)

const (
	Empty    Bitboard = 0
	Universe Bitboard = 0xFFFFFFFFFFFFFFFF
)

// SquareBB returns a bitboard with only sq set.
func SquareBB(sq Square) Bitboard {
	return 1 << sq
}

// Set returns b with sq added.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | (1 << sq)
}

// Clear returns b with sq removed.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ (1 << sq)
}

// IsSet reports whether sq is in the set.
func (b Bitboard) IsSet(sq Square) bool {
	return (b>>sq)&1 != 0
}

// PopCount returns the number of squares in the set.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the lowest square in the set, or NoSquare.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB removes and returns the lowest square.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// ForEach calls f for each square in ascending order.
func (b Bitboard) ForEach(f func(Square)) {
	for b != 0 {
		f(b.PopLSB())
	}
}

// Squares returns the squares in the set in ascending order.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	for b != 0 {
		squares = append(squares, b.PopLSB())
	}
	return squares
}

// String draws the set as an 8x8 grid, rank 8 first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			if b.IsSet(NewSquare(file, rank)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
