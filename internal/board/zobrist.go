package board

// Zobrist keys, generated once from a fixed seed so hashes are stable
// across runs and can be persisted.
var (
	zobristPiece      [2][6][64]uint64
	zobristEnPassant  [8]uint64 // by file
	zobristCastling   [16]uint64
	zobristSideToMove uint64
)

func init() {
	initZobrist()
}

// xorshift64*
type prng struct {
	state uint64
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := &prng{state: 0x98F107A2BEEF1234}

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := A1; sq <= H8; sq++ {
				zobristPiece[c][pt][sq] = rng.next()
			}
		}
	}
	for file := range zobristEnPassant {
		zobristEnPassant[file] = rng.next()
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}
	zobristSideToMove = rng.next()
}

// Hash returns the Zobrist key of the position. Boards with the same
// pieces, side to move, castling rights and en passant file hash equal;
// the clocks are not part of the key.
func (b *Board) Hash() uint64 {
	var h uint64
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			b.Pieces[c][pt].ForEach(func(sq Square) {
				h ^= zobristPiece[c][pt][sq]
			})
		}
	}
	if b.SideToMove == Black {
		h ^= zobristSideToMove
	}
	h ^= zobristCastling[b.castling&AllCastling]
	if b.HasEnPassant() {
		h ^= zobristEnPassant[b.EnPassant.File()]
	}
	return h
}
