package board

import "fmt"

// CastlingRights is the set of castling options still available.
type CastlingRights uint8

const (
	WhiteKingSide  CastlingRights = 1 << iota // K
	WhiteQueenSide                            // Q
	BlackKingSide                             // k
	BlackQueenSide                            // q
	NoCastling     CastlingRights = 0
	AllCastling    CastlingRights = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

// String returns the FEN field, "KQkq" order, or "-" when empty.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSide != 0 {
		s += "K"
	}
	if cr&WhiteQueenSide != 0 {
		s += "Q"
	}
	if cr&BlackKingSide != 0 {
		s += "k"
	}
	if cr&BlackQueenSide != 0 {
		s += "q"
	}
	return s
}

// Has reports whether side c keeps the right to castle on the given wing.
func (cr CastlingRights) Has(c Color, kingSide bool) bool {
	var flag CastlingRights
	switch {
	case c == White && kingSide:
		flag = WhiteKingSide
	case c == White:
		flag = WhiteQueenSide
	case kingSide:
		flag = BlackKingSide
	default:
		flag = BlackQueenSide
	}
	return cr&flag != 0
}

// Starting masks, one per (side, kind).
const (
	whitePawnsStart   Bitboard = 0x000000000000FF00
	whiteKnightsStart Bitboard = 0x0000000000000042
	whiteBishopsStart Bitboard = 0x0000000000000024
	whiteRooksStart   Bitboard = 0x0000000000000081
	whiteQueenStart   Bitboard = 0x0000000000000008
	whiteKingStart    Bitboard = 0x0000000000000010

	blackPawnsStart   Bitboard = 0x00FF000000000000
	blackKnightsStart Bitboard = 0x4200000000000000
	blackBishopsStart Bitboard = 0x2400000000000000
	blackRooksStart   Bitboard = 0x8100000000000000
	blackQueenStart   Bitboard = 0x0800000000000000
	blackKingStart    Bitboard = 0x1000000000000000
)

var startingMasks = [2][6]Bitboard{
	White: {
		Pawn:   whitePawnsStart,
		Knight: whiteKnightsStart,
		Bishop: whiteBishopsStart,
		Rook:   whiteRooksStart,
		Queen:  whiteQueenStart,
		King:   whiteKingStart,
	},
	Black: {
		Pawn:   blackPawnsStart,
		Knight: blackKnightsStart,
		Bishop: blackBishopsStart,
		Rook:   blackRooksStart,
		Queen:  blackQueenStart,
		King:   blackKingStart,
	},
}

// StartingMask returns the standard starting squares for (c, pt).
func StartingMask(c Color, pt PieceType) Bitboard {
	if c >= NoColor || pt >= NoPieceType {
		return Empty
	}
	return startingMasks[c][pt]
}

// Board is the full state of a chess position.
//
// Pieces is the source of truth. The occupancy sets are derived from it and
// are only valid after UpdateOccupancy; anything that writes Pieces directly
// must call UpdateOccupancy before reading Occupancy, AllPieces or
// IsOccupied.
type Board struct {
	// Pieces[side][kind] holds the squares of that kind of piece.
	Pieces [2][6]Bitboard

	occupancy [2]Bitboard
	allPieces Bitboard

	SideToMove     Color
	EnPassant      Square // NoSquare when there is no target
	HalfMoveClock  int
	FullMoveNumber int

	// Rights can be revoked but never granted after construction.
	castling CastlingRights
}

// New returns a board set up in the standard starting position.
func New() *Board {
	b := newEmpty()
	b.SetStartingPosition()
	return b
}

// newEmpty returns a board with no pieces and default game metadata.
func newEmpty() *Board {
	return &Board{
		SideToMove:     White,
		EnPassant:      NoSquare,
		HalfMoveClock:  0,
		FullMoveNumber: 1,
		castling:       AllCastling,
	}
}

// SetStartingPosition assigns every (side, kind) its starting mask.
// Game metadata is left untouched.
func (b *Board) SetStartingPosition() {
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			b.Pieces[c][pt] = StartingMask(c, pt)
		}
	}
	b.UpdateOccupancy()
}

// UpdateOccupancy recomputes the per-side and combined occupancy from Pieces.
func (b *Board) UpdateOccupancy() {
	b.occupancy = [2]Bitboard{}
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			b.occupancy[c] |= b.Pieces[c][pt]
		}
	}
	b.allPieces = b.occupancy[White] | b.occupancy[Black]
}

// Occupancy returns every square holding a piece of side c.
func (b *Board) Occupancy(c Color) Bitboard {
	if c >= NoColor {
		return Empty
	}
	return b.occupancy[c]
}

// AllPieces returns every occupied square.
func (b *Board) AllPieces() Bitboard {
	return b.allPieces
}

// IsOccupied reports whether any piece stands on sq.
func (b *Board) IsOccupied(sq Square) bool {
	return sq.IsValid() && b.allPieces.IsSet(sq)
}

// PieceAt returns the piece on sq, or NoPiece.
//
// Sides are tried White then Black and kinds Pawn through King; the first
// mask with the bit set wins. This relies on no two masks sharing a square.
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	found := NoPiece
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			if (b.Pieces[c][pt]>>sq)&1 == 0 {
				continue
			}
			if !debugAssertions {
				return NewPiece(pt, c)
			}
			if found != NoPiece {
				panic(fmt.Sprintf("board: square %s claimed by both %s and %s",
					sq, found, NewPiece(pt, c)))
			}
			found = NewPiece(pt, c)
		}
	}
	return found
}

// CastlingRights returns the rights still available.
func (b *Board) CastlingRights() CastlingRights {
	return b.castling
}

// RevokeCastling clears the given rights. Rights already gone stay gone.
func (b *Board) RevokeCastling(cr CastlingRights) {
	b.castling &^= cr
}

// HasEnPassant reports whether an en passant target is set.
func (b *Board) HasEnPassant() bool {
	return b.EnPassant.IsValid()
}

// Copy returns an independent snapshot of b.
func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// Overlaps returns the squares claimed by more than one (side, kind) mask.
func (b *Board) Overlaps() Bitboard {
	var seen, twice Bitboard
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			m := b.Pieces[c][pt]
			twice |= seen & m
			seen |= m
		}
	}
	return twice
}

// Validate checks the board invariants and the basic shape of a chess
// position. It does not look at move legality.
func (b *Board) Validate() error {
	if ov := b.Overlaps(); ov != 0 {
		return malformed("placement", fmt.Sprintf("overlapping pieces on %v", ov.Squares()))
	}

	var occ [2]Bitboard
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			occ[c] |= b.Pieces[c][pt]
		}
	}
	if occ != b.occupancy || occ[White]|occ[Black] != b.allPieces {
		return malformed("occupancy", "stale derived sets")
	}

	for c := White; c <= Black; c++ {
		if n := b.Pieces[c][King].PopCount(); n != 1 {
			return malformed("placement", fmt.Sprintf("%s has %d kings", c, n))
		}
	}
	if (b.Pieces[White][Pawn]|b.Pieces[Black][Pawn])&(Rank1|Rank8) != 0 {
		return malformed("placement", "pawn on first or last rank")
	}

	if b.SideToMove >= NoColor {
		return malformed("side", b.SideToMove.String())
	}
	if b.HasEnPassant() {
		want := 5 // rank 6, after a black double step
		if b.SideToMove == Black {
			want = 2
		}
		if b.EnPassant.Rank() != want {
			return malformed("en passant", b.EnPassant.String())
		}
	} else if b.EnPassant != NoSquare {
		return &PositionError{Field: "en passant", Value: fmt.Sprint(int(b.EnPassant)), Err: ErrOutOfBounds}
	}
	if b.HalfMoveClock < 0 {
		return malformed("half-move clock", fmt.Sprint(b.HalfMoveClock))
	}
	if b.FullMoveNumber < 1 {
		return malformed("full-move number", fmt.Sprint(b.FullMoveNumber))
	}
	return nil
}

// String returns the board grid followed by the game metadata.
func (b *Board) String() string {
	s := ""
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			s += b.PieceAt(NewSquare(file, rank)).String() + " "
		}
		s += "\n"
	}
	s += fmt.Sprintf("Side to move: %s\n", b.SideToMove)
	s += fmt.Sprintf("Castling: %s\n", b.castling)
	s += fmt.Sprintf("En passant: %s\n", b.EnPassant)
	s += fmt.Sprintf("Half-move clock: %d\n", b.HalfMoveClock)
	s += fmt.Sprintf("Full move: %d\n", b.FullMoveNumber)
	return s
}
