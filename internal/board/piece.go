package board

// Color is the side owning a piece, or the side to move.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposite side.
func (c Color) Other() Color {
	return c ^ 1
}

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PieceType is the kind of a piece regardless of side.
// The order is load-bearing: it is the lookup order of Board.PieceAt.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType PieceType = 6
)

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the lowercase letter for the piece type.
func (pt PieceType) Char() byte {
	if pt >= NoPieceType {
		return '.'
	}
	return "pnbrqk"[pt]
}

// Piece packs a side and a kind as kind + side*6.
type Piece uint8

const (
	WhitePawn   Piece = Piece(Pawn) + Piece(White)*6
	WhiteKnight Piece = Piece(Knight) + Piece(White)*6
	WhiteBishop Piece = Piece(Bishop) + Piece(White)*6
	WhiteRook   Piece = Piece(Rook) + Piece(White)*6
	WhiteQueen  Piece = Piece(Queen) + Piece(White)*6
	WhiteKing   Piece = Piece(King) + Piece(White)*6
	BlackPawn   Piece = Piece(Pawn) + Piece(Black)*6
	BlackKnight Piece = Piece(Knight) + Piece(Black)*6
	BlackBishop Piece = Piece(Bishop) + Piece(Black)*6
	BlackRook   Piece = Piece(Rook) + Piece(Black)*6
	BlackQueen  Piece = Piece(Queen) + Piece(Black)*6
	BlackKing   Piece = Piece(King) + Piece(Black)*6
	NoPiece     Piece = 12
)

const pieceGlyphs = "PNBRQKpnbrqk"

// NewPiece combines a kind and a side. Out of range input gives NoPiece.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || c >= NoColor {
		return NoPiece
	}
	return Piece(pt) + Piece(c)*6
}

// Type returns the kind of p.
func (p Piece) Type() PieceType {
	if p >= NoPiece {
		return NoPieceType
	}
	return PieceType(p % 6)
}

// Color returns the side of p.
func (p Piece) Color() Color {
	if p >= NoPiece {
		return NoColor
	}
	return Color(p / 6)
}

// Glyph returns the single display character: PNBRQK for White,
// pnbrqk for Black, '.' for NoPiece.
func (p Piece) Glyph() byte {
	if p >= NoPiece {
		return '.'
	}
	return pieceGlyphs[p]
}

func (p Piece) String() string {
	return string(p.Glyph())
}

// PieceFromChar maps a glyph back to a piece, NoPiece if unknown.
func PieceFromChar(c byte) Piece {
	for i := 0; i < len(pieceGlyphs); i++ {
		if pieceGlyphs[i] == c {
			return Piece(i)
		}
	}
	return NoPiece
}
