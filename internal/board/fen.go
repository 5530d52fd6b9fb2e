package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a board from a FEN record. The clock fields are optional
// and default to 0 and 1.
func ParseFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return nil, malformed("fen", fen)
	}

	b := newEmpty()
	b.castling = NoCastling

	if err := parsePlacement(b, parts[0]); err != nil {
		return nil, err
	}

	switch parts[1] {
	case "w":
		b.SideToMove = White
	case "b":
		b.SideToMove = Black
	default:
		return nil, malformed("side", parts[1])
	}

	if err := parseCastling(b, parts[2]); err != nil {
		return nil, err
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, &PositionError{Field: "en passant", Value: parts[3], Err: ErrOutOfBounds}
		}
		b.EnPassant = sq
	}

	if len(parts) > 4 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return nil, malformed("half-move clock", parts[4])
		}
		b.HalfMoveClock = n
	}
	if len(parts) > 5 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return nil, malformed("full-move number", parts[5])
		}
		b.FullMoveNumber = n
	}

	b.UpdateOccupancy()
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func parsePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return malformed("placement", placement)
	}

	for i, row := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				if file > 8 {
					return malformed("placement", row)
				}
				continue
			}
			piece := PieceFromChar(c)
			if piece == NoPiece || file > 7 {
				return malformed("placement", row)
			}
			sq := NewSquare(file, rank)
			b.Pieces[piece.Color()][piece.Type()] |= SquareBB(sq)
			file++
		}
		if file != 8 {
			return malformed("placement", row)
		}
	}
	return nil
}

func parseCastling(b *Board, field string) error {
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		var flag CastlingRights
		switch field[i] {
		case 'K':
			flag = WhiteKingSide
		case 'Q':
			flag = WhiteQueenSide
		case 'k':
			flag = BlackKingSide
		case 'q':
			flag = BlackQueenSide
		default:
			return malformed("castling", field)
		}
		if b.castling&flag != 0 {
			return malformed("castling", field)
		}
		b.castling |= flag
	}
	return nil
}

// FEN returns the FEN record for b.
func (b *Board) FEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.PieceAt(NewSquare(file, rank))
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.Glyph())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	side := "w"
	if b.SideToMove == Black {
		side = "b"
	}
	fmt.Fprintf(&sb, " %s %s %s %d %d", side, b.castling, b.EnPassant, b.HalfMoveClock, b.FullMoveNumber)
	return sb.String()
}
