package board

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewBoardCounts(t *testing.T) {
	b := New()

	if got := b.AllPieces().PopCount(); got != 32 {
		t.Errorf("AllPieces popcount = %d, want 32", got)
	}
	for _, c := range []Color{White, Black} {
		if got := b.Occupancy(c).PopCount(); got != 16 {
			t.Errorf("%s occupancy popcount = %d, want 16", c, got)
		}
	}
	if b.AllPieces() != Rank1|Rank2|Rank7|Rank8 {
		t.Errorf("AllPieces = %#x, want first two and last two ranks", uint64(b.AllPieces()))
	}
}

func TestNewBoardMetadata(t *testing.T) {
	for i := 0; i < 3; i++ {
		b := New()
		if b.SideToMove != White {
			t.Errorf("SideToMove = %s, want White", b.SideToMove)
		}
		if b.CastlingRights() != AllCastling {
			t.Errorf("CastlingRights = %s, want KQkq", b.CastlingRights())
		}
		if b.HasEnPassant() || b.EnPassant != NoSquare {
			t.Errorf("EnPassant = %s, want none", b.EnPassant)
		}
		if b.HalfMoveClock != 0 {
			t.Errorf("HalfMoveClock = %d, want 0", b.HalfMoveClock)
		}
		if b.FullMoveNumber != 1 {
			t.Errorf("FullMoveNumber = %d, want 1", b.FullMoveNumber)
		}
	}
}

func TestStartingPositionNoOverlap(t *testing.T) {
	b := New()
	for sq := A1; sq <= H8; sq++ {
		n := 0
		for c := White; c <= Black; c++ {
			for pt := Pawn; pt <= King; pt++ {
				if b.Pieces[c][pt].IsSet(sq) {
					n++
				}
			}
		}
		if n > 1 {
			t.Errorf("square %s claimed %d times", sq, n)
		}
	}
	if ov := b.Overlaps(); ov != 0 {
		t.Errorf("Overlaps() = %v", ov.Squares())
	}
	if err := b.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestStartingMasks(t *testing.T) {
	tests := []struct {
		c    Color
		pt   PieceType
		want []Square
	}{
		{White, Pawn, []Square{A2, B2, C2, D2, E2, F2, G2, H2}},
		{White, Knight, []Square{B1, G1}},
		{White, Bishop, []Square{C1, F1}},
		{White, Rook, []Square{A1, H1}},
		{White, Queen, []Square{D1}},
		{White, King, []Square{E1}},
		{Black, Pawn, []Square{A7, B7, C7, D7, E7, F7, G7, H7}},
		{Black, Knight, []Square{B8, G8}},
		{Black, Bishop, []Square{C8, F8}},
		{Black, Rook, []Square{A8, H8}},
		{Black, Queen, []Square{D8}},
		{Black, King, []Square{E8}},
	}
	for _, tt := range tests {
		t.Run(NewPiece(tt.pt, tt.c).String(), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, StartingMask(tt.c, tt.pt).Squares()); diff != "" {
				t.Errorf("StartingMask mismatch (-want +got):\n%s", diff)
			}
		})
	}
	if StartingMask(NoColor, Pawn) != Empty || StartingMask(White, NoPieceType) != Empty {
		t.Error("StartingMask should be empty for out of range input")
	}
}

func TestUpdateOccupancyIdempotent(t *testing.T) {
	b := New()
	b.UpdateOccupancy()
	occW, occB, all := b.Occupancy(White), b.Occupancy(Black), b.AllPieces()

	b.UpdateOccupancy()
	if b.Occupancy(White) != occW || b.Occupancy(Black) != occB || b.AllPieces() != all {
		t.Error("second UpdateOccupancy changed derived sets")
	}
}

func TestUpdateOccupancyEmptyBoard(t *testing.T) {
	b := New()
	b.Pieces = [2][6]Bitboard{}
	b.UpdateOccupancy()

	if b.AllPieces() != 0 || b.Occupancy(White) != 0 || b.Occupancy(Black) != 0 {
		t.Errorf("occupancy not cleared: white=%#x black=%#x all=%#x",
			uint64(b.Occupancy(White)), uint64(b.Occupancy(Black)), uint64(b.AllPieces()))
	}
	for sq := A1; sq <= H8; sq++ {
		if b.PieceAt(sq) != NoPiece {
			t.Fatalf("PieceAt(%s) = %s on empty board", sq, b.PieceAt(sq))
		}
	}
}

func TestUpdateOccupancyAfterMutation(t *testing.T) {
	b := New()
	b.Pieces[White][Pawn] = b.Pieces[White][Pawn].Clear(E2).Set(E4)

	if !b.IsOccupied(E2) || b.IsOccupied(E4) {
		t.Fatal("derived sets should be stale until UpdateOccupancy")
	}
	if err := b.Validate(); !errors.Is(err, ErrMalformedPosition) {
		t.Errorf("Validate() on stale board = %v, want ErrMalformedPosition", err)
	}

	b.UpdateOccupancy()
	if b.IsOccupied(E2) || !b.IsOccupied(E4) {
		t.Error("UpdateOccupancy did not pick up the moved pawn")
	}
	if got := b.PieceAt(E4); got != WhitePawn {
		t.Errorf("PieceAt(e4) = %s, want P", got)
	}
}

func TestPieceAt(t *testing.T) {
	b := New()
	tests := []struct {
		sq   Square
		want Piece
	}{
		{A1, WhiteRook},
		{B1, WhiteKnight},
		{C1, WhiteBishop},
		{D1, WhiteQueen},
		{E1, WhiteKing},
		{E2, WhitePawn},
		{E4, NoPiece},
		{D8, BlackQueen},
		{E8, BlackKing},
		{H7, BlackPawn},
		{NoSquare, NoPiece},
	}
	for _, tt := range tests {
		if got := b.PieceAt(tt.sq); got != tt.want {
			t.Errorf("PieceAt(%s) = %s, want %s", tt.sq, got, tt.want)
		}
	}
}

func TestPieceAtOverlapOrder(t *testing.T) {
	if debugAssertions {
		t.Skip("overlap panics under chessdebug")
	}
	b := New()
	// Put a black queen on top of the white king's square.
	b.Pieces[Black][Queen] |= SquareBB(E1)
	b.UpdateOccupancy()

	if got := b.PieceAt(E1); got != WhiteKing {
		t.Errorf("PieceAt(e1) = %s, want the first match K", got)
	}
	if b.Overlaps() != SquareBB(E1) {
		t.Errorf("Overlaps() = %v, want [e1]", b.Overlaps().Squares())
	}
	if err := b.Validate(); !errors.Is(err, ErrMalformedPosition) {
		t.Errorf("Validate() = %v, want ErrMalformedPosition", err)
	}
}

func TestRevokeCastling(t *testing.T) {
	b := New()
	b.RevokeCastling(WhiteKingSide)
	if b.CastlingRights().Has(White, true) {
		t.Error("white kingside right still present")
	}
	if !b.CastlingRights().Has(White, false) || !b.CastlingRights().Has(Black, true) {
		t.Error("revoking one right cleared others")
	}
	b.RevokeCastling(WhiteKingSide | BlackQueenSide)
	if got := b.CastlingRights().String(); got != "Qk" {
		t.Errorf("CastlingRights = %q, want Qk", got)
	}
	b.RevokeCastling(AllCastling)
	if got := b.CastlingRights().String(); got != "-" {
		t.Errorf("CastlingRights = %q, want -", got)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	b := New()
	c := b.Copy()
	c.Pieces[White][Pawn] = 0
	c.UpdateOccupancy()
	c.RevokeCastling(AllCastling)

	if b.Occupancy(White).PopCount() != 16 {
		t.Error("mutating the copy changed the original")
	}
	if b.CastlingRights() != AllCastling {
		t.Error("revoking on the copy changed the original")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(b *Board)
	}{
		{"no white king", func(b *Board) { b.Pieces[White][King] = 0 }},
		{"two black kings", func(b *Board) { b.Pieces[Black][King] |= SquareBB(A5) }},
		{"pawn on back rank", func(b *Board) { b.Pieces[White][Pawn] = b.Pieces[White][Pawn].Clear(A2).Set(A8) }},
		{"bad en passant rank", func(b *Board) { b.EnPassant = E4 }},
		{"zero full move", func(b *Board) { b.FullMoveNumber = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			tt.mutate(b)
			b.UpdateOccupancy()
			if err := b.Validate(); !errors.Is(err, ErrMalformedPosition) {
				t.Errorf("Validate() = %v, want ErrMalformedPosition", err)
			}
		})
	}

	b := New()
	b.EnPassant = Square(70)
	if err := b.Validate(); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Validate() = %v, want ErrOutOfBounds", err)
	}
}
