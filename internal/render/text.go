// Package render turns a board into text, SVG and raster images.
package render

import (
	"bufio"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/hailam/chessboard/internal/board"
)

// WriteText writes the board as an 8x8 grid: rank 8 first, files a to h,
// each square as one glyph followed by a space, each rank ending in '\n'.
// Uppercase is White, lowercase Black and '.' an empty square.
func WriteText(w io.Writer, b *board.Board) error {
	bw := bufio.NewWriter(w)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			bw.WriteByte(b.PieceAt(board.NewSquare(file, rank)).Glyph())
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Text returns the WriteText grid as a string.
func Text(b *board.Board) string {
	var sb strings.Builder
	_ = WriteText(&sb, b)
	return sb.String()
}

var (
	whiteGlyph = color.New(color.FgHiWhite, color.Bold)
	blackGlyph = color.New(color.FgRed, color.Bold)
	emptyGlyph = color.New(color.Faint)
)

// ColorText is Text with ANSI colors per side. With color.NoColor set it
// is byte-for-byte the same as Text.
func ColorText(b *board.Board) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			p := b.PieceAt(board.NewSquare(file, rank))
			var c *color.Color
			switch p.Color() {
			case board.White:
				c = whiteGlyph
			case board.Black:
				c = blackGlyph
			default:
				c = emptyGlyph
			}
			sb.WriteString(c.Sprint(p.String()))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
