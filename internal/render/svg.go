package render

import (
	"fmt"
	"image/color"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/hailam/chessboard/internal/board"
)

// SVG returns the board as a standalone SVG document: one rect per square
// and one centered text glyph per piece.
func SVG(b *board.Board, g Geometry, t *Theme) string {
	return svgDocument(b, g, t, true)
}

func svgDocument(b *board.Board, g Geometry, t *Theme, glyphs bool) string {
	size := g.BoardSize()
	side := g.SquareSize

	var sb strings.Builder
	canvas := svg.New(&sb)
	canvas.Startview(size, size, 0, 0, size, size)
	for sq := board.A1; sq <= board.H8; sq++ {
		x, y := g.SquareToScreen(sq)
		canvas.Rect(x, y, side, side, fill(t.SquareColor(sq)))
	}
	if glyphs {
		attrs := fmt.Sprintf(`font-family="Go, sans-serif" font-weight="bold" font-size="%d" `+
			`text-anchor="middle" dominant-baseline="central" %s`, side*6/10, fill(t.Glyph))
		for sq := board.A1; sq <= board.H8; sq++ {
			p := b.PieceAt(sq)
			if p == board.NoPiece {
				continue
			}
			x, y := g.SquareToScreen(sq)
			canvas.Text(x+side/2, y+side/2, p.String(), attrs)
		}
	}
	canvas.End()
	return sb.String()
}

// fill is a presentation attribute rather than a style so oksvg reads it
// without CSS parsing.
func fill(c color.RGBA) string {
	return fmt.Sprintf(`fill="#%02x%02x%02x"`, c.R, c.G, c.B)
}
