package render

import (
	"image/color"

	"github.com/hailam/chessboard/internal/board"
)

// DefaultSquareSize is the side of one square in pixels.
const DefaultSquareSize = 80

// Geometry maps squares to pixels. Rank 8 is drawn at the top, the same
// way the text grid is printed; Flipped puts rank 1 at the top instead.
type Geometry struct {
	SquareSize int
	Flipped    bool
}

// NewGeometry returns a geometry, falling back to DefaultSquareSize for
// non-positive sizes.
func NewGeometry(squareSize int, flipped bool) Geometry {
	if squareSize <= 0 {
		squareSize = DefaultSquareSize
	}
	return Geometry{SquareSize: squareSize, Flipped: flipped}
}

// BoardSize returns the side of the whole board in pixels.
func (g Geometry) BoardSize() int {
	return 8 * g.SquareSize
}

// SquareToScreen returns the top-left pixel of sq.
func (g Geometry) SquareToScreen(sq board.Square) (x, y int) {
	col, row := sq.File(), 7-sq.Rank()
	if g.Flipped {
		col, row = 7-col, sq.Rank()
	}
	return col * g.SquareSize, row * g.SquareSize
}

// ScreenToSquare returns the square under pixel (x, y), or NoSquare.
func (g Geometry) ScreenToSquare(x, y int) board.Square {
	size := g.BoardSize()
	if x < 0 || y < 0 || x >= size || y >= size {
		return board.NoSquare
	}
	col, row := x/g.SquareSize, y/g.SquareSize
	if g.Flipped {
		return board.NewSquare(7-col, row)
	}
	return board.NewSquare(col, 7-row)
}

// IsLight reports whether sq is a light square; a1 is dark.
func IsLight(sq board.Square) bool {
	return (sq.File()+sq.Rank())%2 == 1
}

// Theme is the color scheme shared by the SVG, PNG and window renderers.
type Theme struct {
	LightSquare color.RGBA
	DarkSquare  color.RGBA
	Glyph       color.RGBA
	Background  color.RGBA
}

// DefaultTheme returns the tan and brown board with near-black glyphs.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare: color.RGBA{240, 217, 181, 255},
		DarkSquare:  color.RGBA{181, 136, 99, 255},
		Glyph:       color.RGBA{24, 24, 24, 255},
		Background:  color.RGBA{40, 44, 52, 255},
	}
}

// SquareColor returns the fill for sq.
func (t *Theme) SquareColor(sq board.Square) color.RGBA {
	if IsLight(sq) {
		return t.LightSquare
	}
	return t.DarkSquare
}
