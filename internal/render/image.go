package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/hailam/chessboard/internal/board"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Image rasterizes the board. Squares come from the SVG rendering; the
// glyphs are drawn on top with the bold Go font.
func Image(b *board.Board, g Geometry, t *Theme) (*image.RGBA, error) {
	size := g.BoardSize()

	icon, err := oksvg.ReadIconStream(strings.NewReader(svgDocument(b, g, t, false)))
	if err != nil {
		return nil, fmt.Errorf("parse board svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	face, err := glyphFace(g.SquareSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	d := &font.Drawer{Dst: rgba, Src: image.NewUniform(t.Glyph), Face: face}
	m := face.Metrics()
	side := fixed.I(g.SquareSize)
	b.AllPieces().ForEach(func(sq board.Square) {
		glyph := b.PieceAt(sq).String()
		x, y := g.SquareToScreen(sq)
		w := d.MeasureString(glyph)
		d.Dot = fixed.Point26_6{
			X: fixed.I(x) + (side-w)/2,
			Y: fixed.I(y) + (side+m.Ascent-m.Descent)/2,
		}
		d.DrawString(glyph)
	})
	return rgba, nil
}

// WritePNG encodes Image as PNG.
func WritePNG(w io.Writer, b *board.Board, g Geometry, t *Theme) error {
	img, err := Image(b, g, t)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func glyphFace(squareSize int) (font.Face, error) {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse glyph font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(squareSize) * 0.6,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("glyph face: %w", err)
	}
	return face, nil
}
