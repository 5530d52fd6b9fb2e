package ui

import (
	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer draws a board onto an ebiten image.
type Renderer struct {
	geom  render.Geometry
	theme *render.Theme
	face  *text.GoTextFace
	scale float64 // HiDPI scale factor
}

// NewRenderer creates a renderer for the given geometry.
func NewRenderer(geom render.Geometry, theme *render.Theme) *Renderer {
	return &Renderer{
		geom:  geom,
		theme: theme,
		face:  glyphFace(geom.SquareSize),
		scale: 1.0,
	}
}

// SetScale sets the HiDPI scale factor for rendering.
func (r *Renderer) SetScale(scale float64) {
	if scale == r.scale {
		return
	}
	r.scale = scale
	r.face = glyphFace(int(float64(r.geom.SquareSize) * scale))
}

// s returns the scaled value for rendering.
func (r *Renderer) s(v int) float32 {
	return float32(float64(v) * r.scale)
}

// DrawBoard fills the 64 squares.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	side := r.s(r.geom.SquareSize)
	for sq := board.A1; sq <= board.H8; sq++ {
		x, y := r.geom.SquareToScreen(sq)
		vector.DrawFilledRect(screen, r.s(x), r.s(y), side, side, r.theme.SquareColor(sq), false)
	}
}

// DrawPieces draws one centered glyph per occupied square.
func (r *Renderer) DrawPieces(screen *ebiten.Image, b *board.Board) {
	if r.face == nil {
		return
	}
	half := float64(r.s(r.geom.SquareSize)) / 2
	for sq := board.A1; sq <= board.H8; sq++ {
		p := b.PieceAt(sq)
		if p == board.NoPiece {
			continue
		}
		x, y := r.geom.SquareToScreen(sq)

		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(r.s(x))+half, float64(r.s(y))+half)
		op.ColorScale.ScaleWithColor(r.theme.Glyph)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		text.Draw(screen, p.String(), r.face, op)
	}
}

// BoardSize returns the board size in logical pixels.
func (r *Renderer) BoardSize() int {
	return r.geom.BoardSize()
}

// Theme returns the current theme.
func (r *Renderer) Theme() *render.Theme {
	return r.theme
}
