// Package ui shows a board in a window using Ebitengine.
package ui

import (
	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/render"
	"github.com/hailam/chessboard/internal/storage"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game implements ebiten.Game. It only reads the board: there is no input
// handling, and the loop ends when the window is closed.
type Game struct {
	board    *board.Board
	renderer *Renderer

	// HiDPI scaling
	scale float64
}

// NewGame creates a viewer for b using the given preferences.
func NewGame(b *board.Board, prefs *storage.Preferences) *Game {
	if prefs == nil {
		prefs = storage.DefaultPreferences()
	}
	geom := render.NewGeometry(prefs.SquareSize, prefs.Flipped)
	return &Game{
		board:    b,
		renderer: NewRenderer(geom, render.DefaultTheme()),
		scale:    1.0,
	}
}

// Update is called every tick. The board is static, so there is nothing
// to advance.
func (g *Game) Update() error {
	return nil
}

// Draw redraws the whole board every frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetScale(g.scale)

	screen.Fill(g.renderer.Theme().Background)
	g.renderer.DrawBoard(screen)
	g.renderer.DrawPieces(screen, g.board)
}

// Layout sizes the screen to the board at the device scale.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0
	}
	size := int(float64(g.renderer.BoardSize()) * g.scale)
	return size, size
}

// WindowSize returns the logical window size for the board.
func (g *Game) WindowSize() (int, int) {
	return g.renderer.BoardSize(), g.renderer.BoardSize()
}
