package ui

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

var glyphSource *text.GoTextFaceSource

func init() {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Printf("Failed to load glyph font: %v", err)
		return
	}
	glyphSource = src
}

// glyphFace returns a face sized for a square of side px, or nil when the
// font failed to load.
func glyphFace(px int) *text.GoTextFace {
	if glyphSource == nil {
		return nil
	}
	return &text.GoTextFace{
		Source: glyphSource,
		Size:   float64(px) * 0.6,
	}
}
