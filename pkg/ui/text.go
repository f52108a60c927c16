package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Face is the bitmap face used by every widget and overlay.
var Face = text.NewGoXFace(basicfont.Face7x13)

// LineHeight is the vertical advance between lines drawn with DrawText.
const LineHeight = 15.0

// DrawText draws s with its top-left corner at (x, y). Newlines advance by
// LineHeight.
func DrawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = LineHeight
	text.Draw(screen, s, Face, op)
}

// TextWidth returns the advance of s in pixels.
func TextWidth(s string) float64 {
	w, _ := text.Measure(s, Face, LineHeight)
	return w
}

// contains reports whether (px, py) lies inside the rectangle.
func contains(x, y, w, h, px, py float64) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}

func cursor() (float64, float64) {
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my)
}
