package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button fires OnClick once per press.
type Button struct {
	Label         string
	X, Y          float64
	Width, Height float64
	OnClick       func()

	BGColor    color.RGBA
	HoverColor color.RGBA
	TextColor  color.RGBA

	pressed bool
	hover   bool
}

func NewButton(x, y, width, height float64, label string, onClick func()) *Button {
	return &Button{
		Label:      label,
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		OnClick:    onClick,
		BGColor:    color.RGBA{R: 50, G: 60, B: 90, A: 255},
		HoverColor: color.RGBA{R: 80, G: 60, B: 160, A: 255},
		TextColor:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Press feeds one frame of pointer state and reports whether the button
// fired.
func (b *Button) Press(over, down bool) bool {
	b.hover = over
	if over && down {
		fired := !b.pressed
		b.pressed = true
		if fired && b.OnClick != nil {
			b.OnClick()
		}
		return fired
	}
	b.pressed = false
	return false
}

func (b *Button) Update() {
	mx, my := cursor()
	b.Press(contains(b.X, b.Y, b.Width, b.Height, mx, my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BGColor
	if b.hover {
		bg = b.HoverColor
	}
	vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), bg, true)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height),
		1, color.RGBA{R: 140, G: 140, B: 160, A: 255}, true)

	tx := b.X + (b.Width-TextWidth(b.Label))/2
	ty := b.Y + (b.Height-LineHeight)/2
	DrawText(screen, b.Label, tx, ty, b.TextColor)
}
