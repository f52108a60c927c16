package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Checkbox toggles a boolean on each click. OnToggle, if set, is called
// with the new value.
type Checkbox struct {
	Label    string
	Value    bool
	X, Y     float64
	Size     float64
	OnToggle func(bool)

	pressed bool
}

func NewCheckbox(x, y float64, label string, value bool) *Checkbox {
	return &Checkbox{Label: label, Value: value, X: x, Y: y, Size: 14}
}

// Press feeds one frame of pointer state. A toggle happens on the first
// frame the button is held over the box.
func (c *Checkbox) Press(over, down bool) {
	if over && down {
		if !c.pressed {
			c.Toggle()
		}
		c.pressed = true
		return
	}
	c.pressed = false
}

// Toggle flips the value and notifies OnToggle, as a click does.
func (c *Checkbox) Toggle() {
	c.Value = !c.Value
	if c.OnToggle != nil {
		c.OnToggle(c.Value)
	}
}

func (c *Checkbox) Update() {
	mx, my := cursor()
	c.Press(contains(c.X, c.Y, c.Size, c.Size, mx, my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

func (c *Checkbox) Draw(screen *ebiten.Image) {
	vector.StrokeRect(screen, float32(c.X), float32(c.Y), float32(c.Size), float32(c.Size),
		1.5, color.RGBA{R: 180, G: 180, B: 190, A: 255}, true)
	if c.Value {
		vector.FillRect(screen, float32(c.X+3), float32(c.Y+3), float32(c.Size-6), float32(c.Size-6),
			color.RGBA{R: 0, G: 200, B: 220, A: 255}, true)
	}
	DrawText(screen, c.Label, c.X+c.Size+8, c.Y, color.RGBA{R: 220, G: 220, B: 220, A: 255})
}
