package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider is a horizontal value picker. Step, when positive, snaps the value
// to multiples of Step above Min.
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	Step     float64
	X, Y     float64
	W, H     float64
}

// NewSlider creates a slider with value clamped to [min, max].
func NewSlider(x, y, width float64, label string, min, max, value float64) *Slider {
	s := &Slider{Label: label, Min: min, Max: max, X: x, Y: y, W: width, H: 10}
	s.SetValue(value)
	return s
}

// SetValue clamps and snaps v before storing it.
func (s *Slider) SetValue(v float64) {
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
	}
	s.Value = math.Max(s.Min, math.Min(s.Max, v))
}

// ValueAt maps a cursor abscissa to a slider value.
func (s *Slider) ValueAt(mx float64) float64 {
	if s.W <= 0 {
		return s.Min
	}
	p := (mx - s.X) / s.W
	return s.Min + p*(s.Max-s.Min)
}

// Ratio is the filled fraction of the bar.
func (s *Slider) Ratio() float64 {
	if s.Max == s.Min {
		return 0
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}

// Update drags the value while the left button is held over the bar.
func (s *Slider) Update() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := cursor()
	if contains(s.X, s.Y, s.W, s.H, mx, my) {
		s.SetValue(s.ValueAt(mx))
	}
}

func (s *Slider) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H),
		color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*s.Ratio()), float32(s.H),
		color.RGBA{R: 0, G: 200, B: 220, A: 255}, true)

	value := fmt.Sprintf("%.0f", s.Value)
	DrawText(screen, value, s.X+s.W-TextWidth(value), s.Y-LineHeight, color.RGBA{R: 180, G: 180, B: 190, A: 255})
}
