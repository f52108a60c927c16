package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// UIWidget is implemented by everything the panel lays out.
type UIWidget interface {
	Update()
	Draw(screen *ebiten.Image)
	GetHeight() float64
	SetOrigin(x, y float64)
}

// SliderWrapper reserves room for the label above the bar.
type SliderWrapper struct{ *Slider }

func (s *SliderWrapper) GetHeight() float64     { return s.H + 28 }
func (s *SliderWrapper) SetOrigin(x, y float64) { s.X, s.Y = x, y+LineHeight+2 }

type CheckboxWrapper struct{ *Checkbox }

func (c *CheckboxWrapper) GetHeight() float64     { return c.Size + 8 }
func (c *CheckboxWrapper) SetOrigin(x, y float64) { c.X, c.Y = x, y }

type ButtonWrapper struct{ *Button }

func (b *ButtonWrapper) GetHeight() float64     { return b.Height + 8 }
func (b *ButtonWrapper) SetOrigin(x, y float64) { b.X, b.Y = x, y }

// PanelSection groups the widgets added between AddSection and EndSection.
type PanelSection struct {
	Title      string
	StartIndex int
	EndIndex   int
}

// UIPanel is a scrollable, toggleable column of widgets.
type UIPanel struct {
	X, Y          float64
	Width, Height float64
	Title         string
	Visible       bool
	Widgets       []UIWidget
	Labels        []string
	ScrollOffset  float64

	BGColor     color.RGBA
	BorderColor color.RGBA
	TextColor   color.RGBA

	sections []PanelSection
}

func NewUIPanel(x, y, width, height float64) *UIPanel {
	return &UIPanel{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Title:       "Settings",
		Visible:     true,
		BGColor:     color.RGBA{R: 16, G: 16, B: 28, A: 220},
		BorderColor: color.RGBA{R: 70, G: 70, B: 100, A: 255},
		TextColor:   color.RGBA{R: 220, G: 220, B: 220, A: 255},
	}
}

func (p *UIPanel) AddSection(title string) {
	p.sections = append(p.sections, PanelSection{Title: title, StartIndex: len(p.Widgets), EndIndex: len(p.Widgets)})
}

func (p *UIPanel) EndSection() {
	if len(p.sections) > 0 {
		p.sections[len(p.sections)-1].EndIndex = len(p.Widgets)
	}
}

func (p *UIPanel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(p.X+10, 0, p.Width-20, label, min, max, value)
	p.add(&SliderWrapper{s}, label)
	return s
}

func (p *UIPanel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(p.X+10, 0, label, value)
	p.add(&CheckboxWrapper{c}, "")
	return c
}

func (p *UIPanel) AddButton(label string, onClick func()) *Button {
	b := NewButton(p.X+10, 0, p.Width-20, 22, label, onClick)
	p.add(&ButtonWrapper{b}, "")
	return b
}

func (p *UIPanel) add(w UIWidget, label string) {
	p.Widgets = append(p.Widgets, w)
	p.Labels = append(p.Labels, label)
	p.layout()
}

// Contains reports whether a screen point falls on the visible panel.
func (p *UIPanel) Contains(x, y float64) bool {
	return p.Visible && contains(p.X, p.Y, p.Width, p.Height, x, y)
}

// ContentHeight is the unscrolled height of title, headers and widgets.
func (p *UIPanel) ContentHeight() float64 {
	h := 30 + float64(len(p.sections))*25
	for _, w := range p.Widgets {
		h += w.GetHeight()
	}
	return h
}

// Scroll moves the content by dy wheel notches, clamped to the content.
func (p *UIPanel) Scroll(dy float64) {
	p.ScrollOffset -= dy * 20
	maxScroll := max(p.ContentHeight()-p.Height+10, 0)
	p.ScrollOffset = min(max(p.ScrollOffset, 0), maxScroll)
	p.layout()
}

// walk visits section headers and widgets top to bottom with their
// scrolled y. Exactly one of section and widget is non-negative.
func (p *UIPanel) walk(visit func(section, widget int, y float64)) {
	y := p.Y + 30 - p.ScrollOffset
	sec := 0
	for i, w := range p.Widgets {
		for sec < len(p.sections) && p.sections[sec].StartIndex <= i {
			visit(sec, -1, y)
			y += 25
			sec++
		}
		visit(-1, i, y)
		y += w.GetHeight()
	}
	for ; sec < len(p.sections); sec++ {
		visit(sec, -1, y)
		y += 25
	}
}

func (p *UIPanel) layout() {
	p.walk(func(_, widget int, y float64) {
		if widget >= 0 {
			p.Widgets[widget].SetOrigin(p.X+10, y)
		}
	})
}

func (p *UIPanel) Update() {
	if !p.Visible {
		return
	}
	mx, my := cursor()
	if _, dy := ebiten.Wheel(); dy != 0 && p.Contains(mx, my) {
		p.Scroll(dy)
	}
	for _, w := range p.VisibleWidgets() {
		w.Update()
	}
}

// VisibleWidgets returns the widgets lying wholly inside the panel body at
// the current scroll offset. Only these receive input or get drawn.
func (p *UIPanel) VisibleWidgets() []UIWidget {
	var out []UIWidget
	p.walk(func(_, widget int, y float64) {
		if widget >= 0 && p.fits(y, p.Widgets[widget].GetHeight()) {
			out = append(out, p.Widgets[widget])
		}
	})
	return out
}

// fits reports whether a row starting at y with height h is inside the
// panel body below the title.
func (p *UIPanel) fits(y, h float64) bool {
	return y >= p.Y+25 && y+h <= p.Y+p.Height
}

func (p *UIPanel) Draw(screen *ebiten.Image) {
	if !p.Visible {
		return
	}
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), p.BGColor, true)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), 1, p.BorderColor, true)
	DrawText(screen, p.Title, p.X+10, p.Y+8, p.TextColor)

	p.walk(func(section, widget int, y float64) {
		if section >= 0 {
			if p.fits(y, 20) {
				vector.FillRect(screen, float32(p.X+5), float32(y), float32(p.Width-10), 20,
					color.RGBA{R: 36, G: 36, B: 56, A: 255}, true)
				DrawText(screen, p.sections[section].Title, p.X+10, y+3, p.TextColor)
			}
			return
		}
		w := p.Widgets[widget]
		if !p.fits(y, w.GetHeight()) {
			return
		}
		if p.Labels[widget] != "" {
			DrawText(screen, p.Labels[widget], p.X+10, y, p.TextColor)
		}
		w.Draw(screen)
	})
}
