package ui

import (
	"math"
	"testing"
)

func TestSlider_SetValue(t *testing.T) {
	tests := []struct {
		name string
		step float64
		in   float64
		want float64
	}{
		{"inside", 0, 120, 120},
		{"below min", 0, 10, 50},
		{"above max", 0, 900, 300},
		{"snapped down", 10, 123, 120},
		{"snapped up", 10, 126, 130},
		{"snapped then clamped", 40, 299, 290},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSlider(0, 0, 100, "Link distance", 50, 300, 100)
			s.Step = tt.step
			s.SetValue(tt.in)
			if math.Abs(s.Value-tt.want) > 1e-9 {
				t.Errorf("SetValue(%v) = %v; want %v", tt.in, s.Value, tt.want)
			}
		})
	}
}

func TestSlider_ValueAtAndRatio(t *testing.T) {
	s := NewSlider(10, 0, 200, "Pointer distance", 0, 400, 0)
	if got := s.ValueAt(110); got != 200 {
		t.Errorf("ValueAt(110) = %v; want 200", got)
	}
	s.SetValue(s.ValueAt(60))
	if got := s.Ratio(); got != 0.25 {
		t.Errorf("Ratio() = %v; want 0.25", got)
	}

	flat := &Slider{Min: 5, Max: 5, Value: 5}
	if flat.Ratio() != 0 || flat.ValueAt(3) != 5 {
		t.Error("a degenerate slider should stay at its minimum")
	}
}

func TestCheckbox_TogglesOncePerPress(t *testing.T) {
	var toggles []bool
	c := NewCheckbox(0, 0, "Paused", false)
	c.OnToggle = func(v bool) { toggles = append(toggles, v) }

	c.Press(true, true)
	c.Press(true, true) // held
	c.Press(true, false)
	c.Press(false, true) // pressed elsewhere
	c.Press(true, true)

	if len(toggles) != 2 || toggles[0] != true || toggles[1] != false {
		t.Errorf("toggles = %v; want [true false]", toggles)
	}
	if c.Value {
		t.Error("checkbox should end unchecked")
	}
}

func TestButton_FiresOncePerPress(t *testing.T) {
	clicks := 0
	b := NewButton(0, 0, 80, 20, "Reseed", func() { clicks++ })

	if !b.Press(true, true) {
		t.Error("first frame of a press should fire")
	}
	if b.Press(true, true) {
		t.Error("holding the button should not fire again")
	}
	b.Press(true, false)
	b.Press(true, true)

	if clicks != 2 {
		t.Errorf("clicks = %d; want 2", clicks)
	}
}

func TestUIPanel_Layout(t *testing.T) {
	p := NewUIPanel(10, 10, 240, 400)
	p.AddSection("Connections")
	link := p.AddSlider("Link distance", 50, 300, 150)
	p.EndSection()
	p.AddSection("Playback")
	pause := p.AddCheckbox("Paused", false)
	reseed := p.AddButton("Reseed", nil)
	p.EndSection()

	// title 30, header 25
	if link.Y != 10+30+25+LineHeight+2 {
		t.Errorf("slider y = %v", link.Y)
	}
	// slider row 38, second header 25
	wantPause := 10 + 30 + 25 + (link.H + 28) + 25
	if pause.Y != wantPause {
		t.Errorf("checkbox y = %v; want %v", pause.Y, wantPause)
	}
	if reseed.Y != wantPause+pause.Size+8 {
		t.Errorf("button y = %v; want %v", reseed.Y, wantPause+pause.Size+8)
	}
	if link.X != 20 || link.W != 220 {
		t.Errorf("slider placed at x=%v w=%v", link.X, link.W)
	}
}

func TestUIPanel_ScrollClamps(t *testing.T) {
	p := NewUIPanel(0, 0, 200, 100)
	p.AddSection("Many")
	for i := 0; i < 10; i++ {
		p.AddSlider("s", 0, 1, 0)
	}
	p.EndSection()

	maxScroll := p.ContentHeight() - p.Height + 10
	p.Scroll(-1000)
	if p.ScrollOffset != maxScroll {
		t.Errorf("ScrollOffset = %v; want %v", p.ScrollOffset, maxScroll)
	}
	p.Scroll(1000)
	if p.ScrollOffset != 0 {
		t.Errorf("ScrollOffset = %v; want 0", p.ScrollOffset)
	}

	first := p.Widgets[0].(*SliderWrapper)
	p.Scroll(-1)
	if want := 30 + 25 - 20 + LineHeight + 2; first.Y != want {
		t.Errorf("scrolled slider y = %v; want %v", first.Y, want)
	}
}

func TestUIPanel_Contains(t *testing.T) {
	p := NewUIPanel(10, 10, 100, 100)
	if !p.Contains(50, 50) || p.Contains(200, 50) {
		t.Error("Contains should follow the panel rectangle")
	}
	p.Visible = false
	if p.Contains(50, 50) {
		t.Error("a hidden panel covers nothing")
	}
}

func TestUIPanel_VisibleWidgets(t *testing.T) {
	p := NewUIPanel(0, 0, 200, 150)
	p.AddSection("Many")
	for i := 0; i < 5; i++ {
		p.AddSlider("s", 0, 1, 0)
	}
	p.EndSection()

	// Body spans y 25..150; rows start at 55 and are 38 tall.
	visible := p.VisibleWidgets()
	if len(visible) != 2 || visible[0] != p.Widgets[0] || visible[1] != p.Widgets[1] {
		t.Fatalf("got %d visible widgets; want the first two", len(visible))
	}

	// 40px down: rows at 15, 53, 91, 129, 167.
	p.Scroll(-2)
	visible = p.VisibleWidgets()
	if len(visible) != 2 || visible[0] != p.Widgets[1] || visible[1] != p.Widgets[2] {
		t.Errorf("after scrolling got %d visible widgets; want widgets 1 and 2", len(visible))
	}
}

func TestCheckbox_ToggleNotifies(t *testing.T) {
	var got []bool
	c := NewCheckbox(0, 0, "Paused", false)
	c.OnToggle = func(v bool) { got = append(got, v) }

	c.Toggle()
	c.Toggle()
	if len(got) != 2 || !got[0] || got[1] || c.Value {
		t.Errorf("toggles = %v, value %v; want [true false] and unchecked", got, c.Value)
	}

	c.OnToggle = nil
	c.Toggle()
	if !c.Value {
		t.Error("Toggle without a callback should still flip the value")
	}
}
