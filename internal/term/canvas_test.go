package term

import (
	"image/color"
	"testing"

	"github.com/lao-tseu-is-alive/go-particle-network/pkg/particles"
)

var (
	black  = color.RGBA{A: 255}
	cyan   = color.RGBA{R: 0, G: 240, B: 255, A: 255}
	violet = color.RGBA{R: 112, G: 0, B: 255, A: 255}
)

func TestCanvas_Mapping(t *testing.T) {
	c := NewCanvas(8, 4, CellWidth, CellHeight, black)
	if w, h := c.Surface(); w != 80 || h != 80 {
		t.Errorf("Surface() = %vx%v; want 80x80", w, h)
	}
	tests := []struct {
		x, y     float64
		col, row int
	}{
		{0, 0, 0, 0},
		{9.99, 19.99, 0, 0},
		{10, 20, 1, 1},
		{75, 61, 7, 3},
		{-1, -1, -1, -1},
	}
	for _, tt := range tests {
		col, row := c.ToCell(tt.x, tt.y)
		if col != tt.col || row != tt.row {
			t.Errorf("ToCell(%v, %v) = (%d, %d); want (%d, %d)", tt.x, tt.y, col, row, tt.col, tt.row)
		}
	}
	if x, y := c.ToField(2, 1); x != 25 || y != 30 {
		t.Errorf("ToField(2, 1) = (%v, %v); want (25, 30)", x, y)
	}
}

func TestCanvas_ResizeClears(t *testing.T) {
	c := NewCanvas(4, 4, CellWidth, CellHeight, black)
	c.Render(particles.DrawInstructions{Particles: []particles.Circle{{X: 5, Y: 5, Radius: 2, Color: cyan, Opacity: 1}}})
	c.Resize(-3, 2)
	if cols, rows := c.Size(); cols != 0 || rows != 2 {
		t.Errorf("Size() = %dx%d; want 0x2", cols, rows)
	}
	if c.At(0, 0).Rune != ' ' {
		t.Error("out-of-range cells read as blank")
	}
}

func TestCanvas_RenderParticle(t *testing.T) {
	c := NewCanvas(4, 4, CellWidth, CellHeight, black)
	c.Render(particles.DrawInstructions{
		Particles: []particles.Circle{{X: 15, Y: 30, Radius: 2, Color: cyan, Opacity: 0.6}},
	})
	cell := c.At(1, 1)
	if cell.Rune != particleRune {
		t.Fatalf("rune = %q; want %q", cell.Rune, particleRune)
	}
	r, g, b := cell.Fg.RGB255()
	if r != 0 || g != 240 || b != 255 {
		t.Errorf("particle colour = %d,%d,%d; want the primary colour", r, g, b)
	}
	if c.At(0, 0).Rune != ' ' {
		t.Error("other cells should stay blank")
	}
}

func TestCanvas_RenderLine(t *testing.T) {
	c := NewCanvas(10, 2, CellWidth, CellHeight, black)
	c.Render(particles.DrawInstructions{
		Links: []particles.Line{{X1: 5, Y1: 10, X2: 95, Y2: 10, ColorStart: cyan, ColorEnd: violet, Opacity: 0.3, Width: 0.5}},
	})
	want, _ := rampGlyph(0.3)
	for col := 0; col < 10; col++ {
		if got := c.At(col, 0).Rune; got != want {
			t.Errorf("cell %d rune = %q; want %q", col, got, want)
		}
		if got := c.At(col, 1).Rune; got != ' ' {
			t.Errorf("row below should stay blank, cell %d is %q", col, got)
		}
	}
	_, g0, _ := c.At(0, 0).Fg.RGB255()
	r9, _, _ := c.At(9, 0).Fg.RGB255()
	if g0 == 0 || r9 == 0 {
		t.Errorf("gradient should start green-heavy and end red-heavy, got g0=%d r9=%d", g0, r9)
	}
}

func TestCanvas_ParticleOutranksLink(t *testing.T) {
	c := NewCanvas(4, 1, CellWidth, CellHeight, black)
	c.Render(particles.DrawInstructions{
		Particles: []particles.Circle{{X: 5, Y: 5, Radius: 2, Color: cyan, Opacity: 0.6}},
		Links:     []particles.Line{{X1: 5, Y1: 5, X2: 35, Y2: 5, ColorStart: cyan, ColorEnd: cyan, Opacity: 0.9, Width: 1}},
	})
	if got := c.At(0, 0).Rune; got != particleRune {
		t.Errorf("cell under the particle = %q; want %q", got, particleRune)
	}
	if got := c.At(2, 0).Rune; got != '*' {
		t.Errorf("strong link cell = %q; want '*'", got)
	}
}

func TestCanvas_GlowTintsBackground(t *testing.T) {
	c := NewCanvas(5, 5, CellWidth, CellHeight, black)
	c.Render(particles.DrawInstructions{
		Glows: []particles.Circle{{X: 25, Y: 50, Radius: 12, Color: cyan, Opacity: 0.4}},
	})
	if c.At(2, 2).Bg == c.background {
		t.Error("glow centre should be tinted")
	}
	if c.At(2, 2).Rune != ' ' {
		t.Error("glows do not change glyphs")
	}
	// (15, 50) and (35, 50) are 10 away, (25, 30) is 20 away.
	if c.At(1, 2).Bg == c.background || c.At(3, 2).Bg == c.background {
		t.Error("horizontal neighbours inside the radius should be tinted")
	}
	if c.At(2, 1).Bg != c.background {
		t.Error("the cell above lies outside the radius")
	}
}

func TestRampGlyph(t *testing.T) {
	tests := []struct {
		opacity float64
		want    rune
	}{
		{0, '.'},
		{0.2, '.'},
		{0.3, ':'},
		{0.6, '+'},
		{0.8, '*'},
		{1, '*'},
		{-1, '.'},
	}
	for _, tt := range tests {
		if got, _ := rampGlyph(tt.opacity); got != tt.want {
			t.Errorf("rampGlyph(%v) = %q; want %q", tt.opacity, got, tt.want)
		}
	}
}
