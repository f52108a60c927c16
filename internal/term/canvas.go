// Package term rasterises particle frames onto a terminal cell grid and
// runs the field inside a tcell screen.
package term

import (
	"image/color"
	"math"

	"github.com/lao-tseu-is-alive/go-particle-network/pkg/particles"
	"github.com/lucasb-eyer/go-colorful"
)

// Default cell size in field units. Terminal cells are about twice as
// tall as they are wide.
const (
	CellWidth  = 10.0
	CellHeight = 20.0
)

// Glyphs by increasing priority. A plot never replaces a glyph of higher
// rank, so particles stay visible under their links.
var (
	lineRamp     = []rune{'.', ':', '+', '*'}
	particleRune = '●'
	pointerRune  = '◆'
)

// Cell is one terminal cell: a glyph over a background colour. Fg is the
// glyph colour, Bg accumulates glows.
type Cell struct {
	Rune rune
	Fg   colorful.Color
	Bg   colorful.Color
	rank int
}

// Canvas is a cols x rows grid covering a field surface of
// cols*cellW x rows*cellH.
type Canvas struct {
	cols, rows   int
	cellW, cellH float64
	background   colorful.Color
	cells        []Cell
}

func NewCanvas(cols, rows int, cellW, cellH float64, background color.Color) *Canvas {
	bg, _ := colorful.MakeColor(background)
	c := &Canvas{cellW: cellW, cellH: cellH, background: bg}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates the grid and clears it. Negative sizes become 0.
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	c.cells = make([]Cell, c.cols*c.rows)
	c.Clear()
}

func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' ', Fg: c.background, Bg: c.background}
	}
}

func (c *Canvas) Size() (cols, rows int) { return c.cols, c.rows }

// Surface is the field size matching the grid.
func (c *Canvas) Surface() (width, height float64) {
	return float64(c.cols) * c.cellW, float64(c.rows) * c.cellH
}

// ToCell maps a field coordinate to the cell containing it.
func (c *Canvas) ToCell(x, y float64) (col, row int) {
	return int(math.Floor(x / c.cellW)), int(math.Floor(y / c.cellH))
}

// ToField maps a cell to the field coordinate of its centre.
func (c *Canvas) ToField(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * c.cellW, (float64(row) + 0.5) * c.cellH
}

// At returns the cell at (col, row); out-of-range cells read as blank.
func (c *Canvas) At(col, row int) Cell {
	if !c.inside(col, row) {
		return Cell{Rune: ' ', Fg: c.background, Bg: c.background}
	}
	return c.cells[row*c.cols+col]
}

func (c *Canvas) inside(col, row int) bool {
	return col >= 0 && row >= 0 && col < c.cols && row < c.rows
}

// plot blends clr into the glyph colour of a cell and takes over the glyph
// when rank is at least the current one.
func (c *Canvas) plot(col, row int, r rune, rank int, clr colorful.Color, alpha float64) {
	if !c.inside(col, row) || alpha <= 0 {
		return
	}
	cell := &c.cells[row*c.cols+col]
	if rank < cell.rank {
		return
	}
	if rank > cell.rank {
		cell.Fg = c.background
	}
	cell.Fg = cell.Fg.BlendRgb(clr, math.Min(alpha*2, 1)).Clamped()
	cell.Rune = r
	cell.rank = rank
}

// tint blends clr into the background of a cell.
func (c *Canvas) tint(col, row int, clr colorful.Color, alpha float64) {
	if !c.inside(col, row) || alpha <= 0 {
		return
	}
	cell := &c.cells[row*c.cols+col]
	cell.Bg = cell.Bg.BlendRgb(clr, math.Min(alpha, 1)).Clamped()
}

// Render paints d in layer order. Links become glyph trails whose density
// follows opacity, particles a dot, glows a tinted background.
func (c *Canvas) Render(d particles.DrawInstructions) {
	for _, p := range d.Particles {
		col, row := c.ToCell(p.X, p.Y)
		c.plot(col, row, particleRune, len(lineRamp)+1, toColorful(p.Color), p.Opacity)
	}
	for _, l := range d.Links {
		c.line(l)
	}
	for _, l := range d.PointerLinks {
		c.line(l)
	}
	for _, g := range d.Glows {
		c.glow(g)
	}
}

// line walks the cells between both ends with a DDA, grading the colour
// from start to end.
func (c *Canvas) line(l particles.Line) {
	if l.Opacity <= 0 {
		return
	}
	x1, y1 := l.X1/c.cellW, l.Y1/c.cellH
	x2, y2 := l.X2/c.cellW, l.Y2/c.cellH
	steps := int(math.Ceil(math.Max(math.Abs(x2-x1), math.Abs(y2-y1))))
	start, end := toColorful(l.ColorStart), toColorful(l.ColorEnd)
	r, rank := rampGlyph(l.Opacity)

	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		col := int(math.Floor(x1 + (x2-x1)*t))
		row := int(math.Floor(y1 + (y2-y1)*t))
		c.plot(col, row, r, rank, start.BlendRgb(end, t), l.Opacity)
	}
}

// glow tints every cell whose centre lies within the glow radius, and
// always the cell under the centre.
func (c *Canvas) glow(g particles.Circle) {
	clr := toColorful(g.Color)
	col0, row0 := c.ToCell(g.X, g.Y)
	c.tint(col0, row0, clr, g.Opacity)

	rc := int(math.Ceil(g.Radius / c.cellW))
	rr := int(math.Ceil(g.Radius / c.cellH))
	for row := row0 - rr; row <= row0+rr; row++ {
		for col := col0 - rc; col <= col0+rc; col++ {
			if col == col0 && row == row0 {
				continue
			}
			x, y := c.ToField(col, row)
			if math.Hypot(x-g.X, y-g.Y) < g.Radius {
				c.tint(col, row, clr, g.Opacity)
			}
		}
	}
}

// MarkPointer draws the pointer glyph at a field position.
func (c *Canvas) MarkPointer(x, y float64, clr color.RGBA) {
	col, row := c.ToCell(x, y)
	c.plot(col, row, pointerRune, len(lineRamp)+2, toColorful(clr), 1)
}

// rampGlyph picks a line glyph for an opacity in [0, 1] and its rank.
func rampGlyph(opacity float64) (rune, int) {
	i := int(opacity * float64(len(lineRamp)))
	i = min(max(i, 0), len(lineRamp)-1)
	return lineRamp[i], i + 1
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
