package particles

import "image/color"

// Circle is a filled disc. Color is opaque; Opacity carries the alpha.
type Circle struct {
	X, Y    float64
	Radius  float64
	Color   color.RGBA
	Opacity float64
}

// Line is a segment stroked with a two-stop gradient,
// ColorStart at (X1, Y1) and ColorEnd at (X2, Y2).
type Line struct {
	X1, Y1     float64
	X2, Y2     float64
	ColorStart color.RGBA
	ColorEnd   color.RGBA
	Opacity    float64
	Width      float64
}

// DrawInstructions is the renderer-agnostic output of one frame.
// Layers must be painted in field order: Particles, Links, then
// PointerLinks, then Glows, so the pointer glow ends up on top.
type DrawInstructions struct {
	Particles    []Circle
	Links        []Line
	PointerLinks []Line
	Glows        []Circle
}

// Circles returns every circle of the frame in paint order.
func (d DrawInstructions) Circles() []Circle {
	out := make([]Circle, 0, len(d.Particles)+len(d.Glows))
	out = append(out, d.Particles...)
	return append(out, d.Glows...)
}

// Lines returns every line of the frame in paint order.
func (d DrawInstructions) Lines() []Line {
	out := make([]Line, 0, len(d.Links)+len(d.PointerLinks))
	out = append(out, d.Links...)
	return append(out, d.PointerLinks...)
}

// Empty reports whether the frame draws nothing.
func (d DrawInstructions) Empty() bool {
	return len(d.Particles) == 0 && len(d.Links) == 0 && len(d.PointerLinks) == 0 && len(d.Glows) == 0
}
