package display

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-particle-network/pkg/particles"
)

// whiteImage is the texture behind every line quad; vertex colours tint it.
var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

// maxBatchVertices keeps vertex indices within uint16.
const maxBatchVertices = 1 << 16

// Renderer paints DrawInstructions onto an ebiten image. Its vertex and
// index buffers are reused across frames.
type Renderer struct {
	vertices []ebiten.Vertex
	indices  []uint16
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw paints the four layers in order: particles, links, pointer links,
// glows.
func (r *Renderer) Draw(screen *ebiten.Image, d particles.DrawInstructions) {
	drawCircles(screen, d.Particles)
	r.drawLines(screen, d.Links)
	r.drawLines(screen, d.PointerLinks)
	drawCircles(screen, d.Glows)
}

func drawCircles(screen *ebiten.Image, cs []particles.Circle) {
	for _, c := range cs {
		if c.Radius <= 0 || c.Opacity <= 0 {
			continue
		}
		vector.FillCircle(screen, float32(c.X), float32(c.Y), float32(c.Radius), withOpacity(c.Color, c.Opacity), true)
	}
}

// drawLines batches the segments as quads into as few DrawTriangles calls
// as the index width allows.
func (r *Renderer) drawLines(screen *ebiten.Image, ls []particles.Line) {
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	for _, l := range ls {
		if len(r.vertices)+4 > maxBatchVertices {
			r.flush(screen)
		}
		r.vertices, r.indices = appendLineQuad(r.vertices, r.indices, l)
	}
	r.flush(screen)
}

func (r *Renderer) flush(screen *ebiten.Image) {
	if len(r.indices) > 0 {
		op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
		screen.DrawTriangles(r.vertices, r.indices, whiteImage, op)
	}
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}

// appendLineQuad appends the two triangles covering l. The start colour is
// on the first two vertices, the end colour on the last two, and the GPU
// interpolates the gradient between them. Zero-length and invisible lines
// are skipped.
func appendLineQuad(vs []ebiten.Vertex, is []uint16, l particles.Line) ([]ebiten.Vertex, []uint16) {
	dx, dy := l.X2-l.X1, l.Y2-l.Y1
	length := math.Hypot(dx, dy)
	if length == 0 || l.Width <= 0 || l.Opacity <= 0 {
		return vs, is
	}
	half := l.Width / 2
	nx, ny := -dy/length*half, dx/length*half

	base := uint16(len(vs))
	vs = append(vs,
		vertex(l.X1+nx, l.Y1+ny, l.ColorStart, l.Opacity),
		vertex(l.X1-nx, l.Y1-ny, l.ColorStart, l.Opacity),
		vertex(l.X2+nx, l.Y2+ny, l.ColorEnd, l.Opacity),
		vertex(l.X2-nx, l.Y2-ny, l.ColorEnd, l.Opacity),
	)
	is = append(is, base, base+1, base+2, base+1, base+2, base+3)
	return vs, is
}

// vertex builds a straight-alpha vertex sampling the middle of whiteImage.
func vertex(x, y float64, c color.RGBA, opacity float64) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(c.R) / 255,
		ColorG: float32(c.G) / 255,
		ColorB: float32(c.B) / 255,
		ColorA: float32(c.A) / 255 * float32(clamp01(opacity)),
	}
}

func withOpacity(c color.RGBA, opacity float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(float64(c.A) * clamp01(opacity)))}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
