// Package particles implements the constellation particle network: a set of
// drifting points linked to their neighbours and to the pointer.
//
// A Field never draws and never schedules itself. The host sizes the
// surface, forwards pointer events, calls AdvanceFrame once per display
// frame and paints the returned DrawInstructions. A Field is not safe for
// concurrent use; hosts serialise access (see simulation.FieldActor).
package particles

import (
	"math"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-particle-network/pkg/geometry"
)

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// Field owns the particles of one drawing surface and the pointer state.
type Field struct {
	cfg Config
	rng RandomSource

	width, height float64
	particles     []Particle

	pointer    geometry.Vector2D
	hasPointer bool

	frame uint64
}

// NewField creates an empty field. A nil rng falls back to the
// process-wide math/rand/v2 generator; tests pass a seeded one.
func NewField(cfg Config, rng RandomSource) *Field {
	if rng == nil {
		rng = globalSource{}
	}
	return &Field{cfg: cfg, rng: rng}
}

// MaxParticles caps the set size for surfaces far larger than any screen.
const MaxParticles = 5000

// ParticleCount is floor(width*height / areaPerParticle), at most
// MaxParticles, or 0 for a degenerate surface.
func ParticleCount(width, height, areaPerParticle float64) int {
	width, height = sanitizeDimension(width), sanitizeDimension(height)
	if width == 0 || height == 0 || areaPerParticle <= 0 {
		return 0
	}
	n := math.Floor(width * height / areaPerParticle)
	if math.IsNaN(n) || n > MaxParticles {
		return MaxParticles
	}
	return int(n)
}

// Initialize replaces the particle set with a fresh random one sized for a
// width x height surface. Negative or non-finite dimensions count as 0.
func (f *Field) Initialize(width, height float64) {
	f.width, f.height = sanitizeDimension(width), sanitizeDimension(height)
	f.frame = 0

	n := ParticleCount(f.width, f.height, f.cfg.AreaPerParticle)
	particles := make([]Particle, n)
	for i := range particles {
		particles[i] = Particle{
			Pos: geometry.Vector2D{
				X: f.rng.Float64() * f.width,
				Y: f.rng.Float64() * f.height,
			},
			Vel: geometry.Vector2D{
				X: f.uniform(-f.cfg.MaxSpeed, f.cfg.MaxSpeed),
				Y: f.uniform(-f.cfg.MaxSpeed, f.cfg.MaxSpeed),
			},
			Radius: f.uniform(f.cfg.MinRadius, f.cfg.MaxRadius),
		}
	}
	f.particles = particles
}

// Resize reinitialises the field for the new surface. Existing particles
// are discarded rather than rescaled.
func (f *Field) Resize(width, height float64) {
	f.Initialize(width, height)
}

// SetPointer records the pointer in surface coordinates. Coordinates
// outside the surface are kept; they only yield fewer connections.
// A NaN or infinite coordinate clears the pointer instead.
func (f *Field) SetPointer(x, y float64) {
	p := geometry.Vector2D{X: x, Y: y}
	if !p.IsFinite() {
		f.ClearPointer()
		return
	}
	f.pointer = p
	f.hasPointer = true
}

// ClearPointer marks the pointer as absent.
func (f *Field) ClearPointer() {
	f.pointer = geometry.Vector2D{}
	f.hasPointer = false
}

// Pointer returns the pointer position and whether it is present.
func (f *Field) Pointer() (geometry.Vector2D, bool) {
	return f.pointer, f.hasPointer
}

// SetLinkDistance changes the particle-to-particle threshold. Non-positive
// values are ignored.
func (f *Field) SetLinkDistance(d float64) {
	if d > 0 {
		f.cfg.LinkDistance = d
	}
}

// SetPointerDistance changes the particle-to-pointer threshold. Non-positive
// values are ignored.
func (f *Field) SetPointerDistance(d float64) {
	if d > 0 {
		f.cfg.PointerDistance = d
	}
}

// Config returns the settings currently in effect.
func (f *Field) Config() Config { return f.cfg }

// Bounds returns the surface size the field was last initialised with.
func (f *Field) Bounds() (width, height float64) { return f.width, f.height }

// Len returns the number of particles.
func (f *Field) Len() int { return len(f.particles) }

// Frame returns the number of frames advanced since the last Initialize.
func (f *Field) Frame() uint64 { return f.frame }

// Particles returns a copy of the particle set.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// SetParticles replaces the particle set with a copy of ps, keeping the
// current bounds. Positions are clamped on the next frame.
func (f *Field) SetParticles(ps []Particle) {
	f.particles = make([]Particle, len(ps))
	copy(f.particles, ps)
}

// AdvanceFrame moves every particle one step and returns what to draw.
func (f *Field) AdvanceFrame() DrawInstructions {
	for i := range f.particles {
		f.particles[i].Step(f.width, f.height)
	}
	f.frame++
	return f.instructions()
}

// instructions builds the draw set from the current positions. Positions
// are read only, so every pair sees the same frame.
func (f *Field) instructions() DrawInstructions {
	cfg := f.cfg
	out := DrawInstructions{
		Particles: make([]Circle, 0, len(f.particles)),
	}

	for _, p := range f.particles {
		out.Particles = append(out.Particles, Circle{
			X:       p.Pos.X,
			Y:       p.Pos.Y,
			Radius:  p.Radius,
			Color:   cfg.Primary,
			Opacity: cfg.ParticleOpacity,
		})
	}

	linkSq := cfg.LinkDistance * cfg.LinkDistance
	for i := 0; i < len(f.particles); i++ {
		a := f.particles[i].Pos
		for j := i + 1; j < len(f.particles); j++ {
			b := f.particles[j].Pos
			distSq := a.DistanceSquaredTo(b)
			if distSq >= linkSq {
				continue
			}
			dist := math.Sqrt(distSq)
			out.Links = append(out.Links, Line{
				X1: a.X, Y1: a.Y,
				X2: b.X, Y2: b.Y,
				ColorStart: cfg.Primary,
				ColorEnd:   cfg.Primary,
				Opacity:    falloff(dist, cfg.LinkDistance) * cfg.LinkOpacity,
				Width:      cfg.LinkWidth,
			})
		}
	}

	if !f.hasPointer {
		return out
	}

	pointerSq := cfg.PointerDistance * cfg.PointerDistance
	for _, p := range f.particles {
		distSq := p.Pos.DistanceSquaredTo(f.pointer)
		if distSq >= pointerSq {
			continue
		}
		opacity := falloff(math.Sqrt(distSq), cfg.PointerDistance) * cfg.PointerOpacity
		out.PointerLinks = append(out.PointerLinks, Line{
			X1: p.Pos.X, Y1: p.Pos.Y,
			X2: f.pointer.X, Y2: f.pointer.Y,
			ColorStart: cfg.Primary,
			ColorEnd:   cfg.Secondary,
			Opacity:    opacity,
			Width:      cfg.PointerWidth,
		})
		out.Glows = append(out.Glows, Circle{
			X:       p.Pos.X,
			Y:       p.Pos.Y,
			Radius:  p.Radius * cfg.GlowScale,
			Color:   cfg.Primary,
			Opacity: opacity / 2,
		})
	}
	return out
}

func (f *Field) uniform(lo, hi float64) float64 {
	return lo + f.rng.Float64()*(hi-lo)
}

// falloff is 1 at distance 0 and 0 at limit.
func falloff(dist, limit float64) float64 {
	return 1 - dist/limit
}

func sanitizeDimension(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
