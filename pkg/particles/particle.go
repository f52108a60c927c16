package particles

import "github.com/lao-tseu-is-alive/go-particle-network/pkg/geometry"

// Particle is a single drifting point of the constellation.
type Particle struct {
	Pos    geometry.Vector2D
	Vel    geometry.Vector2D
	Radius float64
}

// Step applies the velocity to the position, then bounces off the walls of
// a width x height surface: a coordinate that left [0, size] flips the
// matching velocity component and is clamped back onto the wall. The
// position is not mirrored, so a particle may rest on the wall for a frame.
func (p *Particle) Step(width, height float64) {
	p.Pos = p.Pos.Add(p.Vel)

	if p.Pos.X < 0 || p.Pos.X > width {
		p.Vel.X = -p.Vel.X
	}
	if p.Pos.Y < 0 || p.Pos.Y > height {
		p.Vel.Y = -p.Vel.Y
	}
	p.Pos = p.Pos.Clamp(0, 0, width, height)
}

// InBounds reports whether the particle lies inside [0, width] x [0, height].
func (p Particle) InBounds(width, height float64) bool {
	return p.Pos.X >= 0 && p.Pos.X <= width && p.Pos.Y >= 0 && p.Pos.Y <= height
}
