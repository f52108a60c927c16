package particles

import (
	"errors"
	"fmt"
	"image/color"
)

// Accent colours of the constellation: neon cyan and electric purple.
var (
	DefaultPrimary   = color.RGBA{R: 0, G: 240, B: 255, A: 255}
	DefaultSecondary = color.RGBA{R: 112, G: 0, B: 255, A: 255}
)

// Config holds the constants of a field. It is derived once (from the host
// configuration) and read on every frame.
type Config struct {
	// One particle per AreaPerParticle square pixels of surface.
	AreaPerParticle float64

	// Connection thresholds, strict: a pair at exactly LinkDistance is not linked.
	LinkDistance    float64
	PointerDistance float64

	// Velocity components are drawn from [-MaxSpeed, MaxSpeed].
	MaxSpeed float64
	// Radii are drawn from [MinRadius, MaxRadius].
	MinRadius float64
	MaxRadius float64

	// Peak opacities; link opacity falls off linearly to 0 at the threshold.
	ParticleOpacity float64
	LinkOpacity     float64
	PointerOpacity  float64

	LinkWidth    float64
	PointerWidth float64
	GlowScale    float64 // glow radius = GlowScale * particle radius

	Primary   color.RGBA
	Secondary color.RGBA
}

// DefaultConfig returns the cyan-on-violet constellation look.
func DefaultConfig() Config {
	return Config{
		AreaPerParticle: 15000,
		LinkDistance:    150,
		PointerDistance: 200,
		MaxSpeed:        0.25,
		MinRadius:       1,
		MaxRadius:       3,
		ParticleOpacity: 0.6,
		LinkOpacity:     0.3,
		PointerOpacity:  0.8,
		LinkWidth:       0.5,
		PointerWidth:    1,
		GlowScale:       2,
		Primary:         DefaultPrimary,
		Secondary:       DefaultSecondary,
	}
}

// Validate reports the first setting that would make the field meaningless.
func (c Config) Validate() error {
	switch {
	case c.AreaPerParticle <= 0:
		return fmt.Errorf("area per particle must be positive, got %v", c.AreaPerParticle)
	case c.LinkDistance <= 0:
		return fmt.Errorf("link distance must be positive, got %v", c.LinkDistance)
	case c.PointerDistance <= 0:
		return fmt.Errorf("pointer distance must be positive, got %v", c.PointerDistance)
	case c.MaxSpeed < 0:
		return fmt.Errorf("max speed must not be negative, got %v", c.MaxSpeed)
	case c.MinRadius < 0 || c.MaxRadius < c.MinRadius:
		return errors.New("radius range must satisfy 0 <= min <= max")
	}
	return nil
}
