package display

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-particle-network/pkg/particles"
	"github.com/lao-tseu-is-alive/go-particle-network/pkg/ui"
)

// Stats is what the overlay reports about the last frame.
type Stats struct {
	Frame     uint64
	Particles int
	Links     int
	Pointer   int
	FPS, TPS  float64
	UpdateMs  float64
	DrawMs    float64
	Paused    bool
}

// StatsFor counts the layers of d.
func StatsFor(frame uint64, d particles.DrawInstructions) Stats {
	return Stats{
		Frame:     frame,
		Particles: len(d.Particles),
		Links:     len(d.Links),
		Pointer:   len(d.PointerLinks),
	}
}

func (s Stats) String() string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	return fmt.Sprintf("frame %d (%s)\nparticles %d\nlinks %d\npointer %d\n\nFPS %.1f  TPS %.1f\nupdate %.2fms\ndraw   %.2fms",
		s.Frame, state, s.Particles, s.Links, s.Pointer, s.FPS, s.TPS, s.UpdateMs, s.DrawMs)
}

const hudHelp = "Tab settings  P pause  R reseed"

// drawHUD prints the stats block in the top-right corner and the key help
// along the bottom edge.
func drawHUD(screen *ebiten.Image, s Stats) {
	const width, height = 170.0, 140.0
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	x := float64(w) - width - 10

	vector.FillRect(screen, float32(x), 10, width, height, color.RGBA{R: 10, G: 10, B: 20, A: 170}, true)
	ui.DrawText(screen, s.String(), x+8, 16, color.RGBA{R: 200, G: 220, B: 230, A: 255})
	ui.DrawText(screen, hudHelp, 10, float64(h)-ui.LineHeight-6, color.RGBA{R: 120, G: 120, B: 150, A: 255})
}
