package display

import (
	"github.com/lao-tseu-is-alive/go-particle-network/pb"
	"google.golang.org/protobuf/proto"
)

// PointerTracker turns per-frame cursor samples into pointer events. It
// emits PointerMoved when the cursor is inside and has moved, and a single
// PointerLeft when it goes out or the window loses focus.
type PointerTracker struct {
	inside bool
	x, y   float64
}

// Observe returns the event for this sample, or nil when nothing changed.
func (t *PointerTracker) Observe(x, y float64, width, height int, focused bool) proto.Message {
	inside := focused && x >= 0 && y >= 0 && x < float64(width) && y < float64(height)
	switch {
	case inside && (!t.inside || x != t.x || y != t.y):
		t.inside, t.x, t.y = true, x, y
		return &pb.PointerMoved{X: x, Y: y}
	case !inside && t.inside:
		t.inside = false
		return &pb.PointerLeft{}
	default:
		return nil
	}
}

// SurfaceTracker reports window size changes as Resize events.
type SurfaceTracker struct {
	width, height int
}

// NewSurfaceTracker starts from the size the field was seeded with.
func NewSurfaceTracker(width, height int) *SurfaceTracker {
	return &SurfaceTracker{width: width, height: height}
}

// Observe returns a Resize when the size differs from the last one seen.
func (t *SurfaceTracker) Observe(width, height int) *pb.Resize {
	if width == t.width && height == t.height {
		return nil
	}
	t.width, t.height = width, height
	return &pb.Resize{Width: float64(width), Height: float64(height)}
}

// Force makes the next Observe report the current size again.
func (t *SurfaceTracker) Force() { t.width, t.height = -1, -1 }

// SettingsTracker emits UpdateSettings when a threshold slider moved.
type SettingsTracker struct {
	link, pointer float64
}

func NewSettingsTracker(link, pointer float64) *SettingsTracker {
	return &SettingsTracker{link: link, pointer: pointer}
}

func (t *SettingsTracker) Observe(link, pointer float64) *pb.UpdateSettings {
	if link == t.link && pointer == t.pointer {
		return nil
	}
	t.link, t.pointer = link, pointer
	return &pb.UpdateSettings{LinkDistance: link, PointerDistance: pointer}
}
