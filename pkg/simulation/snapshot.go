package simulation

import (
	"image/color"

	"github.com/lao-tseu-is-alive/go-particle-network/pb"
	"github.com/lao-tseu-is-alive/go-particle-network/pkg/particles"
)

// SnapshotToProto wraps one frame of draw instructions in the envelope sent
// from the FieldActor to the UI.
func SnapshotToProto(frame uint64, width, height float64, d particles.DrawInstructions) *pb.FrameSnapshot {
	return &pb.FrameSnapshot{
		Frame:        frame,
		Width:        width,
		Height:       height,
		Particles:    circlesToProto(d.Particles),
		Links:        linesToProto(d.Links),
		PointerLinks: linesToProto(d.PointerLinks),
		Glows:        circlesToProto(d.Glows),
	}
}

// SnapshotFromProto unwraps a FrameSnapshot. A nil snapshot is an empty frame.
func SnapshotFromProto(s *pb.FrameSnapshot) particles.DrawInstructions {
	return particles.DrawInstructions{
		Particles:    circlesFromProto(s.GetParticles()),
		Links:        linesFromProto(s.GetLinks()),
		PointerLinks: linesFromProto(s.GetPointerLinks()),
		Glows:        circlesFromProto(s.GetGlows()),
	}
}

func circlesToProto(cs []particles.Circle) []*pb.Circle {
	if len(cs) == 0 {
		return nil
	}
	out := make([]*pb.Circle, len(cs))
	for i, c := range cs {
		out[i] = &pb.Circle{
			X:       c.X,
			Y:       c.Y,
			Radius:  c.Radius,
			Color:   PackColor(c.Color),
			Opacity: c.Opacity,
		}
	}
	return out
}

func circlesFromProto(cs []*pb.Circle) []particles.Circle {
	if len(cs) == 0 {
		return nil
	}
	out := make([]particles.Circle, len(cs))
	for i, c := range cs {
		out[i] = particles.Circle{
			X:       c.GetX(),
			Y:       c.GetY(),
			Radius:  c.GetRadius(),
			Color:   UnpackColor(c.GetColor()),
			Opacity: c.GetOpacity(),
		}
	}
	return out
}

func linesToProto(ls []particles.Line) []*pb.Line {
	if len(ls) == 0 {
		return nil
	}
	out := make([]*pb.Line, len(ls))
	for i, l := range ls {
		out[i] = &pb.Line{
			X1:         l.X1,
			Y1:         l.Y1,
			X2:         l.X2,
			Y2:         l.Y2,
			ColorStart: PackColor(l.ColorStart),
			ColorEnd:   PackColor(l.ColorEnd),
			Opacity:    l.Opacity,
			Width:      l.Width,
		}
	}
	return out
}

func linesFromProto(ls []*pb.Line) []particles.Line {
	if len(ls) == 0 {
		return nil
	}
	out := make([]particles.Line, len(ls))
	for i, l := range ls {
		out[i] = particles.Line{
			X1:         l.GetX1(),
			Y1:         l.GetY1(),
			X2:         l.GetX2(),
			Y2:         l.GetY2(),
			ColorStart: UnpackColor(l.GetColorStart()),
			ColorEnd:   UnpackColor(l.GetColorEnd()),
			Opacity:    l.GetOpacity(),
			Width:      l.GetWidth(),
		}
	}
	return out
}

// PackColor encodes c as 0xRRGGBBAA.
func PackColor(c color.RGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// UnpackColor decodes 0xRRGGBBAA.
func UnpackColor(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
}
