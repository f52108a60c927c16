package simulation

import (
	"math/rand/v2"
	"time"

	"github.com/lao-tseu-is-alive/go-particle-network/pb"
	"github.com/lao-tseu-is-alive/go-particle-network/pkg/particles"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
	"github.com/tochemey/goakt/v3/log"
	"google.golang.org/protobuf/proto"
)

// FieldActor owns the particle field of the window. Resize, pointer and
// settings messages land between ticks and take effect on the next Tick;
// the mailbox guarantees frames never overlap.
type FieldActor struct {
	field      *particles.Field
	cfg        *Config
	snapshotCh chan<- *pb.FrameSnapshot

	// --- Telemetry ---
	framesSent    int
	framesDropped int
	lastLogTime   time.Time
}

var _ actor.Actor = (*FieldActor)(nil)

// NewFieldActor builds the actor and its field from cfg. Snapshots are
// pushed on snapshotCh without blocking.
func NewFieldActor(snapshotCh chan<- *pb.FrameSnapshot, cfg *Config) (*FieldActor, error) {
	fc, err := cfg.FieldConfig()
	if err != nil {
		return nil, err
	}
	return &FieldActor{
		field:       particles.NewField(fc, NewRandomSource(cfg.Seed)),
		cfg:         cfg,
		snapshotCh:  snapshotCh,
		lastLogTime: time.Now(),
	}, nil
}

// NewRandomSource returns a PCG generator; seed 0 seeds from the clock.
func NewRandomSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

// ============================================================================
// Actor Lifecycle Hooks
// ============================================================================

func (a *FieldActor) PreStart(ctx *actor.Context) error {
	a.field.Initialize(float64(a.cfg.WindowWidth), float64(a.cfg.WindowHeight))
	ctx.ActorSystem().Logger().Infof("Field seeded with %d particles on %dx%d",
		a.field.Len(), a.cfg.WindowWidth, a.cfg.WindowHeight)
	return nil
}

func (a *FieldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {

	case *goaktpb.PostStart:
		ctx.Logger().Infof("%s started", ctx.Self().Name())

	case *pb.Tick:
		a.logTelemetry(ctx.Logger())
		a.pushSnapshot(a.Step())

	case *pb.Resize:
		a.Apply(msg)
		ctx.Logger().Infof("Surface resized to %.0fx%.0f, %d particles",
			msg.GetWidth(), msg.GetHeight(), a.field.Len())

	case *pb.UpdateSettings:
		a.Apply(msg)
		ctx.Logger().Debugf("Thresholds now link=%.1f pointer=%.1f",
			msg.GetLinkDistance(), msg.GetPointerDistance())

	case *pb.PointerMoved, *pb.PointerLeft:
		a.Apply(msg)

	default:
		ctx.Unhandled()
	}
}

func (a *FieldActor) PostStop(ctx *actor.Context) error {
	// Drop the particle set; PreStart rebuilds it on restart.
	a.field.Initialize(0, 0)
	ctx.ActorSystem().Logger().Info("Field actor stopped")
	return nil
}

// ============================================================================
// Field Access
// ============================================================================

// Apply forwards a host event to the field. It reports false for messages
// that are not host events.
func (a *FieldActor) Apply(msg proto.Message) bool {
	switch m := msg.(type) {
	case *pb.Resize:
		a.field.Resize(m.GetWidth(), m.GetHeight())
	case *pb.PointerMoved:
		a.field.SetPointer(m.GetX(), m.GetY())
	case *pb.PointerLeft:
		a.field.ClearPointer()
	case *pb.UpdateSettings:
		a.field.SetLinkDistance(m.GetLinkDistance())
		a.field.SetPointerDistance(m.GetPointerDistance())
	default:
		return false
	}
	return true
}

// Step advances the field one frame and wraps the result.
func (a *FieldActor) Step() *pb.FrameSnapshot {
	d := a.field.AdvanceFrame()
	w, h := a.field.Bounds()
	return SnapshotToProto(a.field.Frame(), w, h, d)
}

// Field exposes the owned field for inspection in tests.
func (a *FieldActor) Field() *particles.Field { return a.field }

func (a *FieldActor) pushSnapshot(snap *pb.FrameSnapshot) {
	select {
	case a.snapshotCh <- snap:
		a.framesSent++
	default:
		// UI busy, skip frame
		a.framesDropped++
	}
}

func (a *FieldActor) logTelemetry(logger log.Logger) {
	if time.Since(a.lastLogTime) < time.Second {
		return
	}
	logger.Debugf("FRAMES: %d/sec (dropped %d) | particles: %d",
		a.framesSent, a.framesDropped, a.field.Len())
	a.framesSent = 0
	a.framesDropped = 0
	a.lastLogTime = time.Now()
}
