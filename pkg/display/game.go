// Package display hosts the particle field in an ebiten window. The field
// itself runs in a FieldActor; the Game forwards window events to it, asks
// for one frame per tick and paints the latest snapshot it got back.
package display

import (
	"context"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lao-tseu-is-alive/go-particle-network/pb"
	"github.com/lao-tseu-is-alive/go-particle-network/pkg/particles"
	"github.com/lao-tseu-is-alive/go-particle-network/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-particle-network/pkg/ui"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/log"
	"google.golang.org/protobuf/proto"
)

type Game struct {
	ctx       context.Context
	System    actor.ActorSystem
	fieldPID  *actor.PID
	snapshots <-chan *pb.FrameSnapshot
	logger    log.Logger
	cfg       *simulation.Config

	background color.RGBA
	renderer   *Renderer
	frame      particles.DrawInstructions
	frameNo    uint64

	pointer  PointerTracker
	surface  *SurfaceTracker
	settings *SettingsTracker
	outsideW int
	outsideH int

	// UI Controls
	panel                 *ui.UIPanel
	widgetLinkDistance    *ui.Slider
	widgetPointerDistance *ui.Slider
	widgetPaused          *ui.Checkbox
	widgetShowStats       *ui.Checkbox

	// Timing instrumentation
	updateAvg float64 // Rolling average in ms
	drawAvg   float64 // Rolling average in ms
}

// NewGame spawns the field actor in system and builds the window around it.
func NewGame(ctx context.Context, cfg *simulation.Config, system actor.ActorSystem) (*Game, error) {
	pid, snapshots, err := simulation.SpawnField(ctx, system, cfg)
	if err != nil {
		return nil, err
	}

	g := &Game{
		ctx:        ctx,
		System:     system,
		fieldPID:   pid,
		snapshots:  snapshots,
		logger:     system.Logger(),
		cfg:        cfg,
		background: cfg.Background(),
		renderer:   NewRenderer(),
		surface:    NewSurfaceTracker(cfg.WindowWidth, cfg.WindowHeight),
		settings:   NewSettingsTracker(cfg.LinkDistance, cfg.PointerDistance),
		outsideW:   cfg.WindowWidth,
		outsideH:   cfg.WindowHeight,
	}

	panel := ui.NewUIPanel(10, 10, 240, float64(cfg.WindowHeight)-20)
	panel.Visible = cfg.ShowPanel

	panel.AddSection("Connections")
	g.widgetLinkDistance = panel.AddSlider("Link distance", 50, 300, cfg.LinkDistance)
	g.widgetPointerDistance = panel.AddSlider("Pointer distance", 50, 400, cfg.PointerDistance)
	g.widgetLinkDistance.Step, g.widgetPointerDistance.Step = 5, 5
	panel.EndSection()

	panel.AddSection("Playback")
	g.widgetPaused = panel.AddCheckbox("Paused", false)
	g.widgetPaused.OnToggle = g.onPause
	g.widgetShowStats = panel.AddCheckbox("Show stats", cfg.ShowStats)
	panel.AddButton("Reseed", g.reseed)
	panel.EndSection()

	g.panel = panel
	return g, nil
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	g.handleKeys()
	g.panel.Update()

	if msg := g.surface.Observe(g.outsideW, g.outsideH); msg != nil {
		g.tell(msg)
	}
	if msg := g.settings.Observe(g.widgetLinkDistance.Value, g.widgetPointerDistance.Value); msg != nil {
		g.tell(msg)
	}

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	focused := ebiten.IsFocused() && !g.panel.Contains(x, y)
	if msg := g.pointer.Observe(x, y, g.outsideW, g.outsideH, focused); msg != nil {
		g.tell(msg)
	}

	g.drainSnapshots()

	if !g.widgetPaused.Value {
		g.tell(&pb.Tick{})
	}
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.panel.Visible = !g.panel.Visible
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.widgetPaused.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reseed()
	}
}

func (g *Game) onPause(paused bool) {
	if paused {
		g.logger.Infof("Animation paused at frame %d", g.frameNo)
		return
	}
	g.logger.Info("Animation resumed")
}

// reseed re-sends the current size, which rebuilds the particle set.
func (g *Game) reseed() {
	g.surface.Force()
}

// drainSnapshots keeps only the newest frame waiting on the channel.
func (g *Game) drainSnapshots() {
	for {
		select {
		case snap := <-g.snapshots:
			g.frame = simulation.SnapshotFromProto(snap)
			g.frameNo = snap.GetFrame()
		default:
			return
		}
	}
}

func (g *Game) tell(msg proto.Message) {
	if err := actor.Tell(g.ctx, g.fieldPID, msg); err != nil {
		g.logger.Errorf("failed to send %T to field: %v", msg, err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.drawAvg = g.drawAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	screen.Fill(g.background)
	g.renderer.Draw(screen, g.frame)
	g.panel.Draw(screen)

	if g.widgetShowStats.Value {
		stats := StatsFor(g.frameNo, g.frame)
		stats.FPS, stats.TPS = ebiten.ActualFPS(), ebiten.ActualTPS()
		stats.UpdateMs, stats.DrawMs = g.updateAvg, g.drawAvg
		stats.Paused = g.widgetPaused.Value
		drawHUD(screen, stats)
	}
}

// Layout follows the window so the field always covers the whole surface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.outsideW || outsideHeight != g.outsideH {
		g.outsideW, g.outsideH = outsideWidth, outsideHeight
		g.panel.Height = float64(outsideHeight) - 20
	}
	return outsideWidth, outsideHeight
}
