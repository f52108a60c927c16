package term

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lao-tseu-is-alive/go-particle-network/pkg/particles"
	"github.com/tochemey/goakt/v3/log"
)

// Host drives a Field from a tcell screen: resize events rebuild the field,
// mouse motion moves the pointer and a ticker advances one frame per tick.
type Host struct {
	screen     tcell.Screen
	field      *particles.Field
	canvas     *Canvas
	logger     log.Logger
	frameEvery time.Duration

	paused    bool
	showStats bool
	last      particles.DrawInstructions
}

// NewHost sizes the field to the screen. fps <= 0 means 30.
func NewHost(screen tcell.Screen, field *particles.Field, background color.RGBA, fps int, logger log.Logger) *Host {
	if fps <= 0 {
		fps = 30
	}
	cols, rows := screen.Size()
	h := &Host{
		screen:     screen,
		field:      field,
		canvas:     NewCanvas(cols, rows, CellWidth, CellHeight, background),
		logger:     logger,
		frameEvery: time.Second / time.Duration(fps),
		showStats:  true,
	}
	h.field.Initialize(h.canvas.Surface())
	return h
}

// Run polls events on a separate goroutine and renders until ctx ends or
// the user quits.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(h.screen, events, done)

	ticker := time.NewTicker(h.frameEvery)
	defer ticker.Stop()

	h.logger.Infof("Terminal host started with %d particles", h.field.Len())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if h.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			h.Frame()
		}
	}
}

// pollEvents forwards screen events until the screen is finalised or done
// is closed. events is closed when the screen stops delivering.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// HandleEvent applies one screen event and reports whether to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		h.canvas.Resize(cols, rows)
		h.field.Resize(h.canvas.Surface())
		h.screen.Sync()
		h.logger.Infof("Resized to %dx%d cells, %d particles", cols, rows, h.field.Len())

	case *tcell.EventMouse:
		col, row := ev.Position()
		h.field.SetPointer(h.canvas.ToField(col, row))

	case *tcell.EventFocus:
		if !ev.Focused {
			h.field.ClearPointer()
		}

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case 'p', ' ':
				h.paused = !h.paused
			case 'r':
				h.field.Resize(h.canvas.Surface())
				h.logger.Debugf("Reseeded %d particles", h.field.Len())
			case 'c':
				h.field.ClearPointer()
			case 's':
				h.showStats = !h.showStats
			case '+':
				h.adjustLinkDistance(10)
			case '-':
				h.adjustLinkDistance(-10)
			}
		}
	}
	return false
}

func (h *Host) adjustLinkDistance(delta float64) {
	h.field.SetLinkDistance(h.field.Config().LinkDistance + delta)
	h.logger.Debugf("Link distance now %.0f", h.field.Config().LinkDistance)
}

// Frame advances the field unless paused and redraws the screen.
func (h *Host) Frame() {
	if !h.paused {
		h.last = h.field.AdvanceFrame()
	}
	h.canvas.Clear()
	h.canvas.Render(h.last)
	if p, ok := h.field.Pointer(); ok {
		h.canvas.MarkPointer(p.X, p.Y, h.field.Config().Secondary)
	}
	Blit(h.screen, h.canvas)
	if h.showStats {
		h.drawStatus()
	}
	h.screen.Show()
}

func (h *Host) drawStatus() {
	state := ""
	if h.paused {
		state = " paused"
	}
	status := fmt.Sprintf(" frame %d%s | %d particles | %d links | q quit  p pause  r reseed  +/- links ",
		h.field.Frame(), state, h.field.Len(), len(h.last.Links))
	cols, rows := h.canvas.Size()
	if rows == 0 {
		return
	}
	style := tcell.StyleDefault.Reverse(true)
	for i, r := range []rune(status) {
		if i >= cols {
			break
		}
		h.screen.SetContent(i, rows-1, r, nil, style)
	}
}

// Blit copies the canvas onto the screen with true colours.
func Blit(screen tcell.Screen, c *Canvas) {
	cols, rows := c.Size()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cell := c.At(col, row)
			style := tcell.StyleDefault.
				Foreground(toTcell(cell.Fg)).
				Background(toTcell(cell.Bg))
			screen.SetContent(col, row, cell.Rune, nil, style)
		}
	}
}
