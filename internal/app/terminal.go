package app

import (
	"context"
	"fmt"
	"time"

	"falling-sand/internal/core"
	"falling-sand/internal/sims/sand"

	"github.com/gdamore/tcell/v2"
)

// Terminal drives a Controller from a tcell screen. Each grid cell is one
// character cell; the last row carries a status line.
type Terminal struct {
	screen tcell.Screen
	ctrl   *Controller
	pacer  *core.FixedStep
	log    core.Logger
	styles []tcell.Style
}

// NewTerminal binds ctrl to an initialised screen, stepping at tps.
func NewTerminal(screen tcell.Screen, ctrl *Controller, tps int, log core.Logger) *Terminal {
	if log == nil {
		log = core.NopLogger{}
	}
	palette := ctrl.World().Palette()
	styles := make([]tcell.Style, len(palette))
	for i, c := range palette {
		styles[i] = tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}
	return &Terminal{
		screen: screen,
		ctrl:   ctrl,
		pacer:  core.NewFixedStep(tps),
		log:    log,
		styles: styles,
	}
}

// HandleEvent applies one input event. It returns false when the user asked
// to quit.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev)
	case *tcell.EventMouse:
		x, y := ev.Position()
		t.ctrl.Move(x, y)
		if ev.Buttons()&tcell.Button1 != 0 {
			t.ctrl.Press()
		} else {
			t.ctrl.Release()
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *Terminal) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyDelete, tcell.KeyBackspace, tcell.KeyBackspace2:
		t.ctrl.Clear()
		return true
	case tcell.KeyEnter:
		t.ctrl.Resume()
		return true
	case tcell.KeyRune:
	default:
		return true
	}
	switch r := ev.Rune(); r {
	case 'q':
		return false
	case '[':
		t.ctrl.Shrink()
	case ']':
		t.ctrl.Grow()
	case ' ':
		t.ctrl.TogglePause()
	case 'n':
		t.ctrl.StepOnce()
	case 'r':
		t.ctrl.Reset()
	default:
		t.ctrl.SelectKey(r)
	}
	return true
}

// Draw renders the grid and the status line.
func (t *Terminal) Draw() {
	w := t.ctrl.World()
	size := w.Size()
	cells := w.Cells()
	for y := 0; y < size.H; y++ {
		row := cells[y*size.W : (y+1)*size.W]
		for x, m := range row {
			style := tcell.StyleDefault
			if int(m) < len(t.styles) {
				style = t.styles[m]
			}
			t.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	t.drawStatus(size.H)
	t.screen.Show()
}

func (t *Terminal) drawStatus(y int) {
	w := t.ctrl.World()
	b := w.Brush()
	state := "running"
	if t.ctrl.Paused() {
		state = "paused"
	}
	line := fmt.Sprintf(" %s r=%d | %s | step %d | %d cells | 0-3 material  [ ] size  space pause  q quit",
		b.Material, b.Radius, state, w.Steps(), w.Occupied())
	width, _ := t.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	x := 0
	for _, r := range line {
		if x >= width {
			break
		}
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < width; x++ {
		t.screen.SetContent(x, y, ' ', nil, style)
	}
}

// Frame paints at the cursor, renders, then steps if the pacer allows it.
func (t *Terminal) Frame() {
	t.ctrl.Paint()
	t.Draw()
	if t.pacer.ShouldStep() {
		t.ctrl.Advance()
	}
}

// Run processes events and frames until ctx is cancelled or the user quits.
// The screen is finalised on return.
func (t *Terminal) Run(ctx context.Context) error {
	defer t.screen.Fini()
	t.screen.EnableMouse()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(t.pacer.Interval())
	defer ticker.Stop()
	t.log.Infof("terminal shell running at %s per step", t.pacer.Interval())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !t.HandleEvent(ev) {
				t.log.Infof("quit after %d steps", t.ctrl.World().Steps())
				return nil
			}
		case <-ticker.C:
			t.Frame()
		}
	}
}

// StyleFor returns the cell style used for m.
func (t *Terminal) StyleFor(m sand.Material) tcell.Style {
	if int(m) < len(t.styles) {
		return t.styles[m]
	}
	return tcell.StyleDefault
}
