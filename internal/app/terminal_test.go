package app

import (
	"testing"

	"falling-sand/internal/sims/sand"

	"github.com/gdamore/tcell/v2"
)

func newTestTerminal(t *testing.T, w, h int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h+1)
	ctrl := NewController(sand.New(w, h), 7, nil)
	return NewTerminal(screen, ctrl, 60, nil), screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestTerminalDrawUsesMaterialColors(t *testing.T) {
	term, screen := newTestTerminal(t, 4, 4)
	term.ctrl.World().Paint(1, 3, 0, sand.Sand)
	term.ctrl.World().Paint(2, 3, 0, sand.Water)
	term.Draw()

	for _, tc := range []struct {
		x, y int
		m    sand.Material
	}{
		{1, 3, sand.Sand},
		{2, 3, sand.Water},
		{0, 0, sand.Empty},
	} {
		_, _, style, _ := screen.GetContent(tc.x, tc.y)
		if style != term.StyleFor(tc.m) {
			t.Fatalf("cell (%d,%d) not drawn as %s", tc.x, tc.y, tc.m)
		}
	}
	if r, _, _, _ := screen.GetContent(1, 4); r == ' ' {
		t.Fatal("expected status line on the last row")
	}
}

func TestTerminalKeys(t *testing.T) {
	term, _ := newTestTerminal(t, 8, 8)
	brush := term.ctrl.World().Brush()

	if !term.HandleEvent(key('2')) || brush.Material != sand.Water {
		t.Fatalf("expected water selected, got %s", brush.Material)
	}
	term.HandleEvent(key(']'))
	term.HandleEvent(key(']'))
	if brush.Radius != 3 {
		t.Fatalf("expected radius 3, got %d", brush.Radius)
	}
	for range 5 {
		term.HandleEvent(key('['))
	}
	if brush.Radius != sand.MinBrushRadius {
		t.Fatalf("expected radius clamped to %d, got %d", sand.MinBrushRadius, brush.Radius)
	}
	term.HandleEvent(key(' '))
	if !term.ctrl.Paused() {
		t.Fatal("space should pause")
	}
	term.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if term.ctrl.Paused() {
		t.Fatal("enter should resume")
	}

	term.ctrl.World().Paint(4, 4, 2, sand.Dirt)
	term.HandleEvent(tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone))
	if n := term.ctrl.World().Occupied(); n != 0 {
		t.Fatalf("delete should clear the grid, %d cells left", n)
	}

	if term.HandleEvent(key('q')) {
		t.Fatal("q should quit")
	}
	if term.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
}

func TestTerminalMousePaintsThenSteps(t *testing.T) {
	term, _ := newTestTerminal(t, 4, 4)
	term.HandleEvent(tcell.NewEventMouse(1, 0, tcell.Button1, tcell.ModNone))
	if !term.ctrl.Pressed() {
		t.Fatal("button 1 should start a paint gesture")
	}
	if x, y := term.ctrl.Cursor(); x != 1 || y != 0 {
		t.Fatalf("cursor at (%d,%d)", x, y)
	}

	term.Frame()
	w := term.ctrl.World()
	if w.Steps() != 1 {
		t.Fatalf("expected one step, got %d", w.Steps())
	}
	// Radius 1 at (1,0) covers four cells; falling must not change the count.
	if n := w.Occupied(); n != 4 {
		t.Fatalf("expected 4 cells after the frame, got %d", n)
	}

	term.HandleEvent(tcell.NewEventMouse(1, 0, tcell.ButtonNone, tcell.ModNone))
	if term.ctrl.Pressed() {
		t.Fatal("button release should end the gesture")
	}
}
