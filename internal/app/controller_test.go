package app

import (
	"testing"

	"falling-sand/internal/core"
	"falling-sand/internal/sims/sand"
)

func newSeededController(t *testing.T, w, h int) *Controller {
	t.Helper()
	cfg := sand.DefaultConfig()
	cfg.Width, cfg.Height = w, h
	cfg.Ticks = core.TicksSeeded
	world, err := sand.NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("new world: %v", err)
	}
	return NewController(world, 9, nil)
}

func TestControllerPaintsOnlyWhilePressed(t *testing.T) {
	c := newSeededController(t, 10, 10)
	c.Move(5, 5)
	c.Paint()
	if n := c.World().Occupied(); n != 0 {
		t.Fatalf("released brush painted %d cells", n)
	}
	c.Press()
	c.Paint()
	if n := c.World().Occupied(); n != 5 {
		t.Fatalf("radius 1 brush should paint 5 cells, got %d", n)
	}
	c.Release()
	if c.Pressed() {
		t.Fatal("release did not end the gesture")
	}
}

func TestControllerFrameSequence(t *testing.T) {
	c := newSeededController(t, 5, 5)
	c.SelectKey('1')
	c.Move(2, 0)
	c.Press()

	// paint, render, step: the freshly painted top cell is visible before
	// the step moves it.
	c.Paint()
	if m, _, _ := c.World().CellAt(2, 0); m != sand.Sand {
		t.Fatalf("expected sand at the cursor before stepping, got %s", m)
	}
	if !c.Advance() {
		t.Fatal("advance should step while running")
	}
	if c.World().Steps() != 1 {
		t.Fatalf("expected 1 step, got %d", c.World().Steps())
	}
	want := map[[2]int]bool{{1, 1}: true, {3, 1}: true, {4, 1}: true, {2, 2}: true}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			m, _, _ := c.World().CellAt(x, y)
			if (m == sand.Sand) != want[[2]int{x, y}] {
				t.Fatalf("unexpected %s at (%d,%d) after one step", m, x, y)
			}
		}
	}
}

func TestControllerPauseAndStepOnce(t *testing.T) {
	c := newSeededController(t, 4, 4)
	c.TogglePause()
	if !c.Paused() {
		t.Fatal("expected paused")
	}
	if c.Advance() {
		t.Fatal("paused controller should not step")
	}
	c.StepOnce()
	if !c.AdvanceTick(0) {
		t.Fatal("step-once should step while paused")
	}
	if c.Advance() {
		t.Fatal("step-once should only step once")
	}
	if c.World().Steps() != 1 {
		t.Fatalf("expected 1 step, got %d", c.World().Steps())
	}
	c.Resume()
	if c.Paused() || !c.Advance() {
		t.Fatal("resume should restart stepping")
	}
}

func TestControllerSelectKey(t *testing.T) {
	c := newSeededController(t, 4, 4)
	for _, tc := range []struct {
		key  rune
		want sand.Material
	}{
		{'0', sand.Empty},
		{'1', sand.Sand},
		{'2', sand.Water},
		{'3', sand.Dirt},
	} {
		if !c.SelectKey(tc.key) {
			t.Fatalf("key %q rejected", tc.key)
		}
		if got := c.World().Brush().Material; got != tc.want {
			t.Fatalf("key %q selected %s, want %s", tc.key, got, tc.want)
		}
	}
	if c.SelectKey('9') {
		t.Fatal("key '9' should not select a material")
	}
	if got := c.World().Brush().Material; got != sand.Dirt {
		t.Fatalf("rejected key changed material to %s", got)
	}
}

func TestControllerBrushRadiusFloor(t *testing.T) {
	c := newSeededController(t, 4, 4)
	c.Shrink()
	c.Shrink()
	if r := c.World().Brush().Radius; r != sand.MinBrushRadius {
		t.Fatalf("radius fell to %d", r)
	}
	c.Grow()
	if r := c.World().Brush().Radius; r != sand.MinBrushRadius+1 {
		t.Fatalf("grow gave radius %d", r)
	}
}

func TestControllerResetIsReproducible(t *testing.T) {
	run := func(c *Controller) []uint8 {
		c.World().Paint(3, 0, 2, sand.Water)
		for range 12 {
			c.Advance()
		}
		return append([]uint8(nil), c.World().Cells()...)
	}
	c := newSeededController(t, 8, 6)
	c.Reset()
	first := run(c)
	c.Reset()
	if c.World().Occupied() != 0 || c.World().Steps() != 0 {
		t.Fatal("reset should clear the grid and the step count")
	}
	second := run(c)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("runs diverged at cell %d after reset", i)
		}
	}
}
