package sand

import (
	"errors"
	"slices"
	"testing"
)

func TestGridBounds(t *testing.T) {
	g := NewGrid(4, 3)
	if err := g.Set(3, 2, Cell{Material: Dirt}); err != nil {
		t.Fatalf("set in bounds: %v", err)
	}
	c, err := g.Get(3, 2)
	if err != nil || c.Material != Dirt {
		t.Fatalf("get (3,2) = %+v, %v", c, err)
	}
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100}} {
		if _, err := g.Get(p[0], p[1]); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("get (%d,%d): expected ErrOutOfRange, got %v", p[0], p[1], err)
		}
		if err := g.Set(p[0], p[1], Cell{Material: Sand}); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("set (%d,%d): expected ErrOutOfRange, got %v", p[0], p[1], err)
		}
	}
	if g.Occupied() != 1 {
		t.Fatalf("failed sets must not write, occupied=%d", g.Occupied())
	}
}

func TestGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -5)
	if s := g.Size(); s.W != 1 || s.H != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d", s.W, s.H)
	}
}

func TestGridResetIdempotent(t *testing.T) {
	g := NewGrid(5, 5)
	_ = g.Set(1, 1, Cell{Material: Sand, Moved: true})
	_ = g.Set(2, 3, Cell{Material: Water})

	g.Reset()
	once := slices.Clone(g.Materials())
	onceMarks := slices.Clone(g.moved)
	g.Reset()

	if !slices.Equal(once, g.Materials()) || !slices.Equal(onceMarks, g.moved) {
		t.Fatal("second reset changed the grid")
	}
	for i, m := range g.Materials() {
		if Material(m) != Empty || g.moved[i] {
			t.Fatalf("cell %d not reset: material=%d moved=%v", i, m, g.moved[i])
		}
	}
}

func TestGridClearMarksKeepsMaterial(t *testing.T) {
	g := NewGrid(3, 3)
	_ = g.Set(0, 0, Cell{Material: Sand, Moved: true})
	_ = g.Set(2, 2, Cell{Material: Empty, Moved: true})
	g.ClearMarks()
	c, _ := g.Get(0, 0)
	if c.Material != Sand || c.Moved {
		t.Fatalf("unexpected cell after ClearMarks: %+v", c)
	}
	c, _ = g.Get(2, 2)
	if c.Moved {
		t.Fatal("mark on empty cell survived ClearMarks")
	}
}
