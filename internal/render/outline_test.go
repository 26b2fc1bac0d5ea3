package render

import (
	"image"
	"slices"
	"testing"
)

func TestDiscOutlineRadiusZero(t *testing.T) {
	got := DiscOutline(3, 4, 0)
	if !slices.Equal(got, []image.Point{{X: 3, Y: 4}}) {
		t.Fatalf("unexpected outline %v", got)
	}
}

func TestDiscOutlineSkipsInterior(t *testing.T) {
	got := DiscOutline(0, 0, 2)
	// 13 disc cells, of which the centre and its 4 neighbours are interior.
	if len(got) != 8 {
		t.Fatalf("expected 8 outline cells, got %d: %v", len(got), got)
	}
	for _, p := range []image.Point{image.Pt(0, 0), image.Pt(1, 0), image.Pt(-1, 0), image.Pt(0, 1), image.Pt(0, -1)} {
		if slices.Contains(got, p) {
			t.Fatalf("interior cell %v should not be on the outline", p)
		}
	}
	for _, p := range got {
		if p.X*p.X+p.Y*p.Y > 4 {
			t.Fatalf("outline point %v lies outside the disc", p)
		}
	}
}
