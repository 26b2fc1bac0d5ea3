package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillPalette(t *testing.T) {
	palette := []color.RGBA{
		{R: 0, G: 0, B: 0, A: 255},
		{R: 255, G: 255, B: 0, A: 255},
		{R: 0, G: 0, B: 255, A: 255},
	}
	cells := []uint8{0, 1, 2, 9}
	buf := make([]byte, 4*len(cells))
	FillPalette(buf, cells, palette)
	want := []byte{
		0, 0, 0, 255,
		255, 255, 0, 255,
		0, 0, 255, 255,
		0, 0, 255, 255,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, want %v", buf, want)
	}
}

func TestFillPaletteEmptyClears(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	FillPalette(buf, []uint8{1, 1}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, want 0", i, b)
		}
	}
}
