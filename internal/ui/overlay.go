//go:build ebiten

package ui

import (
	"image/color"

	"falling-sand/internal/render"
	"falling-sand/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// brushSource is the slice of the controller the overlay needs.
type brushSource interface {
	Cursor() (int, int)
	World() *sand.World
}

// Overlay draws the brush outline at the cursor on top of the grid.
type Overlay struct {
	src       brushSource
	scale     int
	showBrush bool
	pixel     *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(src brushSource, scale int) *Overlay {
	o := &Overlay{src: src, scale: scale, showBrush: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the brush outline with B.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.showBrush = !o.showBrush
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showBrush {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	world := o.src.World()
	brush := world.Brush()
	size := world.Size()
	cx, cy := o.src.Cursor()
	tint := world.Registry().Color(brush.Material)
	if brush.Material == sand.Empty {
		tint = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	}
	tint.A = 160
	for _, p := range render.DiscOutline(cx, cy, brush.Radius) {
		if p.X < 0 || p.X >= size.W || p.Y < 0 || p.Y >= size.H {
			continue
		}
		o.drawCell(screen, p.X, p.Y, scale, tint)
	}
}

func (o *Overlay) drawCell(screen *ebiten.Image, x, y, scale int, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(x*scale), float64(y*scale))
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
