//go:build ebiten

package app

import (
	"falling-sand/internal/render"
	"falling-sand/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width in pixels of the side panel.
const HUDWidth = 180

var materialKeys = map[ebiten.Key]rune{
	ebiten.KeyDigit0: '0',
	ebiten.KeyDigit1: '1',
	ebiten.KeyDigit2: '2',
	ebiten.KeyDigit3: '3',
}

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *Controller
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale int
}

// New constructs a Game around ctrl.
func New(ctrl *Controller, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := ctrl.World().Size()
	return &Game{
		ctrl:    ctrl,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(ctrl, scale),
		hud:     ui.NewHUD(ctrl.World(), HUDWidth),
		scale:   scale,
	}
}

// Update handles input, then steps the frame that was just drawn and paints
// the next one, so the loop is paint, render, step.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.ctrl.Resume()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctrl.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.ctrl.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.ctrl.Shrink()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.ctrl.Grow()
	}
	for key, r := range materialKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.ctrl.SelectKey(r)
		}
	}

	size := g.ctrl.World().Size()
	mx, my := ebiten.CursorPosition()
	g.ctrl.Move(mx/g.scale, my/g.scale)
	onGrid := mx >= 0 && mx < size.W*g.scale && my >= 0 && my < size.H*g.scale
	if onGrid && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.ctrl.Press()
	} else {
		g.ctrl.Release()
	}

	g.overlay.Update()
	g.hud.Update(size.W * g.scale)

	g.ctrl.Advance()
	g.ctrl.Paint()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	w := g.ctrl.World()
	g.painter.Blit(screen, w.Cells(), w.Palette(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, w.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.ctrl.World().Size()
	return s.W*g.scale + HUDWidth, s.H * g.scale
}
