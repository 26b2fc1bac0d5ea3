package app

import (
	"falling-sand/internal/core"
	"falling-sand/internal/sims/sand"
)

// Controller maps the shell's input contract onto a sand world. Shells call
// Paint, then read cells to render, then Advance, once per frame.
type Controller struct {
	world *sand.World
	log   core.Logger

	x, y     int
	pressed  bool
	paused   bool
	tickOnce bool
	seed     int64
}

// NewController wraps world. A nil logger discards output.
func NewController(world *sand.World, seed int64, log core.Logger) *Controller {
	if log == nil {
		log = core.NopLogger{}
	}
	return &Controller{world: world, log: log, seed: seed}
}

// World returns the controlled world.
func (c *Controller) World() *sand.World { return c.world }

// Move records the cursor position in grid coordinates.
func (c *Controller) Move(x, y int) { c.x, c.y = x, y }

// Cursor returns the last recorded cursor position.
func (c *Controller) Cursor() (int, int) { return c.x, c.y }

// Press starts a paint gesture.
func (c *Controller) Press() { c.pressed = true }

// Release ends a paint gesture.
func (c *Controller) Release() { c.pressed = false }

// Pressed reports whether a paint gesture is active.
func (c *Controller) Pressed() bool { return c.pressed }

// SelectKey maps the digit keys '0'..'3' to Empty, Sand, Water and Dirt.
func (c *Controller) SelectKey(r rune) bool {
	m, ok := sand.ParseMaterial(string(r))
	if !ok {
		return false
	}
	c.world.Brush().Select(m)
	c.log.Debugf("brush material %s", m)
	return true
}

// Grow widens the brush.
func (c *Controller) Grow() { c.world.Brush().Grow() }

// Shrink narrows the brush, stopping at the minimum radius.
func (c *Controller) Shrink() { c.world.Brush().Shrink() }

// Clear empties the grid.
func (c *Controller) Clear() {
	c.world.Clear()
	c.log.Infof("grid cleared")
}

// Reset empties the grid and restarts a seeded tie-break source.
func (c *Controller) Reset() {
	c.world.Reset(c.seed)
	c.tickOnce = false
	c.log.Infof("world reset (seed %d)", c.seed)
}

// TogglePause pauses or resumes stepping.
func (c *Controller) TogglePause() { c.paused = !c.paused }

// Resume clears the paused state.
func (c *Controller) Resume() { c.paused = false }

// Paused reports whether stepping is suspended.
func (c *Controller) Paused() bool { return c.paused }

// StepOnce requests a single step on the next Advance even while paused.
func (c *Controller) StepOnce() { c.tickOnce = true }

// Paint applies the brush at the cursor while a gesture is active.
func (c *Controller) Paint() {
	if !c.pressed {
		return
	}
	c.world.PaintBrush(c.x, c.y)
}

// Advance steps the world with its own tick source unless paused. It reports
// whether a step ran.
func (c *Controller) Advance() bool {
	if c.paused && !c.tickOnce {
		return false
	}
	c.world.Step()
	c.tickOnce = false
	return true
}

// AdvanceTick is Advance with a tie-break tick supplied by the shell.
func (c *Controller) AdvanceTick(tick uint64) bool {
	if c.paused && !c.tickOnce {
		return false
	}
	c.world.StepTick(tick)
	c.tickOnce = false
	return true
}
