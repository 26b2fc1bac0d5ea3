package sand

import (
	"image/color"

	"falling-sand/internal/core"
)

// World is one falling-sand session: the grid, the material table, the
// tie-break source and the brush the shell paints with.
type World struct {
	cfg   Config
	reg   *Registry
	grid  *Grid
	ticks core.TickSource
	brush Brush
	steps uint64
	log   core.Logger
}

// Option customises a World at construction time.
type Option func(*World)

// WithTickSource replaces the tie-break source chosen by Config.Ticks.
func WithTickSource(src core.TickSource) Option {
	return func(w *World) { w.ticks = src }
}

// WithLogger routes World diagnostics to l.
func WithLogger(l core.Logger) Option {
	return func(w *World) { w.log = l }
}

// New returns a World with the provided dimensions using defaults.
// Non-positive dimensions become 1.
func New(w, h int, opts ...Option) *World {
	cfg := DefaultConfig()
	cfg.Width = max(w, 1)
	cfg.Height = max(h, 1)
	world, err := NewWithConfig(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return world
}

// NewWithConfig validates cfg and builds an all-Empty World from it.
func NewWithConfig(cfg Config, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	regOpts, err := cfg.registryOptions()
	if err != nil {
		return nil, err
	}
	brush := DefaultBrush()
	brush.SetRadius(cfg.Brush.Radius)
	if m, ok := ParseMaterial(cfg.Brush.Material); ok {
		brush.Select(m)
	}
	w := &World{
		cfg:   cfg,
		reg:   NewRegistry(regOpts...),
		grid:  NewGrid(cfg.Width, cfg.Height),
		brush: brush,
		log:   core.NopLogger{},
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.ticks == nil {
		src, err := core.NewTickSource(cfg.Ticks, cfg.Seed)
		if err != nil {
			return nil, err
		}
		w.ticks = src
	}
	w.log.Debugf("sand world %dx%d ready (ticks=%s)", cfg.Width, cfg.Height, cfg.Ticks)
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return w.grid.Size() }

// Cells exposes the material buffer for rendering.
func (w *World) Cells() []uint8 { return w.grid.Materials() }

// Palette returns display colors indexed by material value.
func (w *World) Palette() []color.RGBA { return w.reg.Palette() }

// Registry exposes the material table.
func (w *World) Registry() *Registry { return w.reg }

// Brush exposes the paint state for the shell to adjust.
func (w *World) Brush() *Brush { return &w.brush }

// Steps reports how many steps have run since the last reset.
func (w *World) Steps() uint64 { return w.steps }

// Occupied returns the number of non-Empty cells.
func (w *World) Occupied() int { return w.grid.Occupied() }

// Reset empties the grid. A seeded tick source restarts from seed, or from the
// configured seed when seed is zero.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	if rng, ok := w.ticks.(*core.RNG); ok {
		rng.Reseed(seed)
	}
	w.Clear()
}

// Clear returns the grid to all-Empty without touching the tick source.
func (w *World) Clear() {
	w.grid.Reset()
	w.steps = 0
	w.log.Debugf("sand world cleared")
}

// Step advances the world by one pass using the configured tick source.
func (w *World) Step() {
	Step(w.grid, w.reg, w.ticks)
	w.steps++
}

// StepTick advances the world by one pass, breaking every tie this step with
// the parity of tick.
func (w *World) StepTick(tick uint64) {
	Step(w.grid, w.reg, core.FixedTick(tick))
	w.steps++
}

// Paint fills a disc of m around (x, y), clipped to the grid.
func (w *World) Paint(x, y, radius int, m Material) {
	Paint(w.grid, x, y, radius, m)
}

// PaintBrush paints the current brush at (x, y).
func (w *World) PaintBrush(x, y int) {
	Paint(w.grid, x, y, w.brush.Radius, w.brush.Material)
}

// CellAt returns the material and display color at (x, y).
func (w *World) CellAt(x, y int) (Material, color.RGBA, error) {
	c, err := w.grid.Get(x, y)
	if err != nil {
		return Empty, color.RGBA{}, err
	}
	return c.Material, w.reg.Color(c.Material), nil
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		w, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			d := DefaultConfig()
			return New(d.Width, d.Height)
		}
		return w
	})
}
