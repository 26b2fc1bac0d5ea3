package sand

import (
	"errors"
	"fmt"

	"falling-sand/internal/core"
)

// ErrOutOfRange reports a direct cell access outside the grid.
var ErrOutOfRange = errors.New("coordinates out of range")

// Cell is the content of one grid position. Moved is set only by the step
// currently executing.
type Cell struct {
	Material Material
	Moved    bool
}

// Grid is a fixed-size lattice of cells stored as flat row-major buffers.
type Grid struct {
	mats  *core.ByteGrid
	moved []bool
}

// NewGrid allocates an all-Empty grid. Non-positive dimensions become 1.
func NewGrid(w, h int) *Grid {
	mats := core.NewByteGrid(w, h)
	return &Grid{mats: mats, moved: make([]bool, len(mats.Cells()))}
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.mats.W, H: g.mats.H} }

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool { return g.mats.InBounds(x, y) }

// Materials exposes the material buffer, one byte per cell in row-major order.
func (g *Grid) Materials() []uint8 { return g.mats.Cells() }

func (g *Grid) checkBounds(x, y int) error {
	if !g.mats.InBounds(x, y) {
		return fmt.Errorf("cell (%d,%d) on %dx%d grid: %w", x, y, g.mats.W, g.mats.H, ErrOutOfRange)
	}
	return nil
}

// Get returns the cell at (x, y).
func (g *Grid) Get(x, y int) (Cell, error) {
	if err := g.checkBounds(x, y); err != nil {
		return Cell{}, err
	}
	i := g.mats.Index(x, y)
	return Cell{Material: Material(g.mats.Cells()[i]), Moved: g.moved[i]}, nil
}

// Set stores c at (x, y).
func (g *Grid) Set(x, y int, c Cell) error {
	if err := g.checkBounds(x, y); err != nil {
		return err
	}
	i := g.mats.Index(x, y)
	g.mats.Cells()[i] = uint8(c.Material)
	g.moved[i] = c.Moved
	return nil
}

// Reset empties every cell and clears all marks.
func (g *Grid) Reset() {
	g.mats.Fill(uint8(Empty))
	g.ClearMarks()
}

// ClearMarks resets the per-step move marks without touching materials.
func (g *Grid) ClearMarks() {
	for i := range g.moved {
		g.moved[i] = false
	}
}

// Count returns how many cells hold m.
func (g *Grid) Count(m Material) int { return g.mats.Count(uint8(m)) }

// Occupied returns the number of non-Empty cells.
func (g *Grid) Occupied() int { return len(g.moved) - g.Count(Empty) }

func (g *Grid) at(i int) Material { return Material(g.mats.Cells()[i]) }

func (g *Grid) put(i int, m Material) { g.mats.Cells()[i] = uint8(m) }
