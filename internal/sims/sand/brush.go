package sand

// MinBrushRadius is the smallest radius Brush.Shrink allows.
const MinBrushRadius = 1

// Paint fills the disc of the given radius around (cx, cy) with m, clipped to
// the grid. Move marks are left alone. Negative radii paint the center only.
func Paint(g *Grid, cx, cy, radius int, m Material) {
	if radius < 0 {
		radius = 0
	}
	size := g.Size()
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		y := cy + dy
		if y < 0 || y >= size.H {
			continue
		}
		for dx := -radius; dx <= radius; dx++ {
			x := cx + dx
			if x < 0 || x >= size.W {
				continue
			}
			if dx*dx+dy*dy > r2 {
				continue
			}
			g.put(y*size.W+x, m)
		}
	}
}

// Brush is the paint state driven by the shell: which material, how wide.
type Brush struct {
	Radius   int
	Material Material
}

// DefaultBrush paints Sand with the minimum radius.
func DefaultBrush() Brush {
	return Brush{Radius: MinBrushRadius, Material: Sand}
}

// Grow widens the brush by one cell.
func (b *Brush) Grow() { b.Radius++ }

// Shrink narrows the brush by one cell, never below MinBrushRadius.
func (b *Brush) Shrink() {
	if b.Radius > MinBrushRadius {
		b.Radius--
	}
}

// SetRadius sets the radius, clamped to MinBrushRadius.
func (b *Brush) SetRadius(r int) {
	if r < MinBrushRadius {
		r = MinBrushRadius
	}
	b.Radius = r
}

// Select switches the painted material. Unknown materials are ignored.
func (b *Brush) Select(m Material) bool {
	if !m.Valid() {
		return false
	}
	b.Material = m
	return true
}
