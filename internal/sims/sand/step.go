package sand

import "falling-sand/internal/core"

// Step advances g by exactly one update pass.
//
// Marks are cleared first, then rows are visited top to bottom and columns
// left to right. A particle written into a lower or neighbouring cell is
// marked, so it moves at most once per step. Ties between two equally open
// destinations are broken by the parity of src.Tick(): even goes right, odd
// goes left. Neighbours off the grid are treated as blocked.
func Step(g *Grid, reg *Registry, src core.TickSource) {
	g.ClearMarks()
	size := g.Size()
	s := stepper{g: g, reg: reg, src: src, w: size.W, h: size.H}
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			i := y*s.w + x
			if g.moved[i] {
				continue
			}
			m := g.at(i)
			switch reg.Kind(m) {
			case KindGranular:
				s.fall(x, y, m)
			case KindLiquid:
				if !s.fall(x, y, m) {
					s.slide(x, y, y, m)
				}
			}
		}
	}
}

type stepper struct {
	g    *Grid
	reg  *Registry
	src  core.TickSource
	w, h int
}

// fall sinks m through a lighter cell below, or slides it into an open lower
// diagonal. It reports whether the particle moved.
func (s *stepper) fall(x, y int, m Material) bool {
	if y+1 >= s.h {
		return false
	}
	from := y*s.w + x
	below := from + s.w
	displaced := s.g.at(below)
	if s.reg.Density(displaced) < s.reg.Density(m) {
		s.g.put(below, m)
		s.g.moved[below] = true
		s.g.put(from, displaced)
		return true
	}
	return s.slide(x, y, y+1, m)
}

// slide moves m from (x, y) into the open cell left or right of x on row ty.
func (s *stepper) slide(x, y, ty int, m Material) bool {
	left := s.open(x-1, ty)
	right := s.open(x+1, ty)
	var tx int
	switch {
	case left && right:
		if s.src.Tick()%2 == 0 {
			tx = x + 1
		} else {
			tx = x - 1
		}
	case right:
		tx = x + 1
	case left:
		tx = x - 1
	default:
		return false
	}
	to := ty*s.w + tx
	s.g.put(to, m)
	s.g.moved[to] = true
	s.g.put(y*s.w+x, Empty)
	return true
}

func (s *stepper) open(x, y int) bool {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return false
	}
	return s.g.at(y*s.w+x) == Empty
}
