package render

import "image"

// DiscOutline returns the cells of the filled disc around (cx, cy) that have at
// least one 4-neighbour outside the disc, in row-major order.
func DiscOutline(cx, cy, radius int) []image.Point {
	if radius < 0 {
		radius = 0
	}
	r2 := radius * radius
	inside := func(dx, dy int) bool { return dx*dx+dy*dy <= r2 }
	var pts []image.Point
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if !inside(dx, dy) {
				continue
			}
			if inside(dx-1, dy) && inside(dx+1, dy) && inside(dx, dy-1) && inside(dx, dy+1) {
				continue
			}
			pts = append(pts, image.Pt(cx+dx, cy+dy))
		}
	}
	return pts
}
