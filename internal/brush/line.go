package brush

import "image"

// Line returns the grid points of the segment from (x0, y0) to (x1, y1),
// endpoints included, using Bresenham's algorithm.
func Line(x0, y0, x1, y1 int) []image.Point {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	points := make([]image.Point, 0, max(dx, -dy)+1)
	x, y := x0, y0
	for {
		points = append(points, image.Pt(x, y))
		if x == x1 && y == y1 {
			return points
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
