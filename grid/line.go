// SPDX-License-Identifier: MIT

package grid

// RasterizeLine returns every integer cell on the digital line from p0 to p1,
// both endpoints included, in traversal order.
//
// The integer error-term walk is the classic Bresenham formulation. The path
// always has max(|dx|,|dy|)+1 cells. The walk itself always starts from the
// lesser endpoint (by X, then Y) and is reversed when needed, so both
// traversal directions cover the same cell set.
//
// Complexity: O(max(|dx|,|dy|)) time and memory.
func RasterizeLine(p0, p1 Point) []Point {
	if less(p1, p0) {
		cells := bresenham(p1, p0)
		for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
			cells[i], cells[j] = cells[j], cells[i]
		}
		return cells
	}

	return bresenham(p0, p1)
}

func less(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

func bresenham(p0, p1 Point) []Point {
	dx := abs(p1.X - p0.X)
	dy := abs(p1.Y - p0.Y)
	sx, sy := 1, 1
	if p0.X > p1.X {
		sx = -1
	}
	if p0.Y > p1.Y {
		sy = -1
	}

	cells := make([]Point, 0, max(dx, dy)+1)
	x, y := p0.X, p0.Y
	err := dx - dy
	for {
		cells = append(cells, Point{X: x, Y: y})
		if x == p1.X && y == p1.Y {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}

	return cells
}

// ClassifyRun tags a rasterized path. Paths shorter than two cells are RunNone;
// a path whose cells all share X is RunVertical, all share Y is RunHorizontal,
// anything else is RunMixed.
func ClassifyRun(path []Point) Run {
	if len(path) < 2 {
		return RunNone
	}
	sameX, sameY := true, true
	for _, p := range path[1:] {
		if p.X != path[0].X {
			sameX = false
		}
		if p.Y != path[0].Y {
			sameY = false
		}
	}
	switch {
	case sameX:
		return RunVertical
	case sameY:
		return RunHorizontal
	default:
		return RunMixed
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
