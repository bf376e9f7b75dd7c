package game

import "math"

// InBounds reports whether p lies on the grid.
func InBounds(p Point, width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// neighborOffsets is the fixed expansion order: up, down, left, right.
// Search tie-breaking depends on this order being stable.
var neighborOffsets = [4]Direction{Up, Down, Left, Right}

// Neighbors returns the in-bounds 4-connected neighbors of p in the fixed
// up, down, left, right order.
func Neighbors(p Point, width, height int) []Point {
	out := make([]Point, 0, 4)
	for _, d := range neighborOffsets {
		n := Point{X: p.X + d.DX, Y: p.Y + d.DY}
		if InBounds(n, width, height) {
			out = append(out, n)
		}
	}
	return out
}

// Manhattan returns |dx| + |dy| between two cells.
func Manhattan(a, b Point) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Euclidean returns the straight-line distance between two cells.
func Euclidean(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// DirectionTo returns the unit step from a to an adjacent cell b.
func DirectionTo(a, b Point) Direction {
	return Direction{DX: b.X - a.X, DY: b.Y - a.Y}
}
