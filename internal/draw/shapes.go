// Package draw renders to ANSI terminals with half-block characters.
package draw

import "math"

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockLight     = '░'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// RegularPolygon returns the n corners of a regular polygon of radius r
// around (cx, cy), starting at angleDeg (0 = pointing right, clockwise on screen).
func RegularPolygon(cx, cy, r float64, n int, angleDeg float64) []Point {
	points := make([]Point, n)
	start := angleDeg * math.Pi / 180
	for i := range points {
		a := start + 2*math.Pi*float64(i)/float64(n)
		points[i] = Point{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	return points
}

// Rotate turns points around (cx, cy) by angleDeg in place.
func Rotate(points []Point, cx, cy, angleDeg float64) []Point {
	sin, cos := math.Sincos(angleDeg * math.Pi / 180)
	for i, p := range points {
		dx, dy := p.X-cx, p.Y-cy
		points[i] = Point{cx + dx*cos - dy*sin, cy + dx*sin + dy*cos}
	}
	return points
}

// Bar returns a horizontal gauge of width cells, filled in proportion to
// value/maxValue.
func Bar(value, maxValue, width int) string {
	if maxValue <= 0 || width <= 0 {
		return ""
	}
	value = min(max(value, 0), maxValue)
	filled := value * width / maxValue
	runes := make([]rune, width)
	for i := range runes {
		if i < filled {
			runes[i] = BlockFull
		} else {
			runes[i] = BlockLight
		}
	}
	return string(runes)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
