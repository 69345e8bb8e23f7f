package draw

import (
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Drawing calls take play-field coordinates; the field is scaled uniformly to fit
// the terminal and centred, so shapes keep their proportions.
type Canvas struct {
	termWidth      int    // terminal columns
	termHeight     int    // terminal rows
	subPixelHeight int    // termHeight * 2
	pixels         []bool // [y * termWidth + x]

	fieldWidth  float64
	fieldHeight float64
	scale       float64 // pixels per field unit, same on both axes
	offsetX     int     // left margin in pixels
	offsetY     int     // top margin in sub-pixels

	renderBuf       strings.Builder
	numBuf          [20]byte
	intersectionBuf []float64
}

// NewCanvas creates a canvas mapping a fieldWidth x fieldHeight play field
// onto a termWidth x termHeight terminal.
func NewCanvas(termWidth, termHeight int, fieldWidth, fieldHeight float64) *Canvas {
	c := &Canvas{fieldWidth: fieldWidth, fieldHeight: fieldHeight}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize adapts the canvas to new terminal dimensions.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]bool, c.subPixelHeight*termWidth)
	}

	c.scale = math.Min(float64(c.termWidth)/c.fieldWidth, float64(c.subPixelHeight)/c.fieldHeight)
	c.offsetX = (c.termWidth - int(c.fieldWidth*c.scale)) / 2
	c.offsetY = (c.subPixelHeight - int(c.fieldHeight*c.scale)) / 2
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// TerminalWidth returns the terminal column count.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the terminal row count.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// toPixel converts field coordinates to pixel coordinates.
func (c *Canvas) toPixel(x, y float64) (int, int) {
	return int(math.Round(x*c.scale)) + c.offsetX, int(math.Round(y*c.scale)) + c.offsetY
}

// Cell converts field coordinates to a 1-based terminal (col, row), for
// placing text next to drawn shapes.
func (c *Canvas) Cell(x, y float64) (col, row int) {
	px, py := c.toPixel(x, y)
	return px + 1, py/2 + 1
}

// FieldColumns returns the first and last terminal column covered by the field.
func (c *Canvas) FieldColumns() (first, last int) {
	return c.offsetX + 1, c.offsetX + int(c.fieldWidth*c.scale)
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// Pixel reports whether the pixel at pixel coordinates (x, y) is set.
func (c *Canvas) Pixel(x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return false
	}
	return c.pixels[y*c.termWidth+x]
}

// Plot sets the pixel under a field point.
func (c *Canvas) Plot(x, y float64) {
	c.setPixel(c.toPixel(x, y))
}

// Line draws a line on the canvas using Bresenham's algorithm.
func (c *Canvas) Line(p1, p2 Point) {
	x1, y1 := c.toPixel(p1.X, p1.Y)
	x2, y2 := c.toPixel(p2.X, p2.Y)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Polygon draws a closed outline, filling the interior when filled is set.
func (c *Canvas) Polygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points)
	}
	n := len(points)
	for i := 0; i < n; i++ {
		c.Line(points[i], points[(i+1)%n])
	}
}

// Rect draws an axis-aligned box with its top-left corner at (x, y).
func (c *Canvas) Rect(x, y, w, h float64, filled bool) {
	c.Polygon([]Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}, filled)
}

// Circle draws a circle outline approximated by a polygon.
func (c *Canvas) Circle(cx, cy, r float64) {
	c.Polygon(RegularPolygon(cx, cy, r, 16, 0), false)
}

// fillPolygon fills a polygon with a scanline pass in pixel space.
func (c *Canvas) fillPolygon(points []Point) {
	minY, maxY := math.Inf(1), math.Inf(-1)
	scaled := make([]Point, len(points))
	for i, p := range points {
		px, py := p.X*c.scale+float64(c.offsetX), p.Y*c.scale+float64(c.offsetY)
		scaled[i] = Point{px, py}
		minY = math.Min(minY, py)
		maxY = math.Max(maxY, py)
	}

	yStart := max(int(math.Floor(minY)), 0)
	yEnd := min(int(math.Ceil(maxY)), c.subPixelHeight-1)
	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5
		xs := c.intersectionBuf[:0]
		for i := range scaled {
			p1, p2 := scaled[i], scaled[(i+1)%len(scaled)]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				xs = append(xs, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = xs
		sort.Float64s(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i])); x <= int(math.Floor(xs[i+1])); x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// Render writes every non-empty cell with a cursor move and its half-block glyph.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	for row := 0; row < c.termHeight; row++ {
		top := row * 2 * c.termWidth
		bottom := top + c.termWidth
		for col := 0; col < c.termWidth; col++ {
			var ch rune
			switch t, b := c.pixels[top+col], c.pixels[bottom+col]; {
			case t && b:
				ch = BlockFull
			case t:
				ch = BlockUpperHalf
			case b:
				ch = BlockLowerHalf
			default:
				continue
			}
			c.renderBuf.WriteString("\033[")
			c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row+1), 10))
			c.renderBuf.WriteByte(';')
			c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col+1), 10))
			c.renderBuf.WriteByte('H')
			c.renderBuf.WriteRune(ch)
		}
	}
	return writeChunked(w, c.renderBuf.String())
}
