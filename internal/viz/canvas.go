package viz

import "strings"

const brailleBlank = 0x2800

// brailleDots maps a sub-pixel (row, col) inside a cell to its dot bit.
var brailleDots = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a grid of Braille cells, each holding 2x4 sub-pixels, with a data
// viewport that maps (x, y) values onto those sub-pixels.
type Canvas struct {
	Width, Height int
	Grid          [][]rune

	xmin, xmax, ymin, ymax float64
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, Grid: make([][]rune, h), xmax: 1, ymax: 1}
	for i := range c.Grid {
		c.Grid[i] = []rune(strings.Repeat(string(rune(brailleBlank)), w))
	}
	return c
}

// SetViewport sets the data range shown by the canvas. y grows upwards.
func (c *Canvas) SetViewport(xmin, xmax, ymin, ymax float64) {
	c.xmin, c.xmax, c.ymin, c.ymax = xmin, xmax, ymin, ymax
}

func (c *Canvas) pixel(x, y float64) (int, int) {
	px := (x - c.xmin) / (c.xmax - c.xmin) * float64(c.Width*2-1)
	py := (c.ymax - y) / (c.ymax - c.ymin) * float64(c.Height*4-1)
	return int(px), int(py)
}

// Set raises the dot at sub-pixel (x, y). Sub-pixels off the canvas are
// ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 || x >= c.Width*2 || y >= c.Height*4 {
		return
	}
	c.Grid[y/4][x/2] |= brailleDots[y%4][x%2]
}

// DrawLine rasterises the segment between two sub-pixels (Bresenham).
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx, sx := x1-x0, 1
	if dx < 0 {
		dx, sx = -dx, -1
	}
	dy, sy := y1-y0, 1
	if dy < 0 {
		dy, sy = -dy, -1
	}

	e := dx - dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		if 2*e > -dy {
			e -= dy
			x0 += sx
		}
		if 2*e < dx {
			e += dx
			y0 += sy
		}
	}
}

// Polyline joins consecutive data points in the viewport. A single point is
// drawn as a dot.
func (c *Canvas) Polyline(xs, ys []float64) {
	if len(xs) == 1 {
		c.Set(c.pixel(xs[0], ys[0]))
		return
	}
	for i := 1; i < len(xs); i++ {
		x0, y0 := c.pixel(xs[i-1], ys[i-1])
		x1, y1 := c.pixel(xs[i], ys[i])
		c.DrawLine(x0, y0, x1, y1)
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
