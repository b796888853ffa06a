package viz

import (
	"math"
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille pixel canvas addressed in data coordinates. The
// viewport is fixed at construction; samples outside it and non-finite
// samples are dropped. The canvas size in sub-pixels is (Width*2) x
// (Height*4).
type Canvas struct {
	Width, Height          int
	XMin, XMax, YMin, YMax float64
	Grid                   [][]rune
}

func NewCanvas(w, h int, xmin, xmax, ymin, ymax float64) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &Canvas{
		Width: w, Height: h,
		XMin: xmin, XMax: xmax, YMin: ymin, YMax: ymax,
		Grid: make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// Set sets a sub-pixel at (x, y). Out-of-range coordinates are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// xpix maps a data x to a sub-pixel column. ok is false outside the
// viewport or for a degenerate viewport.
func (c *Canvas) xpix(x float64) (int, bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) || c.XMax <= c.XMin || x < c.XMin || x > c.XMax {
		return 0, false
	}
	w := float64(c.Width*2 - 1)
	return int(math.Round((x - c.XMin) / (c.XMax - c.XMin) * w)), true
}

// ypix maps a data y to a sub-pixel row, top row zero.
func (c *Canvas) ypix(y float64) (int, bool) {
	if math.IsNaN(y) || math.IsInf(y, 0) || c.YMax <= c.YMin || y < c.YMin || y > c.YMax {
		return 0, false
	}
	h := float64(c.Height*4 - 1)
	return int(math.Round((1 - (y-c.YMin)/(c.YMax-c.YMin)) * h)), true
}

func (c *Canvas) pixel(x, y float64) (px, py int, ok bool) {
	px, okx := c.xpix(x)
	py, oky := c.ypix(y)
	return px, py, okx && oky
}

// Plot draws a polyline through the samples, connecting consecutive
// in-viewport points. A sample outside the viewport lifts the pen, so the
// curve re-enters cleanly after a clipped stretch.
func (c *Canvas) Plot(xs, ys []float64) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}

	var lastX, lastY int
	pen := false
	for i := 0; i < n; i++ {
		px, py, ok := c.pixel(xs[i], ys[i])
		if !ok {
			pen = false
			continue
		}
		if pen {
			c.DrawLine(lastX, lastY, px, py)
		} else {
			c.Set(px, py)
		}
		lastX, lastY, pen = px, py, true
	}
}

// VLine draws a dashed vertical guide at data x.
func (c *Canvas) VLine(x float64) {
	px, ok := c.xpix(x)
	if !ok {
		return
	}
	for py := 0; py < c.Height*4; py += 2 {
		c.Set(px, py)
	}
}

// HLine draws a dotted horizontal guide at data y.
func (c *Canvas) HLine(y float64) {
	py, ok := c.ypix(y)
	if !ok {
		return
	}
	for px := 0; px < c.Width*2; px += 3 {
		c.Set(px, py)
	}
}

// Mark sets a 2x2 dot block at (x, y) so markers read heavier than the
// curve.
func (c *Canvas) Mark(x, y float64) {
	px, py, ok := c.pixel(x, y)
	if !ok {
		return
	}
	c.Set(px, py)
	c.Set(px+1, py)
	c.Set(px, py+1)
	c.Set(px+1, py+1)
}

// DrawLine draws a sub-pixel line using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
