package stddraw

import (
	"math"

	"github.com/gogpu/gg"
)

// thickLineCutoff is the line width, in pixels, above which lines are
// rendered as chains of filled circles instead of a stroked segment.
const thickLineCutoff = 3

// pixel draws a single pixel at user coordinates (x, y).
func (c *Canvas) pixel(x, y float64) {
	c.ensureCreated()
	xs := c.scaleX(x)
	ys := c.scaleY(y)
	c.dc.SetPixel(int(math.Round(xs)), int(math.Round(ys)), gg.FromColor(c.penColor))
}

// Point draws a point at (x, y).
func (c *Canvas) Point(x, y float64) {
	c.ensureCreated()
	// If the radius is too small, simply draw a pixel.
	if c.penRadius <= 1.0 {
		c.pixel(x, y)
		return
	}
	xs := c.scaleX(x)
	ys := c.scaleY(y)
	c.dc.SetColor(c.penColor)
	c.dc.DrawEllipse(xs, ys, c.penRadius, c.penRadius)
	c.dc.Fill()
}

// Line draws a line from (x0, y0) to (x1, y1) with the current pen.
func (c *Canvas) Line(x0, y0, x1, y1 float64) {
	c.ensureCreated()

	lineWidth := c.penRadius * 2.0
	if lineWidth == 0.0 {
		lineWidth = 1.0
	}
	if lineWidth < thickLineCutoff {
		c.dc.SetColor(c.penColor)
		c.dc.SetLineWidth(math.Round(lineWidth))
		c.dc.DrawLine(c.scaleX(x0), c.scaleY(y0), c.scaleX(x1), c.scaleY(y1))
		c.dc.Stroke()
		return
	}
	c.thickLine(x0, y0, x1, y1, c.penRadius/defaultCanvasSize)
}

// thickLine draws a wide line by recursive midpoint subdivision,
// stamping a filled circle of radius r (in user units) once the
// endpoints land within one pixel of each other.
func (c *Canvas) thickLine(x0, y0, x1, y1, r float64) {
	xs0 := c.scaleX(x0)
	ys0 := c.scaleY(y0)
	xs1 := c.scaleX(x1)
	ys1 := c.scaleY(y1)
	if math.Abs(xs0-xs1) < 1.0 && math.Abs(ys0-ys1) < 1.0 {
		c.FilledCircle(x0, y0, r)
		return
	}
	xMid := (x0 + x1) / 2
	yMid := (y0 + y1) / 2
	c.thickLine(x0, y0, xMid, yMid, r)
	c.thickLine(xMid, yMid, x1, y1, r)
}

// Circle draws a circle of radius r centered on (x, y).
func (c *Canvas) Circle(x, y, r float64) {
	c.ensureCreated()
	ws := c.factorX(2.0 * r)
	hs := c.factorY(2.0 * r)
	// If the radius is too small, simply draw a pixel.
	if ws <= 1.0 && hs <= 1.0 {
		c.pixel(x, y)
		return
	}
	c.dc.SetColor(c.penColor)
	c.dc.SetLineWidth(c.outlineWidth())
	c.dc.DrawEllipse(c.scaleX(x), c.scaleY(y), ws/2.0, hs/2.0)
	c.dc.Stroke()
}

// FilledCircle draws a filled circle of radius r centered on (x, y).
func (c *Canvas) FilledCircle(x, y, r float64) {
	c.ensureCreated()
	ws := c.factorX(2.0 * r)
	hs := c.factorY(2.0 * r)
	if ws <= 1.0 && hs <= 1.0 {
		c.pixel(x, y)
		return
	}
	c.dc.SetColor(c.penColor)
	c.dc.DrawEllipse(c.scaleX(x), c.scaleY(y), ws/2.0, hs/2.0)
	c.dc.Fill()
}

// Rectangle draws a rectangle of width w and height h whose lower-left
// corner is (x, y).
func (c *Canvas) Rectangle(x, y, w, h float64) {
	c.ensureCreated()
	ws := c.factorX(w)
	hs := c.factorY(h)
	// If the rectangle is too small, simply draw a pixel.
	if ws <= 1.0 && hs <= 1.0 {
		c.pixel(x, y)
		return
	}
	xs := c.scaleX(x)
	ys := c.scaleY(y)
	c.dc.SetColor(c.penColor)
	c.dc.SetLineWidth(c.outlineWidth())
	c.dc.DrawRectangle(xs, ys-hs, ws, hs)
	c.dc.Stroke()
}

// FilledRectangle draws a filled rectangle of width w and height h
// whose lower-left corner is (x, y).
func (c *Canvas) FilledRectangle(x, y, w, h float64) {
	c.ensureCreated()
	ws := c.factorX(w)
	hs := c.factorY(h)
	if ws <= 1.0 && hs <= 1.0 {
		c.pixel(x, y)
		return
	}
	xs := c.scaleX(x)
	ys := c.scaleY(y)
	c.dc.SetColor(c.penColor)
	c.dc.DrawRectangle(xs, ys-hs, ws, hs)
	c.dc.Fill()
}

// Square draws a square with sides of length 2*half centered on (x, y).
func (c *Canvas) Square(x, y, half float64) {
	c.Rectangle(x-half, y-half, 2.0*half, 2.0*half)
}

// FilledSquare draws a filled square with sides of length 2*half
// centered on (x, y).
func (c *Canvas) FilledSquare(x, y, half float64) {
	c.FilledRectangle(x-half, y-half, 2.0*half, 2.0*half)
}

// Polygon draws the closed polygon with vertices (xs[i], ys[i]).
// The vertex count is min(len(xs), len(ys)); fewer than two vertices
// draws nothing.
func (c *Canvas) Polygon(xs, ys []float64) {
	c.ensureCreated()
	if !c.polygonPath(xs, ys) {
		return
	}
	c.dc.SetColor(c.penColor)
	c.dc.SetLineWidth(c.outlineWidth())
	c.dc.Stroke()
}

// FilledPolygon draws the filled polygon with vertices (xs[i], ys[i]).
func (c *Canvas) FilledPolygon(xs, ys []float64) {
	c.ensureCreated()
	if !c.polygonPath(xs, ys) {
		return
	}
	c.dc.SetColor(c.penColor)
	c.dc.Fill()
}

// polygonPath builds the scaled, closed polygon path on the context.
// Reports whether a drawable path was produced.
func (c *Canvas) polygonPath(xs, ys []float64) bool {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if n < 2 {
		return false
	}
	c.dc.MoveTo(c.scaleX(xs[0]), c.scaleY(ys[0]))
	for i := 1; i < n; i++ {
		c.dc.LineTo(c.scaleX(xs[i]), c.scaleY(ys[i]))
	}
	c.dc.ClosePath()
	return true
}

// outlineWidth is the stroke width for shape outlines: the pen radius
// rounded to whole pixels, never thinner than a hairline.
func (c *Canvas) outlineWidth() float64 {
	w := math.Round(c.penRadius)
	if w < 1 {
		w = 1
	}
	return w
}
