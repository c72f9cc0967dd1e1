package stddraw

import "math"

// Scaling between user coordinates and canvas pixels. The y axis
// points up in user space and down in pixel space.

// scaleX maps a user x-coordinate to a pixel x-coordinate.
func (c *Canvas) scaleX(x float64) float64 {
	return float64(c.width) * (x - c.xmin) / (c.xmax - c.xmin)
}

// scaleY maps a user y-coordinate to a pixel y-coordinate.
func (c *Canvas) scaleY(y float64) float64 {
	return float64(c.height) * (c.ymax - y) / (c.ymax - c.ymin)
}

// factorX maps a width in user space to a width in pixels.
func (c *Canvas) factorX(w float64) float64 {
	return w * float64(c.width) / math.Abs(c.xmax-c.xmin)
}

// factorY maps a height in user space to a height in pixels.
func (c *Canvas) factorY(h float64) float64 {
	return h * float64(c.height) / math.Abs(c.ymax-c.ymin)
}

// userX maps a pixel x-coordinate back to user space.
func (c *Canvas) userX(x float64) float64 {
	return c.xmin + x*(c.xmax-c.xmin)/float64(c.width)
}

// userY maps a pixel y-coordinate back to user space.
func (c *Canvas) userY(y float64) float64 {
	return c.ymax - y*(c.ymax-c.ymin)/float64(c.height)
}
