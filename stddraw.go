package stddraw

import (
	"image"
	"image/color"
	"time"

	"github.com/gogpu/gg/text"
)

// The package-level functions operate on a single shared canvas,
// mirroring the module-level design of the original library. The
// canvas is created on first use; configuration calls before then
// shape how it comes up.

var defaultCanvas *Canvas

// Default returns the canvas the package-level functions draw on,
// creating it if necessary.
func Default() *Canvas {
	if defaultCanvas == nil {
		defaultCanvas = New()
	}
	return defaultCanvas
}

// Reset discards the default canvas. The next package-level call
// starts from a fresh one. Intended for tests.
func Reset() {
	if defaultCanvas != nil {
		if err := defaultCanvas.Close(); err != nil {
			Logger().Warn("stddraw: close failed during reset", "error", err)
		}
	}
	defaultCanvas = nil
}

// SetCanvasSize sets the default canvas to w pixels wide and h pixels
// high. Optional, but must be called before any drawing function.
func SetCanvasSize(w, h int) error { return Default().SetCanvasSize(w, h) }

// SetXScale sets the x-scale of the default canvas to [min, max].
func SetXScale(min, max float64) error { return Default().SetXScale(min, max) }

// SetYScale sets the y-scale of the default canvas to [min, max].
func SetYScale(min, max float64) error { return Default().SetYScale(min, max) }

// SetPenRadius sets the pen radius, as a fraction of the default
// canvas size. Zero draws at the minimum possible width.
func SetPenRadius(r float64) error { return Default().SetPenRadius(r) }

// SetPenColor sets the pen color. It defaults to Black.
func SetPenColor(c color.Color) { Default().SetPenColor(c) }

// SetFontFamily sets the font family (e.g. "Helvetica" or "Courier").
func SetFontFamily(f string) { Default().SetFontFamily(f) }

// SetFontSize sets the font size in points (e.g. 12 or 16).
func SetFontSize(s int) { Default().SetFontSize(s) }

// SetFontFace sets an explicit font face, bypassing discovery.
func SetFontFace(face text.Face) { Default().SetFontFace(face) }

// Clear clears the default canvas to white.
func Clear() { Default().Clear() }

// ClearColor clears the default canvas to the given color.
func ClearColor(c color.Color) { Default().ClearColor(c) }

// Point draws a point at (x, y).
func Point(x, y float64) { Default().Point(x, y) }

// Line draws a line from (x0, y0) to (x1, y1).
func Line(x0, y0, x1, y1 float64) { Default().Line(x0, y0, x1, y1) }

// Circle draws a circle of radius r centered on (x, y).
func Circle(x, y, r float64) { Default().Circle(x, y, r) }

// FilledCircle draws a filled circle of radius r centered on (x, y).
func FilledCircle(x, y, r float64) { Default().FilledCircle(x, y, r) }

// Rectangle draws a rectangle of width w and height h whose lower-left
// corner is (x, y).
func Rectangle(x, y, w, h float64) { Default().Rectangle(x, y, w, h) }

// FilledRectangle draws a filled rectangle of width w and height h
// whose lower-left corner is (x, y).
func FilledRectangle(x, y, w, h float64) { Default().FilledRectangle(x, y, w, h) }

// Square draws a square with sides of length 2*half centered on (x, y).
func Square(x, y, half float64) { Default().Square(x, y, half) }

// FilledSquare draws a filled square with sides of length 2*half
// centered on (x, y).
func FilledSquare(x, y, half float64) { Default().FilledSquare(x, y, half) }

// Polygon draws the closed polygon with vertices (xs[i], ys[i]).
func Polygon(xs, ys []float64) { Default().Polygon(xs, ys) }

// FilledPolygon draws the filled polygon with vertices (xs[i], ys[i]).
func FilledPolygon(xs, ys []float64) { Default().FilledPolygon(xs, ys) }

// Text draws the string s centered at (x, y) in the current font.
func Text(x, y float64, s string) { Default().Text(x, y, s) }

// DrawPicture draws pic centered at (x, y).
func DrawPicture(pic *Picture, x, y float64) { Default().DrawPicture(pic, x, y) }

// DrawPictureCentered draws pic at the midpoint of the canvas.
func DrawPictureCentered(pic *Picture) { Default().DrawPictureCentered(pic) }

// Show presents the canvas and blocks for approximately d, polling
// for input events. Show returns ErrWindowClosed once the user closes
// the window.
func Show(d time.Duration) error { return Default().Show(d) }

// Wait presents the canvas and blocks until the user closes the
// window. It always returns ErrWindowClosed.
func Wait() error { return Default().Wait() }

// Save writes the canvas to the file f (.png, .jpg or .jpeg).
func Save(f string) error { return Default().Save(f) }

// Image returns a copy of the current canvas contents.
func Image() image.Image { return Default().Image() }

// HasNextKeyTyped reports whether the queue of typed keys is non-empty.
func HasNextKeyTyped() bool { return Default().HasNextKeyTyped() }

// NextKeyTyped removes and returns the oldest typed key.
// ok is false if the queue is empty.
func NextKeyTyped() (r rune, ok bool) { return Default().NextKeyTyped() }

// MousePressed reports whether the mouse has been left-clicked since
// the last call.
func MousePressed() bool { return Default().MousePressed() }

// MouseX returns the x-coordinate, in user space, of the most recent
// left click.
func MouseX() (float64, error) { return Default().MouseX() }

// MouseY returns the y-coordinate, in user space, of the most recent
// left click.
func MouseY() (float64, error) { return Default().MouseY() }
