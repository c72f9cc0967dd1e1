package stddraw

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/stddraw/backend"
)

func TestNewDefaults(t *testing.T) {
	c := New()
	w, h := c.Size()
	if w != 512 || h != 512 {
		t.Errorf("Size = %dx%d, want 512x512", w, h)
	}
	if c.penColor != Black {
		t.Errorf("pen color = %v, want Black", c.penColor)
	}
	if c.fontFamily != "Helvetica" || c.fontSize != 12 {
		t.Errorf("font = %s/%d, want Helvetica/12", c.fontFamily, c.fontSize)
	}
}

func TestSetCanvasSize(t *testing.T) {
	c := New()
	if err := c.SetCanvasSize(300, 200); err != nil {
		t.Fatal(err)
	}
	if w, h := c.Size(); w != 300 || h != 200 {
		t.Errorf("Size = %dx%d, want 300x200", w, h)
	}

	if err := c.SetCanvasSize(0, 200); err == nil {
		t.Error("SetCanvasSize(0, 200) should fail")
	}
	if err := c.SetCanvasSize(300, -1); err == nil {
		t.Error("SetCanvasSize(300, -1) should fail")
	}
}

func TestSetCanvasSizeAfterWindowCreated(t *testing.T) {
	c := New(WithWindow(backend.NewHeadless()))
	c.Point(0.5, 0.5) // forces window creation

	err := c.SetCanvasSize(100, 100)
	if !errors.Is(err, ErrWindowAlreadyCreated) {
		t.Errorf("err = %v, want ErrWindowAlreadyCreated", err)
	}
}

func TestSetPenRadius(t *testing.T) {
	c := New()
	if err := c.SetPenRadius(-0.1); err == nil {
		t.Error("SetPenRadius(-0.1) should fail")
	}
	if err := c.SetPenRadius(0.01); err != nil {
		t.Fatal(err)
	}
	// The radius is stored in pixels of the default canvas.
	if c.penRadius != 0.01*defaultCanvasSize {
		t.Errorf("penRadius = %v, want %v", c.penRadius, 0.01*defaultCanvasSize)
	}
}

func TestClearColor(t *testing.T) {
	c := New(WithSize(10, 10), WithWindow(backend.NewHeadless()))
	c.ClearColor(Blue)

	img := c.Image()
	r, g, b, _ := img.At(5, 5).RGBA()
	if r != 0 || g != 0 || b != 0xffff {
		t.Errorf("pixel = %v, want blue", img.At(5, 5))
	}
}

func TestHeadlessFallbackWhenOpenFails(t *testing.T) {
	// A window that is already open refuses Open; the canvas must
	// fall back to a fresh headless window rather than fail.
	pre := backend.NewHeadless()
	if err := pre.Open(backend.Config{Width: 1, Height: 1}); err != nil {
		t.Fatal(err)
	}
	c := New(WithWindow(pre))
	c.Point(0.5, 0.5)

	if c.win == pre {
		t.Error("canvas kept the unopenable window")
	}
	if c.win.Name() != backend.BackendHeadless {
		t.Errorf("fallback backend = %q, want headless", c.win.Name())
	}
}

func TestImageIsACopy(t *testing.T) {
	c := New(WithSize(8, 8), WithWindow(backend.NewHeadless()))
	c.Clear()
	before := c.Image().(*image.RGBA)
	white := before.At(4, 4)

	c.SetPenColor(Red)
	c.FilledRectangle(0, 0, 1, 1)
	if got := before.At(4, 4); got != white {
		t.Error("Image result changed after later drawing")
	}
}
