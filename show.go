package stddraw

import (
	"image"
	"image/draw"
	"strings"
	"time"

	"github.com/gogpu/stddraw/dialog"
)

// pollQuantum is how often events are polled while Show or Wait is
// blocking.
const pollQuantum = 100 * time.Millisecond

// Show presents the canvas to the window and then blocks for
// approximately d, polling for input events every 100 ms. A zero d
// presents a single frame and returns immediately.
//
// Show returns ErrWindowClosed once the user closes the window.
func (c *Canvas) Show(d time.Duration) error {
	if err := c.present(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	if d < pollQuantum {
		time.Sleep(d)
		return nil
	}
	var waited time.Duration
	for waited < d {
		time.Sleep(pollQuantum)
		waited += pollQuantum
		c.dispatch(c.win.Poll())
		if c.closed {
			return ErrWindowClosed
		}
	}
	return nil
}

// Wait presents the canvas and then blocks until the user closes the
// window, polling for input events. It always returns ErrWindowClosed.
func (c *Canvas) Wait() error {
	if err := c.present(); err != nil {
		return err
	}
	for {
		time.Sleep(pollQuantum)
		c.dispatch(c.win.Poll())
		if c.closed {
			return ErrWindowClosed
		}
	}
}

// present pushes the current frame to the window and handles the
// events that arrived since the previous frame.
func (c *Canvas) present() error {
	c.ensureCreated()
	if c.closed {
		return ErrWindowClosed
	}
	if err := c.win.Present(c.frame()); err != nil {
		return err
	}
	c.dispatch(c.win.Poll())
	if c.closed {
		return ErrWindowClosed
	}
	return nil
}

// frame returns the rendered canvas as an RGBA image.
func (c *Canvas) frame() *image.RGBA {
	img := c.dc.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}

// Image returns the current canvas contents. The returned image shares
// no state with the canvas; drawing after Image does not change it.
func (c *Canvas) Image() image.Image {
	c.ensureCreated()
	src := c.frame()
	out := image.NewRGBA(src.Bounds())
	draw.Draw(out, out.Bounds(), src, src.Bounds().Min, draw.Src)
	return out
}

// saveViaDialog runs the right-click save flow: ask for a file name in
// a child-process dialog, save, and report the outcome in another
// dialog. Dialog failures are logged and otherwise ignored so a broken
// dialog environment cannot take down the drawing loop.
func (c *Canvas) saveViaDialog() {
	askName := c.saveNameFn
	if askName == nil {
		askName = dialog.SaveFileName
	}
	showInfo := c.infoFn
	if showInfo == nil {
		showInfo = dialog.Info
	}
	showError := c.errorFn
	if showError == nil {
		showError = dialog.Error
	}

	name, err := askName()
	if err != nil {
		c.log.Warn("stddraw: save dialog failed", "error", err)
		return
	}
	if name == "" {
		return
	}
	lower := strings.ToLower(name)
	if !strings.HasSuffix(lower, ".png") && !strings.HasSuffix(lower, ".jpg") &&
		!strings.HasSuffix(lower, ".jpeg") {
		if err := showError("File Save Error",
			`File name must end with ".png", ".jpg" or ".jpeg".`); err != nil {
			c.log.Warn("stddraw: error dialog failed", "error", err)
		}
		return
	}
	if err := c.Save(name); err != nil {
		c.log.Warn("stddraw: save failed", "file", name, "error", err)
		if derr := showError("File Save Error", err.Error()); derr != nil {
			c.log.Warn("stddraw: error dialog failed", "error", derr)
		}
		return
	}
	c.log.Info("stddraw: drawing saved", "file", name)
	if err := showInfo("File Save Confirmation",
		"The drawing was saved to the file."); err != nil {
		c.log.Warn("stddraw: confirmation dialog failed", "error", err)
	}
}
