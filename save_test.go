package stddraw

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/stddraw/backend"
)

func TestSavePNG(t *testing.T) {
	c := testCanvas(t, 64, 48)
	c.SetPenColor(Red)
	c.FilledRectangle(0, 0, 1, 1)

	path := filepath.Join(t.TempDir(), "out.png")
	if err := c.Save(path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 48 {
		t.Errorf("saved image is %v, want 64x48", img.Bounds())
	}
	r, _, _, _ := img.At(32, 24).RGBA()
	if r < 0xd000 {
		t.Errorf("saved pixel not red: r=%v", r)
	}
}

func TestSaveJPEG(t *testing.T) {
	c := testCanvas(t, 32, 32)
	path := filepath.Join(t.TempDir(), "out.jpg")
	if err := c.Save(path); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("jpeg not written: %v", err)
	}
}

func TestSaveUnsupportedFormat(t *testing.T) {
	c := testCanvas(t, 16, 16)
	for _, name := range []string{"out.bmp", "out.gif", "out", "out.PNG.txt"} {
		err := c.Save(filepath.Join(t.TempDir(), name))
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("Save(%q): err = %v, want ErrUnsupportedFormat", name, err)
		}
	}
}

func TestSaveCaseInsensitiveExtension(t *testing.T) {
	c := testCanvas(t, 16, 16)
	if err := c.Save(filepath.Join(t.TempDir(), "OUT.PNG")); err != nil {
		t.Errorf("Save with upper-case extension: %v", err)
	}
}

func TestRightClickSaveFlow(t *testing.T) {
	win := backend.NewHeadless()
	c := New(WithSize(32, 32), WithWindow(win))
	c.Clear()

	path := filepath.Join(t.TempDir(), "clicked.png")
	var confirmed, failed bool
	c.saveNameFn = func() (string, error) { return path, nil }
	c.infoFn = func(title, message string) error { confirmed = true; return nil }
	c.errorFn = func(title, message string) error { failed = true; return nil }

	win.Inject(backend.SaveRequestEvent{})
	if err := c.Show(0); err != nil {
		t.Fatal(err)
	}

	if failed {
		t.Error("error dialog shown for a valid save")
	}
	if !confirmed {
		t.Error("confirmation dialog not shown")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not written: %v", err)
	}
}

func TestRightClickSaveRejectsBadExtension(t *testing.T) {
	win := backend.NewHeadless()
	c := New(WithSize(32, 32), WithWindow(win))
	c.Clear()

	var errMsg string
	c.saveNameFn = func() (string, error) { return "drawing.tiff", nil }
	c.errorFn = func(title, message string) error { errMsg = message; return nil }

	win.Inject(backend.SaveRequestEvent{})
	if err := c.Show(0); err != nil {
		t.Fatal(err)
	}
	if errMsg == "" {
		t.Error("error dialog not shown for bad extension")
	}
	if !strings.Contains(errMsg, ".jpeg") {
		t.Errorf("error message does not list every accepted extension: %q", errMsg)
	}
	if _, err := os.Stat("drawing.tiff"); err == nil {
		os.Remove("drawing.tiff")
		t.Error("file with bad extension was written")
	}
}
