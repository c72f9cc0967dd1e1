package stddraw

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func solidImage(w, h int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestFromImage(t *testing.T) {
	pic := FromImage(solidImage(20, 10, Red))
	if pic.Width() != 20 || pic.Height() != 10 {
		t.Errorf("size = %dx%d, want 20x10", pic.Width(), pic.Height())
	}
	if pic.Image() == nil {
		t.Error("Image() returned nil")
	}
}

func TestEmptyPicture(t *testing.T) {
	var pic Picture
	if pic.Width() != 0 || pic.Height() != 0 {
		t.Errorf("empty picture size = %dx%d, want 0x0", pic.Width(), pic.Height())
	}
}

func TestScaled(t *testing.T) {
	pic := FromImage(solidImage(8, 8, Blue)).Scaled(32, 16)
	if pic.Width() != 32 || pic.Height() != 16 {
		t.Errorf("scaled size = %dx%d, want 32x16", pic.Width(), pic.Height())
	}
	_, _, b, _ := pic.Image().At(16, 8).RGBA()
	if b < 0xd000 {
		t.Errorf("scaled pixel not blue: b=%v", b)
	}
}

func TestScaledBadSize(t *testing.T) {
	pic := FromImage(solidImage(8, 8, Blue)).Scaled(0, -3)
	if pic.Width() != 0 || pic.Height() != 0 {
		t.Errorf("scaled to bad size = %dx%d, want empty", pic.Width(), pic.Height())
	}
}

func TestDrawPicture(t *testing.T) {
	c := testCanvas(t, 64, 64)
	pic := FromImage(solidImage(16, 16, Red))
	c.DrawPicture(pic, 0.5, 0.5)

	r, _, _ := probe(t, c, 32, 32)
	if r < 0xd000 {
		t.Errorf("center pixel not red: r=%v", r)
	}
	r, g, b := probe(t, c, 4, 4)
	if r < 0xd000 || g < 0xd000 || b < 0xd000 {
		t.Errorf("corner pixel not white: (%v %v %v)", r, g, b)
	}
}

func TestDrawNilPicture(t *testing.T) {
	c := testCanvas(t, 32, 32)
	c.DrawPicture(nil, 0.5, 0.5)
	c.DrawPicture(&Picture{}, 0.5, 0.5)
	r, g, b := probe(t, c, 16, 16)
	if r < 0xd000 || g < 0xd000 || b < 0xd000 {
		t.Errorf("canvas changed by nil picture: (%v %v %v)", r, g, b)
	}
}

func TestLoadPicturePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, solidImage(12, 7, Green)); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	pic, err := LoadPicture(path)
	if err != nil {
		t.Fatal(err)
	}
	if pic.Width() != 12 || pic.Height() != 7 {
		t.Errorf("loaded size = %dx%d, want 12x7", pic.Width(), pic.Height())
	}
}

func TestLoadPictureSVG(t *testing.T) {
	const svg = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">` +
		`<rect x="0" y="0" width="24" height="24" fill="#ff0000"/></svg>`
	path := filepath.Join(t.TempDir(), "in.svg")
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		t.Fatal(err)
	}

	pic, err := LoadPicture(path)
	if err != nil {
		t.Fatal(err)
	}
	if pic.Width() != 24 || pic.Height() != 24 {
		t.Errorf("rasterized size = %dx%d, want 24x24", pic.Width(), pic.Height())
	}
	r, _, _, _ := pic.Image().At(12, 12).RGBA()
	if r < 0xd000 {
		t.Errorf("rasterized pixel not red: r=%v", r)
	}
}

func TestLoadPictureMissingFile(t *testing.T) {
	if _, err := LoadPicture(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing file")
	}
}
