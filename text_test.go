package stddraw

import (
	"testing"

	"github.com/gogpu/gg/text"
)

// withoutFonts disables font discovery for the duration of a test so
// the no-font paths can run on machines that do have fonts installed.
func withoutFonts(t *testing.T) {
	t.Helper()
	saved := genericFallbacks
	genericFallbacks = nil
	t.Cleanup(func() { genericFallbacks = saved })
}

func TestTextRendersNearAnchor(t *testing.T) {
	if resolveFontPath(defaultFontFamily) == "" {
		t.Skip("no system font installed")
	}
	c := testCanvas(t, 128, 64)
	c.SetFontSize(24)
	c.Text(0.5, 0.5, "Hg")

	img := c.Image()
	dark := 0
	for y := 8; y < 56; y++ {
		for x := 16; x < 112; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r < 0xc000 || g < 0xc000 || b < 0xc000 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("Text drew nothing near the anchor")
	}
}

func TestTextWithoutFontDrawsNothing(t *testing.T) {
	withoutFonts(t)

	c := testCanvas(t, 32, 32)
	c.SetFontFamily("no-such-family")
	c.Text(0.5, 0.5, "hello")

	img := c.Image()
	for _, p := range [][2]int{{16, 16}, {8, 16}, {24, 16}} {
		r, g, b, _ := img.At(p[0], p[1]).RGBA()
		if r != 0xffff || g != 0xffff || b != 0xffff {
			t.Errorf("pixel (%d,%d) = (%v %v %v), want white", p[0], p[1], r, g, b)
		}
	}
}

func TestFontFaceCacheInvalidation(t *testing.T) {
	if resolveFontPath(defaultFontFamily) == "" {
		t.Skip("no system font installed")
	}
	c := testCanvas(t, 16, 16)
	c.Text(0.5, 0.5, "a")
	if c.face == nil {
		t.Fatal("no face cached after Text")
	}

	c.SetFontSize(c.fontSize)
	if c.face == nil {
		t.Error("setting the same size dropped the cached face")
	}
	c.SetFontSize(30)
	if c.face != nil {
		t.Error("SetFontSize kept the stale face")
	}

	c.Text(0.5, 0.5, "a")
	c.SetFontFamily(c.fontFamily)
	if c.face == nil {
		t.Error("setting the same family dropped the cached face")
	}
	c.SetFontFamily("Courier")
	if c.face != nil {
		t.Error("SetFontFamily kept the stale face")
	}
}

func TestSetFontFaceBypassesDiscovery(t *testing.T) {
	path := resolveFontPath(defaultFontFamily)
	if path == "" {
		t.Skip("no system font installed")
	}
	source, err := text.NewFontSourceFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	face := source.Face(18)

	withoutFonts(t)
	c := testCanvas(t, 16, 16)
	c.SetFontFamily("no-such-family")
	c.SetFontFace(face)

	if got := c.ensureFace(); got != face {
		t.Errorf("ensureFace() = %v, want the explicit face", got)
	}
}

func TestResolveFontPathUnknownFamilyFallsBack(t *testing.T) {
	got := resolveFontPath("definitely-not-a-font")
	want := firstExisting(genericFallbacks)
	if got != want {
		t.Errorf("resolveFontPath = %q, want fallback %q", got, want)
	}
}
