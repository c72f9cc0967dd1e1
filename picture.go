package stddraw

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	// Register the stdlib decoders for LoadPicture.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/gogpu/gg"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

// Picture is an image that can be drawn on a canvas.
// The zero value is empty; build one with LoadPicture or FromImage.
type Picture struct {
	img image.Image
}

// LoadPicture reads a picture from a file. PNG, JPEG, GIF, BMP and SVG
// are supported, selected by file extension for BMP and SVG and by
// content otherwise. SVG files are rasterized at their view-box size.
func LoadPicture(path string) (*Picture, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return loadSVG(path)
	case ".bmp":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("stddraw: load picture %s: %w", path, err)
		}
		defer f.Close()
		img, err := bmp.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("stddraw: load picture %s: %w", path, err)
		}
		return &Picture{img: img}, nil
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("stddraw: load picture %s: %w", path, err)
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("stddraw: load picture %s: %w", path, err)
		}
		return &Picture{img: img}, nil
	}
}

// loadSVG parses an SVG file and rasterizes it at its intrinsic
// view-box size.
func loadSVG(path string) (*Picture, error) {
	icon, err := oksvg.ReadIcon(path, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("stddraw: load picture %s: %w", path, err)
	}
	w := int(icon.ViewBox.W)
	h := int(icon.ViewBox.H)
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("stddraw: load picture %s: empty view box", path)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.SetTarget(0, 0, float64(w), float64(h))
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return &Picture{img: img}, nil
}

// FromImage wraps an existing image as a Picture.
func FromImage(img image.Image) *Picture {
	return &Picture{img: img}
}

// Width returns the picture width in pixels.
func (p *Picture) Width() int {
	if p.img == nil {
		return 0
	}
	return p.img.Bounds().Dx()
}

// Height returns the picture height in pixels.
func (p *Picture) Height() int {
	if p.img == nil {
		return 0
	}
	return p.img.Bounds().Dy()
}

// Image returns the underlying image.
func (p *Picture) Image() image.Image {
	return p.img
}

// Scaled returns a copy of the picture resampled to w×h pixels.
func (p *Picture) Scaled(w, h int) *Picture {
	if p.img == nil || w < 1 || h < 1 {
		return &Picture{}
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), p.img, p.img.Bounds(), xdraw.Over, nil)
	return &Picture{img: dst}
}

// DrawPicture draws pic centered at (x, y) in user coordinates.
// The picture keeps its pixel dimensions; use Scaled to resize first.
func (c *Canvas) DrawPicture(pic *Picture, x, y float64) {
	c.ensureCreated()
	if pic == nil || pic.img == nil {
		return
	}
	xs := c.scaleX(x)
	ys := c.scaleY(y)
	ws := float64(pic.Width())
	hs := float64(pic.Height())
	buf := gg.ImageBufFromImage(pic.img)
	c.dc.DrawImage(buf, xs-ws/2.0, ys-hs/2.0)
}

// DrawPictureCentered draws pic at the midpoint of the canvas.
func (c *Canvas) DrawPictureCentered(pic *Picture) {
	c.DrawPicture(pic, (c.xmax+c.xmin)/2.0, (c.ymax+c.ymin)/2.0)
}
