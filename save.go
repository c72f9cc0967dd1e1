package stddraw

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// jpegQuality is the encoder quality used for .jpg exports.
const jpegQuality = 95

// Save writes the canvas to the file f. The format follows the file
// extension: .png, .jpg or .jpeg. Any other extension returns
// ErrUnsupportedFormat.
func (c *Canvas) Save(f string) error {
	c.ensureCreated()

	ext := strings.ToLower(filepath.Ext(f))
	switch ext {
	case ".png", ".jpg", ".jpeg":
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	out, err := os.Create(f)
	if err != nil {
		return fmt.Errorf("stddraw: save %s: %w", f, err)
	}
	if ext == ".png" {
		err = c.dc.EncodePNG(out)
	} else {
		err = c.dc.EncodeJPEG(out, jpegQuality)
	}
	if err != nil {
		out.Close()
		return fmt.Errorf("stddraw: save %s: %w", f, err)
	}
	return out.Close()
}
