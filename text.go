package stddraw

import (
	"github.com/gogpu/gg/text"
)

// SetFontFamily sets the font family for subsequent Text calls
// (e.g. "Helvetica" or "Courier"). The family is resolved against the
// installed system fonts; if nothing matches, Text draws nothing.
func (c *Canvas) SetFontFamily(f string) {
	if f == c.fontFamily {
		return
	}
	c.fontFamily = f
	c.face = nil
	c.fontWarned = false
}

// SetFontSize sets the font size in points for subsequent Text calls.
func (c *Canvas) SetFontSize(s int) {
	if s == c.fontSize {
		return
	}
	c.fontSize = s
	c.face = nil
}

// SetFontFace sets an explicit font face, bypassing system font
// discovery. Build one with text.NewFontSourceFromFile.
func (c *Canvas) SetFontFace(face text.Face) {
	c.face = face
}

// Text draws the string s centered at (x, y) in the current font.
func (c *Canvas) Text(x, y float64, s string) {
	c.ensureCreated()
	face := c.ensureFace()
	if face == nil {
		return
	}
	c.dc.SetFont(face)
	c.dc.SetColor(c.penColor)
	c.dc.DrawStringAnchored(s, c.scaleX(x), c.scaleY(y), 0.5, 0.5)
}

// ensureFace resolves the current family and size to a font face,
// caching the result until either changes.
func (c *Canvas) ensureFace() text.Face {
	if c.face != nil {
		return c.face
	}
	path := resolveFontPath(c.fontFamily)
	if path == "" {
		if !c.fontWarned {
			c.log.Warn("stddraw: no font found for family, text disabled",
				"family", c.fontFamily)
			c.fontWarned = true
		}
		return nil
	}
	source, err := text.NewFontSourceFromFile(path)
	if err != nil {
		if !c.fontWarned {
			c.log.Warn("stddraw: font load failed, text disabled",
				"family", c.fontFamily, "path", path, "error", err)
			c.fontWarned = true
		}
		return nil
	}
	c.log.Info("stddraw: font loaded", "family", c.fontFamily, "path", path)
	c.face = source.Face(float64(c.fontSize))
	return c.face
}
