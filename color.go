package stddraw

import "image/color"

// Pen colors. Clients can use any color.Color; these cover the palette
// of the original library so drawings port over without imports.
var (
	Black     = color.RGBA{0, 0, 0, 255}
	White     = color.RGBA{255, 255, 255, 255}
	Red       = color.RGBA{255, 0, 0, 255}
	Green     = color.RGBA{0, 255, 0, 255}
	Blue      = color.RGBA{0, 0, 255, 255}
	Cyan      = color.RGBA{0, 255, 255, 255}
	Magenta   = color.RGBA{255, 0, 255, 255}
	Yellow    = color.RGBA{255, 255, 0, 255}
	DarkRed   = color.RGBA{128, 0, 0, 255}
	DarkGreen = color.RGBA{0, 128, 0, 255}
	DarkBlue  = color.RGBA{0, 0, 128, 255}
	Gray      = color.RGBA{128, 128, 128, 255}
	LightGray = color.RGBA{192, 192, 192, 255}
	Orange    = color.RGBA{255, 200, 0, 255}
	Pink      = color.RGBA{255, 175, 175, 255}
	Violet    = color.RGBA{238, 130, 238, 255}

	// Textbook colors.
	BookBlue      = color.RGBA{9, 90, 166, 255}
	BookLightBlue = color.RGBA{103, 198, 243, 255}
	BookRed       = color.RGBA{150, 35, 31, 255}
)
