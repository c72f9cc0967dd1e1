package stddraw

import (
	"image/color"
	"testing"
)

func TestPalette(t *testing.T) {
	tests := []struct {
		name string
		got  color.RGBA
		want color.RGBA
	}{
		{"Black", Black, color.RGBA{0, 0, 0, 255}},
		{"White", White, color.RGBA{255, 255, 255, 255}},
		{"Red", Red, color.RGBA{255, 0, 0, 255}},
		{"Green", Green, color.RGBA{0, 255, 0, 255}},
		{"Blue", Blue, color.RGBA{0, 0, 255, 255}},
		{"Gray", Gray, color.RGBA{128, 128, 128, 255}},
		{"Orange", Orange, color.RGBA{255, 200, 0, 255}},
		{"Pink", Pink, color.RGBA{255, 175, 175, 255}},
		{"BookBlue", BookBlue, color.RGBA{9, 90, 166, 255}},
		{"BookLightBlue", BookLightBlue, color.RGBA{103, 198, 243, 255}},
		{"BookRed", BookRed, color.RGBA{150, 35, 31, 255}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestPaletteOpaque(t *testing.T) {
	all := []color.RGBA{
		Black, White, Red, Green, Blue, Cyan, Magenta, Yellow,
		DarkRed, DarkGreen, DarkBlue, Gray, LightGray, Orange,
		Pink, Violet, BookBlue, BookLightBlue, BookRed,
	}
	for i, c := range all {
		if c.A != 255 {
			t.Errorf("palette color %d has alpha %d, want 255", i, c.A)
		}
	}
}
