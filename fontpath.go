package stddraw

import (
	"os"
	"strings"
)

// fontCandidates maps lower-cased family names to likely font file
// locations across Windows, macOS and Linux. TTF only; TTC collections
// are not supported by the font parser.
var fontCandidates = map[string][]string{
	"helvetica": {
		"/Library/Fonts/Arial.ttf",
		"/System/Library/Fonts/Supplemental/Arial.ttf",
		"C:\\Windows\\Fonts\\arial.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
	},
	"arial": {
		"C:\\Windows\\Fonts\\arial.ttf",
		"/Library/Fonts/Arial.ttf",
		"/System/Library/Fonts/Supplemental/Arial.ttf",
		"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	},
	"courier": {
		"C:\\Windows\\Fonts\\cour.ttf",
		"/System/Library/Fonts/Supplemental/Courier New.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf",
		"/usr/share/fonts/TTF/DejaVuSansMono.ttf",
		"/usr/share/fonts/liberation/LiberationMono-Regular.ttf",
	},
	"times": {
		"C:\\Windows\\Fonts\\times.ttf",
		"/System/Library/Fonts/Supplemental/Times New Roman.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSerif.ttf",
		"/usr/share/fonts/liberation/LiberationSerif-Regular.ttf",
	},
	"monaco": {
		"/System/Library/Fonts/Monaco.ttf",
	},
}

// genericFallbacks are tried when the requested family is unknown or
// none of its candidates exist.
var genericFallbacks = []string{
	"C:\\Windows\\Fonts\\arial.ttf",
	"C:\\Windows\\Fonts\\calibri.ttf",
	"C:\\Windows\\Fonts\\segoeui.ttf",
	"/Library/Fonts/Arial.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
}

// resolveFontPath returns the path of an installed font file for the
// given family name, or "" if none of the known locations exist.
func resolveFontPath(family string) string {
	key := strings.ToLower(strings.TrimSpace(family))
	if paths, ok := fontCandidates[key]; ok {
		if p := firstExisting(paths); p != "" {
			return p
		}
	}
	return firstExisting(genericFallbacks)
}

func firstExisting(paths []string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
