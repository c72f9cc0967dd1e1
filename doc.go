// Package stddraw provides a simple drawing surface for learning to
// program with graphics.
//
// # Overview
//
// stddraw is a Go rendition of the classic introductory-CS standard
// drawing library. The caller sets up a logical coordinate system,
// draws primitive shapes with a configurable pen, and shows the result
// in a window at a controlled pace. All rasterization and text shaping
// is delegated to github.com/gogpu/gg; window management and input
// capture go through a pluggable backend (see the backend package).
//
// # Quick Start
//
//	import (
//		"time"
//
//		"github.com/gogpu/stddraw"
//		_ "github.com/gogpu/stddraw/backend/ebitenwin" // real window
//	)
//
//	stddraw.SetPenColor(stddraw.Blue)
//	stddraw.FilledCircle(0.5, 0.5, 0.25)
//	stddraw.Show(2 * time.Second)
//
// Without the ebitenwin import, drawing happens off screen and can be
// exported with Save, which suits tests and batch rendering.
//
// # Coordinate System
//
// User coordinates are logical: SetXScale and SetYScale define the
// bounds mapped onto the canvas, and the y axis points up. The default
// scale is the unit square on a 512×512 canvas.
//
// # Events
//
// Show polls the window while it waits. Typed keys queue up for
// HasNextKeyTyped/NextKeyTyped, a left click records the position
// reported by MouseX/MouseY, and a right click opens a save dialog.
//
// # Canvas values
//
// The package-level functions operate on a shared default canvas,
// matching the module-level design of the original library. Callers
// that want isolated surfaces can create their own with New.
package stddraw

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
