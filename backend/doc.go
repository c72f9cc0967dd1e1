// Package backend provides the window abstraction used by stddraw.
//
// A Window covers the three things the drawing facade needs from a
// windowing toolkit: opening a window, presenting finished frames, and
// polling input events. Backends register themselves in a registry and
// are selected by priority, so importing a backend package is enough to
// enable it:
//
//	import _ "github.com/gogpu/stddraw/backend/ebitenwin"
//
// Without that import the built-in headless backend is selected, which
// renders nowhere and delivers only injected events. That is the right
// default for tests and for batch rendering to image files.
package backend
