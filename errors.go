package stddraw

import "errors"

// Sentinel errors returned by Canvas operations.
var (
	// ErrWindowAlreadyCreated is returned by SetCanvasSize once the
	// window exists. The canvas size is fixed at creation time.
	ErrWindowAlreadyCreated = errors.New("stddraw: the window was already created")

	// ErrWindowClosed is returned by Show and Wait after the user
	// closes the window.
	ErrWindowClosed = errors.New("stddraw: window closed")

	// ErrNoMouseClick is returned by MouseX and MouseY before any
	// left click has happened. Call MousePressed first.
	ErrNoMouseClick = errors.New("stddraw: no mouse click has happened yet")

	// ErrUnsupportedFormat is returned by Save for file extensions
	// other than .png, .jpg and .jpeg.
	ErrUnsupportedFormat = errors.New("stddraw: unsupported image format")
)
