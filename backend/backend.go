package backend

import (
	"errors"
	"image"
)

// Common backend errors.
var (
	// ErrNotOpen is returned when operations are called before Open.
	ErrNotOpen = errors.New("backend: window not open")

	// ErrAlreadyOpen is returned when Open is called twice.
	ErrAlreadyOpen = errors.New("backend: window already open")
)

// Config describes the window to open.
type Config struct {
	// Width and Height are the canvas dimensions in pixels.
	Width, Height int

	// Title is the window caption.
	Title string
}

// Window is the interface for window backends.
// It abstracts window creation, frame presentation and input capture,
// allowing the library to run against a real window (backend/ebitenwin)
// or headlessly (the built-in headless window, used in tests and for
// file-only rendering).
//
// Windows must be registered via Register() and are selected via
// Get() or Default().
type Window interface {
	// Name returns the backend identifier (e.g. "ebiten", "headless").
	Name() string

	// Open creates the window. It must be called before Present or Poll.
	Open(cfg Config) error

	// Present copies a finished frame to the window.
	// The image is owned by the caller and must not be retained.
	Present(frame *image.RGBA) error

	// Poll returns the input events that arrived since the last call,
	// in arrival order. It never blocks.
	Poll() []Event

	// Close destroys the window. The window must not be used after
	// Close. Close is idempotent.
	Close() error
}

// MouseButton identifies a mouse button in a MousePressEvent.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// Event is an input event delivered by a Window.
//
// The concrete types are KeyTypedEvent, MousePressEvent,
// SaveRequestEvent and CloseEvent.
type Event interface {
	isEvent()
}

// KeyTypedEvent reports a printable key typed by the user.
type KeyTypedEvent struct {
	Rune rune
}

// MousePressEvent reports a mouse button press at a pixel position.
// Coordinates are in canvas pixels, origin top-left.
type MousePressEvent struct {
	X, Y   int
	Button MouseButton
}

// SaveRequestEvent reports that the user asked to save the drawing
// (a right click in the stddraw convention).
type SaveRequestEvent struct{}

// CloseEvent reports that the user closed the window.
type CloseEvent struct{}

func (KeyTypedEvent) isEvent()    {}
func (MousePressEvent) isEvent()  {}
func (SaveRequestEvent) isEvent() {}
func (CloseEvent) isEvent()       {}
