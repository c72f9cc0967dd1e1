package backend

import (
	"image"
	"image/draw"
)

// Backend name constants.
const (
	// BackendHeadless is the name of the built-in windowless backend.
	BackendHeadless = "headless"
	// BackendEbiten is the name of the ebiten window backend
	// (registered by importing backend/ebitenwin).
	BackendEbiten = "ebiten"
)

// Headless is a window backend without a window. Presented frames are
// retained for inspection and events are supplied by the caller, which
// makes it the backend of choice for tests and for rendering straight
// to image files on machines without a display.
type Headless struct {
	open    bool
	cfg     Config
	frame   *image.RGBA
	frames  int
	pending []Event
}

// init registers the headless backend on package import.
func init() {
	Register(BackendHeadless, func() Window {
		return &Headless{}
	})
}

// NewHeadless creates a new headless window backend.
func NewHeadless() *Headless {
	return &Headless{}
}

// Name returns the backend identifier.
func (h *Headless) Name() string {
	return BackendHeadless
}

// Open records the window configuration.
func (h *Headless) Open(cfg Config) error {
	if h.open {
		return ErrAlreadyOpen
	}
	h.open = true
	h.cfg = cfg
	return nil
}

// Present retains a copy of the frame for later inspection.
func (h *Headless) Present(frame *image.RGBA) error {
	if !h.open {
		return ErrNotOpen
	}
	if h.frame == nil || h.frame.Bounds() != frame.Bounds() {
		h.frame = image.NewRGBA(frame.Bounds())
	}
	draw.Draw(h.frame, h.frame.Bounds(), frame, frame.Bounds().Min, draw.Src)
	h.frames++
	return nil
}

// Poll drains and returns the injected events.
func (h *Headless) Poll() []Event {
	evs := h.pending
	h.pending = nil
	return evs
}

// Close marks the window closed.
func (h *Headless) Close() error {
	h.open = false
	return nil
}

// Inject queues events for the next Poll. Test helper.
func (h *Headless) Inject(evs ...Event) {
	h.pending = append(h.pending, evs...)
}

// LastFrame returns a copy-free view of the most recently presented
// frame, or nil if nothing has been presented.
func (h *Headless) LastFrame() *image.RGBA {
	return h.frame
}

// FrameCount returns the number of frames presented so far.
func (h *Headless) FrameCount() int {
	return h.frames
}

// Config returns the configuration the window was opened with.
func (h *Headless) Config() Config {
	return h.cfg
}
