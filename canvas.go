package stddraw

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/stddraw/backend"
)

// Default sizes and values.
const (
	defaultXMin = 0.0
	defaultXMax = 1.0
	defaultYMin = 0.0
	defaultYMax = 1.0

	defaultCanvasSize = 512
	defaultPenRadius  = 0.005

	defaultFontFamily = "Helvetica"
	defaultFontSize   = 12

	defaultTitle = "stddraw window (r-click to save)"
)

// border is the fraction of slack added around the requested scale.
const border = 0.0

// Canvas is a drawing surface with a logical coordinate system.
// It maintains the pen state, the scale bounds, the font settings,
// and the queues fed by window input events.
//
// A Canvas is not safe for concurrent use. Most programs use the
// package-level functions, which share a single default canvas.
type Canvas struct {
	width  int
	height int
	title  string

	// Window plumbing
	backendName string
	win         backend.Window
	dc          *gg.Context
	created     bool
	closed      bool

	// Logical coordinate system
	xmin, xmax float64
	ymin, ymax float64

	// Pen state. penRadius is kept in pixels, converted once in
	// SetPenRadius using the default canvas size as the reference.
	penRadius float64
	penColor  color.Color

	// Font state. face is rebuilt lazily when family or size change.
	fontFamily string
	fontSize   int
	face       text.Face
	fontWarned bool

	// Input state
	keys         []rune
	mousePressed bool
	mouseX       int
	mouseY       int
	mouseClicked bool

	log *slog.Logger

	// Dialog hooks, replaceable in tests. Nil means the dialog
	// package defaults.
	saveNameFn func() (string, error)
	infoFn     func(title, message string) error
	errorFn    func(title, message string) error
}

// New creates a canvas with the given options. The window itself is
// created lazily, on the first drawing or presentation call, so size
// and title can still be adjusted after New.
func New(opts ...Option) *Canvas {
	c := &Canvas{
		width:      defaultCanvasSize,
		height:     defaultCanvasSize,
		title:      defaultTitle,
		penColor:   Black,
		fontFamily: defaultFontFamily,
		fontSize:   defaultFontSize,
	}
	c.setXScale(defaultXMin, defaultXMax)
	c.setYScale(defaultYMin, defaultYMax)
	c.penRadius = defaultPenRadius * defaultCanvasSize

	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = Logger()
	}
	return c
}

// SetCanvasSize sets the canvas to w pixels wide and h pixels high.
// Calling it is optional, but it must happen before the first drawing
// call: once the window exists the size is fixed and
// ErrWindowAlreadyCreated is returned.
func (c *Canvas) SetCanvasSize(w, h int) error {
	if c.created {
		return ErrWindowAlreadyCreated
	}
	if w < 1 || h < 1 {
		return fmt.Errorf("stddraw: canvas size %dx%d: width and height must be positive", w, h)
	}
	c.width = w
	c.height = h
	return nil
}

// SetTitle sets the window caption. Takes effect at window creation.
func (c *Canvas) SetTitle(title string) {
	c.title = title
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (w, h int) {
	return c.width, c.height
}

// SetXScale sets the x-scale so the canvas spans [min, max].
func (c *Canvas) SetXScale(min, max float64) error {
	if min >= max {
		return fmt.Errorf("stddraw: x-scale [%v, %v]: min must be less than max", min, max)
	}
	c.setXScale(min, max)
	return nil
}

// SetYScale sets the y-scale so the canvas spans [min, max].
func (c *Canvas) SetYScale(min, max float64) error {
	if min >= max {
		return fmt.Errorf("stddraw: y-scale [%v, %v]: min must be less than max", min, max)
	}
	c.setYScale(min, max)
	return nil
}

func (c *Canvas) setXScale(min, max float64) {
	size := max - min
	c.xmin = min - border*size
	c.xmax = max + border*size
}

func (c *Canvas) setYScale(min, max float64) {
	size := max - min
	c.ymin = min - border*size
	c.ymax = max + border*size
}

// SetPenRadius sets the pen radius, affecting subsequent points, lines
// and shape outlines. The radius is a fraction of the default canvas
// size, so 0.005 is about 2½ pixels. A radius of 0 draws points and
// lines at the minimum possible width.
func (c *Canvas) SetPenRadius(r float64) error {
	if r < 0 {
		return fmt.Errorf("stddraw: pen radius %v: must be non-negative", r)
	}
	c.penRadius = r * defaultCanvasSize
	return nil
}

// SetPenColor sets the pen color used by subsequent drawing calls.
func (c *Canvas) SetPenColor(col color.Color) {
	c.penColor = col
}

// PenColor returns the current pen color.
func (c *Canvas) PenColor() color.Color {
	return c.penColor
}

// Clear clears the canvas to white.
func (c *Canvas) Clear() {
	c.ClearColor(White)
}

// ClearColor clears the canvas to the given color.
func (c *Canvas) ClearColor(col color.Color) {
	c.ensureCreated()
	c.dc.ClearWithColor(gg.FromColor(col))
}

// Window returns the backend window the canvas presents to, creating
// it if necessary. Useful for tests that inject events.
func (c *Canvas) Window() backend.Window {
	c.ensureCreated()
	return c.win
}

// ensureCreated creates the drawing context and opens the window on
// first use. Failure to open a window is not fatal: the canvas falls
// back to a headless window so off-screen drawing and Save keep
// working, matching the priority order of the backend registry.
func (c *Canvas) ensureCreated() {
	if c.created {
		return
	}
	c.created = true

	c.dc = gg.NewContext(c.width, c.height)
	c.dc.ClearWithColor(gg.FromColor(White))

	if c.win == nil {
		if c.backendName != "" {
			c.win = backend.Get(c.backendName)
		} else {
			c.win = backend.Default()
		}
	}
	if c.win == nil {
		c.win = backend.NewHeadless()
	}
	propagateLogger(c.win)

	cfg := backend.Config{Width: c.width, Height: c.height, Title: c.title}
	if err := c.win.Open(cfg); err != nil {
		c.log.Warn("stddraw: window open failed, falling back to headless",
			"backend", c.win.Name(), "error", err)
		c.win = backend.NewHeadless()
		_ = c.win.Open(cfg)
	}
	c.log.Info("stddraw: window created",
		"backend", c.win.Name(), "width", c.width, "height", c.height)
}

// Close releases the window. The canvas must not be drawn to after
// Close. Close is idempotent.
func (c *Canvas) Close() error {
	if !c.created || c.win == nil {
		return nil
	}
	c.closed = true
	return c.win.Close()
}
