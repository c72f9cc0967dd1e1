// Package ebitenwin provides a real window backend on top of ebiten.
//
// Importing the package registers the backend, which then wins the
// registry's priority selection:
//
//	import _ "github.com/gogpu/stddraw/backend/ebitenwin"
//
// Ebiten owns the render loop, so the window runs on its own goroutine
// and frames and events are handed over under a mutex. On platforms
// that require the event loop on the main OS thread (notably macOS),
// call stddraw from a goroutine and keep main free for the window, or
// render headlessly instead.
package ebitenwin

import (
	"image"
	"log/slog"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/stddraw/backend"
)

func init() {
	backend.Register(backend.BackendEbiten, func() backend.Window {
		return &window{}
	})
}

// window implements backend.Window on an ebiten game loop.
type window struct {
	mu        sync.Mutex
	cfg       backend.Config
	frame     *image.RGBA
	dirty     bool
	events    []backend.Event
	open      bool
	closed    bool
	terminate bool
	log       *slog.Logger
}

// Name returns the backend identifier.
func (w *window) Name() string {
	return backend.BackendEbiten
}

// SetLogger installs the logger propagated from the canvas.
func (w *window) SetLogger(l *slog.Logger) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.log = l
}

// Open creates the window and starts the render loop.
func (w *window) Open(cfg backend.Config) error {
	w.mu.Lock()
	if w.open {
		w.mu.Unlock()
		return backend.ErrAlreadyOpen
	}
	w.open = true
	w.cfg = cfg
	log := w.log
	w.mu.Unlock()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)

	go func() {
		err := ebiten.RunGame(&game{win: w})
		w.mu.Lock()
		w.closed = true
		w.events = append(w.events, backend.CloseEvent{})
		w.mu.Unlock()
		if err != nil && log != nil {
			log.Warn("ebitenwin: render loop ended", "error", err)
		}
	}()
	return nil
}

// Present hands a finished frame to the render loop.
func (w *window) Present(frame *image.RGBA) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.open {
		return backend.ErrNotOpen
	}
	if w.closed {
		// The close event is already queued; drop the frame.
		return nil
	}
	if w.frame == nil || w.frame.Bounds() != frame.Bounds() {
		w.frame = image.NewRGBA(frame.Bounds())
	}
	copy(w.frame.Pix, frame.Pix)
	w.dirty = true
	return nil
}

// Poll drains the captured input events.
func (w *window) Poll() []backend.Event {
	w.mu.Lock()
	defer w.mu.Unlock()
	evs := w.events
	w.events = nil
	return evs
}

// Close asks the render loop to terminate.
func (w *window) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.terminate = true
	w.open = false
	return nil
}

// game adapts the window to ebiten's Game interface.
type game struct {
	win   *window
	img   *ebiten.Image
	chars []rune
}

// Update captures input into the window's event queue.
func (g *game) Update() error {
	w := g.win
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.terminate {
		return ebiten.Termination
	}

	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		w.events = append(w.events, backend.KeyTypedEvent{Rune: r})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		w.events = append(w.events, backend.MousePressEvent{X: x, Y: y, Button: backend.MouseLeft})
	}
	// Save requests fire on release so the press never doubles as one.
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		w.events = append(w.events, backend.SaveRequestEvent{})
	}
	return nil
}

// Draw blits the most recently presented frame to the screen.
func (g *game) Draw(screen *ebiten.Image) {
	w := g.win
	w.mu.Lock()
	if w.frame != nil && w.dirty {
		b := w.frame.Bounds()
		if g.img == nil || g.img.Bounds() != b {
			g.img = ebiten.NewImage(b.Dx(), b.Dy())
		}
		g.img.WritePixels(w.frame.Pix)
		w.dirty = false
	}
	w.mu.Unlock()

	if g.img != nil {
		screen.DrawImage(g.img, nil)
	}
}

// Layout fixes the logical screen to the canvas size.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.win.cfg.Width, g.win.cfg.Height
}
