package stddraw

import (
	"log/slog"

	"github.com/gogpu/stddraw/backend"
)

// Option configures a Canvas during creation.
//
// Example:
//
//	// A wide canvas with its own title
//	c := stddraw.New(stddraw.WithSize(1024, 512), stddraw.WithTitle("plot"))
type Option func(*Canvas)

// WithSize sets the canvas dimensions in pixels.
// Values below 1 are ignored; the default is 512×512.
func WithSize(w, h int) Option {
	return func(c *Canvas) {
		if w >= 1 && h >= 1 {
			c.width = w
			c.height = h
		}
	}
}

// WithTitle sets the window caption.
func WithTitle(title string) Option {
	return func(c *Canvas) {
		c.title = title
	}
}

// WithBackend selects a registered window backend by name instead of
// the registry default.
//
// Example:
//
//	c := stddraw.New(stddraw.WithBackend(backend.BackendHeadless))
func WithBackend(name string) Option {
	return func(c *Canvas) {
		c.backendName = name
	}
}

// WithWindow injects a window instance directly, bypassing the
// registry. Use this for testing with a prepared headless window.
//
// Example:
//
//	win := backend.NewHeadless()
//	c := stddraw.New(stddraw.WithWindow(win))
func WithWindow(w backend.Window) Option {
	return func(c *Canvas) {
		c.win = w
	}
}

// WithLogger sets the logger for this canvas only.
// The default is the package logger configured via SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Canvas) {
		if l != nil {
			c.log = l
		}
	}
}
