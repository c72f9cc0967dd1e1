package stddraw

import (
	"github.com/gogpu/stddraw/backend"
)

// dispatch routes window events into the canvas input state.
// Typed keys queue up in arrival order, a left click records the click
// position, and a right click (or an explicit save request) starts the
// save-dialog flow.
func (c *Canvas) dispatch(events []backend.Event) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case backend.KeyTypedEvent:
			c.keys = append(c.keys, ev.Rune)
		case backend.MousePressEvent:
			switch ev.Button {
			case backend.MouseLeft:
				c.mousePressed = true
				c.mouseClicked = true
				c.mouseX = ev.X
				c.mouseY = ev.Y
			case backend.MouseRight:
				c.saveViaDialog()
			}
		case backend.SaveRequestEvent:
			c.saveViaDialog()
		case backend.CloseEvent:
			c.closed = true
		}
	}
}

// HasNextKeyTyped reports whether the queue of typed keys is non-empty.
func (c *Canvas) HasNextKeyTyped() bool {
	return len(c.keys) > 0
}

// NextKeyTyped removes and returns the oldest key from the queue of
// keys the user typed. ok is false if the queue is empty.
func (c *Canvas) NextKeyTyped() (r rune, ok bool) {
	if len(c.keys) == 0 {
		return 0, false
	}
	r = c.keys[0]
	c.keys = c.keys[1:]
	return r, true
}

// MousePressed reports whether the mouse has been left-clicked since
// the last call. The pressed flag is cleared on read.
func (c *Canvas) MousePressed() bool {
	if c.mousePressed {
		c.mousePressed = false
		return true
	}
	return false
}

// MouseX returns the x-coordinate, in user space, of the most recent
// left click. It returns ErrNoMouseClick until a click has happened;
// call MousePressed first.
func (c *Canvas) MouseX() (float64, error) {
	if !c.mouseClicked {
		return 0, ErrNoMouseClick
	}
	return c.userX(float64(c.mouseX)), nil
}

// MouseY returns the y-coordinate, in user space, of the most recent
// left click. It returns ErrNoMouseClick until a click has happened.
func (c *Canvas) MouseY() (float64, error) {
	if !c.mouseClicked {
		return 0, ErrNoMouseClick
	}
	return c.userY(float64(c.mouseY)), nil
}
