package ui

import (
	"github.com/gdamore/tcell/v2"
)

// A Component is anything the viewer lays out on the screen: a text view, the
// tab container holding them, or the status label. After constructing one,
// call SetPos() and SetSize() before drawing it.
type Component interface {
	// Draw renders the component inside its bounding rectangle.
	Draw(tcell.Screen)
	// A focused component shows the terminal cursor and receives key events.
	SetFocused(bool)
	SetTheme(*Theme)

	GetPos() (x, y int)
	SetPos(x, y int)

	GetSize() (w, h int)
	SetSize(w, h int)

	// HandleEvent returns true if the event was consumed. Unhandled events
	// bubble up to the caller.
	HandleEvent(tcell.Event) bool
}

// baseComponent holds the position, size, focus and theme shared by every
// Component, with default accessors that embedding types may override.
type baseComponent struct {
	focused       bool
	x, y          int
	width, height int
	theme         *Theme
}

func (c *baseComponent) SetFocused(v bool) {
	c.focused = v
}

func (c *baseComponent) SetTheme(theme *Theme) {
	c.theme = theme
}

func (c *baseComponent) GetPos() (int, int) {
	return c.x, c.y
}

func (c *baseComponent) SetPos(x, y int) {
	c.x, c.y = x, y
}

func (c *baseComponent) GetSize() (int, int) {
	return c.width, c.height
}

func (c *baseComponent) SetSize(width, height int) {
	c.width, c.height = width, height
}
