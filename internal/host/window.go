package host

import (
	"errors"

	"calwatch/internal/graphics"
)

// ErrWindowInUse is returned when pushing a window that is already on a stack
var ErrWindowInUse = errors.New("window already presented")

// WindowHandlers are the lifecycle callbacks of a window
type WindowHandlers struct {
	Load   func(w *Window)
	Unload func(w *Window)
}

// Window is a full-screen container with a root layer
type Window struct {
	root       *Layer
	background graphics.Color
	handlers   WindowHandlers
	loaded     bool
}

// NewWindow creates an unpresented window with a white background
func NewWindow() *Window {
	return &Window{
		root:       NewLayer(graphics.Rect{}),
		background: graphics.ColorWhite,
	}
}

// RootLayer returns the window's root layer
func (w *Window) RootLayer() *Layer { return w.root }

// SetBackgroundColor sets the colour painted behind all layers
func (w *Window) SetBackgroundColor(c graphics.Color) {
	w.background = c
	w.root.MarkDirty()
}

// BackgroundColor returns the window background
func (w *Window) BackgroundColor() graphics.Color { return w.background }

// SetHandlers installs the load/unload callbacks
func (w *Window) SetHandlers(h WindowHandlers) {
	w.handlers = h
}

// Loaded reports whether the window is currently presented
func (w *Window) Loaded() bool { return w.loaded }

// Present sizes the root layer to bounds and runs the load handler.
// Window stacks call it; the watchface never does.
func (w *Window) Present(bounds graphics.Rect) error {
	if w.loaded {
		return ErrWindowInUse
	}
	w.root.SetFrame(bounds)
	w.loaded = true
	if w.handlers.Load != nil {
		w.handlers.Load(w)
	}
	return nil
}

// Dismiss runs the unload handler and detaches any layers left behind
func (w *Window) Dismiss() {
	if !w.loaded {
		return
	}
	if w.handlers.Unload != nil {
		w.handlers.Unload(w)
	}
	for _, c := range append([]*Layer(nil), w.root.children...) {
		c.RemoveFromParent()
	}
	w.loaded = false
}
