// Package host models the watch platform services the watchface is built on:
// windows, layers, text layers, the tick timer service and display capabilities.
// The terminal front end in internal/tui implements the event loop around them.
package host

import "calwatch/internal/graphics"

// UpdateProc redraws a layer. ctx is already translated to the layer's origin.
type UpdateProc func(layer *Layer, ctx graphics.Context)

// Layer is a node in a window's layer tree
type Layer struct {
	frame     graphics.Rect
	parent    *Layer
	children  []*Layer
	update    UpdateProc
	dirty     bool
	destroyed bool
	text      *TextLayer
}

// NewLayer creates a detached layer with the given frame
func NewLayer(frame graphics.Rect) *Layer {
	return &Layer{frame: frame, dirty: true}
}

// Frame returns the layer's frame in its parent's coordinates
func (l *Layer) Frame() graphics.Rect { return l.frame }

// SetFrame moves or resizes the layer
func (l *Layer) SetFrame(frame graphics.Rect) {
	l.frame = frame
	l.MarkDirty()
}

// Bounds returns the layer's own coordinate space
func (l *Layer) Bounds() graphics.Rect {
	return graphics.Rect{Size: l.frame.Size}
}

// SetUpdateProc installs the redraw callback
func (l *Layer) SetUpdateProc(proc UpdateProc) {
	l.update = proc
	l.MarkDirty()
}

// MarkDirty requests a redraw on the next composite
func (l *Layer) MarkDirty() {
	l.dirty = true
	if l.parent != nil {
		l.parent.MarkDirty()
	}
}

// Dirty reports whether a redraw is pending
func (l *Layer) Dirty() bool { return l.dirty }

// AddChild appends child on top of the existing children
func (l *Layer) AddChild(child *Layer) {
	child.RemoveFromParent()
	child.parent = l
	l.children = append(l.children, child)
	l.MarkDirty()
}

// RemoveFromParent detaches the layer
func (l *Layer) RemoveFromParent() {
	p := l.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == l {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	l.parent = nil
	p.MarkDirty()
}

// Children returns the child layers in paint order
func (l *Layer) Children() []*Layer {
	return l.children
}

// TextLayer returns the text layer wrapping l, or nil
func (l *Layer) TextLayer() *TextLayer {
	return l.text
}

// Destroy detaches the layer and drops its callback
func (l *Layer) Destroy() {
	l.RemoveFromParent()
	l.update = nil
	l.destroyed = true
}

// Destroyed reports whether Destroy has been called
func (l *Layer) Destroyed() bool { return l.destroyed }

// Walk visits l and its descendants in paint order, passing each layer's
// absolute origin
func (l *Layer) Walk(fn func(layer *Layer, origin graphics.Point)) {
	l.walk(graphics.Point{}, fn)
}

func (l *Layer) walk(base graphics.Point, fn func(*Layer, graphics.Point)) {
	origin := graphics.Point{X: base.X + l.frame.Origin.X, Y: base.Y + l.frame.Origin.Y}
	fn(l, origin)
	for _, c := range l.children {
		c.walk(origin, fn)
	}
}

// Render runs every update proc under l into ctx and clears dirty flags
func (l *Layer) Render(ctx graphics.Context) {
	l.Walk(func(layer *Layer, origin graphics.Point) {
		if layer.update != nil {
			layer.update(layer, graphics.Translate(ctx, origin))
		}
		layer.dirty = false
	})
}
