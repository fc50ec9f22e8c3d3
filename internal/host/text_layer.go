package host

import "calwatch/internal/graphics"

// TextAlignment positions text horizontally inside a text layer
type TextAlignment int

const (
	AlignLeft TextAlignment = iota
	AlignCenter
	AlignRight
)

// System font keys
const (
	FontLeco36BoldNumbers = "LECO_36_BOLD_NUMBERS"
	FontGothic18Bold      = "GOTHIC_18_BOLD"
)

// TextLayer is a layer that shows a single string
type TextLayer struct {
	layer      *Layer
	text       string
	textColor  graphics.Color
	background graphics.Color
	font       string
	alignment  TextAlignment
}

// NewTextLayer creates a text layer with black text on a white background
func NewTextLayer(frame graphics.Rect) *TextLayer {
	t := &TextLayer{
		layer:      NewLayer(frame),
		textColor:  graphics.ColorBlack,
		background: graphics.ColorWhite,
		alignment:  AlignLeft,
	}
	t.layer.text = t
	return t
}

// Layer returns the underlying layer for attaching to a tree
func (t *TextLayer) Layer() *Layer { return t.layer }

// SetText replaces the text and marks the layer dirty
func (t *TextLayer) SetText(s string) {
	t.text = s
	t.layer.MarkDirty()
}

// Text returns the current text
func (t *TextLayer) Text() string { return t.text }

// SetTextColor sets the foreground colour
func (t *TextLayer) SetTextColor(c graphics.Color) {
	t.textColor = c
	t.layer.MarkDirty()
}

// TextColor returns the foreground colour
func (t *TextLayer) TextColor() graphics.Color { return t.textColor }

// SetBackgroundColor sets the fill behind the text
func (t *TextLayer) SetBackgroundColor(c graphics.Color) {
	t.background = c
	t.layer.MarkDirty()
}

// BackgroundColor returns the fill behind the text
func (t *TextLayer) BackgroundColor() graphics.Color { return t.background }

// SetFont sets the font key
func (t *TextLayer) SetFont(key string) {
	t.font = key
	t.layer.MarkDirty()
}

// Font returns the font key
func (t *TextLayer) Font() string { return t.font }

// SetAlignment sets horizontal alignment
func (t *TextLayer) SetAlignment(a TextAlignment) {
	t.alignment = a
	t.layer.MarkDirty()
}

// Alignment returns horizontal alignment
func (t *TextLayer) Alignment() TextAlignment { return t.alignment }

// Destroy releases the text layer
func (t *TextLayer) Destroy() {
	t.layer.Destroy()
}
