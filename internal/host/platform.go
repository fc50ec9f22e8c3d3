package host

import "calwatch/internal/graphics"

// Shape is the physical display outline
type Shape int

const (
	ShapeRect Shape = iota
	ShapeRound
)

func (s Shape) String() string {
	if s == ShapeRound {
		return "round"
	}
	return "rect"
}

// Capabilities answers what the display can do
type Capabilities interface {
	Shape() Shape
	ColorCapable() bool
}

// Locale exposes the user's clock preference
type Locale interface {
	Uses24hFormat() bool
}

// ClockStyle is a fixed Locale
type ClockStyle bool

const (
	Clock24h ClockStyle = true
	Clock12h ClockStyle = false
)

// Uses24hFormat implements Locale
func (c ClockStyle) Uses24hFormat() bool { return bool(c) }

// Platform is a static description of a display
type Platform struct {
	DisplayShape Shape
	Color        bool
}

// Shape implements Capabilities
func (p Platform) Shape() Shape { return p.DisplayShape }

// ColorCapable implements Capabilities
func (p Platform) ColorCapable() bool { return p.Color }

// Display resolutions in pixels
var (
	RectBounds  = graphics.NewRect(0, 0, 144, 168)
	RoundBounds = graphics.NewRect(0, 0, 180, 180)
)

// Bounds returns the screen rectangle for the platform's shape
func (p Platform) Bounds() graphics.Rect {
	if p.DisplayShape == ShapeRound {
		return RoundBounds
	}
	return RectBounds
}

// Palette holds the colours the watchface paints with
type Palette struct {
	Background graphics.Color
	Arc        graphics.Color
	TimeText   graphics.Color
	CalText    graphics.Color
}

// LayoutConfig is the shape- and colour-dependent layout, resolved once at startup
type LayoutConfig struct {
	Shape           Shape
	ColorCapable    bool
	StrokeThickness int
	Inset           int
	LabelTop        int
	Palette         Palette
}

// ResolveLayout queries caps and returns the matching layout
func ResolveLayout(caps Capabilities) LayoutConfig {
	cfg := LayoutConfig{
		Shape:        caps.Shape(),
		ColorCapable: caps.ColorCapable(),
	}

	if cfg.Shape == ShapeRound {
		cfg.StrokeThickness = 12
		cfg.Inset = 0
		cfg.LabelTop = 58
	} else {
		cfg.StrokeThickness = 8
		cfg.Inset = 4
		cfg.LabelTop = 52
	}

	cfg.Palette = Palette{
		Background: graphics.ColorBlack,
		TimeText:   graphics.ColorGreen,
	}
	if cfg.ColorCapable {
		cfg.Palette.Arc = graphics.ColorYellow
		cfg.Palette.CalText = graphics.ColorYellow
	} else {
		cfg.Palette.Arc = graphics.ColorLightGray
		cfg.Palette.CalText = graphics.ColorWhite
	}

	return cfg
}
