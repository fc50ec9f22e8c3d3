// Package watchface is the calorie watchface: it keeps today's calorie total,
// renders it as a label and a radial gauge next to the time, and refreshes on
// every minute tick.
package watchface

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"calwatch/internal/clock"
	"calwatch/internal/graphics"
	"calwatch/internal/health"
	"calwatch/internal/host"
)

// DisplayState is what the two labels currently show
type DisplayState struct {
	Time     string
	Calories string
}

// Deps are the host services the controller is wired to
type Deps struct {
	Health       health.Service
	Clock        clock.Clock
	Locale       host.Locale
	Capabilities host.Capabilities
	Windows      host.WindowStack
	Ticks        host.TickTimerService
	Logger       *zap.SugaredLogger
}

// Controller owns the watchface state. All methods must be called from the
// host's event loop.
type Controller struct {
	health  health.Service
	clock   clock.Clock
	locale  host.Locale
	windows host.WindowStack
	ticks   host.TickTimerService
	log     *zap.SugaredLogger
	layout  host.LayoutConfig

	kcalories int
	display   DisplayState

	window    *host.Window
	canvas    *host.Layer
	timeLayer *host.TextLayer
	calLayer  *host.TextLayer
	tickSub   host.Subscription
}

// New creates a controller. Capabilities are resolved into a layout here, once.
func New(d Deps) *Controller {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Controller{
		health:  d.Health,
		clock:   d.Clock,
		locale:  d.Locale,
		windows: d.Windows,
		ticks:   d.Ticks,
		log:     logger,
		layout:  host.ResolveLayout(d.Capabilities),
	}
}

// Start creates the main window, pushes it and subscribes to minute ticks.
// Pushing the window loads it, which performs the first refresh.
func (c *Controller) Start() error {
	if c.window != nil {
		return errors.New("watchface already started")
	}

	c.kcalories = 0

	w := host.NewWindow()
	w.SetBackgroundColor(c.layout.Palette.Background)
	w.SetHandlers(host.WindowHandlers{
		Load:   c.load,
		Unload: c.unload,
	})
	c.window = w

	if err := c.windows.Push(w, true); err != nil {
		c.window = nil
		return fmt.Errorf("pushing main window: %w", err)
	}

	c.tickSub = c.ticks.Subscribe(host.MinuteUnit, c.handleTick)
	c.log.Infow("Watchface started", "shape", c.layout.Shape, "color", c.layout.ColorCapable)
	return nil
}

// Stop unsubscribes from ticks and removes the main window
func (c *Controller) Stop() {
	if c.tickSub != nil {
		c.tickSub.Unsubscribe()
		c.tickSub = nil
	}
	if c.window != nil {
		c.windows.Remove(c.window)
		c.window = nil
	}
}

// Window returns the main window, nil before Start
func (c *Controller) Window() *host.Window { return c.window }

// Layout returns the resolved layout
func (c *Controller) Layout() host.LayoutConfig { return c.layout }

// Snapshot returns the cached calorie total
func (c *Controller) Snapshot() int { return c.kcalories }

// Display returns the current label strings
func (c *Controller) Display() DisplayState { return c.display }

// Loaded reports whether the watchface layers exist
func (c *Controller) Loaded() bool { return c.canvas != nil }

func (c *Controller) load(w *host.Window) {
	root := w.RootLayer()
	bounds := root.Bounds()

	c.canvas = host.NewLayer(bounds)
	c.canvas.SetUpdateProc(c.drawArc)

	top := c.layout.LabelTop
	c.timeLayer = host.NewTextLayer(graphics.NewRect(0, top+2, bounds.Size.W, 50))
	c.timeLayer.SetBackgroundColor(graphics.ColorClear)
	c.timeLayer.SetTextColor(c.layout.Palette.TimeText)
	c.timeLayer.SetText("00:00")
	c.timeLayer.SetFont(host.FontLeco36BoldNumbers)
	c.timeLayer.SetAlignment(host.AlignCenter)

	c.calLayer = host.NewTextLayer(graphics.NewRect(0, top+40, bounds.Size.W, 50))
	c.calLayer.SetBackgroundColor(graphics.ColorClear)
	c.calLayer.SetTextColor(c.layout.Palette.CalText)
	c.calLayer.SetFont(host.FontGothic18Bold)
	c.calLayer.SetAlignment(host.AlignCenter)

	c.Refresh()

	root.AddChild(c.timeLayer.Layer())
	root.AddChild(c.calLayer.Layer())
	root.AddChild(c.canvas)
}

func (c *Controller) unload(*host.Window) {
	c.timeLayer.Destroy()
	c.calLayer.Destroy()
	c.canvas.Destroy()
	c.timeLayer, c.calLayer, c.canvas = nil, nil, nil
}

func (c *Controller) handleTick(_ time.Time, _ host.TimeUnits) {
	c.Refresh()
}

// Refresh re-reads the calorie total and recomputes both labels.
// While unloaded only the cached state is updated.
func (c *Controller) Refresh() {
	now := c.clock.Now()
	c.kcalories = health.FetchDailyKCalories(c.health, now, c.log)

	c.display = DisplayState{
		Calories: CalorieText(c.kcalories),
		Time:     TimeText(now, c.locale.Uses24hFormat()),
	}

	if !c.Loaded() {
		return
	}
	c.calLayer.SetText(c.display.Calories)
	c.timeLayer.SetText(c.display.Time)
	c.canvas.MarkDirty()
}

func (c *Controller) drawArc(layer *host.Layer, ctx graphics.Context) {
	frame := layer.Bounds().Inset(graphics.UniformInsets(c.layout.Inset))
	ctx.SetFillColor(c.layout.Palette.Arc)
	ctx.FillRadial(frame, c.layout.StrokeThickness,
		graphics.DegToTrigAngle(GaugeAngle(c.kcalories)), graphics.DegToTrigAngle(0))
}
