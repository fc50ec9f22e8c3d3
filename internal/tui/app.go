// Package tui hosts the watchface in a terminal. It owns the window stack and
// the tick timer service, turns wall-clock minutes into tick events and
// composites the watch window into terminal cells.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"calwatch/internal/clock"
	"calwatch/internal/host"
	"calwatch/internal/store"
	"calwatch/internal/watchface"
)

// Options wires the app to the watchface and its host services
type Options struct {
	Controller *watchface.Controller
	Stack      *host.Stack
	Ticks      *host.TickService
	Clock      clock.Clock
	Syncer     Syncer        // nil disables Strava import
	History    HistorySource // nil disables the history chart
	Logger     *zap.SugaredLogger
}

// minuteMsg is delivered at each wall-clock minute boundary
type minuteMsg time.Time

// App is the root Bubble Tea model
type App struct {
	ctrl    *watchface.Controller
	stack   *host.Stack
	ticks   *host.TickService
	clock   clock.Clock
	syncer  Syncer
	history HistorySource
	log     *zap.SugaredLogger

	keys KeyMap
	help help.Model

	// Window dimensions
	width  int
	height int

	lastTick time.Time
	rendered string

	showHistory   bool
	historyTotals []store.DailyTotal
	historyErr    error

	syncing  bool
	lastSync time.Time
	syncErr  error
}

// NewApp creates the app. The controller must already be started.
func NewApp(opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	a := &App{
		ctrl:     opts.Controller,
		stack:    opts.Stack,
		ticks:    opts.Ticks,
		clock:    opts.Clock,
		syncer:   opts.Syncer,
		history:  opts.History,
		log:      logger,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		lastTick: opts.Clock.Now(),
	}
	if a.syncer != nil {
		a.lastSync = a.syncer.LastSync()
	}
	return a
}

// Init starts the minute ticker and, when configured, the first sync
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{scheduleMinute(a.clock.Now())}
	if a.syncer != nil {
		cmds = append(cmds, a.startSync(), scheduleSync(SyncInterval))
	}
	return tea.Batch(cmds...)
}

func scheduleMinute(now time.Time) tea.Cmd {
	return tea.Tick(clock.UntilNextMinute(now), func(t time.Time) tea.Msg { return minuteMsg(t) })
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width

	case minuteMsg:
		now := a.clock.Now()
		if changed := host.ChangedUnits(a.lastTick, now); changed != 0 {
			a.ticks.Fire(now, changed)
			a.lastTick = now
		}
		return a, scheduleMinute(now)

	case syncDueMsg:
		cmds := []tea.Cmd{scheduleSync(SyncInterval)}
		if !a.syncing {
			cmds = append(cmds, a.startSync())
		}
		return a, tea.Batch(cmds...)

	case SyncDoneMsg:
		a.syncing = false
		a.syncErr = msg.Err
		if msg.Err != nil {
			a.log.Warnw("Strava sync failed", "error", msg.Err)
		}
		if msg.Result != nil {
			for _, err := range msg.Result.Errors {
				a.log.Warnw("Strava activity skipped", "error", err)
			}
			if msg.Err == nil {
				a.lastSync = msg.Result.SyncedAt
			}
		}
		a.ctrl.Refresh()
		return a, a.reloadHistory()

	case historyMsg:
		a.historyTotals = msg.totals
		a.historyErr = msg.err
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Refresh):
		a.ctrl.Refresh()
		return a, a.reloadHistory()

	case key.Matches(msg, a.keys.History):
		if a.history == nil {
			return a, nil
		}
		a.showHistory = !a.showHistory
		return a, a.reloadHistory()

	case key.Matches(msg, a.keys.Sync):
		if a.syncer != nil && !a.syncing {
			return a, a.startSync()
		}

	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	}
	return a, nil
}

func (a *App) startSync() tea.Cmd {
	a.syncing = true
	a.syncErr = nil
	return runSync(a.syncer)
}

func (a *App) reloadHistory() tea.Cmd {
	if !a.showHistory || a.history == nil {
		return nil
	}
	return loadHistory(a.history, a.clock.Now())
}

// View renders the app
func (a *App) View() string {
	sections := []string{
		headerStyle.Render("calwatch"),
		a.renderWatch(),
	}
	if a.showHistory {
		sections = append(sections, renderHistory(a.historyTotals, a.historyErr))
	}
	sections = append(sections, a.renderStatus(), a.help.View(a.keys))

	view := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if a.width > 0 {
		view = lipgloss.PlaceHorizontal(a.width, lipgloss.Center, view)
	}
	return view
}

// renderWatch composites the top window, reusing the last frame while no
// layer is dirty
func (a *App) renderWatch() string {
	w := a.stack.Top()
	if w == nil {
		return ""
	}
	if a.rendered == "" || w.RootLayer().Dirty() {
		bezel := bezelStyle
		if a.ctrl.Layout().Shape == host.ShapeRound {
			bezel = roundBezelStyle
		}
		a.rendered = bezel.Render(Composite(w).Render())
	}
	return a.rendered
}

func (a *App) renderStatus() string {
	today := fmt.Sprintf("%s kcal today", humanize.Comma(int64(a.ctrl.Snapshot())))

	var sync string
	switch {
	case a.syncer == nil:
		sync = "Strava import off"
	case a.syncing:
		sync = "Syncing with Strava..."
	case a.syncErr != nil:
		sync = errorStyle.Render(fmt.Sprintf("Sync failed: %v", a.syncErr))
	case a.lastSync.IsZero():
		sync = "Not synced yet"
	default:
		sync = successStyle.Render("Synced " + humanize.RelTime(a.lastSync, a.clock.Now(), "ago", "from now"))
	}

	return statusStyle.Render(today + "  ·  " + sync)
}
