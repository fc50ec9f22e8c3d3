package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"

	"calwatch/internal/analysis"
	"calwatch/internal/store"
	"calwatch/internal/watchface"
)

// HistoryDays is the span of the history chart
const HistoryDays = 7

// HistorySource provides per-day calorie totals
type HistorySource interface {
	DailyTotals(days int, now time.Time) ([]store.DailyTotal, error)
}

type historyMsg struct {
	totals []store.DailyTotal
	err    error
}

func loadHistory(src HistorySource, now time.Time) tea.Cmd {
	return func() tea.Msg {
		totals, err := src.DailyTotals(HistoryDays, now)
		return historyMsg{totals: totals, err: err}
	}
}

// renderHistory draws recorded kcal per day as a line chart
func renderHistory(totals []store.DailyTotal, err error) string {
	title := cardTitleStyle.Render(fmt.Sprintf("Recorded kcal, last %d days", HistoryDays))

	if err != nil {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, errorStyle.Render(err.Error())))
	}
	if len(totals) == 0 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "Loading..."))
	}

	data := make([]float64, len(totals))
	for i, d := range totals {
		data[i] = d.KCal
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(42),
		asciigraph.Precision(0),
		asciigraph.Caption(fmt.Sprintf("%s to %s",
			totals[0].Date.Format("Mon Jan 2"),
			totals[len(totals)-1].Date.Format("Mon Jan 2"))),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph, renderTrend(totals)))
}

// renderTrend compares today with the smoothed burn of the days before it
func renderTrend(totals []store.DailyTotal) string {
	today := totals[len(totals)-1].KCal
	trend := analysis.CurrentTrend(totals[:len(totals)-1])
	good := analysis.DaysAtOrAbove(totals, watchface.KCaloriesGood)

	return statusStyle.Render(fmt.Sprintf("Trend %s kcal/day  ·  %d/%d days at %s+  ·  %s",
		humanize.Comma(int64(trend)), good, len(totals),
		humanize.Comma(watchface.KCaloriesGood), analysis.TrendDescription(today, trend)))
}
