// Package analysis derives trends from daily calorie totals.
package analysis

import (
	"sort"
	"time"

	"calwatch/internal/store"
)

// TrendDays is the time constant of the burn trend
const TrendDays = 7

// TrendPoint is the smoothed burn for one day
type TrendPoint struct {
	Date time.Time
	KCal float64 // daily total for Date
	EMA  float64 // exponential moving average up to and including Date
}

// BurnTrend smooths daily totals with a TrendDays exponential moving average.
// Missing days between the first and last total count as zero burn.
func BurnTrend(totals []store.DailyTotal) []TrendPoint {
	if len(totals) == 0 {
		return nil
	}

	sorted := append([]store.DailyTotal(nil), totals...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	byDay := make(map[string]float64)
	for _, t := range sorted {
		byDay[t.Date.Format(time.DateOnly)] += t.KCal
	}

	decay := 2.0 / (TrendDays + 1.0)
	first := startOfDay(sorted[0].Date)
	last := startOfDay(sorted[len(sorted)-1].Date)

	var points []TrendPoint
	var ema float64
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		kcal := byDay[d.Format(time.DateOnly)]
		if len(points) == 0 {
			ema = kcal // seed with the first day
		} else {
			ema += decay * (kcal - ema)
		}
		points = append(points, TrendPoint{Date: d, KCal: kcal, EMA: ema})
	}
	return points
}

// CurrentTrend returns the latest smoothed value, or 0 without data
func CurrentTrend(totals []store.DailyTotal) float64 {
	points := BurnTrend(totals)
	if len(points) == 0 {
		return 0
	}
	return points[len(points)-1].EMA
}

// DaysAtOrAbove counts days whose total reached threshold
func DaysAtOrAbove(totals []store.DailyTotal, threshold float64) int {
	n := 0
	for _, t := range totals {
		if t.KCal >= threshold {
			n++
		}
	}
	return n
}

// TrendDescription summarises today's burn against the trend
func TrendDescription(today, trend float64) string {
	switch {
	case trend == 0:
		return "No history yet"
	case today > trend*1.1:
		return "Above your recent average"
	case today < trend*0.9:
		return "Below your recent average"
	default:
		return "On your recent average"
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
