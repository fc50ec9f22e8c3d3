package health

import (
	"time"

	"go.uber.org/zap"
)

// Metric names a health quantity
type Metric string

const (
	ActiveKCalories  Metric = "active_kcal"
	RestingKCalories Metric = "resting_kcal"
)

// AccessibilityMask describes whether a metric can be read for a window
type AccessibilityMask uint8

const (
	MaskAvailable AccessibilityMask = 1 << iota
	MaskNoPermission
	MaskNotSupported

	MaskNone AccessibilityMask = 0
)

// Available reports whether the mask marks data as present
func (m AccessibilityMask) Available() bool {
	return m&MaskAvailable != 0
}

// Service is the health data source the watchface reads from
type Service interface {
	// MetricAccessible reports whether metric has data in [start, end]
	MetricAccessible(metric Metric, start, end time.Time) AccessibilityMask
	// SumToday returns the metric total from local midnight until now
	SumToday(metric Metric) int
}

// dailyMetrics are summed, in order, into the daily total
var dailyMetrics = []Metric{ActiveKCalories, RestingKCalories}

// FetchDailyKCalories sums active and resting kilocalories for the day containing now.
// A metric whose mask is not available contributes 0; this never fails.
func FetchDailyKCalories(svc Service, now time.Time, logger *zap.SugaredLogger) int {
	start := startOfDay(now)
	total := 0

	for _, metric := range dailyMetrics {
		mask := svc.MetricAccessible(metric, start, now)
		if !mask.Available() {
			logger.Infow("Health metric unavailable", "metric", metric, "mask", mask)
			continue
		}
		if v := svc.SumToday(metric); v > 0 {
			total += v
		}
	}

	logger.Infow("KCalories right now", "kcal", total)
	return total
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
