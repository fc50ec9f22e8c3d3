package health

import (
	"time"

	"go.uber.org/zap"

	"calwatch/internal/clock"
)

// SampleStore is the subset of the calorie store the health service reads
type SampleStore interface {
	SumSamples(metric string, start, end time.Time) (float64, error)
	CountSamples(metric string, start, end time.Time) (int, error)
}

// StoreService answers health queries from recorded calorie samples.
// Resting calories fall back to a basal estimate when none were recorded.
type StoreService struct {
	store  SampleStore
	bmr    int
	clock  clock.Clock
	logger *zap.SugaredLogger
}

// NewStoreService creates a StoreService. bmrKcal <= 0 disables the basal estimate.
func NewStoreService(store SampleStore, bmrKcal int, c clock.Clock, logger *zap.SugaredLogger) *StoreService {
	return &StoreService{
		store:  store,
		bmr:    bmrKcal,
		clock:  c,
		logger: logger,
	}
}

// MetricAccessible implements Service
func (s *StoreService) MetricAccessible(metric Metric, start, end time.Time) AccessibilityMask {
	switch metric {
	case ActiveKCalories, RestingKCalories:
	default:
		return MaskNotSupported
	}

	n, err := s.store.CountSamples(string(metric), start, end)
	if err != nil {
		s.logger.Warnw("Counting samples failed", "metric", metric, "error", err)
		return MaskNone
	}
	if n > 0 {
		return MaskAvailable
	}
	if metric == RestingKCalories && s.bmr > 0 {
		return MaskAvailable
	}
	return MaskNone
}

// SumToday implements Service
func (s *StoreService) SumToday(metric Metric) int {
	now := s.clock.Now()
	start := startOfDay(now)

	n, err := s.store.CountSamples(string(metric), start, now)
	if err != nil {
		s.logger.Warnw("Counting samples failed", "metric", metric, "error", err)
		return 0
	}

	if n == 0 && metric == RestingKCalories {
		return BasalEstimate(s.bmr, now)
	}

	sum, err := s.store.SumSamples(string(metric), start, now)
	if err != nil {
		s.logger.Warnw("Summing samples failed", "metric", metric, "error", err)
		return 0
	}
	return int(sum)
}

// BasalEstimate prorates a daily basal rate over the part of the day elapsed at now
func BasalEstimate(bmrKcal int, now time.Time) int {
	if bmrKcal <= 0 {
		return 0
	}
	elapsed := now.Sub(startOfDay(now))
	return int(float64(bmrKcal) * elapsed.Seconds() / (24 * time.Hour).Seconds())
}
