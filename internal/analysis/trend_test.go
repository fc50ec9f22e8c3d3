package analysis

import (
	"math"
	"testing"
	"time"

	"calwatch/internal/store"
)

func day(n int) time.Time {
	return time.Date(2024, 3, n, 0, 0, 0, 0, time.UTC)
}

func TestBurnTrend(t *testing.T) {
	totals := []store.DailyTotal{
		{Date: day(3), KCal: 2000},
		{Date: day(1), KCal: 1000},
	}

	points := BurnTrend(totals)
	if len(points) != 3 {
		t.Fatalf("got %d points, want 3 (gap filled)", len(points))
	}

	// decay = 0.25
	want := []float64{1000, 750, 1062.5}
	for i, p := range points {
		if math.Abs(p.EMA-want[i]) > 0.001 {
			t.Errorf("day %d EMA = %v, want %v", i, p.EMA, want[i])
		}
	}
	if points[1].KCal != 0 {
		t.Errorf("gap day KCal = %v, want 0", points[1].KCal)
	}
	if !points[0].Date.Equal(day(1)) {
		t.Errorf("first date = %v, want sorted start", points[0].Date)
	}
}

func TestBurnTrendEmpty(t *testing.T) {
	if got := BurnTrend(nil); got != nil {
		t.Errorf("BurnTrend(nil) = %v, want nil", got)
	}
	if got := CurrentTrend(nil); got != 0 {
		t.Errorf("CurrentTrend(nil) = %v, want 0", got)
	}
}

func TestCurrentTrendConstantBurn(t *testing.T) {
	var totals []store.DailyTotal
	for i := 1; i <= 7; i++ {
		totals = append(totals, store.DailyTotal{Date: day(i), KCal: 2200})
	}
	if got := CurrentTrend(totals); math.Abs(got-2200) > 0.001 {
		t.Errorf("CurrentTrend = %v, want 2200", got)
	}
}

func TestDaysAtOrAbove(t *testing.T) {
	totals := []store.DailyTotal{
		{Date: day(1), KCal: 2499},
		{Date: day(2), KCal: 2500},
		{Date: day(3), KCal: 3100},
	}
	if got := DaysAtOrAbove(totals, 2500); got != 2 {
		t.Errorf("DaysAtOrAbove = %d, want 2", got)
	}
}

func TestTrendDescription(t *testing.T) {
	tests := []struct {
		today, trend float64
		want         string
	}{
		{100, 0, "No history yet"},
		{2300, 2000, "Above your recent average"},
		{1700, 2000, "Below your recent average"},
		{2100, 2000, "On your recent average"},
	}
	for _, tt := range tests {
		if got := TrendDescription(tt.today, tt.trend); got != tt.want {
			t.Errorf("TrendDescription(%v, %v) = %q, want %q", tt.today, tt.trend, got, tt.want)
		}
	}
}
