package clock

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"midday", time.Date(2024, 3, 10, 13, 45, 12, 0, loc), time.Date(2024, 3, 10, 0, 0, 0, 0, loc)},
		{"midnight", time.Date(2024, 3, 10, 0, 0, 0, 0, loc), time.Date(2024, 3, 10, 0, 0, 0, 0, loc)},
		{"last second", time.Date(2024, 3, 10, 23, 59, 59, 0, loc), time.Date(2024, 3, 10, 0, 0, 0, 0, loc)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StartOfDay(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("StartOfDay(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got.Location() != loc {
				t.Errorf("StartOfDay changed location to %v", got.Location())
			}
		})
	}
}

func TestUntilNextMinute(t *testing.T) {
	tests := []struct {
		in   time.Time
		want time.Duration
	}{
		{time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC), time.Minute},
		{time.Date(2024, 1, 1, 9, 30, 45, 0, time.UTC), 15 * time.Second},
		{time.Date(2024, 1, 1, 9, 59, 59, 500_000_000, time.UTC), 500 * time.Millisecond},
	}

	for _, tt := range tests {
		if got := UntilNextMinute(tt.in); got != tt.want {
			t.Errorf("UntilNextMinute(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFuncClock(t *testing.T) {
	calls := 0
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := Func(func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Minute)
	})

	if got := c.Now(); !got.Equal(base.Add(time.Minute)) {
		t.Errorf("first Now() = %v", got)
	}
	if got := c.Now(); !got.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("second Now() = %v", got)
	}
}
