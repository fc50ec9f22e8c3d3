// Package clock lets the watchface read wall time through an interface,
// so refreshes can be driven with a fixed time in tests.
package clock

import "time"

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

// Real returns the system time
type Real struct{}

// Now returns time.Now()
func (Real) Now() time.Time { return time.Now() }

// Fixed always returns T
type Fixed struct {
	T time.Time
}

// Now returns the fixed time
func (c Fixed) Now() time.Time { return c.T }

// Func adapts a function to Clock
type Func func() time.Time

// Now calls f
func (f Func) Now() time.Time { return f() }

// StartOfDay returns local midnight of the day containing t
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// UntilNextMinute returns the duration from t to the next wall-clock minute boundary
func UntilNextMinute(t time.Time) time.Duration {
	next := t.Truncate(time.Minute).Add(time.Minute)
	return next.Sub(t)
}
