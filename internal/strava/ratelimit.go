package strava

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Strava allows 100 requests per 15 minutes and 1000 per day.
// The watchface only ever needs a handful per sync.

// RateLimiter tracks Strava's two usage windows
type RateLimiter struct {
	mu sync.Mutex

	shortLimit, shortUsage int
	dailyLimit, dailyUsage int
	shortResetsAt          time.Time
	dailyResetsAt          time.Time

	minInterval time.Duration
	lastRequest time.Time
	now         func() time.Time
}

// NewRateLimiter creates a limiter with Strava's published limits
func NewRateLimiter() *RateLimiter {
	r := &RateLimiter{
		shortLimit:  100,
		dailyLimit:  1000,
		minInterval: 150 * time.Millisecond,
		now:         time.Now,
	}
	r.resetWindows(r.now())
	return r
}

func (r *RateLimiter) resetWindows(now time.Time) {
	if now.After(r.shortResetsAt) {
		r.shortUsage = 0
		r.shortResetsAt = now.Truncate(15 * time.Minute).Add(15 * time.Minute)
	}
	if now.After(r.dailyResetsAt) {
		r.dailyUsage = 0
		r.dailyResetsAt = now.UTC().Truncate(24 * time.Hour).Add(24 * time.Hour)
	}
}

// delay returns how long the next request must wait
func (r *RateLimiter) delay(now time.Time) time.Duration {
	r.resetWindows(now)
	switch {
	case r.dailyUsage >= r.dailyLimit:
		return r.dailyResetsAt.Sub(now)
	case r.shortUsage >= r.shortLimit:
		return r.shortResetsAt.Sub(now)
	}
	if wait := r.minInterval - now.Sub(r.lastRequest); wait > 0 {
		return wait
	}
	return 0
}

// Wait blocks until a request fits in both windows, then counts it
func (r *RateLimiter) Wait(ctx context.Context) error {
	for {
		r.mu.Lock()
		d := r.delay(r.now())
		if d <= 0 {
			r.shortUsage++
			r.dailyUsage++
			r.lastRequest = r.now()
			r.mu.Unlock()
			return nil
		}
		r.mu.Unlock()

		timer := time.NewTimer(d)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}
}

// UpdateFromHeaders syncs usage with X-RateLimit-* response headers,
// which carry "short,daily" pairs
func (r *RateLimiter) UpdateFromHeaders(h http.Header) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if short, daily, ok := parsePair(h.Get("X-RateLimit-Usage")); ok {
		r.shortUsage, r.dailyUsage = short, daily
	}
	if short, daily, ok := parsePair(h.Get("X-RateLimit-Limit")); ok {
		r.shortLimit, r.dailyLimit = short, daily
	}
}

func parsePair(v string) (int, int, bool) {
	parts := strings.Split(v, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	a, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	b, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	return a, b, true
}

// Status returns the requests left in each window
func (r *RateLimiter) Status() (shortRemaining, dailyRemaining int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.shortLimit - r.shortUsage, r.dailyLimit - r.dailyUsage
}
