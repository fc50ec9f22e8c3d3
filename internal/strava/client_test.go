package strava

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestGetActivities(t *testing.T) {
	after := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/athlete/activities" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("after") != "1710028800" || q.Get("page") != "1" || q.Get("per_page") != "30" {
			t.Errorf("query = %s", r.URL.RawQuery)
		}
		w.Header().Set("X-RateLimit-Usage", "10,200")
		w.Header().Set("X-RateLimit-Limit", "100,1000")
		w.Write([]byte(`[{"id":7,"name":"Morning Run","type":"Run","start_date":"2024-03-10T07:00:00Z","elapsed_time":1800}]`))
	}))
	defer srv.Close()

	c := NewClientWithHTTP(srv.Client(), srv.URL)
	c.rateLimiter.minInterval = 0

	acts, err := c.GetActivities(context.Background(), after, 1, 30)
	if err != nil {
		t.Fatalf("GetActivities: %v", err)
	}
	if len(acts) != 1 || acts[0].ID != 7 || acts[0].Name != "Morning Run" {
		t.Fatalf("activities = %+v", acts)
	}
	if got := acts[0].EndDate(); !got.Equal(time.Date(2024, 3, 10, 7, 30, 0, 0, time.UTC)) {
		t.Errorf("EndDate = %v", got)
	}

	short, daily := c.RateLimitStatus()
	if short != 90 || daily != 800 {
		t.Errorf("RateLimitStatus = %d, %d; want 90, 800", short, daily)
	}
}

func TestGetActivityDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/activities/7":
			w.Write([]byte(`{"id":7,"type":"Run","calories":512.4}`))
		case "/activities/8":
			w.Write([]byte(`{"id":8,"type":"Ride","kilojoules":640}`))
		default:
			http.Error(w, `{"message":"Record Not Found"}`, http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClientWithHTTP(srv.Client(), srv.URL)
	c.rateLimiter.minInterval = 0
	ctx := context.Background()

	run, err := c.GetActivity(ctx, 7)
	if err != nil {
		t.Fatalf("GetActivity(7): %v", err)
	}
	if run.KCal() != 512.4 {
		t.Errorf("run KCal = %v, want 512.4", run.KCal())
	}

	ride, err := c.GetActivity(ctx, 8)
	if err != nil {
		t.Fatalf("GetActivity(8): %v", err)
	}
	if ride.KCal() != 640 {
		t.Errorf("ride KCal = %v, want kilojoules fallback 640", ride.KCal())
	}

	_, err = c.GetActivity(ctx, 9)
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("missing activity error = %v, want 404", err)
	}
}

func TestRateLimiterWaitsForWindow(t *testing.T) {
	now := time.Date(2024, 3, 10, 10, 14, 59, 0, time.UTC)
	r := NewRateLimiter()
	r.now = func() time.Time { return now }
	r.shortResetsAt = now.Add(time.Second)
	r.dailyResetsAt = now.Add(24 * time.Hour)
	r.shortUsage = r.shortLimit

	if d := r.delay(now); d != time.Second {
		t.Errorf("delay at short limit = %v, want 1s", d)
	}

	r.dailyUsage = r.dailyLimit
	if d := r.delay(now); d != 24*time.Hour {
		t.Errorf("delay at daily limit = %v, want 24h", d)
	}
}

func TestRateLimiterWaitHonoursContext(t *testing.T) {
	r := NewRateLimiter()
	r.shortUsage = r.shortLimit

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.Wait(ctx); err != context.Canceled {
		t.Errorf("Wait = %v, want context.Canceled", err)
	}
}

func TestParsePair(t *testing.T) {
	tests := []struct {
		in     string
		a, b   int
		wantOK bool
	}{
		{"34,512", 34, 512, true},
		{" 1, 2", 1, 2, true},
		{"", 0, 0, false},
		{"10", 0, 0, false},
		{"x,2", 0, 0, false},
		{"1,2,3", 0, 0, false},
	}
	for _, tt := range tests {
		a, b, ok := parsePair(tt.in)
		if ok != tt.wantOK || a != tt.a || b != tt.b {
			t.Errorf("parsePair(%q) = %d, %d, %v", tt.in, a, b, ok)
		}
	}
}
