package store

import "time"

// Auth represents OAuth tokens for Strava API access
type Auth struct {
	AthleteID    int64     `db:"athlete_id"`
	AccessToken  string    `db:"access_token"`
	RefreshToken string    `db:"refresh_token"`
	ExpiresAt    time.Time `db:"expires_at"`
}

// Sample sources
const (
	SourceManual = "manual"
	SourceStrava = "strava"
)

// Sample is one recorded calorie burn
type Sample struct {
	ID         string    `db:"id"`
	Metric     string    `db:"metric"` // "active_kcal" or "resting_kcal"
	RecordedAt time.Time `db:"recorded_at"`
	KCal       float64   `db:"kcal"`
	Source     string    `db:"source"`
	ExternalID string    `db:"external_id"` // empty for manual entries
}

// DailyTotal is the calorie sum of one local day
type DailyTotal struct {
	Date time.Time // local midnight
	KCal float64
}
