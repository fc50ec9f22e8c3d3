package strava

import "time"

// ActivitySummary is an entry of GET /athlete/activities
type ActivitySummary struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	SportType      string    `json:"sport_type"`
	StartDate      time.Time `json:"start_date"`
	StartDateLocal time.Time `json:"start_date_local"`
	MovingTime     int       `json:"moving_time"` // seconds
	ElapsedTime    int       `json:"elapsed_time"`
	Kilojoules     float64   `json:"kilojoules"` // rides with power only
}

// ActivityDetail is GET /activities/{id}; only detailed activities carry calories
type ActivityDetail struct {
	ActivitySummary
	Calories float64 `json:"calories"`
}

// KCal returns the energy of the activity in kilocalories.
// Strava leaves calories at 0 when it could not estimate them; rides with a
// power meter still report work in kilojoules, which Strava itself equates
// one-to-one with kcal burned (roughly 24% efficiency).
func (a *ActivityDetail) KCal() float64 {
	if a.Calories > 0 {
		return a.Calories
	}
	return a.Kilojoules
}

// EndDate returns when the activity finished
func (a *ActivitySummary) EndDate() time.Time {
	return a.StartDate.Add(time.Duration(a.ElapsedTime) * time.Second)
}
