package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InsertSample stores a new sample, assigning an ID when missing
func (s *Store) InsertSample(sample *Sample) error {
	if sample.ID == "" {
		sample.ID = uuid.NewString()
	}
	_, err := s.db.Exec(`
		INSERT INTO calorie_samples (id, metric, recorded_at, kcal, source, external_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`, sample.ID, sample.Metric, sample.RecordedAt.Unix(), sample.KCal, sample.Source, toNullString(sample.ExternalID))
	return err
}

// UpsertSample inserts a sample or updates the one with the same external ID.
// It returns true when a new row was created.
func (s *Store) UpsertSample(sample *Sample) (bool, error) {
	if sample.ExternalID == "" {
		return false, fmt.Errorf("upserting sample: external id required")
	}

	var existing string
	err := s.db.QueryRow(`SELECT id FROM calorie_samples WHERE external_id = ?`, sample.ExternalID).Scan(&existing)
	if err != nil && err != sql.ErrNoRows {
		return false, err
	}

	if err == sql.ErrNoRows {
		return true, s.InsertSample(sample)
	}

	sample.ID = existing
	_, err = s.db.Exec(`
		UPDATE calorie_samples
		SET metric = ?, recorded_at = ?, kcal = ?, source = ?
		WHERE id = ?
	`, sample.Metric, sample.RecordedAt.Unix(), sample.KCal, sample.Source, existing)
	return false, err
}

// SumSamples returns the kcal total of metric in [start, end]
func (s *Store) SumSamples(metric string, start, end time.Time) (float64, error) {
	var sum float64
	err := s.db.QueryRow(`
		SELECT COALESCE(SUM(kcal), 0) FROM calorie_samples
		WHERE metric = ? AND recorded_at >= ? AND recorded_at <= ?
	`, metric, start.Unix(), end.Unix()).Scan(&sum)
	return sum, err
}

// CountSamples returns how many samples of metric fall in [start, end]
func (s *Store) CountSamples(metric string, start, end time.Time) (int, error) {
	var n int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM calorie_samples
		WHERE metric = ? AND recorded_at >= ? AND recorded_at <= ?
	`, metric, start.Unix(), end.Unix()).Scan(&n)
	return n, err
}

// ListSamples returns the samples in [start, end], oldest first
func (s *Store) ListSamples(start, end time.Time) ([]Sample, error) {
	rows, err := s.db.Query(`
		SELECT id, metric, recorded_at, kcal, source, external_id
		FROM calorie_samples
		WHERE recorded_at >= ? AND recorded_at <= ?
		ORDER BY recorded_at
	`, start.Unix(), end.Unix())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []Sample
	for rows.Next() {
		var sm Sample
		var recordedAt int64
		var externalID sql.NullString
		if err := rows.Scan(&sm.ID, &sm.Metric, &recordedAt, &sm.KCal, &sm.Source, &externalID); err != nil {
			return nil, err
		}
		sm.RecordedAt = time.Unix(recordedAt, 0).In(start.Location())
		sm.ExternalID = externalID.String
		samples = append(samples, sm)
	}
	return samples, rows.Err()
}

// DailyTotals returns one total per local day for the days ending with the
// day containing now, oldest first. Days without samples report 0.
// Only recorded samples are counted.
func (s *Store) DailyTotals(days int, now time.Time) ([]DailyTotal, error) {
	if days <= 0 {
		return nil, nil
	}

	today := startOfDay(now)
	totals := make([]DailyTotal, days)
	for i := range totals {
		totals[i].Date = today.AddDate(0, 0, i-days+1)
	}

	samples, err := s.ListSamples(totals[0].Date, now)
	if err != nil {
		return nil, fmt.Errorf("listing samples: %w", err)
	}

	for _, sm := range samples {
		day := startOfDay(sm.RecordedAt)
		for i := range totals {
			if totals[i].Date.Equal(day) {
				totals[i].KCal += sm.KCal
				break
			}
		}
	}

	return totals, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
