// Package service imports calorie data from external sources into the store.
package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"calwatch/internal/clock"
	"calwatch/internal/health"
	"calwatch/internal/store"
	"calwatch/internal/strava"
)

const (
	// LastStravaSyncKey is the sync_state key holding the last successful import
	LastStravaSyncKey = "last_strava_sync"

	activitiesPerPage = 50
)

// ActivitySource is the part of the Strava client the import needs
type ActivitySource interface {
	GetActivities(ctx context.Context, after time.Time, page, perPage int) ([]strava.ActivitySummary, error)
	GetActivity(ctx context.Context, id int64) (*strava.ActivityDetail, error)
}

// SampleWriter is the part of the store the import writes to
type SampleWriter interface {
	UpsertSample(sample *store.Sample) (bool, error)
	GetSyncState(key string) (string, error)
	SetSyncState(key, value string) error
}

// SyncProgress reports progress during an import
type SyncProgress struct {
	Total           int
	Completed       int
	CurrentActivity string
}

// SyncResult contains the results of an import
type SyncResult struct {
	ActivitiesFetched int
	SamplesCreated    int
	SamplesUpdated    int
	KCalImported      float64
	SyncedAt          time.Time
	Errors            []error
}

// ImportService copies today's Strava activities into active calorie samples
type ImportService struct {
	source ActivitySource
	store  SampleWriter
	clock  clock.Clock
	logger *zap.SugaredLogger
}

// NewImportService creates an import service
func NewImportService(source ActivitySource, st SampleWriter, c clock.Clock, logger *zap.SugaredLogger) *ImportService {
	return &ImportService{
		source: source,
		store:  st,
		clock:  c,
		logger: logger,
	}
}

// SyncToday imports every activity started since local midnight.
// progress may be nil; when set it is closed before SyncToday returns.
func (s *ImportService) SyncToday(ctx context.Context, progress chan<- SyncProgress) (*SyncResult, error) {
	if progress != nil {
		defer close(progress)
	}

	now := s.clock.Now()
	result := &SyncResult{}

	activities, err := s.listSince(ctx, clock.StartOfDay(now))
	if err != nil {
		return result, fmt.Errorf("listing activities: %w", err)
	}
	result.ActivitiesFetched = len(activities)

	for i, a := range activities {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if progress != nil {
			progress <- SyncProgress{Total: len(activities), Completed: i, CurrentActivity: a.Name}
		}

		detail, err := s.source.GetActivity(ctx, a.ID)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("activity %d (%s): %w", a.ID, a.Name, err))
			continue
		}

		kcal := detail.KCal()
		if kcal <= 0 {
			s.logger.Debugw("Skipping activity without energy", "activity_id", a.ID, "name", a.Name)
			continue
		}

		created, err := s.store.UpsertSample(&store.Sample{
			Metric:     string(health.ActiveKCalories),
			RecordedAt: recordedAt(detail),
			KCal:       kcal,
			Source:     store.SourceStrava,
			ExternalID: ExternalID(a.ID),
		})
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("storing activity %d: %w", a.ID, err))
			continue
		}

		if created {
			result.SamplesCreated++
		} else {
			result.SamplesUpdated++
		}
		result.KCalImported += kcal
	}

	if progress != nil {
		progress <- SyncProgress{Total: len(activities), Completed: len(activities)}
	}

	result.SyncedAt = now
	if err := s.store.SetSyncState(LastStravaSyncKey, now.Format(time.RFC3339)); err != nil {
		return result, fmt.Errorf("recording sync time: %w", err)
	}

	s.logger.Infow("Strava import finished",
		"fetched", result.ActivitiesFetched,
		"created", result.SamplesCreated,
		"updated", result.SamplesUpdated,
		"kcal", result.KCalImported,
		"errors", len(result.Errors),
	)
	return result, nil
}

// LastSync returns when the last import finished, or the zero time
func (s *ImportService) LastSync() time.Time {
	v, err := s.store.GetSyncState(LastStravaSyncKey)
	if err != nil || v == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (s *ImportService) listSince(ctx context.Context, after time.Time) ([]strava.ActivitySummary, error) {
	var all []strava.ActivitySummary
	for page := 1; ; page++ {
		activities, err := s.source.GetActivities(ctx, after, page, activitiesPerPage)
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", page, err)
		}
		all = append(all, activities...)
		if len(activities) < activitiesPerPage {
			return all, nil
		}
	}
}

// ExternalID is the store key of a Strava activity
func ExternalID(activityID int64) string {
	return "strava:" + strconv.FormatInt(activityID, 10)
}

// recordedAt places the burn at the end of the activity, or its start when
// the elapsed time is unknown
func recordedAt(a *strava.ActivityDetail) time.Time {
	if a.ElapsedTime > 0 {
		return a.EndDate()
	}
	return a.StartDate
}
