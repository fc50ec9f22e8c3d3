package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"calwatch/internal/service"
)

const (
	// SyncInterval is how often a background Strava import runs
	SyncInterval = 15 * time.Minute
	syncTimeout  = 2 * time.Minute
)

// Syncer imports today's activities
type Syncer interface {
	SyncToday(ctx context.Context, progress chan<- service.SyncProgress) (*service.SyncResult, error)
	LastSync() time.Time
}

// syncDueMsg asks the app to start a background sync
type syncDueMsg struct{}

// SyncDoneMsg is sent when a sync finishes
type SyncDoneMsg struct {
	Result *service.SyncResult
	Err    error
}

func scheduleSync(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return syncDueMsg{} })
}

// runSync performs the import off the event loop. Only the resulting message
// touches app state.
func runSync(s Syncer) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
		defer cancel()

		// nil progress: the status line only shows start and finish
		result, err := s.SyncToday(ctx, nil)
		return SyncDoneMsg{Result: result, Err: err}
	}
}
