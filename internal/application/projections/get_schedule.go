package projections

import (
	"context"
	"time"

	"rinkside/internal/domain/session"
)

// DefaultRecentLimit caps how many past sessions the schedule shows.
const DefaultRecentLimit = 10

// ScheduleSessionStore defines the session store interface needed by the
// schedule projection.
type ScheduleSessionStore interface {
	ListUpcoming(ctx context.Context, today string) ([]session.Session, error)
	ListRecent(ctx context.Context, today string, limit int) ([]session.Session, error)
}

// GetScheduleQuery carries input for the schedule projection.
type GetScheduleQuery struct {
	RecentLimit int // 0 means DefaultRecentLimit
}

// GetScheduleDeps holds dependencies for the schedule projection.
type GetScheduleDeps struct {
	SessionStore ScheduleSessionStore
	Now          func() time.Time // optional: defaults to time.Now
}

// ScheduleResult splits the calendar around today. A session dated today
// appears in both halves: it is still joinable and already reportable.
type ScheduleResult struct {
	Today    string // YYYY-MM-DD
	Upcoming []session.Session
	Recent   []session.Session
}

// QueryGetSchedule lists upcoming sessions soonest-first and the latest past
// sessions most-recent-first.
func QueryGetSchedule(ctx context.Context, query GetScheduleQuery, deps GetScheduleDeps) (ScheduleResult, error) {
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}
	today := now().Format("2006-01-02")

	limit := query.RecentLimit
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	upcoming, err := deps.SessionStore.ListUpcoming(ctx, today)
	if err != nil {
		return ScheduleResult{}, err
	}
	recent, err := deps.SessionStore.ListRecent(ctx, today, limit)
	if err != nil {
		return ScheduleResult{}, err
	}

	return ScheduleResult{Today: today, Upcoming: upcoming, Recent: recent}, nil
}
