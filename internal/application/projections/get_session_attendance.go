package projections

import (
	"context"

	"rinkside/internal/domain/attendance"
	"rinkside/internal/domain/session"
)

// SessionAttendanceRecordStore defines the attendance store interface needed
// by the session attendance projection.
type SessionAttendanceRecordStore interface {
	ListBySessionID(ctx context.Context, sessionID string) ([]attendance.Record, error)
}

// SessionLookupStore defines the session store interface needed by the
// session-centric projections.
type SessionLookupStore interface {
	GetByID(ctx context.Context, id string) (session.Session, error)
}

// GetSessionAttendanceQuery carries input for the session attendance projection.
type GetSessionAttendanceQuery struct {
	SessionID string
}

// GetSessionAttendanceDeps holds dependencies for the session attendance projection.
type GetSessionAttendanceDeps struct {
	SessionStore    SessionLookupStore
	AttendanceStore SessionAttendanceRecordStore
}

// SessionAttendanceResult carries one session's attendance sheet and totals.
// TotalAttendees counts marked members regardless of status: an absent mark
// still means the member was on the sheet.
type SessionAttendanceResult struct {
	SessionID      string
	SessionName    string
	Date           string
	Records        []attendance.Record
	Stats          attendance.Stats
	TotalAttendees int
}

// QueryGetSessionAttendance computes the attendance sheet for one session.
func QueryGetSessionAttendance(ctx context.Context, query GetSessionAttendanceQuery, deps GetSessionAttendanceDeps) (SessionAttendanceResult, error) {
	s, err := deps.SessionStore.GetByID(ctx, query.SessionID)
	if err != nil {
		return SessionAttendanceResult{}, err
	}

	records, err := deps.AttendanceStore.ListBySessionID(ctx, query.SessionID)
	if err != nil {
		return SessionAttendanceResult{}, err
	}

	stats := attendance.Summarize(records)
	return SessionAttendanceResult{
		SessionID:      s.ID,
		SessionName:    s.Name,
		Date:           s.Date,
		Records:        records,
		Stats:          stats,
		TotalAttendees: stats.Total,
	}, nil
}
