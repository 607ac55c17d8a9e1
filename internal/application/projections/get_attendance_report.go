package projections

import (
	"context"

	"rinkside/internal/domain/attendance"
	"rinkside/internal/domain/session"
)

// ReportSessionStore defines the session store interface needed by the
// attendance report projection.
type ReportSessionStore interface {
	ListByDateRange(ctx context.Context, startDate, endDate string) ([]session.Session, error)
}

// ReportAttendanceStore defines the attendance store interface needed by the
// attendance report projection.
type ReportAttendanceStore interface {
	ListBySessionIDs(ctx context.Context, sessionIDs []string) ([]attendance.Record, error)
}

// GetAttendanceReportQuery selects the inclusive date window for the report.
type GetAttendanceReportQuery struct {
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
}

// GetAttendanceReportDeps holds dependencies for the attendance report projection.
type GetAttendanceReportDeps struct {
	SessionStore    ReportSessionStore
	AttendanceStore ReportAttendanceStore
}

// SessionReportRow is one session's line in the report.
type SessionReportRow struct {
	SessionID   string
	SessionName string
	Date        string
	Type        string
	Stats       attendance.Stats
}

// AttendanceReportResult aggregates attendance over a date window. A record
// belongs to the window when its parent session's date does, regardless of
// when the mark itself was recorded.
type AttendanceReportResult struct {
	StartDate string
	EndDate   string
	Sessions  []SessionReportRow
	Overall   attendance.Stats
}

// QueryGetAttendanceReport builds the per-session and overall attendance
// figures for all sessions dated within the window.
func QueryGetAttendanceReport(ctx context.Context, query GetAttendanceReportQuery, deps GetAttendanceReportDeps) (AttendanceReportResult, error) {
	sessions, err := deps.SessionStore.ListByDateRange(ctx, query.StartDate, query.EndDate)
	if err != nil {
		return AttendanceReportResult{}, err
	}

	result := AttendanceReportResult{StartDate: query.StartDate, EndDate: query.EndDate}
	if len(sessions) == 0 {
		return result, nil
	}

	ids := make([]string, 0, len(sessions))
	for _, s := range sessions {
		ids = append(ids, s.ID)
	}
	records, err := deps.AttendanceStore.ListBySessionIDs(ctx, ids)
	if err != nil {
		return AttendanceReportResult{}, err
	}

	bySession := make(map[string][]attendance.Record, len(sessions))
	for _, r := range records {
		bySession[r.SessionID] = append(bySession[r.SessionID], r)
	}

	for _, s := range sessions {
		result.Sessions = append(result.Sessions, SessionReportRow{
			SessionID:   s.ID,
			SessionName: s.Name,
			Date:        s.Date,
			Type:        s.Type,
			Stats:       attendance.Summarize(bySession[s.ID]),
		})
	}
	result.Overall = attendance.Summarize(records)
	return result, nil
}
