package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"rinkside/internal/domain/attendance"

	"github.com/google/uuid"
)

// AttendanceStore defines the attendance persistence interface used by the
// attendance orchestrators.
type AttendanceStore interface {
	Save(ctx context.Context, r attendance.Record) error
	ReplaceForSession(ctx context.Context, sessionID string, records []attendance.Record) error
}

// TakeAttendanceInput marks one member for one session.
type TakeAttendanceInput struct {
	SessionID string
	MemberID  string
	Status    string // defaults to present
}

// TakeAttendanceDeps holds dependencies for TakeAttendance.
type TakeAttendanceDeps struct {
	SessionStore    SessionStore
	MemberStore     MemberStore
	AttendanceStore AttendanceStore
	Now             func() time.Time
	GenerateID      func() string
}

// ExecuteTakeAttendance upserts the attendance mark for one (session, member)
// pair. Re-marking overwrites the status of the existing record and keeps its
// id. Unknown sessions or members are ignored without error: attendance is
// taken rink-side in bulk and one stale row must not abort the rest.
// PRE: SessionID and MemberID are provided
// POST: At most one record exists for the pair, carrying the latest status
func ExecuteTakeAttendance(ctx context.Context, input TakeAttendanceInput, deps TakeAttendanceDeps) error {
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}
	generateID := uuid.NewString
	if deps.GenerateID != nil {
		generateID = deps.GenerateID
	}

	status := input.Status
	if status == "" {
		status = attendance.StatusPresent
	}
	if !attendance.IsValidStatus(status) {
		return attendance.ErrInvalidStatus
	}

	if _, err := deps.SessionStore.GetByID(ctx, input.SessionID); err != nil {
		slog.Warn("attendance_event", "event", "unknown_session", "session_id", input.SessionID)
		return nil
	}
	if _, err := deps.MemberStore.GetByID(ctx, input.MemberID); err != nil {
		slog.Warn("attendance_event", "event", "unknown_member", "member_id", input.MemberID)
		return nil
	}

	r := attendance.Record{
		ID:         generateID(),
		SessionID:  input.SessionID,
		MemberID:   input.MemberID,
		Status:     status,
		RecordedAt: now(),
	}
	if err := r.Validate(); err != nil {
		return err
	}
	if err := deps.AttendanceStore.Save(ctx, r); err != nil {
		return err
	}

	slog.Info("attendance_event", "event", "marked", "session_id", input.SessionID, "member_id", input.MemberID, "status", status)
	return nil
}

// BulkEntry is one member's mark within a bulk attendance submission.
type BulkEntry struct {
	MemberID string
	Status   string
}

// BulkTakeAttendanceInput replaces the full attendance sheet for a session.
type BulkTakeAttendanceInput struct {
	SessionID string
	Entries   []BulkEntry
}

// ExecuteBulkTakeAttendance replaces a session's attendance with the given
// sheet. Members absent from the sheet end up unmarked, not absent: the sheet
// is the whole truth for that session.
// PRE: SessionID is provided; entries carry valid statuses
// POST: The session's records match the sheet exactly
func ExecuteBulkTakeAttendance(ctx context.Context, input BulkTakeAttendanceInput, deps TakeAttendanceDeps) error {
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}
	generateID := uuid.NewString
	if deps.GenerateID != nil {
		generateID = deps.GenerateID
	}

	if _, err := deps.SessionStore.GetByID(ctx, input.SessionID); err != nil {
		slog.Warn("attendance_event", "event", "unknown_session", "session_id", input.SessionID)
		return nil
	}

	recordedAt := now()
	records := make([]attendance.Record, 0, len(input.Entries))
	for _, e := range input.Entries {
		status := e.Status
		if status == "" {
			status = attendance.StatusPresent
		}
		if !attendance.IsValidStatus(status) {
			return attendance.ErrInvalidStatus
		}
		records = append(records, attendance.Record{
			ID:         generateID(),
			SessionID:  input.SessionID,
			MemberID:   e.MemberID,
			Status:     status,
			RecordedAt: recordedAt,
		})
	}

	if err := deps.AttendanceStore.ReplaceForSession(ctx, input.SessionID, records); err != nil {
		return err
	}

	slog.Info("attendance_event", "event", "bulk_marked", "session_id", input.SessionID, "count", len(records))
	return nil
}
