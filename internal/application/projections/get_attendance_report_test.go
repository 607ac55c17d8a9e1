package projections

import (
	"context"
	"testing"

	"rinkside/internal/domain/attendance"
	"rinkside/internal/domain/session"
)

func reportFixture() (*mockSessionStore, *mockAttendanceStore) {
	sessions := &mockSessionStore{sessions: []session.Session{
		{ID: "s1", Name: "Before", Date: "2026-06-05", Time: "19:00", Type: session.TypeRegular, MaxCapacity: 50, Status: session.StatusScheduled, CreatedAt: fixedTime},
		{ID: "s2", Name: "First", Date: "2026-06-10", Time: "19:00", Type: session.TypeRegular, MaxCapacity: 50, Status: session.StatusScheduled, CreatedAt: fixedTime},
		{ID: "s3", Name: "Second", Date: "2026-06-12", Time: "19:00", Type: session.TypeTraining, MaxCapacity: 50, Status: session.StatusScheduled, CreatedAt: fixedTime},
		{ID: "s4", Name: "After", Date: "2026-06-20", Time: "19:00", Type: session.TypeRegular, MaxCapacity: 50, Status: session.StatusScheduled, CreatedAt: fixedTime},
	}}
	records := &mockAttendanceStore{records: []attendance.Record{
		// s2 (in range): 2 present, 1 late.
		attendanceAt("a1", "s2", "m1", attendance.StatusPresent, 5),
		attendanceAt("a2", "s2", "m2", attendance.StatusPresent, 5),
		attendanceAt("a3", "s2", "m3", attendance.StatusLate, 5),
		// s3 (in range): 1 absent. The mark itself was recorded weeks later;
		// only the session date decides membership in the window.
		{ID: "a4", SessionID: "s3", MemberID: "m1", Status: attendance.StatusAbsent, RecordedAt: fixedTime.AddDate(0, 1, 0)},
		// s1 and s4 (out of range) have marks that must not leak in.
		attendanceAt("a5", "s1", "m1", attendance.StatusPresent, 10),
		attendanceAt("a6", "s4", "m1", attendance.StatusPresent, 0),
	}}
	return sessions, records
}

func TestQueryGetAttendanceReport(t *testing.T) {
	sessions, records := reportFixture()

	result, err := QueryGetAttendanceReport(context.Background(), GetAttendanceReportQuery{
		StartDate: "2026-06-10",
		EndDate:   "2026-06-14",
	}, GetAttendanceReportDeps{SessionStore: sessions, AttendanceStore: records})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Sessions) != 2 {
		t.Fatalf("got %d sessions in range, want 2", len(result.Sessions))
	}
	first := result.Sessions[0]
	if first.SessionID != "s2" || first.Stats.Present != 2 || first.Stats.Late != 1 || first.Stats.Total != 3 {
		t.Errorf("unexpected first row: %+v", first)
	}
	second := result.Sessions[1]
	if second.SessionID != "s3" || second.Stats.Absent != 1 || second.Stats.Total != 1 {
		t.Errorf("late-recorded mark must follow its session's date: %+v", second)
	}

	if result.Overall.Total != 4 || result.Overall.Present != 2 {
		t.Errorf("unexpected overall stats: %+v", result.Overall)
	}
	if result.Overall.Rate != 50 {
		t.Errorf("overall rate = %v, want 50", result.Overall.Rate)
	}
}

func TestQueryGetAttendanceReport_EmptyWindow(t *testing.T) {
	sessions, records := reportFixture()

	result, err := QueryGetAttendanceReport(context.Background(), GetAttendanceReportQuery{
		StartDate: "2026-07-01",
		EndDate:   "2026-07-31",
	}, GetAttendanceReportDeps{SessionStore: sessions, AttendanceStore: records})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Sessions) != 0 {
		t.Errorf("expected no sessions, got %d", len(result.Sessions))
	}
	if result.Overall.Total != 0 || result.Overall.Rate != 0 {
		t.Errorf("empty window must have zero stats, got %+v", result.Overall)
	}
}
