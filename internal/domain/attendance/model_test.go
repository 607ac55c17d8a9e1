package attendance_test

import (
	"testing"
	"time"

	"rinkside/internal/domain/attendance"
)

// TestRecordValidation tests validation of Record.
func TestRecordValidation(t *testing.T) {
	tests := []struct {
		name    string
		record  attendance.Record
		wantErr bool
	}{
		{
			name:    "valid present",
			record:  attendance.Record{ID: "a1", SessionID: "s1", MemberID: "m1", Status: attendance.StatusPresent},
			wantErr: false,
		},
		{
			name:    "valid late",
			record:  attendance.Record{ID: "a1", SessionID: "s1", MemberID: "m1", Status: attendance.StatusLate},
			wantErr: false,
		},
		{
			name:    "missing session",
			record:  attendance.Record{ID: "a1", MemberID: "m1", Status: attendance.StatusPresent},
			wantErr: true,
		},
		{
			name:    "missing member",
			record:  attendance.Record{ID: "a1", SessionID: "s1", Status: attendance.StatusPresent},
			wantErr: true,
		},
		{
			name:    "bad status",
			record:  attendance.Record{ID: "a1", SessionID: "s1", MemberID: "m1", Status: "excused"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func rec(status string, daysAgo int) attendance.Record {
	base := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	return attendance.Record{
		ID:         status,
		SessionID:  "s1",
		MemberID:   "m1",
		Status:     status,
		RecordedAt: base.AddDate(0, 0, -daysAgo),
	}
}

// TestSummarize_Counts verifies status counts and the rate formula.
func TestSummarize_Counts(t *testing.T) {
	records := []attendance.Record{
		rec(attendance.StatusPresent, 0),
		rec(attendance.StatusPresent, 1),
		rec(attendance.StatusAbsent, 2),
		rec(attendance.StatusLate, 3),
	}

	s := attendance.Summarize(records)
	if s.Total != 4 || s.Present != 2 || s.Absent != 1 || s.Late != 1 {
		t.Errorf("unexpected counts: %+v", s)
	}
	if s.Rate != 50 {
		t.Errorf("Rate = %v, want 50", s.Rate)
	}
}

// TestSummarize_Empty verifies the zero-record case does not divide by zero.
func TestSummarize_Empty(t *testing.T) {
	s := attendance.Summarize(nil)
	if s.Rate != 0 {
		t.Errorf("Rate = %v, want 0 for empty records", s.Rate)
	}
	if s.Total != 0 {
		t.Errorf("Total = %d, want 0", s.Total)
	}
}

// TestSummarize_RateBounds verifies the rate stays within [0, 100].
func TestSummarize_RateBounds(t *testing.T) {
	allPresent := []attendance.Record{rec(attendance.StatusPresent, 0), rec(attendance.StatusPresent, 1)}
	if s := attendance.Summarize(allPresent); s.Rate != 100 {
		t.Errorf("all-present Rate = %v, want 100", s.Rate)
	}
	allAbsent := []attendance.Record{rec(attendance.StatusAbsent, 0)}
	if s := attendance.Summarize(allAbsent); s.Rate != 0 {
		t.Errorf("all-absent Rate = %v, want 0", s.Rate)
	}
}

// TestStreaks covers best and current streak computation over
// most-recent-first ordering.
func TestStreaks(t *testing.T) {
	tests := []struct {
		name        string
		statuses    []string // most recent first
		wantBest    int
		wantCurrent int
	}{
		{name: "empty", statuses: nil, wantBest: 0, wantCurrent: 0},
		{name: "single present", statuses: []string{"present"}, wantBest: 1, wantCurrent: 1},
		{name: "current run ends at absence", statuses: []string{"present", "present", "absent", "present"}, wantBest: 2, wantCurrent: 2},
		{name: "best run in the past", statuses: []string{"absent", "present", "present", "present"}, wantBest: 3, wantCurrent: 0},
		{name: "late breaks streaks", statuses: []string{"present", "late", "present", "present"}, wantBest: 2, wantCurrent: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var records []attendance.Record
			for i, st := range tt.statuses {
				records = append(records, rec(st+string(rune('a'+i)), i))
				records[i].Status = st
			}
			best, current := attendance.Streaks(records)
			if best != tt.wantBest || current != tt.wantCurrent {
				t.Errorf("Streaks() = (%d, %d), want (%d, %d)", best, current, tt.wantBest, tt.wantCurrent)
			}
		})
	}
}

// TestStreaks_UnsortedInput verifies ordering is derived from RecordedAt,
// not slice position.
func TestStreaks_UnsortedInput(t *testing.T) {
	records := []attendance.Record{
		rec(attendance.StatusAbsent, 3),
		rec(attendance.StatusPresent, 0), // most recent
		rec(attendance.StatusPresent, 1),
	}
	best, current := attendance.Streaks(records)
	if best != 2 || current != 2 {
		t.Errorf("Streaks() = (%d, %d), want (2, 2)", best, current)
	}
}
