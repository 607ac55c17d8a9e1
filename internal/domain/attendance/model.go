package attendance

import (
	"errors"
	"sort"
	"time"
)

// Attendance status constants
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
)

// ValidStatuses contains all valid attendance status values.
var ValidStatuses = []string{StatusPresent, StatusAbsent, StatusLate}

// Domain errors
var (
	ErrEmptySession  = errors.New("attendance must reference a session")
	ErrEmptyMember   = errors.New("attendance must reference a member")
	ErrInvalidStatus = errors.New("status must be 'present', 'absent', or 'late'")
)

// Record holds one attendance outcome for a (session, member) pair.
// At most one record exists per pair; re-marking overwrites status and
// timestamp in place.
type Record struct {
	ID         string
	SessionID  string
	MemberID   string
	Status     string
	RecordedAt time.Time
}

// Validate checks if the Record has valid data.
// PRE: Record struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (r *Record) Validate() error {
	if r.SessionID == "" {
		return ErrEmptySession
	}
	if r.MemberID == "" {
		return ErrEmptyMember
	}
	if !IsValidStatus(r.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// IsValidStatus reports whether s is a recognised attendance status.
func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Stats aggregates attendance outcomes for one member or one session.
type Stats struct {
	Total   int
	Present int
	Absent  int
	Late    int
	Rate    float64 // present/total*100, 0 when Total is 0
}

// Summarize computes counts and the attendance rate over a set of records.
// PRE: records may be empty
// POST: Rate is in [0, 100]; exactly 0 when records is empty
func Summarize(records []Record) Stats {
	var s Stats
	for _, r := range records {
		s.Total++
		switch r.Status {
		case StatusPresent:
			s.Present++
		case StatusAbsent:
			s.Absent++
		case StatusLate:
			s.Late++
		}
	}
	if s.Total > 0 {
		s.Rate = float64(s.Present) / float64(s.Total) * 100
	}
	return s
}

// Streaks computes the best and current runs of consecutive 'present'
// outcomes with the member's records ordered most-recent-first.
// The current streak stops at the first non-present record.
// PRE: records may be in any order; they are sorted here by RecordedAt desc
// POST: best >= current >= 0
func Streaks(records []Record) (best, current int) {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].RecordedAt.After(sorted[j].RecordedAt)
	})

	run := 0
	atHead := true
	for _, r := range sorted {
		if r.Status == StatusPresent {
			run++
			if run > best {
				best = run
			}
			if atHead {
				current++
			}
		} else {
			run = 0
			atHead = false
		}
	}
	return best, current
}
