package projections

import (
	"context"

	"rinkside/internal/domain/attendance"
	"rinkside/internal/domain/member"
)

// MemberAttendanceRecordStore defines the attendance store interface needed
// by the member attendance projection.
type MemberAttendanceRecordStore interface {
	ListByMemberID(ctx context.Context, memberID string) ([]attendance.Record, error)
}

// MemberLookupStore defines the member store interface needed by the
// member-centric projections.
type MemberLookupStore interface {
	GetByID(ctx context.Context, id string) (member.Member, error)
}

// GetMemberAttendanceQuery carries input for the member attendance projection.
type GetMemberAttendanceQuery struct {
	MemberID string
}

// GetMemberAttendanceDeps holds dependencies for the member attendance projection.
type GetMemberAttendanceDeps struct {
	MemberStore     MemberLookupStore
	AttendanceStore MemberAttendanceRecordStore
}

// MemberAttendanceResult carries one member's full attendance picture.
type MemberAttendanceResult struct {
	MemberID      string
	MemberName    string
	Records       []attendance.Record // most recent first
	Stats         attendance.Stats
	BestStreak    int
	CurrentStreak int
}

// QueryGetMemberAttendance computes a member's attendance history, rate and
// present-streaks. A member with no records gets zeroed stats, not an error.
func QueryGetMemberAttendance(ctx context.Context, query GetMemberAttendanceQuery, deps GetMemberAttendanceDeps) (MemberAttendanceResult, error) {
	m, err := deps.MemberStore.GetByID(ctx, query.MemberID)
	if err != nil {
		return MemberAttendanceResult{}, err
	}

	records, err := deps.AttendanceStore.ListByMemberID(ctx, query.MemberID)
	if err != nil {
		return MemberAttendanceResult{}, err
	}

	best, current := attendance.Streaks(records)
	return MemberAttendanceResult{
		MemberID:      m.ID,
		MemberName:    m.Name,
		Records:       records,
		Stats:         attendance.Summarize(records),
		BestStreak:    best,
		CurrentStreak: current,
	}, nil
}
