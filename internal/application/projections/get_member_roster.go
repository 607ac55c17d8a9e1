package projections

import (
	"context"

	memberStore "rinkside/internal/adapters/storage/member"
	"rinkside/internal/domain/attendance"
	"rinkside/internal/domain/member"
)

// RosterMemberStore defines the member store interface needed by the roster
// projection.
type RosterMemberStore interface {
	List(ctx context.Context, filter memberStore.ListFilter) ([]member.Member, error)
}

// GetMemberRosterQuery carries the optional filters for the roster.
type GetMemberRosterQuery struct {
	Role          string
	PaymentStatus string
	Limit         int
	Offset        int
}

// GetMemberRosterDeps holds dependencies for the roster projection.
type GetMemberRosterDeps struct {
	MemberStore     RosterMemberStore
	AttendanceStore MemberAttendanceRecordStore
}

// RosterRow is one member's line in the roster with their attendance summary.
type RosterRow struct {
	Member        member.Member
	Stats         attendance.Stats
	CurrentStreak int
}

// MemberRosterResult carries the filtered roster.
type MemberRosterResult struct {
	Members []RosterRow
}

// QueryGetMemberRoster lists members with their attendance rates attached,
// newest registration first.
func QueryGetMemberRoster(ctx context.Context, query GetMemberRosterQuery, deps GetMemberRosterDeps) (MemberRosterResult, error) {
	members, err := deps.MemberStore.List(ctx, memberStore.ListFilter{
		Role:          query.Role,
		PaymentStatus: query.PaymentStatus,
		Limit:         query.Limit,
		Offset:        query.Offset,
	})
	if err != nil {
		return MemberRosterResult{}, err
	}

	result := MemberRosterResult{Members: make([]RosterRow, 0, len(members))}
	for _, m := range members {
		records, err := deps.AttendanceStore.ListByMemberID(ctx, m.ID)
		if err != nil {
			return MemberRosterResult{}, err
		}
		_, current := attendance.Streaks(records)
		result.Members = append(result.Members, RosterRow{
			Member:        m,
			Stats:         attendance.Summarize(records),
			CurrentStreak: current,
		})
	}
	return result, nil
}
