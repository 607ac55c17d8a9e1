package projections

import (
	"context"
	"errors"
	"sort"
	"time"

	memberStore "rinkside/internal/adapters/storage/member"
	"rinkside/internal/domain/attendance"
	"rinkside/internal/domain/member"
	"rinkside/internal/domain/payment"
	"rinkside/internal/domain/session"
)

var fixedTime = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return fixedTime }

// --- member store mock ---

type mockMemberStore struct {
	members []member.Member
}

func (m *mockMemberStore) GetByID(_ context.Context, id string) (member.Member, error) {
	for _, mem := range m.members {
		if mem.ID == id {
			return mem, nil
		}
	}
	return member.Member{}, errors.New("not found")
}

func (m *mockMemberStore) List(_ context.Context, filter memberStore.ListFilter) ([]member.Member, error) {
	var out []member.Member
	for _, mem := range m.members {
		if filter.Role != "" && mem.Role != filter.Role {
			continue
		}
		if filter.PaymentStatus != "" && mem.PaymentStatus != filter.PaymentStatus {
			continue
		}
		out = append(out, mem)
	}
	return out, nil
}

func (m *mockMemberStore) ListUnpaid(_ context.Context) ([]member.Member, error) {
	var out []member.Member
	for _, mem := range m.members {
		if mem.PaymentStatus != member.PaymentPaid {
			out = append(out, mem)
		}
	}
	return out, nil
}

// --- session store mock ---

type mockSessionStore struct {
	sessions []session.Session
}

func (m *mockSessionStore) GetByID(_ context.Context, id string) (session.Session, error) {
	for _, s := range m.sessions {
		if s.ID == id {
			return s, nil
		}
	}
	return session.Session{}, errors.New("not found")
}

func (m *mockSessionStore) ListByDateRange(_ context.Context, startDate, endDate string) ([]session.Session, error) {
	var out []session.Session
	for _, s := range m.sessions {
		if s.Date >= startDate && s.Date <= endDate {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (m *mockSessionStore) ListUpcoming(_ context.Context, today string) ([]session.Session, error) {
	var out []session.Session
	for _, s := range m.sessions {
		if s.Date >= today {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (m *mockSessionStore) ListRecent(_ context.Context, today string, limit int) ([]session.Session, error) {
	var out []session.Session
	for _, s := range m.sessions {
		if s.Date <= today {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- attendance store mock ---

type mockAttendanceStore struct {
	records []attendance.Record
}

func (m *mockAttendanceStore) ListByMemberID(_ context.Context, memberID string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, r := range m.records {
		if r.MemberID == memberID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RecordedAt.After(out[j].RecordedAt) })
	return out, nil
}

func (m *mockAttendanceStore) ListBySessionID(_ context.Context, sessionID string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, r := range m.records {
		if r.SessionID == sessionID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockAttendanceStore) ListBySessionIDs(_ context.Context, sessionIDs []string) ([]attendance.Record, error) {
	want := make(map[string]bool, len(sessionIDs))
	for _, id := range sessionIDs {
		want[id] = true
	}
	var out []attendance.Record
	for _, r := range m.records {
		if want[r.SessionID] {
			out = append(out, r)
		}
	}
	return out, nil
}

// --- payment store mock ---

type mockPaymentStore struct {
	payments []payment.Payment
}

func (m *mockPaymentStore) ListByMemberID(_ context.Context, memberID string) ([]payment.Payment, error) {
	var out []payment.Payment
	for _, p := range m.payments {
		if p.MemberID == memberID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaidAt.After(out[j].PaidAt) })
	return out, nil
}

func (m *mockPaymentStore) ListAll(_ context.Context) ([]payment.Payment, error) {
	out := make([]payment.Payment, len(m.payments))
	copy(out, m.payments)
	sort.Slice(out, func(i, j int) bool { return out[i].PaidAt.After(out[j].PaidAt) })
	return out, nil
}

func (m *mockPaymentStore) MonthlyRevenueCents(_ context.Context, month, year int) (int64, error) {
	var total int64
	for _, p := range m.payments {
		if int(p.PaidAt.Month()) == month && p.PaidAt.Year() == year {
			total += p.AmountCents
		}
	}
	return total, nil
}
