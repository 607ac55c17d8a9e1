package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rinkside/internal/adapters/email"
	"rinkside/internal/adapters/gateway"
	"rinkside/internal/domain/attendance"
	"rinkside/internal/domain/member"
	"rinkside/internal/domain/payment"
	"rinkside/internal/domain/post"
	"rinkside/internal/domain/session"
)

var fixedTime = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return fixedTime }

// seqID returns a generator producing id-001, id-002, ...
func seqID() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%03d", n)
	}
}

// --- member store mock ---

type mockMemberStore struct {
	members map[string]member.Member
	saveErr error
}

func newMockMemberStore() *mockMemberStore {
	return &mockMemberStore{members: make(map[string]member.Member)}
}

func (m *mockMemberStore) GetByID(_ context.Context, id string) (member.Member, error) {
	mem, ok := m.members[id]
	if !ok {
		return member.Member{}, errors.New("not found")
	}
	return mem, nil
}

func (m *mockMemberStore) GetByEmail(_ context.Context, email string) (member.Member, error) {
	var found member.Member
	ok := false
	for _, mem := range m.members {
		if mem.Email != email {
			continue
		}
		if !ok || mem.RegisteredAt.Before(found.RegisteredAt) {
			found = mem
			ok = true
		}
	}
	if !ok {
		return member.Member{}, errors.New("not found")
	}
	return found, nil
}

func (m *mockMemberStore) Save(_ context.Context, mem member.Member) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.members[mem.ID] = mem
	return nil
}

func (m *mockMemberStore) ListUnpaid(_ context.Context) ([]member.Member, error) {
	var unpaid []member.Member
	for _, mem := range m.members {
		if mem.PaymentStatus != member.PaymentPaid {
			unpaid = append(unpaid, mem)
		}
	}
	return unpaid, nil
}

// --- session store mock ---

type mockSessionStore struct {
	sessions map[string]session.Session
	deleted  []string
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{sessions: make(map[string]session.Session)}
}

func (m *mockSessionStore) GetByID(_ context.Context, id string) (session.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return session.Session{}, errors.New("not found")
	}
	return s, nil
}

func (m *mockSessionStore) Save(_ context.Context, s session.Session) error {
	m.sessions[s.ID] = s
	return nil
}

func (m *mockSessionStore) Delete(_ context.Context, id string) error {
	delete(m.sessions, id)
	m.deleted = append(m.deleted, id)
	return nil
}

// --- attendance store mock ---

// mockAttendanceStore mirrors the sqlite store's pair upsert: saving an
// existing (session, member) pair overwrites status and keeps the first id.
type mockAttendanceStore struct {
	records      map[[2]string]attendance.Record
	cascadeOrder *[]string // shared with mockSessionStore checks in delete tests
}

func newMockAttendanceStore() *mockAttendanceStore {
	return &mockAttendanceStore{records: make(map[[2]string]attendance.Record)}
}

func (m *mockAttendanceStore) Save(_ context.Context, r attendance.Record) error {
	key := [2]string{r.SessionID, r.MemberID}
	if existing, ok := m.records[key]; ok {
		r.ID = existing.ID
	}
	m.records[key] = r
	return nil
}

func (m *mockAttendanceStore) ReplaceForSession(_ context.Context, sessionID string, records []attendance.Record) error {
	for key := range m.records {
		if key[0] == sessionID {
			delete(m.records, key)
		}
	}
	for _, r := range records {
		m.records[[2]string{r.SessionID, r.MemberID}] = r
	}
	return nil
}

func (m *mockAttendanceStore) DeleteBySessionID(_ context.Context, sessionID string) (int, error) {
	var n int
	for key := range m.records {
		if key[0] == sessionID {
			delete(m.records, key)
			n++
		}
	}
	if m.cascadeOrder != nil {
		*m.cascadeOrder = append(*m.cascadeOrder, "attendance:"+sessionID)
	}
	return n, nil
}

// --- payment store mock ---

type mockPaymentStore struct {
	payments  []payment.Payment
	recordErr error
}

func (m *mockPaymentStore) RecordCompleted(_ context.Context, p payment.Payment) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	m.payments = append(m.payments, p)
	return nil
}

// --- post store mock ---

type mockPostStore struct {
	posts map[string]post.Post
}

func newMockPostStore() *mockPostStore {
	return &mockPostStore{posts: make(map[string]post.Post)}
}

func (m *mockPostStore) GetByID(_ context.Context, id string) (post.Post, error) {
	p, ok := m.posts[id]
	if !ok {
		return post.Post{}, errors.New("not found")
	}
	return p, nil
}

func (m *mockPostStore) Save(_ context.Context, p post.Post) error {
	m.posts[p.ID] = p
	return nil
}

func (m *mockPostStore) Delete(_ context.Context, id string) error {
	delete(m.posts, id)
	return nil
}

// --- email sender mock ---

type mockEmailSender struct {
	sent    []email.SendRequest
	batches [][]email.SendRequest
	sendErr error
}

func (m *mockEmailSender) Send(_ context.Context, req email.SendRequest) (email.SendResult, error) {
	if m.sendErr != nil {
		return email.SendResult{}, m.sendErr
	}
	m.sent = append(m.sent, req)
	return email.SendResult{MessageID: "msg-1", SentAt: fixedTime}, nil
}

func (m *mockEmailSender) SendBatch(_ context.Context, reqs []email.SendRequest) ([]email.SendResult, error) {
	if m.sendErr != nil {
		return nil, m.sendErr
	}
	m.batches = append(m.batches, reqs)
	results := make([]email.SendResult, len(reqs))
	for i := range reqs {
		results[i] = email.SendResult{MessageID: fmt.Sprintf("msg-%d", i), SentAt: fixedTime}
	}
	return results, nil
}

// --- gateway mock ---

type mockGateway struct {
	result    gateway.ChargeResult
	err       error
	lastReq   gateway.ChargeRequest
	callCount int
}

func (m *mockGateway) Charge(_ context.Context, req gateway.ChargeRequest) (gateway.ChargeResult, error) {
	m.lastReq = req
	m.callCount++
	if m.err != nil {
		return gateway.ChargeResult{}, m.err
	}
	return m.result, nil
}
