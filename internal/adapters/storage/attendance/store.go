package attendance

import (
	"context"

	domain "rinkside/internal/domain/attendance"
)

// Store persists attendance Records. Save upserts on the (session, member)
// pair so the one-record-per-pair invariant holds no matter how callers
// generate ids.
type Store interface {
	GetBySessionAndMember(ctx context.Context, sessionID, memberID string) (domain.Record, error)
	Save(ctx context.Context, value domain.Record) error
	ReplaceForSession(ctx context.Context, sessionID string, records []domain.Record) error
	DeleteBySessionID(ctx context.Context, sessionID string) (int, error)
	ListBySessionID(ctx context.Context, sessionID string) ([]domain.Record, error)
	ListByMemberID(ctx context.Context, memberID string) ([]domain.Record, error)
	ListBySessionIDs(ctx context.Context, sessionIDs []string) ([]domain.Record, error)
}
