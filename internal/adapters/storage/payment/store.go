package payment

import (
	"context"

	domain "rinkside/internal/domain/payment"
)

// Store persists Payment state. Payments are append-only: there is no
// update or delete.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Payment, error)
	RecordCompleted(ctx context.Context, value domain.Payment) error
	ListByMemberID(ctx context.Context, memberID string) ([]domain.Payment, error)
	ListAll(ctx context.Context) ([]domain.Payment, error)
	MonthlyRevenueCents(ctx context.Context, month, year int) (int64, error)
}
