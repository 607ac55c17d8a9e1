package member

import (
	"context"
	"time"

	domain "rinkside/internal/domain/member"
)

// Store persists Member state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Member, error)
	GetByEmail(ctx context.Context, email string) (domain.Member, error)
	Save(ctx context.Context, value domain.Member) error
	List(ctx context.Context, filter ListFilter) ([]domain.Member, error)
	ListUnpaid(ctx context.Context) ([]domain.Member, error)
	UpdatePaymentStatus(ctx context.Context, id string, status string, paidAt time.Time) error
}

// ListFilter carries filtering parameters for List operations.
type ListFilter struct {
	Role          string
	PaymentStatus string
	Limit         int
	Offset        int
}
