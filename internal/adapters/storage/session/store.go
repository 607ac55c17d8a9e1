package session

import (
	"context"

	domain "rinkside/internal/domain/session"
)

// Store persists Session state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Session, error)
	Save(ctx context.Context, value domain.Session) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]domain.Session, error)
	ListUpcoming(ctx context.Context, today string) ([]domain.Session, error)
	ListRecent(ctx context.Context, today string, limit int) ([]domain.Session, error)
	ListByDateRange(ctx context.Context, startDate, endDate string) ([]domain.Session, error)
}

// ListFilter carries filtering parameters for List operations.
type ListFilter struct {
	Status string
	Type   string
	Limit  int
	Offset int
}
