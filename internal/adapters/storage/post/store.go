package post

import (
	"context"

	domain "rinkside/internal/domain/post"
)

// Store persists blog Post state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Post, error)
	Save(ctx context.Context, value domain.Post) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]domain.Post, error)
	IncrementViews(ctx context.Context, id string) error
}

// ListFilter carries filtering parameters for List operations.
type ListFilter struct {
	Status   string
	Category string
	Featured bool
	Limit    int
	Offset   int
}
