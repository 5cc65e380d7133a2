package user

import (
	"context"

	"ethela-storefront/internal/domain"
)

// Repository persists user accounts.
type Repository interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	SetRole(ctx context.Context, id, role string) error
}
