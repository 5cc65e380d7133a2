package contact

import (
	"context"

	"ethela-storefront/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, m domain.ContactMessage) (*domain.ContactMessage, error)
}
