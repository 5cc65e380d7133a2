package certificate

import (
	"context"

	"ethela-storefront/internal/domain"
)

type Repository interface {
	GetByCode(ctx context.Context, code string) (*domain.Certificate, error)
	Upsert(ctx context.Context, c domain.Certificate) (*domain.Certificate, error)
}
