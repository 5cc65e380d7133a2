package blog

import (
	"context"

	"ethela-storefront/internal/domain"
)

// Repository persists blog posts. Lists are ordered newest first.
type Repository interface {
	List(ctx context.Context) ([]domain.BlogPost, error)
	ListPublished(ctx context.Context) ([]domain.BlogPost, error)
	GetByID(ctx context.Context, id string) (*domain.BlogPost, error)
	GetPublished(ctx context.Context, id string) (*domain.BlogPost, error)
	Create(ctx context.Context, b domain.BlogPost) (*domain.BlogPost, error)
	Update(ctx context.Context, b domain.BlogPost) (*domain.BlogPost, error)
	Delete(ctx context.Context, id string) error
}
