package catalog

import (
	"context"
	"fmt"
	"strings"

	"ethela-storefront/internal/domain"
	"ethela-storefront/internal/logging"
	productrepo "ethela-storefront/internal/repository/product"
	"go.uber.org/zap"
)

const (
	// DefaultFeaturedLimit is the number of featured products shown on the home page.
	DefaultFeaturedLimit = 4
	// MaxFeaturedLimit caps caller-supplied limits.
	MaxFeaturedLimit = 50
)

type Service struct {
	repo   productrepo.Repository
	logger *zap.Logger
}

func New(repo productrepo.Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logging.OrNop(logger).Named("catalog")}
}

// List returns every product, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

// ListFeatured returns up to limit featured products, newest first.
// A non-positive limit falls back to DefaultFeaturedLimit.
func (s *Service) ListFeatured(ctx context.Context, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	if limit > MaxFeaturedLimit {
		limit = MaxFeaturedLimit
	}
	return s.repo.ListFeatured(ctx, limit)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	p, err := normalize(p)
	if err != nil {
		return nil, err
	}
	p.ID = ""
	return s.repo.Create(ctx, p)
}

// Update replaces every mutable field of the product with id.
func (s *Service) Update(ctx context.Context, id string, p domain.Product) (*domain.Product, error) {
	p, err := normalize(p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("product deleted", zap.String("id", id))
	return nil
}

func normalize(p domain.Product) (domain.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return p, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if err := domain.CheckPrice(p.Price); err != nil {
		return p, fmt.Errorf("%w: price %s", domain.ErrInvalidInput, err)
	}
	p.ImageURL = strings.TrimSpace(p.ImageURL)
	p.BlockchainURL = strings.TrimSpace(p.BlockchainURL)
	return p, nil
}
