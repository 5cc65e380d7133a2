package blog

import (
	"context"
	"fmt"
	"strings"

	"ethela-storefront/internal/domain"
	"ethela-storefront/internal/logging"
	blogrepo "ethela-storefront/internal/repository/blog"
	"go.uber.org/zap"
)

// DefaultAuthor is used when neither the caller nor the configuration supplies one.
const DefaultAuthor = "Ethéla Team"

type Service struct {
	repo          blogrepo.Repository
	defaultAuthor string
	logger        *zap.Logger
}

func New(repo blogrepo.Repository, defaultAuthor string, logger *zap.Logger) *Service {
	if strings.TrimSpace(defaultAuthor) == "" {
		defaultAuthor = DefaultAuthor
	}
	return &Service{repo: repo, defaultAuthor: defaultAuthor, logger: logging.OrNop(logger).Named("blog")}
}

// List returns every post including drafts, for the admin surface.
func (s *Service) List(ctx context.Context) ([]domain.BlogPost, error) {
	return s.repo.List(ctx)
}

// ListPublished returns the public blog index.
func (s *Service) ListPublished(ctx context.Context) ([]domain.BlogPost, error) {
	return s.repo.ListPublished(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.BlogPost, error) {
	return s.repo.GetByID(ctx, id)
}

// GetPublished hides drafts behind ErrNotFound.
func (s *Service) GetPublished(ctx context.Context, id string) (*domain.BlogPost, error) {
	return s.repo.GetPublished(ctx, id)
}

func (s *Service) Create(ctx context.Context, b domain.BlogPost) (*domain.BlogPost, error) {
	b, err := s.normalize(b)
	if err != nil {
		return nil, err
	}
	b.ID = ""
	return s.repo.Create(ctx, b)
}

func (s *Service) Update(ctx context.Context, id string, b domain.BlogPost) (*domain.BlogPost, error) {
	b, err := s.normalize(b)
	if err != nil {
		return nil, err
	}
	b.ID = id
	return s.repo.Update(ctx, b)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("blog post deleted", zap.String("id", id))
	return nil
}

func (s *Service) normalize(b domain.BlogPost) (domain.BlogPost, error) {
	b.Title = strings.TrimSpace(b.Title)
	if b.Title == "" {
		return b, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(b.Content) == "" {
		return b, fmt.Errorf("%w: content is required", domain.ErrInvalidInput)
	}
	b.Author = strings.TrimSpace(b.Author)
	if b.Author == "" {
		b.Author = s.defaultAuthor
	}
	b.CoverImageURL = strings.TrimSpace(b.CoverImageURL)
	return b, nil
}
