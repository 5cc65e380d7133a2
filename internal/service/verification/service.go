package verification

import (
	"context"
	"fmt"
	"strings"

	"ethela-storefront/internal/domain"
	"ethela-storefront/internal/logging"
	certrepo "ethela-storefront/internal/repository/certificate"
	"go.uber.org/zap"
)

// Service resolves verification codes printed on jewellery certificates.
type Service struct {
	repo   certrepo.Repository
	logger *zap.Logger
}

func New(repo certrepo.Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logging.OrNop(logger).Named("verification")}
}

// Verify returns the certificate for code, or domain.ErrNotFound.
func (s *Service) Verify(ctx context.Context, code string) (*domain.Certificate, error) {
	normalized := NormalizeCode(code)
	if normalized == "" {
		return nil, fmt.Errorf("%w: verification code required", domain.ErrInvalidInput)
	}
	cert, err := s.repo.GetByCode(ctx, normalized)
	if err != nil {
		s.logger.Info("verification failed", zap.String("code", normalized), zap.Error(err))
		return nil, err
	}
	s.logger.Info("verified", zap.String("code", normalized))
	return cert, nil
}

// Register stores or replaces a certificate under its normalized code.
func (s *Service) Register(ctx context.Context, c domain.Certificate) (*domain.Certificate, error) {
	c.Code = NormalizeCode(c.Code)
	if c.Code == "" || strings.TrimSpace(c.ProductName) == "" || strings.TrimSpace(c.BlockchainHash) == "" {
		return nil, fmt.Errorf("%w: code, product name and hash are required", domain.ErrInvalidInput)
	}
	return s.repo.Upsert(ctx, c)
}

// NormalizeCode trims and upper-cases a code, so "eth-2024-1" matches "ETH-2024-1".
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
