package contact

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"ethela-storefront/internal/domain"
	"ethela-storefront/internal/logging"
	contactrepo "ethela-storefront/internal/repository/contact"
	"go.uber.org/zap"
)

// Acknowledgement is returned to the sender once a message is stored.
const Acknowledgement = "Thank you for contacting us. We'll get back to you within 24 hours."

type Service struct {
	repo   contactrepo.Repository
	logger *zap.Logger
}

func New(repo contactrepo.Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logging.OrNop(logger).Named("contact")}
}

func (s *Service) Submit(ctx context.Context, m domain.ContactMessage) (*domain.ContactMessage, error) {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Phone = strings.TrimSpace(m.Phone)
	m.Subject = strings.TrimSpace(m.Subject)
	if m.Name == "" || m.Email == "" || strings.TrimSpace(m.Message) == "" {
		return nil, fmt.Errorf("%w: name, email and message are required", domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return nil, fmt.Errorf("%w: email %q is not valid", domain.ErrInvalidInput, m.Email)
	}
	saved, err := s.repo.Create(ctx, m)
	if err != nil {
		return nil, err
	}
	s.logger.Info("contact message stored", zap.String("id", saved.ID), zap.String("subject", saved.Subject))
	return saved, nil
}
