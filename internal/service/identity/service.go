package identity

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"ethela-storefront/internal/domain"
	"ethela-storefront/internal/logging"
	sessionrepo "ethela-storefront/internal/repository/session"
	userrepo "ethela-storefront/internal/repository/user"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", domain.ErrUnauthenticated)
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = fmt.Errorf("%w: invalid token", domain.ErrUnauthenticated)
)

// Options tune token lifetime and admin bootstrap.
type Options struct {
	Secret      []byte
	SessionTTL  time.Duration
	AdminEmails []string
	PasswordMin int
	Now         func() time.Time
}

// Service handles sign-up, sign-in, sign-out and session lookup.
type Service struct {
	users       userrepo.Repository
	sessions    sessionrepo.Repository
	tokens      *tokenManager
	ttl         time.Duration
	passwordMin int
	adminEmails map[string]struct{}
	now         func() time.Time
	logger      *zap.Logger
}

// New creates a Service with sane defaults for unset options.
func New(users userrepo.Repository, sessions sessionrepo.Repository, opts Options, logger *zap.Logger) *Service {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 7 * 24 * time.Hour
	}
	if opts.PasswordMin <= 0 {
		opts.PasswordMin = 6
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	admins := make(map[string]struct{}, len(opts.AdminEmails))
	for _, e := range opts.AdminEmails {
		admins[normalizeEmail(e)] = struct{}{}
	}
	return &Service{
		users:       users,
		sessions:    sessions,
		tokens:      newTokenManager(sessions, opts.Secret, opts.Now),
		ttl:         opts.SessionTTL,
		passwordMin: opts.PasswordMin,
		adminEmails: admins,
		now:         opts.Now,
		logger:      logging.OrNop(logger).Named("identity"),
	}
}

// SignUpInput captures fields expected by the sign-up endpoint.
type SignUpInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// SignUp registers a new principal and signs it in.
func (s *Service) SignUp(ctx context.Context, in SignUpInput) (*domain.Session, error) {
	email := normalizeEmail(in.Email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(in.Password, s.passwordMin); err != nil {
		return nil, err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := domain.RoleCustomer
	if _, ok := s.adminEmails[email]; ok {
		role = domain.RoleAdmin
	}
	u, err := s.users.Create(ctx, domain.User{
		Email:        email,
		PasswordHash: string(hashed),
		DisplayName:  strings.TrimSpace(in.DisplayName),
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			s.logger.Info("sign-up rejected, email taken", zap.String("email", email))
		}
		return nil, err
	}
	s.logger.Info("signed up", zap.String("user_id", u.ID), zap.String("role", u.Role))
	return s.issue(ctx, *u)
}

// SignIn validates credentials and issues a session.
func (s *Service) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	u, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		s.logger.Info("sign-in rejected", zap.String("user_id", u.ID))
		return nil, ErrInvalidCredentials
	}
	return s.issue(ctx, *u)
}

// Current returns the principal bound to a valid token.
func (s *Service) Current(ctx context.Context, token string) (*domain.Principal, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrInvalidToken
	}
	meta, err := s.tokens.Validate(ctx, token)
	if err != nil {
		return nil, err
	}
	u, err := s.users.GetByID(ctx, meta.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	p := domain.PrincipalOf(*u)
	return &p, nil
}

// SignOut revokes the session behind token. Signing out twice is not an error.
func (s *Service) SignOut(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}

// PurgeExpired removes sessions past their expiry.
func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.sessions.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info("expired sessions purged", zap.Int64("count", n))
	}
	return n, nil
}

// EnsureAdmin creates the account if it is missing and grants it the admin role.
func (s *Service) EnsureAdmin(ctx context.Context, email, password, displayName string) (*domain.Principal, error) {
	email = normalizeEmail(email)
	u, err := s.users.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if err := validatePassword(password, s.passwordMin); err != nil {
			return nil, err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u, err = s.users.Create(ctx, domain.User{
			Email:        email,
			PasswordHash: string(hashed),
			DisplayName:  displayName,
			Role:         domain.RoleAdmin,
		})
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	case u.Role != domain.RoleAdmin:
		if err := s.users.SetRole(ctx, u.ID, domain.RoleAdmin); err != nil {
			return nil, err
		}
		u.Role = domain.RoleAdmin
	}
	p := domain.PrincipalOf(*u)
	return &p, nil
}

func (s *Service) issue(ctx context.Context, u domain.User) (*domain.Session, error) {
	token, expiresAt, err := s.tokens.Issue(ctx, u, s.ttl)
	if err != nil {
		return nil, err
	}
	return &domain.Session{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        domain.PrincipalOf(u),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email required", domain.ErrInvalidInput)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: email %q is not valid", domain.ErrInvalidInput, email)
	}
	return nil
}

func validatePassword(p string, min int) error {
	if len(strings.TrimSpace(p)) < min {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, min)
	}
	return nil
}
