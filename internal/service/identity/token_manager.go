package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ethela-storefront/internal/domain"
	sessionrepo "ethela-storefront/internal/repository/session"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "ethela"

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type tokenMeta struct {
	SessionID string
	UserID    string
	ExpiresAt time.Time
}

// tokenManager signs session JWTs and keeps their jti in the sessions table,
// so a token stops working as soon as its row is gone.
type tokenManager struct {
	repo   sessionrepo.Repository
	secret []byte
	now    func() time.Time
}

func newTokenManager(repo sessionrepo.Repository, secret []byte, now func() time.Time) *tokenManager {
	return &tokenManager{repo: repo, secret: secret, now: now}
}

func (m *tokenManager) Issue(ctx context.Context, u domain.User, ttl time.Duration) (string, time.Time, error) {
	issuedAt := m.now()
	expiresAt := issuedAt.Add(ttl)
	sessionID := uuid.NewString()

	claims := sessionClaims{
		Role: u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   u.ID,
			ID:        sessionID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	if err := m.repo.Create(ctx, sessionrepo.Record{ID: sessionID, UserID: u.ID, ExpiresAt: expiresAt}); err != nil {
		return "", time.Time{}, fmt.Errorf("store session: %w", err)
	}
	return signed, expiresAt, nil
}

func (m *tokenManager) Validate(ctx context.Context, token string) (tokenMeta, error) {
	claims, err := m.parse(token)
	if err != nil {
		return tokenMeta{}, ErrInvalidToken
	}
	rec, err := m.repo.Get(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return tokenMeta{}, ErrInvalidToken
		}
		return tokenMeta{}, err
	}
	if rec.UserID != claims.Subject {
		return tokenMeta{}, ErrInvalidToken
	}
	if rec.Expired(m.now()) {
		_ = m.repo.Delete(ctx, rec.ID)
		return tokenMeta{}, ErrInvalidToken
	}
	return tokenMeta{SessionID: rec.ID, UserID: rec.UserID, ExpiresAt: rec.ExpiresAt}, nil
}

// Revoke deletes the session behind token. Unknown or malformed tokens are ignored.
func (m *tokenManager) Revoke(ctx context.Context, token string) error {
	claims, err := m.parse(token)
	if err != nil {
		return nil
	}
	if err := m.repo.Delete(ctx, claims.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}

func (m *tokenManager) parse(token string) (*sessionClaims, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, err
	}
	if claims.ID == "" || claims.Subject == "" {
		return nil, errors.New("token missing subject or id")
	}
	return claims, nil
}
