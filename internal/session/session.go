// Package session keeps the console's signed-in identity.
package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"ethela-storefront/internal/domain"
	"ethela-storefront/internal/logging"
	"go.uber.org/zap"
)

// ErrDisposed is returned by every operation after Dispose.
var ErrDisposed = errors.New("session disposed")

// Identity is the remote identity provider.
type Identity interface {
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)
	SignUp(ctx context.Context, email, password, displayName string) (*domain.Session, error)
	SignOut(ctx context.Context, token string) error
	Current(ctx context.Context, token string) (*domain.Principal, error)
}

// TokenStore persists the access token between runs.
type TokenStore interface {
	AccessToken() string
	SetAccessToken(token string) error
}

// Session tracks the current principal and its access token.
type Session struct {
	identity Identity
	tokens   TokenStore
	logger   *zap.Logger

	inFlight atomic.Int32
	initOnce sync.Once
	initErr  error

	mu        sync.RWMutex
	disposed  bool
	token     string
	principal *domain.Principal
}

// New creates an uninitialised Session.
func New(identity Identity, tokens TokenStore, logger *zap.Logger) *Session {
	return &Session{
		identity: identity,
		tokens:   tokens,
		logger:   logging.OrNop(logger).Named("session"),
	}
}

// Init restores the persisted token and resolves its principal. A token the
// identity provider rejects is dropped. Only the first call does any work.
func (s *Session) Init(ctx context.Context) error {
	if s.isDisposed() {
		return ErrDisposed
	}
	s.initOnce.Do(func() {
		s.initErr = s.restore(ctx)
	})
	return s.initErr
}

func (s *Session) restore(ctx context.Context) error {
	token := s.tokens.AccessToken()
	if token == "" {
		return nil
	}
	defer s.track()()

	p, err := s.identity.Current(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			s.logger.Info("dropping stale session token")
			return s.tokens.SetAccessToken("")
		}
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.principal = p
	return nil
}

// SignIn authenticates and stores the new session. On failure the previous state is kept.
func (s *Session) SignIn(ctx context.Context, email, password string) (*domain.Principal, error) {
	if s.isDisposed() {
		return nil, ErrDisposed
	}
	defer s.track()()

	sess, err := s.identity.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.adopt(sess)
}

// SignUp registers a new account and signs it in.
func (s *Session) SignUp(ctx context.Context, email, password, displayName string) (*domain.Principal, error) {
	if s.isDisposed() {
		return nil, ErrDisposed
	}
	defer s.track()()

	sess, err := s.identity.SignUp(ctx, email, password, displayName)
	if err != nil {
		return nil, err
	}
	return s.adopt(sess)
}

// SignOut revokes the token remotely when possible and always clears local state.
func (s *Session) SignOut(ctx context.Context) error {
	if s.isDisposed() {
		return ErrDisposed
	}
	defer s.track()()

	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()
	if token == "" {
		token = s.tokens.AccessToken()
	}
	if token != "" {
		if err := s.identity.SignOut(ctx, token); err != nil {
			s.logger.Warn("remote sign-out failed", zap.Error(err))
		}
	}

	s.mu.Lock()
	s.token = ""
	s.principal = nil
	s.mu.Unlock()
	return s.tokens.SetAccessToken("")
}

// Principal returns the signed-in principal, if any.
func (s *Session) Principal() (*domain.Principal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.principal == nil {
		return nil, false
	}
	p := *s.principal
	return &p, true
}

// Token returns the current access token, or "".
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// InFlight reports whether an identity call is running.
func (s *Session) InFlight() bool {
	return s.inFlight.Load() > 0
}

// Dispose drops in-memory state; the persisted token is left alone.
func (s *Session) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disposed = true
	s.token = ""
	s.principal = nil
}

func (s *Session) adopt(sess *domain.Session) (*domain.Principal, error) {
	if err := s.tokens.SetAccessToken(sess.AccessToken); err != nil {
		return nil, err
	}
	p := sess.User
	s.mu.Lock()
	s.token = sess.AccessToken
	s.principal = &p
	s.mu.Unlock()
	out := p
	return &out, nil
}

func (s *Session) track() func() {
	s.inFlight.Add(1)
	return func() { s.inFlight.Add(-1) }
}

func (s *Session) isDisposed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.disposed
}
