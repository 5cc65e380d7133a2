package session

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"ethela-storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memTokens struct{ token string }

func (m *memTokens) AccessToken() string { return m.token }

func (m *memTokens) SetAccessToken(t string) error {
	m.token = t
	return nil
}

type fakeIdentity struct {
	valid      map[string]domain.Principal
	signOuts   []string
	signOutErr error
	currentErr error
	during     func()
}

var errWrongPassword = fmt.Errorf("%w: wrong password", domain.ErrUnauthenticated)

func (f *fakeIdentity) SignIn(_ context.Context, email, password string) (*domain.Session, error) {
	if f.during != nil {
		f.during()
	}
	if password != "secret1" {
		return nil, errWrongPassword
	}
	p := domain.Principal{ID: "u1", Email: email, Role: domain.RoleAdmin}
	f.valid["tok-"+email] = p
	return &domain.Session{AccessToken: "tok-" + email, User: p}, nil
}

func (f *fakeIdentity) SignUp(ctx context.Context, email, password, _ string) (*domain.Session, error) {
	if email == "taken@ethela.in" {
		return nil, domain.ErrAlreadyExists
	}
	return f.SignIn(ctx, email, password)
}

func (f *fakeIdentity) SignOut(_ context.Context, token string) error {
	f.signOuts = append(f.signOuts, token)
	delete(f.valid, token)
	return f.signOutErr
}

func (f *fakeIdentity) Current(_ context.Context, token string) (*domain.Principal, error) {
	if f.currentErr != nil {
		return nil, f.currentErr
	}
	p, ok := f.valid[token]
	if !ok {
		return nil, fmt.Errorf("%w: unknown token", domain.ErrUnauthenticated)
	}
	return &p, nil
}

func newFake() *fakeIdentity {
	return &fakeIdentity{valid: map[string]domain.Principal{}}
}

func TestInit_RestoresPersistedToken(t *testing.T) {
	id := newFake()
	id.valid["tok"] = domain.Principal{ID: "u1", Email: "admin@ethela.in"}
	tokens := &memTokens{token: "tok"}
	s := New(id, tokens, nil)

	require.NoError(t, s.Init(context.Background()))
	p, ok := s.Principal()
	require.True(t, ok)
	assert.Equal(t, "admin@ethela.in", p.Email)
	assert.Equal(t, "tok", s.Token())
}

func TestInit_DropsRejectedToken(t *testing.T) {
	tokens := &memTokens{token: "stale"}
	s := New(newFake(), tokens, nil)

	require.NoError(t, s.Init(context.Background()))
	_, ok := s.Principal()
	assert.False(t, ok)
	assert.Empty(t, tokens.token)
}

func TestInit_KeepsTokenOnTransportError(t *testing.T) {
	id := newFake()
	id.currentErr = errors.New("connection refused")
	tokens := &memTokens{token: "tok"}
	s := New(id, tokens, nil)

	require.Error(t, s.Init(context.Background()))
	assert.Equal(t, "tok", tokens.token)
}

func TestInit_RunsOnce(t *testing.T) {
	id := newFake()
	id.currentErr = errors.New("down")
	s := New(id, &memTokens{token: "tok"}, nil)

	first := s.Init(context.Background())
	id.currentErr = nil
	assert.Equal(t, first, s.Init(context.Background()))
}

func TestSignIn_StoresSessionAndTracksInFlight(t *testing.T) {
	id := newFake()
	tokens := &memTokens{}
	s := New(id, tokens, nil)
	var seen bool
	id.during = func() { seen = s.InFlight() }

	p, err := s.SignIn(context.Background(), "admin@ethela.in", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "admin@ethela.in", p.Email)
	assert.True(t, seen)
	assert.False(t, s.InFlight())
	assert.Equal(t, "tok-admin@ethela.in", tokens.token)
}

func TestSignIn_FailureKeepsPreviousState(t *testing.T) {
	id := newFake()
	tokens := &memTokens{}
	s := New(id, tokens, nil)
	_, err := s.SignIn(context.Background(), "admin@ethela.in", "secret1")
	require.NoError(t, err)

	_, err = s.SignIn(context.Background(), "other@ethela.in", "nope")
	require.ErrorIs(t, err, domain.ErrUnauthenticated)

	p, ok := s.Principal()
	require.True(t, ok)
	assert.Equal(t, "admin@ethela.in", p.Email)
	assert.Equal(t, "tok-admin@ethela.in", tokens.token)
}

func TestSignUp_Duplicate(t *testing.T) {
	s := New(newFake(), &memTokens{}, nil)
	_, err := s.SignUp(context.Background(), "taken@ethela.in", "secret1", "Taken")
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	_, ok := s.Principal()
	assert.False(t, ok)
}

func TestSignOut_ClearsEvenWhenRemoteFails(t *testing.T) {
	id := newFake()
	tokens := &memTokens{}
	s := New(id, tokens, nil)
	_, err := s.SignIn(context.Background(), "admin@ethela.in", "secret1")
	require.NoError(t, err)
	id.signOutErr = errors.New("offline")

	require.NoError(t, s.SignOut(context.Background()))
	assert.Equal(t, []string{"tok-admin@ethela.in"}, id.signOuts)
	_, ok := s.Principal()
	assert.False(t, ok)
	assert.Empty(t, s.Token())
	assert.Empty(t, tokens.token)
}

func TestDispose(t *testing.T) {
	id := newFake()
	s := New(id, &memTokens{}, nil)
	_, err := s.SignIn(context.Background(), "admin@ethela.in", "secret1")
	require.NoError(t, err)

	s.Dispose()

	_, ok := s.Principal()
	assert.False(t, ok)
	assert.ErrorIs(t, s.Init(context.Background()), ErrDisposed)
	_, err = s.SignIn(context.Background(), "admin@ethela.in", "secret1")
	assert.ErrorIs(t, err, ErrDisposed)
	assert.ErrorIs(t, s.SignOut(context.Background()), ErrDisposed)
}
