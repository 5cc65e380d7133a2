package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ethela-storefront/internal/domain"
	identitysvc "ethela-storefront/internal/service/identity"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type stubCatalog struct {
	items       []domain.Product
	err         error
	lastLimit   int
	created     *domain.Product
	updatedID   string
	deletedID   string
	featuredHit bool
}

func (s *stubCatalog) List(context.Context) ([]domain.Product, error) { return s.items, s.err }

func (s *stubCatalog) ListFeatured(_ context.Context, limit int) ([]domain.Product, error) {
	s.featuredHit = true
	s.lastLimit = limit
	if s.err != nil {
		return nil, s.err
	}
	var out []domain.Product
	for _, p := range s.items {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubCatalog) Get(_ context.Context, id string) (*domain.Product, error) {
	for _, p := range s.items {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubCatalog) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	p.ID = "new-id"
	s.created = &p
	return &p, nil
}

func (s *stubCatalog) Update(ctx context.Context, id string, p domain.Product) (*domain.Product, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	s.updatedID = id
	p.ID = id
	return &p, nil
}

func (s *stubCatalog) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	s.deletedID = id
	return nil
}

type stubBlogs struct {
	items []domain.BlogPost
}

func (s *stubBlogs) List(context.Context) ([]domain.BlogPost, error) { return s.items, nil }

func (s *stubBlogs) ListPublished(context.Context) ([]domain.BlogPost, error) {
	var out []domain.BlogPost
	for _, b := range s.items {
		if b.Published {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *stubBlogs) Get(_ context.Context, id string) (*domain.BlogPost, error) {
	for _, b := range s.items {
		if b.ID == id {
			b := b
			return &b, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubBlogs) GetPublished(ctx context.Context, id string) (*domain.BlogPost, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !b.Published {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

func (s *stubBlogs) Create(_ context.Context, b domain.BlogPost) (*domain.BlogPost, error) {
	b.ID = "blog-new"
	return &b, nil
}

func (s *stubBlogs) Update(ctx context.Context, id string, b domain.BlogPost) (*domain.BlogPost, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	b.ID = id
	return &b, nil
}

func (s *stubBlogs) Delete(ctx context.Context, id string) error {
	_, err := s.Get(ctx, id)
	return err
}

type stubIdentity struct {
	principals map[string]domain.Principal
	revoked    []string
	currentErr error
}

func (s *stubIdentity) SignUp(_ context.Context, in identitysvc.SignUpInput) (*domain.Session, error) {
	if in.Email == "taken@ethela.in" {
		return nil, domain.ErrAlreadyExists
	}
	return &domain.Session{
		AccessToken: "tok-new",
		TokenType:   "Bearer",
		ExpiresAt:   time.Now().Add(time.Hour),
		User:        domain.Principal{ID: "u-new", Email: in.Email, Role: domain.RoleCustomer},
	}, nil
}

func (s *stubIdentity) SignIn(_ context.Context, email, password string) (*domain.Session, error) {
	if password != "secret1" {
		return nil, identitysvc.ErrInvalidCredentials
	}
	return &domain.Session{AccessToken: "tok-in", TokenType: "Bearer", User: domain.Principal{Email: email}}, nil
}

func (s *stubIdentity) Current(_ context.Context, token string) (*domain.Principal, error) {
	if s.currentErr != nil {
		return nil, s.currentErr
	}
	p, ok := s.principals[token]
	if !ok {
		return nil, identitysvc.ErrInvalidToken
	}
	return &p, nil
}

func (s *stubIdentity) SignOut(_ context.Context, token string) error {
	s.revoked = append(s.revoked, token)
	return nil
}

type stubVerification struct{}

func (stubVerification) Verify(_ context.Context, code string) (*domain.Certificate, error) {
	switch code {
	case "":
		return nil, domain.ErrInvalidInput
	case "ETH-2024-001234567":
		return &domain.Certificate{Code: code, ProductName: "Solitaire Ring", Carat: "1.0"}, nil
	default:
		return nil, domain.ErrNotFound
	}
}

type stubContact struct {
	got *domain.ContactMessage
}

func (s *stubContact) Submit(_ context.Context, m domain.ContactMessage) (*domain.ContactMessage, error) {
	if m.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	m.ID = "msg-1"
	s.got = &m
	return &m, nil
}

const (
	adminToken    = "tok-admin"
	customerToken = "tok-customer"
)

func newStubIdentity() *stubIdentity {
	return &stubIdentity{principals: map[string]domain.Principal{
		adminToken:    {ID: "a1", Email: "admin@ethela.in", Role: domain.RoleAdmin},
		customerToken: {ID: "c1", Email: "jane@ethela.in", Role: domain.RoleCustomer},
	}}
}

func newTestRouter(t *testing.T, deps Deps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if deps.Catalog == nil {
		deps.Catalog = &stubCatalog{}
	}
	if deps.Blogs == nil {
		deps.Blogs = &stubBlogs{}
	}
	if deps.Identity == nil {
		deps.Identity = newStubIdentity()
	}
	router, err := buildRouter(zap.NewNop(), nil, deps, Options{})
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

func doJSON(router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
