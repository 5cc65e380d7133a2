package blog

import (
	"context"
	"errors"
	"testing"

	"ethela-storefront/internal/domain"
)

type stubRepo struct {
	posts   []domain.BlogPost
	created *domain.BlogPost
	updated *domain.BlogPost
	calls   int
}

func (s *stubRepo) List(_ context.Context) ([]domain.BlogPost, error) { return s.posts, nil }

func (s *stubRepo) ListPublished(_ context.Context) ([]domain.BlogPost, error) {
	var out []domain.BlogPost
	for _, p := range s.posts {
		if p.Published {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubRepo) GetByID(_ context.Context, id string) (*domain.BlogPost, error) {
	for _, p := range s.posts {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubRepo) GetPublished(ctx context.Context, id string) (*domain.BlogPost, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil || !p.Published {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (s *stubRepo) Create(_ context.Context, b domain.BlogPost) (*domain.BlogPost, error) {
	s.calls++
	b.ID = "blog-1"
	s.created = &b
	return &b, nil
}

func (s *stubRepo) Update(_ context.Context, b domain.BlogPost) (*domain.BlogPost, error) {
	s.calls++
	s.updated = &b
	return &b, nil
}

func (s *stubRepo) Delete(_ context.Context, _ string) error { return nil }

func TestCreate_DefaultsAuthor(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, "", nil)
	if _, err := svc.Create(context.Background(), domain.BlogPost{Title: "Hello", Content: "World", Published: true}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if repo.created.Author != DefaultAuthor {
		t.Fatalf("expected default author, got %q", repo.created.Author)
	}

	svc = New(repo, "Studio", nil)
	if _, err := svc.Create(context.Background(), domain.BlogPost{Title: "Hello", Content: "World"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if repo.created.Author != "Studio" {
		t.Fatalf("expected configured author, got %q", repo.created.Author)
	}
}

func TestCreate_RequiresTitleAndContent(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, "", nil)
	for _, b := range []domain.BlogPost{{Title: " ", Content: "x"}, {Title: "x", Content: "  "}} {
		if _, err := svc.Create(context.Background(), b); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", b, err)
		}
	}
	if repo.calls != 0 {
		t.Fatalf("repository must not be called for invalid posts")
	}
}

func TestGetPublished_HidesDrafts(t *testing.T) {
	repo := &stubRepo{posts: []domain.BlogPost{{ID: "draft", Title: "d", Published: false}}}
	svc := New(repo, "", nil)
	if _, err := svc.GetPublished(context.Background(), "draft"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Get(context.Background(), "draft"); err != nil {
		t.Fatalf("admin Get should see drafts: %v", err)
	}
}
