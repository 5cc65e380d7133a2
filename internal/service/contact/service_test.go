package contact

import (
	"context"
	"errors"
	"testing"

	"ethela-storefront/internal/domain"
)

type stubRepo struct {
	saved []domain.ContactMessage
}

func (s *stubRepo) Create(_ context.Context, m domain.ContactMessage) (*domain.ContactMessage, error) {
	m.ID = "msg-1"
	s.saved = append(s.saved, m)
	return &m, nil
}

func TestSubmit(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, nil)

	if _, err := svc.Submit(context.Background(), domain.ContactMessage{Name: "Ana", Email: "bad", Message: "hi"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad email, got %v", err)
	}
	if _, err := svc.Submit(context.Background(), domain.ContactMessage{Name: "Ana", Email: "ana@example.com"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty message, got %v", err)
	}

	saved, err := svc.Submit(context.Background(), domain.ContactMessage{Name: " Ana ", Email: "ana@example.com", Subject: "Sizing", Message: "Ring size?"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if saved.ID == "" || saved.Name != "Ana" || len(repo.saved) != 1 {
		t.Fatalf("unexpected saved message %+v", saved)
	}
}
