package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"ethela-storefront/internal/domain"
)

func TestSignUp(t *testing.T) {
	router := newTestRouter(t, Deps{})

	rec := doJSON(router, http.MethodPost, "/api/auth/signup", "", map[string]any{"email": "new@ethela.in", "password": "secret1"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	var sess domain.Session
	if err := json.Unmarshal(rec.Body.Bytes(), &sess); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sess.AccessToken == "" || sess.User.Email != "new@ethela.in" {
		t.Fatalf("unexpected session %+v", sess)
	}
}

func TestSignUp_Duplicate(t *testing.T) {
	router := newTestRouter(t, Deps{})
	rec := doJSON(router, http.MethodPost, "/api/auth/signup", "", map[string]any{"email": "taken@ethela.in", "password": "secret1"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestSignIn(t *testing.T) {
	router := newTestRouter(t, Deps{})

	if rec := doJSON(router, http.MethodPost, "/api/auth/signin", "", map[string]any{"email": "jane@ethela.in", "password": "secret1"}); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec := doJSON(router, http.MethodPost, "/api/auth/signin", "", map[string]any{"email": "jane@ethela.in", "password": "wrong"}); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if rec := doJSON(router, http.MethodPost, "/api/auth/signin", "", map[string]any{"email": "jane@ethela.in"}); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSession(t *testing.T) {
	router := newTestRouter(t, Deps{})

	rec := doJSON(router, http.MethodGet, "/api/auth/session", customerToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var out struct {
		User domain.Principal `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.User.Email != "jane@ethela.in" {
		t.Fatalf("unexpected principal %+v", out.User)
	}

	if rec := doJSON(router, http.MethodGet, "/api/auth/session", "", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSignOut(t *testing.T) {
	identity := newStubIdentity()
	router := newTestRouter(t, Deps{Identity: identity})

	if rec := doJSON(router, http.MethodPost, "/api/auth/signout", customerToken, nil); rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(identity.revoked) != 1 || identity.revoked[0] != customerToken {
		t.Fatalf("expected token revoked, got %v", identity.revoked)
	}
	if rec := doJSON(router, http.MethodPost, "/api/auth/signout", "", nil); rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 without token, got %d", rec.Code)
	}
}

func TestSession_StoreFailureIsNotUnauthenticated(t *testing.T) {
	identity := newStubIdentity()
	identity.currentErr = errors.New("dial tcp: connection refused")
	router := newTestRouter(t, Deps{Identity: identity})

	if rec := doJSON(router, http.MethodGet, "/api/auth/session", customerToken, nil); rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d body=%s", rec.Code, rec.Body.String())
	}
	if rec := doJSON(router, http.MethodGet, "/api/admin/products", adminToken, nil); rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on admin route, got %d", rec.Code)
	}
	if rec := doJSON(router, http.MethodGet, "/api/products", "", nil); rec.Code != http.StatusOK {
		t.Fatalf("expected anonymous reads unaffected, got %d", rec.Code)
	}
}
