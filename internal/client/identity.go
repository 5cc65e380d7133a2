package client

import (
	"context"
	"net/http"

	"ethela-storefront/internal/domain"
)

type signUpRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignIn exchanges credentials for a session.
func (c *Client) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	var sess domain.Session
	if err := c.do(ctx, http.MethodPost, "/api/auth/signin", signInRequest{Email: email, Password: password}, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// SignUp registers an account and returns its first session.
func (c *Client) SignUp(ctx context.Context, email, password, displayName string) (*domain.Session, error) {
	var sess domain.Session
	req := signUpRequest{Email: email, Password: password, DisplayName: displayName}
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", req, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// SignOut revokes token on the server.
func (c *Client) SignOut(ctx context.Context, token string) error {
	return c.doWithToken(ctx, http.MethodPost, "/api/auth/signout", token, nil, nil)
}

// Current resolves token to its principal.
func (c *Client) Current(ctx context.Context, token string) (*domain.Principal, error) {
	var out struct {
		User domain.Principal `json:"user"`
	}
	if err := c.doWithToken(ctx, http.MethodGet, "/api/auth/session", token, nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}
