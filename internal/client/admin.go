package client

import (
	"context"
	"net/http"
	"net/url"

	"ethela-storefront/internal/domain"
)

// AdminStore is the admin CRUD surface for one entity endpoint.
type AdminStore[T any] struct {
	c    *Client
	path string
}

// NewAdminStore binds an admin store to /api/admin/<endpoint>.
func NewAdminStore[T any](c *Client, endpoint string) *AdminStore[T] {
	return &AdminStore[T]{c: c, path: "/api/admin/" + endpoint}
}

// Products returns the admin product store.
func (c *Client) Products() *AdminStore[domain.Product] {
	return NewAdminStore[domain.Product](c, "products")
}

// BlogPosts returns the admin blog store.
func (c *Client) BlogPosts() *AdminStore[domain.BlogPost] {
	return NewAdminStore[domain.BlogPost](c, "blogs")
}

func (s *AdminStore[T]) List(ctx context.Context) ([]T, error) {
	var out listResponse[T]
	if err := s.c.do(ctx, http.MethodGet, s.path, nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

func (s *AdminStore[T]) Insert(ctx context.Context, v T) (T, error) {
	var out T
	err := s.c.do(ctx, http.MethodPost, s.path, v, &out)
	return out, err
}

func (s *AdminStore[T]) Update(ctx context.Context, id string, v T) (T, error) {
	var out T
	err := s.c.do(ctx, http.MethodPut, s.path+"/"+url.PathEscape(id), v, &out)
	return out, err
}

func (s *AdminStore[T]) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, s.path+"/"+url.PathEscape(id), nil, nil)
}
