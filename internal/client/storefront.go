package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"ethela-storefront/internal/domain"
)

// Product is a catalog item with its display price.
type Product struct {
	domain.Product
	PriceFormatted string `json:"priceFormatted"`
}

// Verification is the outcome of a certificate lookup.
type Verification struct {
	IsValid     bool                `json:"isValid"`
	Code        string              `json:"code"`
	Certificate *domain.Certificate `json:"certificate,omitempty"`
}

// Featured lists up to limit featured products, newest first.
func (c *Client) Featured(ctx context.Context, limit int) ([]Product, error) {
	q := url.Values{"featured": {"true"}}
	if limit > 0 {
		q.Set("limit", fmt.Sprint(limit))
	}
	var out listResponse[Product]
	if err := c.do(ctx, http.MethodGet, "/api/products?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// Collections lists every product, newest first.
func (c *Client) Collections(ctx context.Context) ([]Product, error) {
	var out listResponse[Product]
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// Product fetches one product.
func (c *Client) Product(ctx context.Context, id string) (*Product, error) {
	var out Product
	if err := c.do(ctx, http.MethodGet, "/api/products/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Blogs lists published posts, newest first.
func (c *Client) Blogs(ctx context.Context) ([]domain.BlogPost, error) {
	var out listResponse[domain.BlogPost]
	if err := c.do(ctx, http.MethodGet, "/api/blogs", nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// Blog fetches one published post.
func (c *Client) Blog(ctx context.Context, id string) (*domain.BlogPost, error) {
	var out domain.BlogPost
	if err := c.do(ctx, http.MethodGet, "/api/blogs/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Verify looks up a certificate code. An unknown code is a result, not an error.
func (c *Client) Verify(ctx context.Context, code string) (*Verification, error) {
	var out Verification
	err := c.do(ctx, http.MethodGet, "/api/verify/"+url.PathEscape(code), nil, &out)
	if errors.Is(err, domain.ErrNotFound) {
		return &Verification{IsValid: false, Code: code}, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Contact sends an enquiry and returns the acknowledgement text.
func (c *Client) Contact(ctx context.Context, m domain.ContactMessage) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/contact", m, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}
