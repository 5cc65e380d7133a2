package schema

import (
	"errors"
	"testing"

	"ethela-storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlank_UsesDefaults(t *testing.T) {
	f := Blogs.Blank()
	assert.Equal(t, DefaultBlogAuthor, f["author"])
	assert.Equal(t, "true", f["published"])
	assert.Equal(t, "", f["title"])

	p := Products.Blank()
	assert.Equal(t, "false", p["featured"])
	assert.Len(t, p, len(Products.Fields))
}

func TestValidate_CollectsEveryFailure(t *testing.T) {
	f := Products.Blank()
	f["price"] = "-5"
	f["featured"] = "sometimes"

	err := Products.Validate(f)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("name"))
	assert.True(t, verr.Has("price"))
	assert.True(t, verr.Has("featured"))
	assert.False(t, verr.Has("description"))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestValidate_RejectsNonFiniteAndUnknownFields(t *testing.T) {
	for _, raw := range []string{"NaN", "Inf", "abc"} {
		f := Form{"name": "Ring", "price": raw}
		var verr *ValidationError
		require.ErrorAs(t, Products.Validate(f), &verr, raw)
		assert.True(t, verr.Has("price"), raw)
	}

	f := Form{"name": "Ring", "price": "10", "colour": "gold"}
	var verr *ValidationError
	require.ErrorAs(t, Products.Validate(f), &verr)
	assert.True(t, verr.Has("colour"))
}

func TestValidate_PriceMustFitStorage(t *testing.T) {
	for _, raw := range []string{"12.345", "1e13", "10000000000"} {
		var verr *ValidationError
		require.ErrorAs(t, Products.Validate(Form{"name": "Ring", "price": raw}), &verr, raw)
		assert.True(t, verr.Has("price"), raw)
	}
	for _, raw := range []string{"12.34", "12500", "9999999999.99", "0.1"} {
		assert.NoError(t, Products.Validate(Form{"name": "Ring", "price": raw}), raw)
	}
}

func TestBuild_Product(t *testing.T) {
	f := Products.Blank()
	f["name"] = "  Aurora Ring "
	f["price"] = "12500"
	f["featured"] = "yes"

	p, err := Products.Build(f)
	require.NoError(t, err)
	assert.Equal(t, "Aurora Ring", p.Name)
	assert.Equal(t, 12500.0, p.Price)
	assert.True(t, p.Featured)
	assert.Empty(t, p.ImageURL)
}

func TestBuild_InvalidReturnsZero(t *testing.T) {
	p, err := Products.Build(Form{"price": "1"})
	require.Error(t, err)
	assert.Equal(t, domain.Product{}, p)
}

func TestFormOf_RoundTripsThroughBuild(t *testing.T) {
	b := domain.BlogPost{ID: "b1", Title: "Care", Content: "Body", Author: "Asha", Published: false}

	f := Blogs.FormOf(b)
	assert.Equal(t, "false", f["published"])
	assert.Equal(t, "b1", Blogs.IDOf(b))

	got, err := Blogs.Build(f)
	require.NoError(t, err)
	b.ID = ""
	assert.Equal(t, b, got)
}

func TestFormOf_PriceKeepsDecimals(t *testing.T) {
	f := Products.FormOf(domain.Product{Name: "x", Price: 4500.5})
	assert.Equal(t, "4500.5", f["price"])
}

func TestParseBool(t *testing.T) {
	for _, in := range []string{"true", "1", "YES", "on"} {
		v, err := ParseBool(in)
		require.NoError(t, err, in)
		assert.True(t, v, in)
	}
	for _, in := range []string{"false", "0", "No", "off", ""} {
		v, err := ParseBool(in)
		require.NoError(t, err, in)
		assert.False(t, v, in)
	}
	_, err := ParseBool("maybe")
	assert.Error(t, err)
}

func TestFormClone(t *testing.T) {
	f := Form{"name": "a"}
	c := f.Clone()
	c["name"] = "b"
	assert.Equal(t, "a", f["name"])
}
