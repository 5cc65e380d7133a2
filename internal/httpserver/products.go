package httpserver

import (
	"net/http"
	"strconv"

	"ethela-storefront/internal/domain"
	"ethela-storefront/internal/format"
	"github.com/gin-gonic/gin"
)

type productView struct {
	domain.Product
	PriceFormatted string `json:"priceFormatted"`
}

type productPayload struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         *float64 `json:"price" binding:"required"`
	ImageURL      string   `json:"image_url"`
	BlockchainURL string   `json:"blockchain_url"`
	Featured      bool     `json:"featured"`
}

func (p productPayload) toDomain() domain.Product {
	return domain.Product{
		Name:          p.Name,
		Description:   p.Description,
		Price:         *p.Price,
		ImageURL:      p.ImageURL,
		BlockchainURL: p.BlockchainURL,
		Featured:      p.Featured,
	}
}

type listResponse[T any] struct {
	Count   int `json:"count"`
	Results []T `json:"results"`
}

func newProductView(p domain.Product) productView {
	return productView{Product: p, PriceFormatted: format.INR(p.Price)}
}

func productViews(items []domain.Product) listResponse[productView] {
	out := make([]productView, 0, len(items))
	for _, p := range items {
		out = append(out, newProductView(p))
	}
	return listResponse[productView]{Count: len(out), Results: out}
}

func (h *handlers) listProducts(c *gin.Context) {
	featured := false
	if raw := c.Query("featured"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			h.badRequest(c, "featured must be a boolean")
			return
		}
		featured = v
	}

	if !featured {
		items, err := h.deps.Catalog.List(c.Request.Context())
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, productViews(items))
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			h.badRequest(c, "limit must be a non-negative integer")
			return
		}
		limit = v
	}
	items, err := h.deps.Catalog.ListFeatured(c.Request.Context(), limit)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, productViews(items))
}

func (h *handlers) getProduct(c *gin.Context) {
	p, err := h.deps.Catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newProductView(*p))
}

func (h *handlers) adminListProducts(c *gin.Context) {
	items, err := h.deps.Catalog.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, productViews(items))
}

func (h *handlers) createProduct(c *gin.Context) {
	var req productPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "invalid product payload: price is required")
		return
	}
	p, err := h.deps.Catalog.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newProductView(*p))
}

func (h *handlers) updateProduct(c *gin.Context) {
	var req productPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "invalid product payload: price is required")
		return
	}
	p, err := h.deps.Catalog.Update(c.Request.Context(), c.Param("id"), req.toDomain())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newProductView(*p))
}

func (h *handlers) deleteProduct(c *gin.Context) {
	if err := h.deps.Catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
