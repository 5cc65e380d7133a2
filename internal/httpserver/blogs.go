package httpserver

import (
	"net/http"

	"ethela-storefront/internal/domain"
	"github.com/gin-gonic/gin"
)

type blogPayload struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	Author        string `json:"author"`
	CoverImageURL string `json:"cover_image_url"`
	Published     *bool  `json:"published"`
}

// toDomain treats an omitted published flag as published.
func (p blogPayload) toDomain() domain.BlogPost {
	published := true
	if p.Published != nil {
		published = *p.Published
	}
	return domain.BlogPost{
		Title:         p.Title,
		Content:       p.Content,
		Author:        p.Author,
		CoverImageURL: p.CoverImageURL,
		Published:     published,
	}
}

func blogList(items []domain.BlogPost) listResponse[domain.BlogPost] {
	if items == nil {
		items = []domain.BlogPost{}
	}
	return listResponse[domain.BlogPost]{Count: len(items), Results: items}
}

func (h *handlers) listPublishedBlogs(c *gin.Context) {
	items, err := h.deps.Blogs.ListPublished(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, blogList(items))
}

func (h *handlers) getPublishedBlog(c *gin.Context) {
	b, err := h.deps.Blogs.GetPublished(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *handlers) adminListBlogs(c *gin.Context) {
	items, err := h.deps.Blogs.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, blogList(items))
}

func (h *handlers) adminGetBlog(c *gin.Context) {
	b, err := h.deps.Blogs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *handlers) createBlog(c *gin.Context) {
	var req blogPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "invalid blog payload")
		return
	}
	b, err := h.deps.Blogs.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *handlers) updateBlog(c *gin.Context) {
	var req blogPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "invalid blog payload")
		return
	}
	b, err := h.deps.Blogs.Update(c.Request.Context(), c.Param("id"), req.toDomain())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *handlers) deleteBlog(c *gin.Context) {
	if err := h.deps.Blogs.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
