package httpserver

import (
	"net/http"

	identitysvc "ethela-storefront/internal/service/identity"
	"github.com/gin-gonic/gin"
)

type signInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *handlers) signUp(c *gin.Context) {
	var req identitysvc.SignUpInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "invalid sign-up payload")
		return
	}
	sess, err := h.deps.Identity.SignUp(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sess)
}

func (h *handlers) signIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "email and password are required")
		return
	}
	sess, err := h.deps.Identity.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// signOut always succeeds; an unknown or missing token has nothing to revoke.
func (h *handlers) signOut(c *gin.Context) {
	if token := c.GetString(tokenKey); token != "" {
		if err := h.deps.Identity.SignOut(c.Request.Context(), token); err != nil {
			h.writeError(c, err)
			return
		}
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) currentSession(c *gin.Context) {
	p, _ := principalFrom(c)
	c.JSON(http.StatusOK, gin.H{"user": p})
}
