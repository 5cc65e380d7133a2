package httpserver

import (
	"errors"
	"net/http"

	"ethela-storefront/internal/domain"
	contactsvc "ethela-storefront/internal/service/contact"
	verificationsvc "ethela-storefront/internal/service/verification"
	"github.com/gin-gonic/gin"
)

type verifyResponse struct {
	IsValid     bool                `json:"isValid"`
	Code        string              `json:"code"`
	Certificate *domain.Certificate `json:"certificate,omitempty"`
}

func (h *handlers) verify(c *gin.Context) {
	code := c.Param("code")
	cert, err := h.deps.Verification.Verify(c.Request.Context(), code)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, verifyResponse{IsValid: true, Code: cert.Code, Certificate: cert})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, verifyResponse{IsValid: false, Code: verificationsvc.NormalizeCode(code)})
	default:
		h.writeError(c, err)
	}
}

func (h *handlers) contact(c *gin.Context) {
	var req domain.ContactMessage
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "invalid contact payload")
		return
	}
	req.ID = ""
	msg, err := h.deps.Contact.Submit(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"id": msg.ID, "message": contactsvc.Acknowledgement})
}
