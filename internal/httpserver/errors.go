package httpserver

import (
	"errors"
	"net/http"

	"ethela-storefront/internal/domain"
	identitysvc "ethela-storefront/internal/service/identity"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type errorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func errorBody(status int, msg string) errorResponse {
	return errorResponse{StatusCode: status, Message: msg}
}

// writeError maps service errors onto HTTP statuses.
func (h *handlers) writeError(c *gin.Context, err error) {
	status, msg := http.StatusInternalServerError, "internal error"
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrNotFound):
		status, msg = http.StatusNotFound, "not found"
	case errors.Is(err, domain.ErrAlreadyExists):
		status, msg = http.StatusConflict, err.Error()
	case errors.Is(err, identitysvc.ErrInvalidCredentials):
		status, msg = http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, identitysvc.ErrInvalidToken):
		status, msg = http.StatusUnauthorized, "invalid or expired session"
	case errors.Is(err, domain.ErrUnauthenticated):
		status, msg = http.StatusUnauthorized, "authentication required"
	default:
		h.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.AbortWithStatusJSON(status, errorBody(status, msg))
}

func (h *handlers) badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, msg))
}
