package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"ethela-storefront/internal/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	principalKey = "principal"
	tokenKey     = "token"
)

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

func recoveryHandler(logger *zap.Logger) gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		logger.Error("panic recovered", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody(http.StatusInternalServerError, "internal error"))
	}
}

// authenticate resolves a bearer token into a principal when one is present.
// Requests with a rejected token continue anonymously; store failures abort with 500.
func (h *handlers) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.Next()
			return
		}
		c.Set(tokenKey, token)
		p, err := h.deps.Identity.Current(c.Request.Context(), token)
		switch {
		case err == nil && p != nil:
			c.Set(principalKey, *p)
		case err != nil && !errors.Is(err, domain.ErrUnauthenticated):
			h.writeError(c, err)
			return
		}
		c.Next()
	}
}

func requirePrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := principalFrom(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody(http.StatusUnauthorized, "authentication required"))
			return
		}
		c.Next()
	}
}

func requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := principalFrom(c)
		if !p.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, errorBody(http.StatusForbidden, "admin role required"))
			return
		}
		c.Next()
	}
}

func principalFrom(c *gin.Context) (domain.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return domain.Principal{}, false
	}
	p, ok := v.(domain.Principal)
	return p, ok
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
