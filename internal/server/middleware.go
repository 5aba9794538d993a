package server

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dinewise/pos/internal/auth"
	"github.com/dinewise/pos/internal/models"
)

const (
	ctxUserIDKey = "user_id"
	ctxEmailKey  = "email"
	ctxRoleKey   = "role"
)

// RequireAuth validates the bearer token and stashes the caller's identity
// in the request context.
func RequireAuth(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				envelope{Success: false, Message: "request failed", Error: auth.ErrMissingToken.Error()})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				envelope{Success: false, Message: "request failed", Error: auth.ErrInvalidToken.Error()})
			return
		}

		claims, err := jwtManager.Validate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				envelope{Success: false, Message: "request failed", Error: err.Error()})
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxEmailKey, claims.Email)
		c.Set(ctxRoleKey, string(claims.Role))
		c.Next()
	}
}

// RequireRole gates an endpoint to one staff role. Runs after RequireAuth.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ctxRoleKey) != string(role) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				envelope{Success: false, Message: "request failed", Error: "insufficient permissions"})
			return
		}
		c.Next()
	}
}

// RequestLogger logs every request with its outcome and duration.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"user_id", c.GetString(ctxUserIDKey),
			"duration_ms", time.Since(start).Milliseconds(),
		}
		switch {
		case status >= 500:
			slog.Error("request completed", attrs...)
		case status >= 400:
			slog.Warn("request completed", attrs...)
		default:
			slog.Info("request completed", attrs...)
		}
	}
}
