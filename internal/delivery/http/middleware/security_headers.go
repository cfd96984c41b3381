package middleware

import (
	"net/http"

	"lead-relay-backend/internal/delivery/http/response"
	"lead-relay-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// SecurityHeadersMiddleware adds baseline security headers. No CSP is set because the
// static landing page embeds third-party consent scripts (TrustedForm, Jornaya).
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "SAMEORIGIN")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

// BodyLimit caps request bodies at maxBytes. Oversized bodies fail when read.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes > 0 && c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusRequestEntityTooLarge, "Request body too large")
			c.Abort()
			return
		}
		if maxBytes > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// NotFound renders unknown API routes in the client error shape
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = c.Error(apperror.New(http.StatusNotFound, "Not found", nil))
	}
}
