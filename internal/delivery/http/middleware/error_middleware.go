package middleware

import (
	"errors"
	"net/http"

	"lead-relay-backend/internal/delivery/http/response"
	"lead-relay-backend/pkg/apperror"
	"lead-relay-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error pushed with c.Error. Client errors become
// {error}; server faults become {success:false, error, details}.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			// Never expose internal error details to clients
			appErr = apperror.Internal(err)
		}

		if appErr.Code >= http.StatusInternalServerError {
			logger.Log.Error("Request failed",
				"kind", appErr.Kind,
				"error", appErr.Err,
				"path", c.Request.URL.Path,
				"request_id", c.GetString(RequestIDKey),
			)
			response.Fail(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}
		response.Error(c, appErr.Code, appErr.Message)
	}
}

// Recovery turns a panic into the standard server fault response
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Log.Error("Panic recovered",
			"panic", recovered,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(RequestIDKey),
		)
		response.Fail(c, http.StatusInternalServerError, "Unexpected error occurred", nil)
		c.Abort()
	})
}
