package response

import (
	"github.com/gin-gonic/gin"
)

// FailureResponse is sent for server side faults (5xx)
type FailureResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorResponse is sent when the caller has to fix the request (4xx)
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is the body of the health endpoint
type StatusResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    map[string]string `json:"data,omitempty"`
}

// JSON sends any payload as-is
func JSON(c *gin.Context, code int, payload interface{}) {
	c.JSON(code, payload)
}

// Error sends a client error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

// Fail sends a server fault response
func Fail(c *gin.Context, code int, message string, details interface{}) {
	c.JSON(code, FailureResponse{
		Success: false,
		Error:   message,
		Details: details,
	})
}

// Success sends a status response
func Success(c *gin.Context, code int, message string, data map[string]string) {
	c.JSON(code, StatusResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}
