package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses. Details carries
// caller-safe text only; store and driver errors are logged, never echoed.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware that catches panics and returns a structured error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response.
func JSONError(c *gin.Context, status int, message string, details string) {
	GetLogger().Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}
