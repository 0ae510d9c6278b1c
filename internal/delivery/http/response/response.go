// Package response holds the error envelope shared by all handlers.
// Success bodies are endpoint-specific and written bare; only failures use
// the envelope.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the JSON shape of every failed request.
type ErrorBody struct {
	Error *ErrorInfo `json:"error"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "TODO_NOT_FOUND"
	Message string `json:"message"` // User-friendly message
}

// Error writes an error response
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorBody{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
		},
	})
}
