// Package response shapes the JSON bodies of the HTTP API.
//
// The contract is small: successes carry either a "message" or an operation
// payload, client errors (4xx) carry a "message", and server errors (5xx)
// carry a generic "error" string. Internal detail never reaches a body.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// MessageBody is the `{message}` success/failure shape.
type MessageBody struct {
	Message string `json:"message"`
}

// ErrorBody is the `{error}` shape used for server-side failures.
type ErrorBody struct {
	Error string `json:"error"`
}

// Message writes a `{message}` body with the given status.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Message: message})
}

// JSON writes an operation payload as-is with the given status.
func JSON(c echo.Context, statusCode int, payload any) error {
	return c.JSON(statusCode, payload)
}

// Failure writes the failure shape for a status: `{error}` for 5xx,
// `{message}` otherwise.
func Failure(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	if statusCode >= http.StatusInternalServerError {
		return c.JSON(statusCode, ErrorBody{Error: message})
	}

	return c.JSON(statusCode, MessageBody{Message: message})
}

// BadRequest writes a 400 `{message}` body.
func BadRequest(c echo.Context, message string) error {
	return Failure(c, http.StatusBadRequest, message)
}

// Unauthorized writes a 401 `{message}` body.
func Unauthorized(c echo.Context, message string) error {
	return Failure(c, http.StatusUnauthorized, message)
}
