// Package response writes the JSON bodies of the HTTP API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed request: {"error":{"message":...}}.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
}

// ErrorInfo carries the client-facing message only. Error codes and request IDs
// travel in logs and the X-Request-Id header.
type ErrorInfo struct {
	Message string `json:"message"`
}

// ResultResponse is the acknowledgement body of write endpoints without a payload.
type ResultResponse struct {
	Result string `json:"result"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Result returns {"result": result} with status 200.
func Result(c echo.Context, result string) error {
	return c.JSON(http.StatusOK, ResultResponse{Result: result})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Message: message,
		},
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, message)
}
