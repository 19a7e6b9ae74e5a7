package stubserver

import (
	"net/http"

	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// response is the uniform envelope of every endpoint.
type response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// ok writes a successful envelope.
func ok(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// fail writes a failed envelope.
func fail(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, response{
		Success: false,
		Message: message,
	})
}

// failWith writes a failed envelope from a domain error.
func failWith(c echo.Context, appErr domainerrors.AppError) error {
	return fail(c, appErr.HTTPCode(), appErr.Message())
}
