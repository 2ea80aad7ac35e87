package handlers

import (
	"github.com/labstack/echo/v4"
)

// errorJSON writes the uniform error envelope used by every endpoint.
func errorJSON(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"error": msg})
}
