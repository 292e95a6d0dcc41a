// Package response writes the JSON bodies of successful requests.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// OK writes body with 200.
func OK(c echo.Context, body any) error {
	return c.JSON(http.StatusOK, body)
}

// Created writes body with 201.
func Created(c echo.Context, body any) error {
	return c.JSON(http.StatusCreated, body)
}

// NoContent writes an empty 204.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
