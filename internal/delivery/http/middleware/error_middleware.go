// Package middleware holds the echo middleware of the HTTP delivery.
package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "recipebox/internal/delivery/context"
	domainerrors "recipebox/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders every handler error as {"error": message}.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}
		m.write(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}
		m.write(c, domainerrors.NewBaseError(httpErr.Code, "HTTP_ERROR", message))

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.write(c, domainerrors.ErrInternalError)
}

func (m *ErrorMiddleware) write(c echo.Context, appErr domainerrors.AppError) {
	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(appErr.HTTPCode())
	} else {
		writeErr = c.JSON(appErr.HTTPCode(), domainerrors.NewErrorResponse(appErr))
	}

	if writeErr != nil {
		m.logger.Warn("Failed to write error response", slog.Any("error", writeErr))
	}
}
