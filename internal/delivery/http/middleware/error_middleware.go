package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"todoapp/config"
	"todoapp/internal/delivery/http/response"
	"todoapp/internal/delivery/http/validator"
	domainerrors "todoapp/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware maps errors escaping the handlers to the response envelope.
// It is the single place where the error taxonomy turns into status codes.
type ErrorMiddleware struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(cfg *config.Config, logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		cfg:    cfg,
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var vErr *validator.Error
	if errors.As(err, &vErr) {
		_ = response.ValidationFailed(c, vErr.Messages)

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), m.details(appErr.Details()))

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", fmt.Sprintf("%v", httpErr.Message), "")

		return
	}

	// Unclassified fault. Full detail stays in the server log; the client
	// sees the raw error only when debug mode is on.
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", m.details(err.Error()))
}

// details passes detail text through only in debug mode.
func (m *ErrorMiddleware) details(detail string) string {
	if m.cfg.Env.Debug {
		return detail
	}

	return ""
}
