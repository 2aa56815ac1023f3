package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "inkwell/internal/delivery/context"
	"inkwell/internal/delivery/http/response"
	domainerrors "inkwell/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnhandled(c, err)
		}
		m.write(c, response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details()))

		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		m.write(c, response.Error(c, http.StatusBadRequest,
			domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(),
			validationErrs.Error()))

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprint(httpErr.Message)
		m.write(c, response.Error(c, httpErr.Code, "HTTP_ERROR", message, message))

		return
	}

	m.logUnhandled(c, err)
	m.write(c, response.InternalServerError(c,
		domainerrors.ErrInternalError.ErrorCode(),
		domainerrors.ErrInternalError.Message()))
}

func (m *ErrorMiddleware) logUnhandled(c echo.Context, err error) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}

func (m *ErrorMiddleware) write(c echo.Context, err error) {
	if err != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}
