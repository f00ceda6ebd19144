package middleware

import (
	"log/slog"
	"net/http"

	"resale/internal/delivery/api/response"
	"resale/internal/delivery/api/validator"
	deliverycontext "resale/internal/delivery/context"
	domainerrors "resale/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware is the API's echo.HTTPErrorHandler. It renders every error in
// the response envelope and logs only failures the caller cannot fix.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		appErr        domainerrors.AppError
		validationErr *validator.ValidationError
		httpErr       *echo.HTTPError
	)

	switch {
	case errors.As(err, &appErr):
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logFailure(c, err, slog.String("code", appErr.ErrorCode()))
		}
		_ = response.RenderAppError(c, appErr)

	case errors.As(err, &validationErr):
		_ = response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(), validationErr.Messages())

	case errors.As(err, &httpErr):
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

	default:
		m.logFailure(c, err, slog.String("code", domainerrors.ErrInternalError.ErrorCode()))
		_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(),
			"Internal server error, please try again later")
	}
}

func (m *ErrorMiddleware) logFailure(c echo.Context, err error, attrs ...any) {
	req := c.Request()
	attrs = append(attrs,
		slog.Any("error", err),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)
	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).ErrorContext(req.Context(), "Request failed", attrs...)
}
