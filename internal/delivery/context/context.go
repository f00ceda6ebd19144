// Package context carries request-scoped values between echo handlers and the usecase layer.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyCallerEmail holds the email verified from the bearer token.
	KeyCallerEmail ContextKey = "caller_email"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID.
func GetRequestID(c echo.Context) string {
	val := c.Get(string(KeyRequestID))
	if id, ok := val.(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request ID, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger extracts the request-scoped logger from context.Context.
// If not found, returns nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when there is none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetCallerEmail stores the authenticated email on both the echo context and the request context.
func SetCallerEmail(c echo.Context, email string) {
	c.Set(string(KeyCallerEmail), email)
	c.SetRequest(c.Request().WithContext(WithCallerEmail(c.Request().Context(), email)))
}

// GetCallerEmail returns the authenticated email set by the auth middleware.
func GetCallerEmail(c echo.Context) (string, bool) {
	email, ok := c.Get(string(KeyCallerEmail)).(string)

	return email, ok && email != ""
}

// WithCallerEmail returns a new context carrying the caller's email.
func WithCallerEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, KeyCallerEmail, email)
}

// GetCallerEmailFromContext returns the caller's email, or "" for anonymous requests.
func GetCallerEmailFromContext(ctx context.Context) string {
	if email, ok := ctx.Value(KeyCallerEmail).(string); ok {
		return email
	}

	return ""
}
