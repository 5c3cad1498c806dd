package middleware

import (
	"context"
	"log/slog"

	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is used for values stored in the request context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey   = contextKey("logger")
	operatorIDKey  = contextKey("operatorID")
	sessionIDKey   = contextKey("sessionID")
	permissionsKey = contextKey("permissions")
)

// WithLogger returns a copy of ctx carrying logger. Non-HTTP entrypoints use it so
// services log through the same path as requests.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// GetLoggerFromCtx retrieves the request-scoped logger from a standard context.
// It returns the default logger if none is found.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger)
	if !ok || logger == nil {
		return slog.Default()
	}
	return logger
}

// GetOperatorIDFromContext retrieves the authenticated operator ID from the Gin context.
// It returns the operator ID and a boolean indicating if it was found.
func GetOperatorIDFromContext(c *gin.Context) (string, bool) {
	operatorID, ok := c.Request.Context().Value(operatorIDKey).(string)
	if !ok || operatorID == "" {
		return "", false
	}
	return operatorID, true
}

// GetSessionIDFromContext retrieves the session ID (token jti) of the current request.
func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	sessionID, ok := c.Request.Context().Value(sessionIDKey).(string)
	if !ok || sessionID == "" {
		return "", false
	}
	return sessionID, true
}

// GetPermissionsFromContext retrieves the permissions granted to the caller's token.
func GetPermissionsFromContext(c *gin.Context) []domain.Permission {
	perms, _ := c.Request.Context().Value(permissionsKey).([]domain.Permission)
	return perms
}
