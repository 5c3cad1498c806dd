package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	"github.com/SscSPs/pos_shift_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionChecker reports whether a session is still live. Tokens of ended sessions
// are rejected even before they expire.
type SessionChecker interface {
	IsActive(sessionID string) bool
}

// AuthMiddleware creates a Gin middleware handler that validates session tokens.
func AuthMiddleware(jwtSecret string, sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := utils.ParseSessionJWT(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", "error", err)
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		operatorID := claims.Subject
		sessionID := claims.ID
		if operatorID == "" || sessionID == "" {
			logger.Error("Subject or session ID missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		if sessions != nil && !sessions.IsActive(sessionID) {
			logger.Warn("Token presented for an ended session", slog.String("session_id", sessionID))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session has ended"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), operatorIDKey, operatorID)
		ctx = context.WithValue(ctx, sessionIDKey, sessionID)
		ctx = context.WithValue(ctx, permissionsKey, claims.Permissions)

		enrichedLogger := logger.With(
			slog.String("user_id", operatorID),
			slog.String("session_id", sessionID),
		)
		c.Request = c.Request.WithContext(WithLogger(ctx, enrichedLogger))

		c.Next()
	}
}

// RequirePermission rejects callers whose token does not carry perm.
// It must run after AuthMiddleware.
func RequirePermission(perm domain.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !slices.Contains(GetPermissionsFromContext(c), perm) {
			GetLoggerFromCtx(c.Request.Context()).Warn("Permission denied", slog.String("permission", string(perm)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Missing permission " + string(perm)})
			return
		}
		c.Next()
	}
}

// HasPermission reports whether the caller's token carries perm.
func HasPermission(c *gin.Context, perm domain.Permission) bool {
	return slices.Contains(GetPermissionsFromContext(c), perm)
}
