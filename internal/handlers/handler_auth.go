package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pos_shift_app/internal/core/ports/services"
	"github.com/SscSPs/pos_shift_app/internal/dto"
	"github.com/SscSPs/pos_shift_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles till login and logout.
type authHandler struct {
	authService portssvc.AuthSvc
}

func newAuthHandler(as portssvc.AuthSvc) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the public login route. Logout lives in the protected group.
func registerAuthRoutes(r *gin.Engine, h *authHandler, loginLimit gin.HandlerFunc) {
	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", loginLimit, h.login)
	}
}

// login godoc
// @Summary Operator PIN login
// @Description Authenticates an operator and starts a till session. An open shift is resumed.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind login request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "log in")
		return
	}

	logger.Info("Operator logged in", slog.String("operator_id", req.OperatorID), slog.String("session_id", resp.SessionID))
	c.JSON(http.StatusOK, resp)
}

// logout godoc
// @Summary End the current session
// @Tags auth
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	if err := h.authService.Logout(c.Request.Context(), sessionID); err != nil {
		respondWithError(c, err, "log out")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Session ended")
	c.Status(http.StatusNoContent)
}
