package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/pos_shift_app/internal/core/ports/services"
	"github.com/SscSPs/pos_shift_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type sessionHandler struct {
	sessions portssvc.SessionSvc
}

func registerSessionRoutes(rg *gin.RouterGroup, sessions portssvc.SessionSvc) {
	h := &sessionHandler{sessions: sessions}
	rg.GET("/session", h.getSession)
}

// getSession godoc
// @Summary Current session context
// @Description Returns the caller's session, including the shift it is attached to.
// @Tags session
// @Produce json
// @Success 200 {object} domain.SessionContext
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /session [get]
func (h *sessionHandler) getSession(c *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	session, err := h.sessions.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		respondWithError(c, err, "load session")
		return
	}
	c.JSON(http.StatusOK, session)
}
