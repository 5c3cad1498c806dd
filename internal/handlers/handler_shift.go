package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	portssvc "github.com/SscSPs/pos_shift_app/internal/core/ports/services"
	"github.com/SscSPs/pos_shift_app/internal/dto"
	"github.com/SscSPs/pos_shift_app/internal/middleware"
	"github.com/SscSPs/pos_shift_app/internal/report"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// shiftHandler handles HTTP requests related to cash-drawer shifts.
type shiftHandler struct {
	shiftService    portssvc.ShiftSvcFacade
	eventService    portssvc.ShiftEventSvc
	reconciler      portssvc.ReconcilerSvc
	operatorService portssvc.OperatorSvc
	renderer        *report.Renderer
	currencyCode    string
}

// newShiftHandler creates a new shiftHandler.
func newShiftHandler(services *portssvc.ServiceContainer, renderer *report.Renderer, currencyCode string) *shiftHandler {
	return &shiftHandler{
		shiftService:    services.Shift,
		eventService:    services.Events,
		reconciler:      services.Reconciler,
		operatorService: services.Operators,
		renderer:        renderer,
		currencyCode:    currencyCode,
	}
}

// registerShiftRoutes registers routes related to shifts.
func registerShiftRoutes(rg *gin.RouterGroup, h *shiftHandler) {
	view := middleware.RequirePermission(domain.PermShiftView)

	shifts := rg.Group("/shifts")
	{
		shifts.POST("", middleware.RequirePermission(domain.PermShiftOpen), h.openShift)
		shifts.GET("", view, h.listShifts)
		shifts.GET("/current", view, h.getCurrentShift)

		shift := shifts.Group("/:shiftID")
		{
			shift.GET("", view, h.getShift)
			shift.GET("/summary", view, h.getSummary)
			shift.GET("/events", view, h.listEvents)
			shift.GET("/report", view, h.getReport)
			shift.POST("/cash-drops", middleware.RequirePermission(domain.PermShiftCashDrop), h.recordCashDrop)
			shift.POST("/close", middleware.RequirePermission(domain.PermShiftClose), h.closeShift)
		}
	}

	rg.GET("/operators/:operatorID/open-shift", middleware.RequirePermission(domain.PermShiftViewAny), h.getOperatorOpenShift)
}

// loadOwnedShift fetches the path shift and enforces that it belongs to the caller
// unless the caller may view any shift. It writes the error response itself.
func (h *shiftHandler) loadOwnedShift(c *gin.Context, action string) (*domain.Shift, string, bool) {
	operatorID, ok := callerID(c)
	if !ok {
		return nil, "", false
	}

	shiftID := c.Param("shiftID")
	shift, err := h.shiftService.GetShift(c.Request.Context(), shiftID)
	if err != nil {
		respondWithError(c, err, action)
		return nil, "", false
	}

	if shift.OperatorID != operatorID && !middleware.HasPermission(c, domain.PermShiftViewAny) {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Shift belongs to another operator",
			slog.String("shift_id", shiftID), slog.String("owner_id", shift.OperatorID))
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Shift belongs to another operator"})
		return nil, "", false
	}
	return shift, operatorID, true
}

// openShift godoc
// @Summary Open a shift
// @Description Starts a shift for the caller with the counted opening float.
// @Tags shifts
// @Accept json
// @Produce json
// @Param shift body dto.OpenShiftRequest true "Opening float"
// @Success 201 {object} dto.ShiftResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Operator already has an open shift"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shifts [post]
func (h *shiftHandler) openShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operatorID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.OpenShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for OpenShift", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	shift, err := h.shiftService.OpenShift(c.Request.Context(), operatorID, req)
	if err != nil {
		respondWithError(c, err, "open shift")
		return
	}

	logger.Info("Shift opened", slog.String("shift_id", shift.ShiftID))
	c.JSON(http.StatusCreated, dto.ToShiftResponse(shift))
}

// getCurrentShift godoc
// @Summary Caller's open shift
// @Tags shifts
// @Produce json
// @Success 200 {object} dto.ShiftResponse
// @Failure 404 {object} ErrorResponse "No open shift"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shifts/current [get]
func (h *shiftHandler) getCurrentShift(c *gin.Context) {
	operatorID, ok := callerID(c)
	if !ok {
		return
	}
	h.respondWithOpenShift(c, operatorID)
}

// getOperatorOpenShift godoc
// @Summary An operator's open shift
// @Description Managers look up the open shift of any operator.
// @Tags shifts
// @Produce json
// @Param operatorID path string true "Operator ID"
// @Success 200 {object} dto.ShiftResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No open shift"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /operators/{operatorID}/open-shift [get]
func (h *shiftHandler) getOperatorOpenShift(c *gin.Context) {
	h.respondWithOpenShift(c, c.Param("operatorID"))
}

func (h *shiftHandler) respondWithOpenShift(c *gin.Context, operatorID string) {
	shift, err := h.shiftService.FindOpenShift(c.Request.Context(), operatorID)
	if err != nil {
		respondWithError(c, err, "find open shift")
		return
	}
	if shift == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "No open shift"})
		return
	}
	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// listShifts godoc
// @Summary List shift history
// @Description Newest first. operatorID defaults to the caller and requires shift:view_any otherwise.
// @Tags shifts
// @Produce json
// @Param operatorID query string false "Operator ID"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListShiftsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shifts [get]
func (h *shiftHandler) listShifts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	callerOperatorID, ok := callerID(c)
	if !ok {
		return
	}

	var params dto.ListShiftsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListShifts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	operatorID := callerOperatorID
	if params.OperatorID != "" && params.OperatorID != callerOperatorID {
		if !middleware.HasPermission(c, domain.PermShiftViewAny) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Missing permission " + string(domain.PermShiftViewAny)})
			return
		}
		operatorID = params.OperatorID
	}

	resp, err := h.shiftService.ListShifts(c.Request.Context(), operatorID, params)
	if err != nil {
		respondWithError(c, err, "list shifts")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getShift godoc
// @Summary Get a shift
// @Tags shifts
// @Produce json
// @Param shiftID path string true "Shift ID"
// @Success 200 {object} dto.ShiftResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shifts/{shiftID} [get]
func (h *shiftHandler) getShift(c *gin.Context) {
	shift, _, ok := h.loadOwnedShift(c, "get shift")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// getSummary godoc
// @Summary Live reconciliation of a shift
// @Description Recomputes the expected drawer balance. counted previews the variance without closing.
// @Tags shifts
// @Produce json
// @Param shiftID path string true "Shift ID"
// @Param counted query string false "Counted cash"
// @Success 200 {object} dto.ShiftSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shifts/{shiftID}/summary [get]
func (h *shiftHandler) getSummary(c *gin.Context) {
	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	var counted *decimal.Decimal
	if params.Counted != nil {
		d, err := decimal.NewFromString(*params.Counted)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("Invalid counted amount %q", *params.Counted)})
			return
		}
		counted = &d
	}

	shift, _, ok := h.loadOwnedShift(c, "compute summary")
	if !ok {
		return
	}

	summary, err := h.reconciler.ComputeSummary(c.Request.Context(), shift.ShiftID)
	if err != nil {
		respondWithError(c, err, "compute summary")
		return
	}

	resp := dto.ShiftSummaryResponse{ReconciliationSummary: *summary, CurrencyCode: h.currencyCode}
	if counted != nil {
		v := h.reconciler.Variance(*counted, summary.ExpectedBalance)
		resp.Variance = &v
	}
	c.JSON(http.StatusOK, resp)
}

// listEvents godoc
// @Summary Drawer events of a shift
// @Tags shifts
// @Produce json
// @Param shiftID path string true "Shift ID"
// @Success 200 {object} dto.ListShiftEventsResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shifts/{shiftID}/events [get]
func (h *shiftHandler) listEvents(c *gin.Context) {
	shift, _, ok := h.loadOwnedShift(c, "list shift events")
	if !ok {
		return
	}
	events, err := h.eventService.ListShiftEvents(c.Request.Context(), shift.ShiftID)
	if err != nil {
		respondWithError(c, err, "list shift events")
		return
	}
	c.JSON(http.StatusOK, dto.ToListShiftEventsResponse(events))
}

// recordCashDrop godoc
// @Summary Record a cash drop
// @Description Removes cash from the drawer of an open shift.
// @Tags shifts
// @Accept json
// @Produce json
// @Param shiftID path string true "Shift ID"
// @Param drop body dto.CashDropRequest true "Drop"
// @Success 201 {object} dto.ShiftEventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Shift is closed"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shifts/{shiftID}/cash-drops [post]
func (h *shiftHandler) recordCashDrop(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CashDropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordCashDrop", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	shift, operatorID, ok := h.loadOwnedShift(c, "record cash drop")
	if !ok {
		return
	}

	event, err := h.eventService.RecordCashDrop(c.Request.Context(), shift.ShiftID, req, operatorID)
	if err != nil {
		respondWithError(c, err, "record cash drop")
		return
	}

	logger.Info("Cash drop recorded", slog.String("shift_id", shift.ShiftID), slog.String("event_id", event.EventID))
	c.JSON(http.StatusCreated, dto.ToShiftEventResponse(event))
}

// closeShift godoc
// @Summary Close a shift
// @Description Reconciles the drawer against the counted cash and closes the shift.
// @Tags shifts
// @Accept json
// @Produce json
// @Param shiftID path string true "Shift ID"
// @Param close body dto.CloseShiftRequest true "Counted cash"
// @Success 200 {object} dto.ShiftResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Shift already closed"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shifts/{shiftID}/close [post]
func (h *shiftHandler) closeShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CloseShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CloseShift", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	shift, operatorID, ok := h.loadOwnedShift(c, "close shift")
	if !ok {
		return
	}

	closed, err := h.shiftService.CloseShift(c.Request.Context(), shift.ShiftID, req, operatorID)
	if err != nil {
		respondWithError(c, err, "close shift")
		return
	}

	resp := dto.ToShiftResponse(closed)
	if resp.Variance != nil {
		logger.Info("Shift closed", slog.String("shift_id", closed.ShiftID), slog.String("variance", resp.Variance.Amount.String()))
	}
	c.JSON(http.StatusOK, resp)
}

// getReport godoc
// @Summary Printable shift report
// @Description X-report for an open shift, Z-report for a closed one.
// @Tags shifts
// @Produce plain
// @Param shiftID path string true "Shift ID"
// @Success 200 {string} string
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shifts/{shiftID}/report [get]
func (h *shiftHandler) getReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shift, _, ok := h.loadOwnedShift(c, "render report")
	if !ok {
		return
	}

	in := report.Input{Shift: *shift, OperatorName: shift.OperatorID, PrintedAt: time.Now().UTC()}
	if operator, err := h.operatorService.GetOperator(c.Request.Context(), shift.OperatorID); err == nil {
		in.OperatorName = operator.Name
	} else {
		logger.Warn("Operator lookup failed for report", slog.String("operator_id", shift.OperatorID), slog.String("error", err.Error()))
	}

	if shift.IsOpen() {
		summary, err := h.reconciler.ComputeSummary(c.Request.Context(), shift.ShiftID)
		if err != nil {
			respondWithError(c, err, "render report")
			return
		}
		in.Summary = summary
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, in); err != nil {
		respondWithError(c, err, "render report")
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}
