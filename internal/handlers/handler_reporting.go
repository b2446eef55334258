package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/caixaflow/cash_flow_app/internal/apperrors"
	"github.com/caixaflow/cash_flow_app/internal/core/ledger"
	portssvc "github.com/caixaflow/cash_flow_app/internal/core/ports/services"
	"github.com/caixaflow/cash_flow_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for the aggregated dashboard reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// RegisterReportingRoutes registers the reporting routes.
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/overview", h.getOverview)
		reports.GET("/months/:month", h.getMonthDetail)
	}
}

// getOverview godoc
// @Summary Get dashboard overview
// @Description Returns the period summary and the monthly running ledger for the logged-in user
// @Tags reports
// @Produce  json
// @Param   period query string false "Period filter: all, last_month or last_week (default all)"
// @Success 200 {object} dto.OverviewResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/overview [get]
func (h *reportingHandler) getOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	// Unknown period values fall back to "all" rather than erroring.
	period := ledger.ParsePeriod(c.Query("period"))

	resp, err := h.reportingService.GetOverview(c.Request.Context(), userID, period)
	if err != nil {
		logger.Error("Failed to generate overview report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate report"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getMonthDetail godoc
// @Summary Get month drill-down
// @Description Returns the income and expense breakdown for one reference month
// @Tags reports
// @Produce  json
// @Param   month path string true "Reference month (YYYY-MM)"
// @Success 200 {object} dto.MonthDetailResponse
// @Failure 400 {object} ErrorResponse "Invalid month format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/months/{month} [get]
func (h *reportingHandler) getMonthDetail(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	month := c.Param("month")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	resp, err := h.reportingService.GetMonthDetail(c.Request.Context(), userID, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to generate month detail report", slog.String("error", err.Error()), slog.String("month", month))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate report"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
