package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/caixaflow/cash_flow_app/internal/apperrors"
	portssvc "github.com/caixaflow/cash_flow_app/internal/core/ports/services"
	"github.com/caixaflow/cash_flow_app/internal/dto"
	"github.com/caixaflow/cash_flow_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// balanceHandler handles HTTP requests related to the initial balance.
type balanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

func newBalanceHandler(bs portssvc.BalanceSvcFacade) *balanceHandler {
	return &balanceHandler{balanceService: bs}
}

// RegisterBalanceRoutes registers routes related to the initial balance.
func RegisterBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade) {
	h := newBalanceHandler(balanceService)

	balance := rg.Group("/balance")
	{
		balance.GET("", h.getBalance)
		balance.PUT("", h.setBalance)
	}
}

// getBalance godoc
// @Summary Get initial balance
// @Description Retrieves the logged-in user's initial balance
// @Tags balance
// @Produce  json
// @Success 200 {object} dto.BalanceResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Balance not set"
// @Security BearerAuth
// @Router /balance [get]
func (h *balanceHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	balance, err := h.balanceService.GetInitialBalance(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Initial balance not set"})
			return
		}
		logger.Error("Failed to get initial balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve balance"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceResponse(balance))
}

// setBalance godoc
// @Summary Set initial balance
// @Description Creates or replaces the logged-in user's initial balance
// @Tags balance
// @Accept  json
// @Produce  json
// @Param   balance body dto.SetBalanceRequest true "Balance amount"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} ErrorResponse "Invalid input format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /balance [put]
func (h *balanceHandler) setBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SetBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	balance, err := h.balanceService.SetInitialBalance(c.Request.Context(), userID, req.Amount)
	if err != nil {
		logger.Error("Failed to set initial balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to set balance"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceResponse(balance))
}
