package dto

import (
	"time"

	"github.com/caixaflow/cash_flow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetBalanceRequest defines the data needed to set the initial balance.
type SetBalanceRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// BalanceResponse defines the data returned for the initial balance.
type BalanceResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ToBalanceResponse converts a domain.InitialBalance to BalanceResponse DTO.
func ToBalanceResponse(b *domain.InitialBalance) BalanceResponse {
	return BalanceResponse{
		Amount:    b.Amount,
		UpdatedAt: b.LastUpdatedAt,
	}
}
