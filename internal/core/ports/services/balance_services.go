package services

import (
	"context"

	"github.com/caixaflow/cash_flow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceSvcFacade manages the user's initial balance, the anchor every
// running-balance computation starts from.
type BalanceSvcFacade interface {
	// GetInitialBalance returns the user's initial balance, or
	// apperrors.ErrNotFound when none has been set yet.
	GetInitialBalance(ctx context.Context, userID string) (*domain.InitialBalance, error)

	// SetInitialBalance creates or replaces the user's initial balance.
	SetInitialBalance(ctx context.Context, userID string, amount decimal.Decimal) (*domain.InitialBalance, error)
}
