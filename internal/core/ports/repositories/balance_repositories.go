package repositories

import (
	"context"

	"github.com/caixaflow/cash_flow_app/internal/core/domain"
)

// BalanceRepository defines persistence operations for the per-user initial balance.
type BalanceRepository interface {
	// FindInitialBalanceByUser retrieves the user's initial balance, or
	// apperrors.ErrNotFound when none has been set yet.
	FindInitialBalanceByUser(ctx context.Context, userID string) (*domain.InitialBalance, error)

	// UpsertInitialBalance inserts the balance row on first setup and
	// overwrites the amount on every later call. There is never more than one
	// row per user and the row is never deleted. The returned balance is the
	// stored row, which keeps its original identity and creation audit fields
	// across overwrites.
	UpsertInitialBalance(ctx context.Context, balance domain.InitialBalance) (*domain.InitialBalance, error)
}
