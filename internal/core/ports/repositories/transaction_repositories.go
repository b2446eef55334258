package repositories

import (
	"context"
	"time"

	"github.com/caixaflow/cash_flow_app/internal/core/domain"
)

// TransactionRepository defines persistence operations for cash-flow transactions.
// Callers must not assume any particular order from FindTransactionsByUser;
// the aggregation engine re-sorts as needed.
type TransactionRepository interface {
	// SaveTransaction inserts a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// FindTransactionByID retrieves a single transaction.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactionsByUser retrieves the full transaction list for a user.
	FindTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error)

	// ListTransactions retrieves one page of a user's transactions ordered by
	// (date, created_at) descending, resuming after the cursor position when
	// afterDate/afterCreatedAt are non-zero. A non-zero fromDate keeps only
	// transactions dated on or after it (inclusive).
	ListTransactions(ctx context.Context, userID string, limit int, fromDate time.Time, afterDate time.Time, afterCreatedAt time.Time) ([]domain.Transaction, error)

	// UpdateTransaction persists changes to an existing transaction,
	// recomputing the reference_month projection from the new date.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction permanently (no soft delete).
	DeleteTransaction(ctx context.Context, transactionID string) error
}
