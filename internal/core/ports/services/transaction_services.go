package services

import (
	"context"

	"github.com/caixaflow/cash_flow_app/internal/core/domain"
	"github.com/caixaflow/cash_flow_app/internal/dto"
)

// TransactionSvcFacade defines operations for managing a user's cash-flow
// transactions. Every operation is scoped to the owning user; a transaction
// is never visible across users.
type TransactionSvcFacade interface {
	// CreateTransaction validates and records a new transaction.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// GetTransactionByID retrieves one transaction owned by userID.
	GetTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves one page of the user's transactions, newest first.
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// UpdateTransaction applies a partial patch to a transaction.
	UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction permanently removes a transaction.
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error
}
