package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caixaflow/cash_flow_app/internal/apperrors"
	"github.com/caixaflow/cash_flow_app/internal/core/domain"
	"github.com/caixaflow/cash_flow_app/internal/core/ledger"
	portsrepo "github.com/caixaflow/cash_flow_app/internal/core/ports/repositories"
	portssvc "github.com/caixaflow/cash_flow_app/internal/core/ports/services"
	"github.com/caixaflow/cash_flow_app/internal/dto"
	"github.com/caixaflow/cash_flow_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const maxTransactionPageSize = 100

// transactionService implements the TransactionSvcFacade.
type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepository
}

// NewTransactionService creates a new transaction service backed by the given repository.
func NewTransactionService(txnRepo portsrepo.TransactionRepository) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// parseTxnDate parses a YYYY-MM-DD wire date into a date-only UTC time.
func parseTxnDate(s string) (time.Time, error) {
	d, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be in YYYY-MM-DD format", apperrors.ErrValidation)
	}
	return d, nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	return nil
}

// CreateTransaction validates and records a new transaction for the user.
func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: description must not be blank", apperrors.ErrValidation)
	}
	txnDate, err := parseTxnDate(req.Date)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Type:          domain.TransactionType(req.Type),
		Amount:        req.Amount,
		Description:   strings.TrimSpace(req.Description),
		Date:          txnDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	switch txn.Type {
	case domain.Income:
		if req.Category != nil || req.FixedSubcategory != nil {
			return nil, fmt.Errorf("%w: income transactions cannot carry expense fields", apperrors.ErrValidation)
		}
		details := &domain.IncomeDetails{}
		if req.PaymentMethod != nil {
			method := domain.PaymentMethod(*req.PaymentMethod)
			if !domain.ValidPaymentMethod(method) {
				return nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, *req.PaymentMethod)
			}
			details.PaymentMethod = method
		}
		txn.Income = details
	case domain.Expense:
		if req.PaymentMethod != nil {
			return nil, fmt.Errorf("%w: expense transactions cannot carry a payment method", apperrors.ErrValidation)
		}
		if req.Category == nil {
			return nil, fmt.Errorf("%w: expense transactions require a category", apperrors.ErrValidation)
		}
		category := domain.ExpenseCategory(*req.Category)
		if !domain.ValidExpenseCategory(category) {
			return nil, fmt.Errorf("%w: unknown expense category %q", apperrors.ErrValidation, *req.Category)
		}
		if req.FixedSubcategory != nil && category != domain.CategoryFixed {
			return nil, fmt.Errorf("%w: fixedSubcategory is only valid for fixed expenses", apperrors.ErrValidation)
		}
		txn.Expense = &domain.ExpenseDetails{
			Category:         category,
			FixedSubcategory: req.FixedSubcategory,
		}
	default:
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, req.Type)
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("reference_month", txn.ReferenceMonth()))
	return &txn, nil
}

// GetTransactionByID retrieves one transaction owned by userID.
// Transactions owned by other users report as not found to obscure existence.
func (s *transactionService) GetTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	if txn.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	return txn, nil
}

// ListTransactions retrieves one page of the user's transactions, newest first.
func (s *transactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > maxTransactionPageSize {
		limit = maxTransactionPageSize
	}

	var afterDate, afterCreatedAt time.Time
	if params.NextToken != "" {
		var err error
		afterDate, afterCreatedAt, err = pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
	}

	// Optional period narrowing, anchored to today like the overview report.
	var fromDate time.Time
	if params.Period != "" {
		now := time.Now().UTC().Truncate(24 * time.Hour)
		fromDate, _ = ledger.LowerBound(ledger.ParsePeriod(params.Period), now)
	}

	// Fetch one extra row to know whether another page exists.
	txns, err := s.txnRepo.ListTransactions(ctx, userID, limit+1, fromDate, afterDate, afterCreatedAt)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	response := &dto.ListTransactionsResponse{}
	if len(txns) > limit {
		last := txns[limit-1]
		token := pagination.EncodeToken(last.Date, last.CreatedAt)
		response.NextToken = &token
		txns = txns[:limit]
	}
	response.Transactions = dto.ToTransactionResponses(txns)

	return response, nil
}

// UpdateTransaction applies a partial patch to a transaction. The transaction
// type is immutable; type-specific fields are validated against it.
func (s *transactionService) UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.GetTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if err := validateAmount(*req.Amount); err != nil {
			return nil, err
		}
		txn.Amount = *req.Amount
	}
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return nil, fmt.Errorf("%w: description must not be blank", apperrors.ErrValidation)
		}
		txn.Description = strings.TrimSpace(*req.Description)
	}
	if req.Date != nil {
		txnDate, err := parseTxnDate(*req.Date)
		if err != nil {
			return nil, err
		}
		txn.Date = txnDate
	}

	if req.PaymentMethod != nil {
		if !txn.IsIncome() {
			return nil, fmt.Errorf("%w: payment method only applies to income transactions", apperrors.ErrValidation)
		}
		method := domain.PaymentMethod(*req.PaymentMethod)
		if !domain.ValidPaymentMethod(method) {
			return nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, *req.PaymentMethod)
		}
		txn.Income.PaymentMethod = method
	}
	if req.Category != nil {
		if !txn.IsExpense() {
			return nil, fmt.Errorf("%w: category only applies to expense transactions", apperrors.ErrValidation)
		}
		category := domain.ExpenseCategory(*req.Category)
		if !domain.ValidExpenseCategory(category) {
			return nil, fmt.Errorf("%w: unknown expense category %q", apperrors.ErrValidation, *req.Category)
		}
		txn.Expense.Category = category
		if category != domain.CategoryFixed {
			txn.Expense.FixedSubcategory = nil
		}
	}
	if req.FixedSubcategory != nil {
		if !txn.IsFixedExpense() {
			return nil, fmt.Errorf("%w: fixedSubcategory is only valid for fixed expenses", apperrors.ErrValidation)
		}
		txn.Expense.FixedSubcategory = req.FixedSubcategory
	}

	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = userID

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction updated",
		slog.String("transaction_id", transactionID),
		slog.String("reference_month", txn.ReferenceMonth()))
	return txn, nil
}

// DeleteTransaction permanently removes a transaction owned by userID.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	if _, err := s.GetTransactionByID(ctx, userID, transactionID); err != nil {
		return err
	}

	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
