package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/caixaflow/cash_flow_app/internal/apperrors"
	"github.com/caixaflow/cash_flow_app/internal/core/domain"
	portsrepo "github.com/caixaflow/cash_flow_app/internal/core/ports/repositories"
	"github.com/caixaflow/cash_flow_app/internal/models"
	"github.com/caixaflow/cash_flow_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	db *pgxpool.Pool
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{db: db}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, user_id, type, amount, description, date,
		payment_method, category, fixed_subcategory, reference_month,
		created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.Type,
		&m.Amount,
		&m.Description,
		&m.Date,
		&m.PaymentMethod,
		&m.Category,
		&m.FixedSubcategory,
		&m.ReferenceMonth,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectTransactions(rows pgx.Rows) ([]models.Transaction, error) {
	defer rows.Close()
	modelTxns := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		modelTxns = append(modelTxns, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}
	return modelTxns, nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := mapping.ToModelTransaction(txn)
	query := `
        INSERT INTO transactions (transaction_id, user_id, type, amount, description, date,
            payment_method, category, fixed_subcategory, reference_month,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
    `
	_, err := r.db.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.UserID,
		modelTxn.Type,
		modelTxn.Amount,
		modelTxn.Description,
		modelTxn.Date,
		modelTxn.PaymentMethod,
		modelTxn.Category,
		modelTxn.FixedSubcategory,
		modelTxn.ReferenceMonth,
		modelTxn.CreatedAt,
		modelTxn.CreatedBy,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1;
	`
	modelTxn, err := scanTransaction(r.db.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	domainTxn := mapping.ToDomainTransaction(*modelTxn)
	return &domainTxn, nil
}

func (r *PgxTransactionRepository) FindTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE user_id = $1
        ORDER BY date ASC, created_at ASC;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}

	modelTxns, err := collectTransactions(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string, limit int, fromDate time.Time, afterDate time.Time, afterCreatedAt time.Time) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = 20
	}

	conditions := "user_id = $1"
	args := []any{userID}
	if !fromDate.IsZero() {
		args = append(args, fromDate)
		conditions += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if !afterDate.IsZero() {
		// Keyset pagination over the listing order (date DESC, created_at DESC).
		args = append(args, afterDate, afterCreatedAt)
		conditions += fmt.Sprintf(" AND (date, created_at) < ($%d, $%d)", len(args)-1, len(args))
	}
	args = append(args, limit)

	query := fmt.Sprintf(`
        SELECT `+transactionColumns+`
        FROM transactions
        WHERE %s
        ORDER BY date DESC, created_at DESC
        LIMIT $%d;
    `, conditions, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction page: %w", err)
	}

	modelTxns, err := collectTransactions(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	// ToModelTransaction recomputes reference_month from the new date, so a
	// date move can never leave the projection stale.
	modelTxn := mapping.ToModelTransaction(txn)
	query := `
        UPDATE transactions
        SET amount = $1, description = $2, date = $3,
            payment_method = $4, category = $5, fixed_subcategory = $6, reference_month = $7,
            last_updated_at = $8, last_updated_by = $9
        WHERE transaction_id = $10;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		modelTxn.Amount,
		modelTxn.Description,
		modelTxn.Date,
		modelTxn.PaymentMethod,
		modelTxn.Category,
		modelTxn.FixedSubcategory,
		modelTxn.ReferenceMonth,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
		modelTxn.TransactionID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update transaction query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
