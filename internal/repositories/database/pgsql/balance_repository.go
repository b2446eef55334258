package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/caixaflow/cash_flow_app/internal/apperrors"
	"github.com/caixaflow/cash_flow_app/internal/core/domain"
	portsrepo "github.com/caixaflow/cash_flow_app/internal/core/ports/repositories"
	"github.com/caixaflow/cash_flow_app/internal/models"
	"github.com/caixaflow/cash_flow_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBalanceRepository struct {
	db *pgxpool.Pool
}

func newPgxBalanceRepository(db *pgxpool.Pool) portsrepo.BalanceRepository {
	return &PgxBalanceRepository{db: db}
}

// Ensure PgxBalanceRepository implements portsrepo.BalanceRepository
var _ portsrepo.BalanceRepository = (*PgxBalanceRepository)(nil)

func (r *PgxBalanceRepository) FindInitialBalanceByUser(ctx context.Context, userID string) (*domain.InitialBalance, error) {
	query := `
		SELECT balance_id, user_id, amount, created_at, created_by, last_updated_at, last_updated_by
		FROM initial_balances
		WHERE user_id = $1;
	`
	var m models.InitialBalance
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&m.BalanceID,
		&m.UserID,
		&m.Amount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find initial balance for user %s: %w", userID, err)
	}

	domainBalance := mapping.ToDomainInitialBalance(m)
	return &domainBalance, nil
}

func (r *PgxBalanceRepository) UpsertInitialBalance(ctx context.Context, balance domain.InitialBalance) (*domain.InitialBalance, error) {
	m := mapping.ToModelInitialBalance(balance)
	// One row per user: the unique index on user_id makes later sets an
	// overwrite of the amount, never a second row. RETURNING hands back the
	// stored row, whose balance_id and created_at survive the overwrite.
	query := `
        INSERT INTO initial_balances (balance_id, user_id, amount, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (user_id) DO UPDATE SET
            amount = EXCLUDED.amount,
            last_updated_at = EXCLUDED.last_updated_at,
            last_updated_by = EXCLUDED.last_updated_by
        RETURNING balance_id, user_id, amount, created_at, created_by, last_updated_at, last_updated_by;
    `
	var stored models.InitialBalance
	err := r.db.QueryRow(ctx, query,
		m.BalanceID,
		m.UserID,
		m.Amount,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	).Scan(
		&stored.BalanceID,
		&stored.UserID,
		&stored.Amount,
		&stored.CreatedAt,
		&stored.CreatedBy,
		&stored.LastUpdatedAt,
		&stored.LastUpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert initial balance: %w", err)
	}

	domainBalance := mapping.ToDomainInitialBalance(stored)
	return &domainBalance, nil
}
