package pgsql

import (
	portsrepo "github.com/caixaflow/cash_flow_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		BalanceRepo:     newPgxBalanceRepository(dbPool),
	}
}
