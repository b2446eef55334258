package repositories

// RepositoryProvider bundles every repository implementation so services can
// be wired from a single value.
type RepositoryProvider struct {
	UserRepo        UserRepository
	TransactionRepo TransactionRepository
	BalanceRepo     BalanceRepository
}
