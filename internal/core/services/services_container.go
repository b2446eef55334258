package services

import (
	portsrepo "github.com/caixaflow/cash_flow_app/internal/core/ports/repositories"
	portssvc "github.com/caixaflow/cash_flow_app/internal/core/ports/services"
	"github.com/caixaflow/cash_flow_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo)
	container.Balance = NewBalanceService(repos.BalanceRepo)
	container.Reporting = NewReportingService(repos.TransactionRepo, repos.BalanceRepo)

	container.TokenService = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
