package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caixaflow/cash_flow_app/internal/apperrors"
	"github.com/caixaflow/cash_flow_app/internal/core/domain"
	portsrepo "github.com/caixaflow/cash_flow_app/internal/core/ports/repositories"
	portssvc "github.com/caixaflow/cash_flow_app/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// balanceService implements the BalanceSvcFacade.
type balanceService struct {
	BaseService
	balanceRepo portsrepo.BalanceRepository
}

// NewBalanceService creates a new balance service backed by the given repository.
func NewBalanceService(balanceRepo portsrepo.BalanceRepository) portssvc.BalanceSvcFacade {
	return &balanceService{balanceRepo: balanceRepo}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// GetInitialBalance returns the user's initial balance, or
// apperrors.ErrNotFound when none has been set yet. An unset balance and a
// balance explicitly set to zero are different states: the first sends the
// client through the setup flow.
func (s *balanceService) GetInitialBalance(ctx context.Context, userID string) (*domain.InitialBalance, error) {
	balance, err := s.balanceRepo.FindInitialBalanceByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to find initial balance", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to find initial balance: %w", err)
	}
	return balance, nil
}

// SetInitialBalance creates or replaces the user's initial balance. The amount
// may be any sign; someone can start in debt.
func (s *balanceService) SetInitialBalance(ctx context.Context, userID string, amount decimal.Decimal) (*domain.InitialBalance, error) {
	now := time.Now()
	balance := domain.InitialBalance{
		BalanceID: uuid.NewString(),
		UserID:    userID,
		Amount:    amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	// On the overwrite path the stored row keeps its original balance_id and
	// created_at, so return what the database holds rather than the candidate.
	stored, err := s.balanceRepo.UpsertInitialBalance(ctx, balance)
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert initial balance", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to set initial balance: %w", err)
	}

	s.LogInfo(ctx, "Initial balance set",
		slog.String("user_id", userID),
		slog.String("amount", amount.String()))
	return stored, nil
}
