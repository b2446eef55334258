package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/caixaflow/cash_flow_app/internal/apperrors"
	"github.com/caixaflow/cash_flow_app/internal/core/domain"
	"github.com/caixaflow/cash_flow_app/internal/core/ledger"
	portsrepo "github.com/caixaflow/cash_flow_app/internal/core/ports/repositories"
	portssvc "github.com/caixaflow/cash_flow_app/internal/core/ports/services"
	"github.com/caixaflow/cash_flow_app/internal/dto"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// reportingService implements the ReportingSvcFacade on top of the ledger
// aggregation engine. It holds no state of its own; every report is computed
// from the user's transactions and initial balance on each call.
type reportingService struct {
	BaseService
	txnRepo     portsrepo.TransactionRepository
	balanceRepo portsrepo.BalanceRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(txnRepo portsrepo.TransactionRepository, balanceRepo portsrepo.BalanceRepository) portssvc.ReportingSvcFacade {
	return &reportingService{
		txnRepo:     txnRepo,
		balanceRepo: balanceRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// fetchLedgerInputs loads the user's initial balance and full transaction list
// concurrently. A missing or failing balance degrades to zero so the overview
// still renders; a transaction fetch failure is fatal.
func (s *reportingService) fetchLedgerInputs(ctx context.Context, userID string) (decimal.Decimal, []domain.Transaction, error) {
	var (
		initial = decimal.Zero
		txns    []domain.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		balance, err := s.balanceRepo.FindInitialBalanceByUser(gctx, userID)
		if err != nil {
			// ErrNotFound is the common first-run case; anything else is
			// logged but still tolerated.
			s.LogDebug(gctx, "Initial balance unavailable, using zero",
				slog.String("user_id", userID),
				slog.String("reason", err.Error()))
			return nil
		}
		initial = balance.Amount
		return nil
	})

	g.Go(func() error {
		var err error
		txns, err = s.txnRepo.FindTransactionsByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load transactions: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load ledger inputs", slog.String("user_id", userID))
		return decimal.Zero, nil, err
	}

	return initial, txns, nil
}

// GetOverview computes the period summary and the monthly running ledger.
func (s *reportingService) GetOverview(ctx context.Context, userID string, period ledger.Period) (*dto.OverviewResponse, error) {
	initial, txns, err := s.fetchLedgerInputs(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Transaction dates carry no time component, so the filter boundary must
	// not either; otherwise today's entries fall outside an inclusive cutoff
	// computed from a mid-day clock reading.
	now := time.Now().UTC().Truncate(24 * time.Hour)
	filtered := ledger.FilterByPeriod(txns, period, now)

	summary := ledger.Summarize(filtered, initial)
	// The running ledger always spans the full history: the period narrows
	// the summary only. Folding a filtered list would drop prior months and
	// open the first shown month at the raw initial balance.
	months := ledger.ComputeMonthlyLedger(initial, txns)

	s.LogInfo(ctx, "Overview report generated",
		slog.String("user_id", userID),
		slog.String("period", string(period)),
		slog.Int("transaction_count", len(filtered)),
		slog.Int("month_count", len(months)))

	response := dto.ToOverviewResponse(string(period), summary, months)
	return &response, nil
}

// GetMonthDetail computes the drill-down for one reference month.
func (s *reportingService) GetMonthDetail(ctx context.Context, userID string, month string) (*dto.MonthDetailResponse, error) {
	if _, err := time.Parse(domain.RefMonthLayout, month); err != nil {
		return nil, fmt.Errorf("%w: month must be in YYYY-MM format", apperrors.ErrValidation)
	}

	txns, err := s.txnRepo.FindTransactionsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for month detail",
			slog.String("user_id", userID),
			slog.String("month", month))
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	detail := ledger.BuildMonthDetail(txns, month)

	s.LogInfo(ctx, "Month detail report generated",
		slog.String("user_id", userID),
		slog.String("month", month))

	response := dto.ToMonthDetailResponse(&detail)
	return &response, nil
}
