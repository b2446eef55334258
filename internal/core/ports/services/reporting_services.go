package services

import (
	"context"

	"github.com/caixaflow/cash_flow_app/internal/core/ledger"
	"github.com/caixaflow/cash_flow_app/internal/dto"
)

// ReportingSvcFacade computes the aggregated views served by the dashboard:
// the period overview and the per-month drill-down.
type ReportingSvcFacade interface {
	// GetOverview returns the summary totals and the monthly ledger for the
	// user's transactions restricted to the given period.
	GetOverview(ctx context.Context, userID string, period ledger.Period) (*dto.OverviewResponse, error)

	// GetMonthDetail returns the drill-down for one reference month (YYYY-MM).
	GetMonthDetail(ctx context.Context, userID string, month string) (*dto.MonthDetailResponse, error)
}
