package ledger

import (
	"time"

	"github.com/caixaflow/cash_flow_app/internal/core/domain"
)

// Period selects how far back FilterByPeriod looks from a fixed reference time.
type Period string

const (
	PeriodAll       Period = "all"
	PeriodLastMonth Period = "last_month"
	PeriodLastWeek  Period = "last_week"
)

// ParsePeriod maps a request string onto a Period, defaulting to PeriodAll
// for empty or unknown values.
func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodLastMonth:
		return PeriodLastMonth
	case PeriodLastWeek:
		return PeriodLastWeek
	default:
		return PeriodAll
	}
}

// LowerBound returns the period's inclusive lower bound relative to now.
// The second return is false for PeriodAll, which has no bound.
//
// last_month subtracts one calendar month via time.AddDate, which normalizes
// overflow (e.g. March 31 minus one month becomes March 3 in a 28-day
// February, March 2 in a leap year); that normalization is the documented
// rule. last_week subtracts exactly 7 days.
func LowerBound(period Period, now time.Time) (time.Time, bool) {
	switch period {
	case PeriodLastMonth:
		return now.AddDate(0, -1, 0), true
	case PeriodLastWeek:
		return now.AddDate(0, 0, -7), true
	}
	return time.Time{}, false
}

// FilterByPeriod keeps transactions dated on or after the period's lower
// bound, preserving input order. The bound is inclusive and there is no upper
// bound, so future-dated transactions always pass. The caller captures now
// once per computation so the filter is self-consistent within a single call.
func FilterByPeriod(txns []domain.Transaction, period Period, now time.Time) []domain.Transaction {
	cutoff, ok := LowerBound(period, now)
	if !ok {
		return txns
	}

	filtered := make([]domain.Transaction, 0, len(txns))
	for _, t := range txns {
		if !t.Date.Before(cutoff) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
