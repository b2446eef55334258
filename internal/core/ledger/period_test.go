package ledger_test

import (
	"testing"
	"time"

	"github.com/caixaflow/cash_flow_app/internal/core/domain"
	"github.com/caixaflow/cash_flow_app/internal/core/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	assert.Equal(t, ledger.PeriodAll, ledger.ParsePeriod("all"))
	assert.Equal(t, ledger.PeriodLastMonth, ledger.ParsePeriod("last_month"))
	assert.Equal(t, ledger.PeriodLastWeek, ledger.ParsePeriod("last_week"))
	assert.Equal(t, ledger.PeriodAll, ledger.ParsePeriod(""))
	assert.Equal(t, ledger.PeriodAll, ledger.ParsePeriod("bogus"))
}

func TestFilterByPeriod_AllReturnsInputUnchanged(t *testing.T) {
	txns := []domain.Transaction{
		income("1", date(2020, time.January, 1), domain.MethodCash),
		income("2", date(2030, time.January, 1), domain.MethodCash),
	}

	got := ledger.FilterByPeriod(txns, ledger.PeriodAll, date(2024, time.June, 15))

	require.Len(t, got, 2)
	assert.Equal(t, txns, got)
}

func TestFilterByPeriod_LastWeekInclusiveBoundary(t *testing.T) {
	// Scenario D: exactly 7 days back is included, one day further is not.
	now := date(2024, time.June, 15)
	onBoundary := income("10", date(2024, time.June, 8), domain.MethodPix)
	justOutside := income("20", date(2024, time.June, 7), domain.MethodPix)
	future := income("30", date(2024, time.July, 1), domain.MethodPix)

	got := ledger.FilterByPeriod([]domain.Transaction{onBoundary, justOutside, future}, ledger.PeriodLastWeek, now)

	require.Len(t, got, 2)
	assert.True(t, got[0].Amount.Equal(dec("10")))
	assert.True(t, got[1].Amount.Equal(dec("30")), "future-dated transactions are included")
}

func TestFilterByPeriod_LastMonthCalendarArithmetic(t *testing.T) {
	// time.AddDate normalizes the phantom Feb 31: in a 28-day February,
	// March 31 minus one month lands on March 3.
	now := date(2023, time.March, 31)
	txns := []domain.Transaction{
		income("1", date(2023, time.March, 3), domain.MethodCash),     // on normalized cutoff
		income("2", date(2023, time.March, 2), domain.MethodCash),     // before cutoff
		income("3", date(2023, time.February, 28), domain.MethodCash), // before cutoff
	}

	got := ledger.FilterByPeriod(txns, ledger.PeriodLastMonth, now)

	require.Len(t, got, 1)
	assert.True(t, got[0].Amount.Equal(dec("1")))
}

func TestFilterByPeriod_LastMonthLeapFebruary(t *testing.T) {
	// With 29 days in February the same subtraction lands one day earlier,
	// on March 2.
	now := date(2024, time.March, 31)
	txns := []domain.Transaction{
		income("1", date(2024, time.March, 2), domain.MethodCash), // on normalized cutoff
		income("2", date(2024, time.March, 1), domain.MethodCash), // before cutoff
	}

	got := ledger.FilterByPeriod(txns, ledger.PeriodLastMonth, now)

	require.Len(t, got, 1)
	assert.True(t, got[0].Amount.Equal(dec("1")))
}

func TestFilterByPeriod_LastMonthRegularDate(t *testing.T) {
	now := date(2024, time.June, 15)
	txns := []domain.Transaction{
		income("1", date(2024, time.May, 15), domain.MethodCash),
		income("2", date(2024, time.May, 14), domain.MethodCash),
		income("3", date(2024, time.June, 1), domain.MethodCash),
	}

	got := ledger.FilterByPeriod(txns, ledger.PeriodLastMonth, now)

	require.Len(t, got, 2)
	assert.True(t, got[0].Amount.Equal(dec("1")))
	assert.True(t, got[1].Amount.Equal(dec("3")))
}

func TestFilterByPeriod_OrderPreserved(t *testing.T) {
	now := date(2024, time.June, 15)
	txns := []domain.Transaction{
		income("3", date(2024, time.June, 14), domain.MethodCash),
		income("1", date(2024, time.June, 12), domain.MethodCash),
		income("2", date(2024, time.June, 13), domain.MethodCash),
	}

	got := ledger.FilterByPeriod(txns, ledger.PeriodLastWeek, now)

	require.Len(t, got, 3)
	assert.True(t, got[0].Amount.Equal(dec("3")))
	assert.True(t, got[1].Amount.Equal(dec("1")))
	assert.True(t, got[2].Amount.Equal(dec("2")))
}
