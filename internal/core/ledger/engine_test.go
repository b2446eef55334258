package ledger_test

import (
	"testing"
	"time"

	"github.com/caixaflow/cash_flow_app/internal/core/domain"
	"github.com/caixaflow/cash_flow_app/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func strPtr(s string) *string { return &s }

func income(amount string, day time.Time, method domain.PaymentMethod) domain.Transaction {
	return domain.Transaction{
		Type:   domain.Income,
		Amount: dec(amount),
		Date:   day,
		Income: &domain.IncomeDetails{PaymentMethod: method},
	}
}

// incomeNoMethod models legacy rows whose payment method was never recorded.
func incomeNoMethod(amount string, day time.Time) domain.Transaction {
	return domain.Transaction{
		Type:   domain.Income,
		Amount: dec(amount),
		Date:   day,
	}
}

func expense(amount string, day time.Time, category domain.ExpenseCategory, sub *string) domain.Transaction {
	return domain.Transaction{
		Type:    domain.Expense,
		Amount:  dec(amount),
		Date:    day,
		Expense: &domain.ExpenseDetails{Category: category, FixedSubcategory: sub},
	}
}

func TestComputeMonthlyLedger_Empty(t *testing.T) {
	result := ledger.ComputeMonthlyLedger(dec("1000"), nil)
	assert.Empty(t, result)
}

func TestComputeMonthlyLedger_SingleMonth(t *testing.T) {
	// Scenario A: initial 1000, income 500 and variable expense 200 in 2024-01.
	txns := []domain.Transaction{
		income("500", date(2024, time.January, 10), domain.MethodPix),
		expense("200", date(2024, time.January, 20), domain.CategoryVariable, nil),
	}

	result := ledger.ComputeMonthlyLedger(dec("1000"), txns)

	require.Len(t, result, 1)
	assert.Equal(t, "2024-01", result[0].Month)
	assert.True(t, result[0].Opening.Equal(dec("1000")), "opening = %s", result[0].Opening)
	assert.True(t, result[0].Income.Equal(dec("500")))
	assert.True(t, result[0].Expense.Equal(dec("200")))
	assert.True(t, result[0].Closing.Equal(dec("1300")), "closing = %s", result[0].Closing)
}

func TestComputeMonthlyLedger_RunningBalanceChains(t *testing.T) {
	// Scenario B: 2024-01 income 100, 2024-02 expense 50, initial 0.
	txns := []domain.Transaction{
		expense("50", date(2024, time.February, 5), domain.CategoryVariable, nil),
		income("100", date(2024, time.January, 5), domain.MethodCash),
	}

	result := ledger.ComputeMonthlyLedger(decimal.Zero, txns)

	require.Len(t, result, 2)
	assert.Equal(t, "2024-01", result[0].Month)
	assert.True(t, result[0].Opening.IsZero())
	assert.True(t, result[0].Closing.Equal(dec("100")))
	assert.Equal(t, "2024-02", result[1].Month)
	assert.True(t, result[1].Opening.Equal(dec("100")))
	assert.True(t, result[1].Closing.Equal(dec("50")))
}

func TestComputeMonthlyLedger_GapsNotSynthesized(t *testing.T) {
	txns := []domain.Transaction{
		income("10", date(2024, time.January, 1), domain.MethodCash),
		income("20", date(2024, time.April, 1), domain.MethodCash),
	}

	result := ledger.ComputeMonthlyLedger(decimal.Zero, txns)

	require.Len(t, result, 2)
	assert.Equal(t, "2024-01", result[0].Month)
	assert.Equal(t, "2024-04", result[1].Month)
	// The empty gap months still carry the balance forward.
	assert.True(t, result[1].Opening.Equal(dec("10")))
	assert.True(t, result[1].Closing.Equal(dec("30")))
}

func TestComputeMonthlyLedger_TelescopingInvariant(t *testing.T) {
	initial := dec("-250.75")
	txns := []domain.Transaction{
		income("1234.56", date(2023, time.November, 3), domain.MethodCreditCard),
		expense("78.90", date(2023, time.November, 28), domain.CategoryFixed, strPtr("internet")),
		income("0.01", date(2023, time.December, 31), domain.MethodDebitCard),
		expense("999.99", date(2024, time.February, 14), domain.CategoryVariable, nil),
		incomeNoMethod("42", date(2024, time.February, 1)),
	}

	result := ledger.ComputeMonthlyLedger(initial, txns)

	require.NotEmpty(t, result)
	assert.True(t, result[0].Opening.Equal(initial), "first opening must equal the initial balance")
	for i, mb := range result {
		expectedClosing := mb.Opening.Add(mb.Income).Sub(mb.Expense)
		assert.True(t, mb.Closing.Equal(expectedClosing), "month %s: closing %s != opening+income-expense %s", mb.Month, mb.Closing, expectedClosing)
		if i > 0 {
			assert.True(t, mb.Opening.Equal(result[i-1].Closing), "month %s must open with the prior month's closing", mb.Month)
		}
	}
}

func TestComputeMonthlyLedger_InputOrderIrrelevant(t *testing.T) {
	txns := []domain.Transaction{
		expense("30", date(2024, time.March, 1), domain.CategoryVariable, nil),
		income("100", date(2024, time.January, 1), domain.MethodPix),
		income("5", date(2024, time.February, 1), domain.MethodCash),
	}
	reversed := []domain.Transaction{txns[2], txns[1], txns[0]}

	a := ledger.ComputeMonthlyLedger(dec("7"), txns)
	b := ledger.ComputeMonthlyLedger(dec("7"), reversed)

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Month, b[i].Month)
		assert.True(t, a[i].Closing.Equal(b[i].Closing))
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := ledger.Summarize(nil, dec("123.45"))

	assert.True(t, s.Income.IsZero())
	assert.True(t, s.Expenses.IsZero())
	assert.True(t, s.FixedExpenses.IsZero())
	assert.True(t, s.VariableExpenses.IsZero())
	assert.True(t, s.CurrentBalance.Equal(dec("123.45")))
	require.Len(t, s.IncomeByMethod, 4)
	for _, m := range domain.AllPaymentMethods {
		assert.True(t, s.IncomeByMethod[m].IsZero(), "bucket %s must be zero-initialized", m)
	}
}

func TestSummarize_Totals(t *testing.T) {
	txns := []domain.Transaction{
		income("500", date(2024, time.January, 10), domain.MethodPix),
		income("250", date(2024, time.January, 11), domain.MethodPix),
		income("100", date(2024, time.January, 12), domain.MethodCash),
		expense("200", date(2024, time.January, 20), domain.CategoryVariable, nil),
		expense("150", date(2024, time.January, 21), domain.CategoryFixed, strPtr("energia")),
	}

	s := ledger.Summarize(txns, dec("1000"))

	assert.True(t, s.Income.Equal(dec("850")))
	assert.True(t, s.Expenses.Equal(dec("350")))
	assert.True(t, s.FixedExpenses.Equal(dec("150")))
	assert.True(t, s.VariableExpenses.Equal(dec("200")))
	assert.True(t, s.CurrentBalance.Equal(dec("1500")))
	assert.True(t, s.IncomeByMethod[domain.MethodPix].Equal(dec("750")))
	assert.True(t, s.IncomeByMethod[domain.MethodCash].Equal(dec("100")))
	assert.True(t, s.IncomeByMethod[domain.MethodDebitCard].IsZero())
	assert.True(t, s.IncomeByMethod[domain.MethodCreditCard].IsZero())
}

func TestSummarize_IncomeWithoutMethodSkipsBuckets(t *testing.T) {
	// Scenario C: the methodless income counts toward Income but lands in no
	// bucket, so the bucket sum is short by exactly its amount.
	txns := []domain.Transaction{
		income("300", date(2024, time.May, 1), domain.MethodDebitCard),
		incomeNoMethod("120.50", date(2024, time.May, 2)),
	}

	s := ledger.Summarize(txns, decimal.Zero)

	assert.True(t, s.Income.Equal(dec("420.50")))
	bucketSum := decimal.Zero
	for _, v := range s.IncomeByMethod {
		bucketSum = bucketSum.Add(v)
	}
	assert.True(t, bucketSum.Equal(dec("300")))
	assert.True(t, s.Income.Sub(bucketSum).Equal(dec("120.50")))
}

func TestSummarize_Idempotent(t *testing.T) {
	txns := []domain.Transaction{
		income("10.10", date(2024, time.June, 1), domain.MethodCash),
		expense("3.33", date(2024, time.June, 2), domain.CategoryFixed, nil),
	}

	first := ledger.Summarize(txns, dec("5"))
	second := ledger.Summarize(txns, dec("5"))

	assert.Equal(t, first, second)
}

func TestBuildMonthDetail_Partitions(t *testing.T) {
	month := "2024-03"
	txns := []domain.Transaction{
		income("100", date(2024, time.March, 1), domain.MethodPix),
		income("50", date(2024, time.March, 2), domain.MethodPix),
		incomeNoMethod("25", date(2024, time.March, 3)),
		expense("80", date(2024, time.March, 4), domain.CategoryFixed, strPtr("internet")),
		expense("40", date(2024, time.March, 5), domain.CategoryFixed, nil),
		expense("60", date(2024, time.March, 6), domain.CategoryVariable, nil),
		// Different month, must be ignored entirely.
		income("999", date(2024, time.April, 1), domain.MethodCash),
	}

	d := ledger.BuildMonthDetail(txns, month)

	assert.Equal(t, month, d.Month)
	assert.True(t, d.IncomeTotal.Equal(dec("175")))
	assert.True(t, d.ExpenseTotal.Equal(dec("180")))
	assert.True(t, d.Balance.Equal(dec("-5")))

	// Income grouping: pix bucket plus the "other" fallback.
	require.Contains(t, d.IncomeByMethod, string(domain.MethodPix))
	require.Contains(t, d.IncomeByMethod, domain.MethodOther)
	assert.True(t, d.IncomeByMethod[string(domain.MethodPix)].Total.Equal(dec("150")))
	assert.Len(t, d.IncomeByMethod[string(domain.MethodPix)].Transactions, 2)
	assert.True(t, d.IncomeByMethod[domain.MethodOther].Total.Equal(dec("25")))

	// Expense partition: the untagged fixed expense stays in the fixed total
	// and list but is absent from the subcategory breakdown.
	assert.True(t, d.FixedExpenses.Total.Equal(dec("120")))
	assert.Len(t, d.FixedExpenses.Transactions, 2)
	assert.True(t, d.VariableExpenses.Total.Equal(dec("60")))
	assert.Len(t, d.VariableExpenses.Transactions, 1)
	require.Len(t, d.FixedSubcategories, 1)
	assert.True(t, d.FixedSubcategories["internet"].Equal(dec("80")))

	// Partition completeness: every month transaction appears exactly once.
	total := 0
	for _, g := range d.IncomeByMethod {
		total += len(g.Transactions)
	}
	total += len(d.FixedExpenses.Transactions) + len(d.VariableExpenses.Transactions)
	assert.Equal(t, 6, total)
}

func TestBuildMonthDetail_EmptyMethodFallsBackToOther(t *testing.T) {
	// An income recorded without choosing a payment method still carries its
	// details struct; it must land in "other", never under the empty key.
	txns := []domain.Transaction{
		{
			Type:   domain.Income,
			Amount: dec("30"),
			Date:   date(2024, time.March, 3),
			Income: &domain.IncomeDetails{},
		},
	}

	d := ledger.BuildMonthDetail(txns, "2024-03")

	require.Contains(t, d.IncomeByMethod, domain.MethodOther)
	assert.NotContains(t, d.IncomeByMethod, "")
	assert.True(t, d.IncomeByMethod[domain.MethodOther].Total.Equal(dec("30")))
}

func TestBuildMonthDetail_EmptyMonth(t *testing.T) {
	d := ledger.BuildMonthDetail(nil, "2024-01")

	assert.True(t, d.IncomeTotal.IsZero())
	assert.True(t, d.ExpenseTotal.IsZero())
	assert.True(t, d.Balance.IsZero())
	assert.Empty(t, d.IncomeByMethod)
	assert.Empty(t, d.FixedExpenses.Transactions)
	assert.Empty(t, d.VariableExpenses.Transactions)
}
