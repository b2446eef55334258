package domain

import (
	"github.com/shopspring/decimal"
)

// MonthBalance is one row of the monthly running ledger.
// Opening is the balance carried in from all prior months (the initial balance
// for the chronologically first month), Closing = Opening + Income - Expense.
type MonthBalance struct {
	Month   string          `json:"month"` // "YYYY-MM"
	Opening decimal.Decimal `json:"opening"`
	Closing decimal.Decimal `json:"closing"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Summary aggregates a (possibly period-filtered) transaction list.
// IncomeByMethod always carries the full fixed key set of payment methods,
// zero-initialized; incomes lacking a payment method are counted in Income but
// land in no bucket, so the bucket sum may be less than Income.
type Summary struct {
	Income           decimal.Decimal                   `json:"income"`
	Expenses         decimal.Decimal                   `json:"expenses"`
	FixedExpenses    decimal.Decimal                   `json:"fixedExpenses"`
	VariableExpenses decimal.Decimal                   `json:"variableExpenses"`
	CurrentBalance   decimal.Decimal                   `json:"currentBalance"`
	IncomeByMethod   map[PaymentMethod]decimal.Decimal `json:"incomeByMethod"`
}

// MethodGroup is one payment-method bucket in a month drill-down, carrying its
// member transactions and their summed total.
type MethodGroup struct {
	Transactions []Transaction   `json:"transactions"`
	Total        decimal.Decimal `json:"total"`
}

// CategoryGroup is one expense-category bucket in a month drill-down.
type CategoryGroup struct {
	Transactions []Transaction   `json:"transactions"`
	Total        decimal.Decimal `json:"total"`
}

// MethodOther is the fallback bucket key for incomes without a payment method
// in the month drill-down.
const MethodOther = "other"

// MonthDetail is the drill-down view of a single reference month.
// Balance is the within-month delta (income - expense), distinct from the
// running Closing balance of MonthBalance which also carries prior months.
type MonthDetail struct {
	Month              string                     `json:"month"`
	IncomeTotal        decimal.Decimal            `json:"incomeTotal"`
	ExpenseTotal       decimal.Decimal            `json:"expenseTotal"`
	Balance            decimal.Decimal            `json:"balance"`
	IncomeByMethod     map[string]MethodGroup     `json:"incomeByMethod"` // keyed by PaymentMethod or MethodOther
	FixedExpenses      CategoryGroup              `json:"fixedExpenses"`
	VariableExpenses   CategoryGroup              `json:"variableExpenses"`
	FixedSubcategories map[string]decimal.Decimal `json:"fixedSubcategories"`
}
