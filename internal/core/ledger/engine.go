// Package ledger derives every displayed financial figure from a user's
// initial balance and transaction list. All functions are pure and total:
// they never fail, never touch I/O, and degrade to zero/empty buckets when
// optional data is absent. Monetary arithmetic uses decimal.Decimal
// throughout so sums carry no binary floating-point drift.
package ledger

import (
	"sort"

	"github.com/caixaflow/cash_flow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeMonthlyLedger folds the transaction list into per-month running
// balances, starting from initial. Months are bucketed by the key derived
// from each transaction's date and processed in ascending chronological
// order: each month opens with the previous month's closing balance. The
// result is returned ascending; callers re-sort for display (the dashboard
// shows months descending) but the fold itself must stay ascending or every
// balance after the first month would be wrong.
//
// Months with no transactions never appear; gaps are not filled.
func ComputeMonthlyLedger(initial decimal.Decimal, txns []domain.Transaction) []domain.MonthBalance {
	byMonth := make(map[string][]domain.Transaction)
	for _, t := range txns {
		m := t.ReferenceMonth()
		byMonth[m] = append(byMonth[m], t)
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	// "YYYY-MM" keys sort chronologically as plain strings.
	sort.Strings(months)

	result := make([]domain.MonthBalance, 0, len(months))
	running := initial
	for _, m := range months {
		income := decimal.Zero
		expense := decimal.Zero
		for _, t := range byMonth[m] {
			switch t.Type {
			case domain.Income:
				income = income.Add(t.Amount)
			case domain.Expense:
				expense = expense.Add(t.Amount)
			}
		}
		closing := running.Add(income).Sub(expense)
		result = append(result, domain.MonthBalance{
			Month:   m,
			Opening: running,
			Closing: closing,
			Income:  income,
			Expense: expense,
		})
		running = closing
	}
	return result
}

// Summarize aggregates an already period-filtered transaction list.
// CurrentBalance = initial + income - expenses over the filtered set.
//
// IncomeByMethod always contains the full fixed key set, zero-initialized.
// Income transactions without a payment method are counted in Income but
// skipped from every bucket, so the bucket sum can be less than Income; that
// discrepancy is intentional and must not be "fixed" by inventing a bucket.
func Summarize(txns []domain.Transaction, initial decimal.Decimal) domain.Summary {
	s := domain.Summary{
		Income:           decimal.Zero,
		Expenses:         decimal.Zero,
		FixedExpenses:    decimal.Zero,
		VariableExpenses: decimal.Zero,
		IncomeByMethod:   make(map[domain.PaymentMethod]decimal.Decimal, len(domain.AllPaymentMethods)),
	}
	for _, m := range domain.AllPaymentMethods {
		s.IncomeByMethod[m] = decimal.Zero
	}

	for _, t := range txns {
		switch t.Type {
		case domain.Income:
			s.Income = s.Income.Add(t.Amount)
			if t.Income != nil {
				if cur, ok := s.IncomeByMethod[t.Income.PaymentMethod]; ok {
					s.IncomeByMethod[t.Income.PaymentMethod] = cur.Add(t.Amount)
				}
			}
		case domain.Expense:
			s.Expenses = s.Expenses.Add(t.Amount)
			if t.IsFixedExpense() {
				s.FixedExpenses = s.FixedExpenses.Add(t.Amount)
			} else if t.IsVariableExpense() {
				s.VariableExpenses = s.VariableExpenses.Add(t.Amount)
			}
		}
	}

	s.CurrentBalance = initial.Add(s.Income).Sub(s.Expenses)
	return s
}

// BuildMonthDetail builds the drill-down view for one reference month.
// Every transaction of the month lands in exactly one top-level partition
// (income xor expense) and, if expense, in exactly one of fixed/variable.
// Incomes without a payment method fall into the "other" bucket. Fixed
// expenses without a subcategory stay in the fixed total and list but are
// excluded from the subcategory breakdown.
func BuildMonthDetail(txns []domain.Transaction, month string) domain.MonthDetail {
	d := domain.MonthDetail{
		Month:              month,
		IncomeTotal:        decimal.Zero,
		ExpenseTotal:       decimal.Zero,
		IncomeByMethod:     make(map[string]domain.MethodGroup),
		FixedExpenses:      domain.CategoryGroup{Total: decimal.Zero},
		VariableExpenses:   domain.CategoryGroup{Total: decimal.Zero},
		FixedSubcategories: make(map[string]decimal.Decimal),
	}

	for _, t := range txns {
		if t.ReferenceMonth() != month {
			continue
		}
		switch t.Type {
		case domain.Income:
			d.IncomeTotal = d.IncomeTotal.Add(t.Amount)
			key := domain.MethodOther
			if t.Income != nil && t.Income.PaymentMethod != "" {
				key = string(t.Income.PaymentMethod)
			}
			group, ok := d.IncomeByMethod[key]
			if !ok {
				group = domain.MethodGroup{Total: decimal.Zero}
			}
			group.Transactions = append(group.Transactions, t)
			group.Total = group.Total.Add(t.Amount)
			d.IncomeByMethod[key] = group
		case domain.Expense:
			d.ExpenseTotal = d.ExpenseTotal.Add(t.Amount)
			if t.IsFixedExpense() {
				d.FixedExpenses.Transactions = append(d.FixedExpenses.Transactions, t)
				d.FixedExpenses.Total = d.FixedExpenses.Total.Add(t.Amount)
				if t.Expense.FixedSubcategory != nil && *t.Expense.FixedSubcategory != "" {
					sub := *t.Expense.FixedSubcategory
					cur, ok := d.FixedSubcategories[sub]
					if !ok {
						cur = decimal.Zero
					}
					d.FixedSubcategories[sub] = cur.Add(t.Amount)
				}
			} else {
				d.VariableExpenses.Transactions = append(d.VariableExpenses.Transactions, t)
				d.VariableExpenses.Total = d.VariableExpenses.Total.Add(t.Amount)
			}
		}
	}

	d.Balance = d.IncomeTotal.Sub(d.ExpenseTotal)
	return d
}
