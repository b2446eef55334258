package dto

import (
	"github.com/caixaflow/cash_flow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthBalanceResponse represents one row of the monthly ledger in the overview.
type MonthBalanceResponse struct {
	Month   string          `json:"month"`
	Opening decimal.Decimal `json:"opening"`
	Closing decimal.Decimal `json:"closing"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// SummaryResponse represents the aggregated totals for the requested period.
type SummaryResponse struct {
	Income           decimal.Decimal            `json:"income"`
	Expenses         decimal.Decimal            `json:"expenses"`
	FixedExpenses    decimal.Decimal            `json:"fixedExpenses"`
	VariableExpenses decimal.Decimal            `json:"variableExpenses"`
	CurrentBalance   decimal.Decimal            `json:"currentBalance"`
	IncomeByMethod   map[string]decimal.Decimal `json:"incomeByMethod"`
}

// OverviewResponse represents the dashboard overview report. Months are
// ordered most recent first for display.
type OverviewResponse struct {
	Period  string                 `json:"period"`
	Summary SummaryResponse        `json:"summary"`
	Months  []MonthBalanceResponse `json:"months"`
}

// MethodGroupResponse is one payment-method bucket in the month drill-down.
type MethodGroupResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        decimal.Decimal       `json:"total"`
}

// CategoryGroupResponse is one expense-category bucket in the month drill-down.
type CategoryGroupResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        decimal.Decimal       `json:"total"`
}

// MonthDetailResponse represents the drill-down report for a single month.
type MonthDetailResponse struct {
	Month              string                         `json:"month"`
	IncomeTotal        decimal.Decimal                `json:"incomeTotal"`
	ExpenseTotal       decimal.Decimal                `json:"expenseTotal"`
	Balance            decimal.Decimal                `json:"balance"`
	IncomeByMethod     map[string]MethodGroupResponse `json:"incomeByMethod"`
	FixedExpenses      CategoryGroupResponse          `json:"fixedExpenses"`
	VariableExpenses   CategoryGroupResponse          `json:"variableExpenses"`
	FixedSubcategories map[string]decimal.Decimal     `json:"fixedSubcategories"`
}

// ToOverviewResponse converts a domain summary and ascending monthly ledger to
// the overview DTO, reversing the months into display order.
func ToOverviewResponse(period string, summary domain.Summary, months []domain.MonthBalance) OverviewResponse {
	response := OverviewResponse{
		Period: period,
		Summary: SummaryResponse{
			Income:           summary.Income,
			Expenses:         summary.Expenses,
			FixedExpenses:    summary.FixedExpenses,
			VariableExpenses: summary.VariableExpenses,
			CurrentBalance:   summary.CurrentBalance,
			IncomeByMethod:   make(map[string]decimal.Decimal, len(summary.IncomeByMethod)),
		},
		Months: make([]MonthBalanceResponse, len(months)),
	}

	for method, total := range summary.IncomeByMethod {
		response.Summary.IncomeByMethod[string(method)] = total
	}

	for i, mb := range months {
		response.Months[len(months)-1-i] = MonthBalanceResponse{
			Month:   mb.Month,
			Opening: mb.Opening,
			Closing: mb.Closing,
			Income:  mb.Income,
			Expense: mb.Expense,
		}
	}

	return response
}

// ToMonthDetailResponse converts a domain month drill-down to its DTO.
func ToMonthDetailResponse(detail *domain.MonthDetail) MonthDetailResponse {
	response := MonthDetailResponse{
		Month:              detail.Month,
		IncomeTotal:        detail.IncomeTotal,
		ExpenseTotal:       detail.ExpenseTotal,
		Balance:            detail.Balance,
		IncomeByMethod:     make(map[string]MethodGroupResponse, len(detail.IncomeByMethod)),
		FixedExpenses:      toCategoryGroupResponse(detail.FixedExpenses),
		VariableExpenses:   toCategoryGroupResponse(detail.VariableExpenses),
		FixedSubcategories: detail.FixedSubcategories,
	}

	for method, group := range detail.IncomeByMethod {
		response.IncomeByMethod[method] = MethodGroupResponse{
			Transactions: ToTransactionResponses(group.Transactions),
			Total:        group.Total,
		}
	}

	return response
}

func toCategoryGroupResponse(group domain.CategoryGroup) CategoryGroupResponse {
	return CategoryGroupResponse{
		Transactions: ToTransactionResponses(group.Transactions),
		Total:        group.Total,
	}
}
