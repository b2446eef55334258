package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is money coming in or going out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// PaymentMethod is the channel through which income was received.
type PaymentMethod string

const (
	MethodCash       PaymentMethod = "cash"
	MethodPix        PaymentMethod = "pix"
	MethodDebitCard  PaymentMethod = "debit_card"
	MethodCreditCard PaymentMethod = "credit_card"
)

// AllPaymentMethods is the fixed key set used for income-by-method breakdowns.
var AllPaymentMethods = []PaymentMethod{MethodCash, MethodPix, MethodDebitCard, MethodCreditCard}

// ExpenseCategory distinguishes recurring (fixed) from discretionary (variable) expenses.
type ExpenseCategory string

const (
	CategoryFixed    ExpenseCategory = "fixed"
	CategoryVariable ExpenseCategory = "variable"
)

// IncomeDetails carries the attributes that only make sense for income transactions.
type IncomeDetails struct {
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

// ExpenseDetails carries the attributes that only make sense for expense transactions.
// FixedSubcategory is an open-ended tag (e.g. internet, energia, condominio,
// funcionario) and is meaningful only when Category is fixed.
type ExpenseDetails struct {
	Category         ExpenseCategory `json:"category"`
	FixedSubcategory *string         `json:"fixedSubcategory,omitempty"`
}

// Transaction represents a single income or expense entry in a user's cash flow.
// Exactly one of Income/Expense is set, matching Type; this keeps invalid states
// (an income carrying an expense category, and vice versa) unrepresentable.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"` // Positive value; precise decimal type
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"` // Economic date, date-only precision
	Income        *IncomeDetails  `json:"income,omitempty"`
	Expense       *ExpenseDetails `json:"expense,omitempty"`
	AuditFields
}

// RefMonthLayout is the time layout for the "YYYY-MM" month grouping key.
const RefMonthLayout = "2006-01"

// ReferenceMonth returns the "YYYY-MM" grouping key for this transaction.
// It is always derived from Date; the persisted reference_month column is an
// index-only projection recomputed on every write and never read back as
// authoritative.
func (t Transaction) ReferenceMonth() string {
	return t.Date.Format(RefMonthLayout)
}

// IsIncome reports whether this transaction is an income entry.
func (t Transaction) IsIncome() bool {
	return t.Type == Income
}

// IsExpense reports whether this transaction is an expense entry.
func (t Transaction) IsExpense() bool {
	return t.Type == Expense
}

// IsFixedExpense reports whether this transaction is an expense tagged as fixed.
func (t Transaction) IsFixedExpense() bool {
	return t.Type == Expense && t.Expense != nil && t.Expense.Category == CategoryFixed
}

// IsVariableExpense reports whether this transaction is an expense tagged as variable.
func (t Transaction) IsVariableExpense() bool {
	return t.Type == Expense && t.Expense != nil && t.Expense.Category == CategoryVariable
}

// ValidPaymentMethod reports whether m is one of the known payment methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case MethodCash, MethodPix, MethodDebitCard, MethodCreditCard:
		return true
	}
	return false
}

// ValidExpenseCategory reports whether c is a known expense category.
func ValidExpenseCategory(c ExpenseCategory) bool {
	return c == CategoryFixed || c == CategoryVariable
}
