package dto

import (
	"github.com/caixaflow/cash_flow_app/internal/core/domain"
	"github.com/caixaflow/cash_flow_app/internal/utils"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for transaction dates. Transactions carry a
// calendar date, not an instant, so no time or zone component is accepted.
const DateLayout = "2006-01-02"

// CreateTransactionRequest defines the data needed to record a transaction.
// PaymentMethod applies to incomes; Category and FixedSubcategory apply to
// expenses. Fields for the other type must be omitted.
type CreateTransactionRequest struct {
	Type             string          `json:"type" binding:"required,oneof=income expense"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	Description      string          `json:"description" binding:"required"`
	Date             string          `json:"date" binding:"required,dateonly"` // YYYY-MM-DD
	PaymentMethod    *string         `json:"paymentMethod,omitempty"`
	Category         *string         `json:"category,omitempty"`
	FixedSubcategory *string         `json:"fixedSubcategory,omitempty"`
}

// UpdateTransactionRequest defines the data allowed for updating a transaction.
// All fields are optional; the transaction type itself cannot change.
type UpdateTransactionRequest struct {
	Amount           *decimal.Decimal `json:"amount"`
	Description      *string          `json:"description"`
	Date             *string          `json:"date" binding:"omitempty,dateonly"` // YYYY-MM-DD
	PaymentMethod    *string          `json:"paymentMethod"`
	Category         *string          `json:"category"`
	FixedSubcategory *string          `json:"fixedSubcategory"`
}

// TransactionResponse defines the data returned for a transaction.
// AmountFormatted is the display rendering ("R$ 1.234,56"); Amount stays the
// precise value clients should compute with.
type TransactionResponse struct {
	TransactionID    string          `json:"transactionID"`
	Type             string          `json:"type"`
	Amount           decimal.Decimal `json:"amount"`
	AmountFormatted  string          `json:"amountFormatted"`
	Description      string          `json:"description"`
	Date             string          `json:"date"`
	ReferenceMonth   string          `json:"referenceMonth"`
	PaymentMethod    *string         `json:"paymentMethod,omitempty"`
	Category         *string         `json:"category,omitempty"`
	FixedSubcategory *string         `json:"fixedSubcategory,omitempty"`
}

// ListTransactionsParams defines query parameters for listing transactions.
// Period narrows the listing the same way the overview report does; empty or
// unknown values mean no narrowing.
type ListTransactionsParams struct {
	Limit     int    `form:"limit,default=20"`
	NextToken string `form:"nextToken"`
	Period    string `form:"period"`
}

// ListTransactionsResponse wraps one page of transactions. NextToken is nil
// when there are no further pages.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		TransactionID:   txn.TransactionID,
		Type:            string(txn.Type),
		Amount:          txn.Amount,
		AmountFormatted: utils.FormatBRL(txn.Amount),
		Description:     txn.Description,
		Date:            txn.Date.Format(DateLayout),
		ReferenceMonth:  txn.ReferenceMonth(),
	}
	if txn.Income != nil && txn.Income.PaymentMethod != "" {
		method := string(txn.Income.PaymentMethod)
		resp.PaymentMethod = &method
	}
	if txn.Expense != nil {
		category := string(txn.Expense.Category)
		resp.Category = &category
		resp.FixedSubcategory = txn.Expense.FixedSubcategory
	}
	return resp
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}
