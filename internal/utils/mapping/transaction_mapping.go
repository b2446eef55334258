package mapping

import (
	"github.com/caixaflow/cash_flow_app/internal/core/domain"
	"github.com/caixaflow/cash_flow_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
// The reference_month projection is always recomputed from Date here so a
// stale stored value can never survive a write.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID:  d.TransactionID,
		UserID:         d.UserID,
		Type:           string(d.Type),
		Amount:         d.Amount,
		Description:    d.Description,
		Date:           d.Date,
		ReferenceMonth: d.ReferenceMonth(),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
	// A methodless income persists as NULL, never as an empty string.
	if d.Income != nil && d.Income.PaymentMethod != "" {
		method := string(d.Income.PaymentMethod)
		m.PaymentMethod = &method
	}
	if d.Expense != nil {
		category := string(d.Expense.Category)
		m.Category = &category
		m.FixedSubcategory = d.Expense.FixedSubcategory
	}
	return m
}

// ToDomainTransaction converts a model Transaction to a domain Transaction,
// narrowing the nullable columns back into the typed Income/Expense details.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		Type:          domain.TransactionType(m.Type),
		Amount:        m.Amount,
		Description:   m.Description,
		Date:          m.Date,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	switch d.Type {
	case domain.Income:
		d.Income = &domain.IncomeDetails{}
		if m.PaymentMethod != nil {
			d.Income.PaymentMethod = domain.PaymentMethod(*m.PaymentMethod)
		}
	case domain.Expense:
		if m.Category != nil {
			d.Expense = &domain.ExpenseDetails{
				Category:         domain.ExpenseCategory(*m.Category),
				FixedSubcategory: m.FixedSubcategory,
			}
		}
	}
	return d
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
