package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the persistence shape of a cash-flow entry.
// Income-only and expense-only attributes are nullable columns here; the
// domain layer narrows them back into the tagged Income/Expense details.
// ReferenceMonth is an index-only projection of Date: it is recomputed from
// Date on every write and is never read back as authoritative.
type Transaction struct {
	TransactionID    string          `db:"transaction_id"`
	UserID           string          `db:"user_id"`
	Type             string          `db:"type"` // income | expense
	Amount           decimal.Decimal `db:"amount"`
	Description      string          `db:"description"`
	Date             time.Time       `db:"date"`
	PaymentMethod    *string         `db:"payment_method"`   // income only
	Category         *string         `db:"category"`         // expense only
	FixedSubcategory *string         `db:"fixed_subcategory"` // fixed expenses only
	ReferenceMonth   string          `db:"reference_month"`
	AuditFields
}
