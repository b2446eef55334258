package models

import "github.com/shopspring/decimal"

// InitialBalance is the persistence shape of a user's starting balance.
// At most one row exists per user (unique index on user_id).
type InitialBalance struct {
	BalanceID string          `db:"balance_id"`
	UserID    string          `db:"user_id"`
	Amount    decimal.Decimal `db:"amount"`
	AuditFields
}
