package domain

import "github.com/shopspring/decimal"

// InitialBalance is the user-set starting cash amount before any recorded
// transaction. At most one exists per user; it is created on first setup and
// only ever overwritten afterwards, never deleted.
type InitialBalance struct {
	BalanceID string          `json:"balanceID"` // Primary Key (UUID)
	UserID    string          `json:"userID"`
	Amount    decimal.Decimal `json:"amount"` // May be any sign
	AuditFields
}
