package mapping

import (
	"github.com/caixaflow/cash_flow_app/internal/core/domain"
	"github.com/caixaflow/cash_flow_app/internal/models"
)

// ToModelInitialBalance converts a domain InitialBalance to a model InitialBalance
func ToModelInitialBalance(d domain.InitialBalance) models.InitialBalance {
	return models.InitialBalance{
		BalanceID:   d.BalanceID,
		UserID:      d.UserID,
		Amount:      d.Amount,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInitialBalance converts a model InitialBalance to a domain InitialBalance
func ToDomainInitialBalance(m models.InitialBalance) domain.InitialBalance {
	return domain.InitialBalance{
		BalanceID:   m.BalanceID,
		UserID:      m.UserID,
		Amount:      m.Amount,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
