package mapping

import (
	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	"github.com/SscSPs/pos_shift_app/internal/models"
)

// ToModelOperator converts a domain Operator to a model Operator
func ToModelOperator(d domain.Operator) models.Operator {
	perms := make([]string, len(d.Permissions))
	for i, p := range d.Permissions {
		perms[i] = string(p)
	}
	return models.Operator{
		OperatorID:  d.OperatorID,
		Name:        d.Name,
		PINHash:     d.PINHash,
		Permissions: perms,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOperator converts a model Operator to a domain Operator
func ToDomainOperator(m models.Operator) domain.Operator {
	perms := make([]domain.Permission, len(m.Permissions))
	for i, p := range m.Permissions {
		perms[i] = domain.Permission(p)
	}
	return domain.Operator{
		OperatorID:  m.OperatorID,
		Name:        m.Name,
		PINHash:     m.PINHash,
		Permissions: perms,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
