package mapping

import (
	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	"github.com/qahwatech/cafe_backoffice_app/internal/models"
)

// ToDomainOperator converts a DB model operator to its domain form.
func ToDomainOperator(o models.Operator) domain.Operator {
	return domain.Operator{
		OperatorID:   o.OperatorID,
		Username:     o.Username,
		PasswordHash: o.PasswordHash,
		Name:         o.Name,
		CreatedAt:    o.CreatedAt,
		DeletedAt:    o.DeletedAt,
	}
}

// ToModelOperator converts a domain operator to its DB model.
func ToModelOperator(o domain.Operator) models.Operator {
	return models.Operator{
		OperatorID:   o.OperatorID,
		Username:     o.Username,
		PasswordHash: o.PasswordHash,
		Name:         o.Name,
		CreatedAt:    o.CreatedAt,
		DeletedAt:    o.DeletedAt,
	}
}
