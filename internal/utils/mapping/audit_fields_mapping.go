package mapping

import (
	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	"github.com/qahwatech/cafe_backoffice_app/internal/models"
)

// ToModelAuditFields converts domain audit fields to their model counterpart.
func ToModelAuditFields(a domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}

// ToDomainAuditFields converts model audit fields to their domain counterpart.
func ToDomainAuditFields(a models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}
