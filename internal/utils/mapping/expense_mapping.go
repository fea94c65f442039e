package mapping

import (
	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	"github.com/qahwatech/cafe_backoffice_app/internal/models"
)

// ToModelExpense converts a domain expense to its DB model.
func ToModelExpense(e domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:   e.ExpenseID,
		Title:       e.Title,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		ExpenseDate: e.ExpenseDate,
		AuditFields: ToModelAuditFields(e.AuditFields),
	}
}

// ToDomainExpense converts a DB model expense to its domain form.
func ToDomainExpense(e models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:   e.ExpenseID,
		Title:       e.Title,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		ExpenseDate: e.ExpenseDate,
		AuditFields: ToDomainAuditFields(e.AuditFields),
	}
}

// ToDomainArchivedExpense converts a DB model archived expense to its domain form.
func ToDomainArchivedExpense(e models.ArchivedExpense) domain.ArchivedExpense {
	return domain.ArchivedExpense{
		ArchivedExpenseID: e.ArchivedExpenseID,
		ClosureID:         e.ClosureID,
		Title:             e.Title,
		Description:       e.Description,
		Amount:            e.Amount,
		Category:          e.Category,
		ExpenseDate:       e.ExpenseDate,
		CreatedBy:         e.CreatedBy,
		ArchivedAt:        e.ArchivedAt,
	}
}
