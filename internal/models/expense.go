package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense mirrors a row of the live expenses table.
type Expense struct {
	ExpenseID   string          `db:"expense_id"`
	Title       string          `db:"title"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Category    string          `db:"category"`
	ExpenseDate time.Time       `db:"expense_date"`
	AuditFields
}

// ArchivedExpense mirrors a row of the archived_expenses table.
type ArchivedExpense struct {
	ArchivedExpenseID string          `db:"archived_expense_id"`
	ClosureID         string          `db:"closure_id"`
	Title             string          `db:"title"`
	Description       string          `db:"description"`
	Amount            decimal.Decimal `db:"amount"`
	Category          string          `db:"category"`
	ExpenseDate       time.Time       `db:"expense_date"`
	CreatedBy         string          `db:"created_by"`
	ArchivedAt        time.Time       `db:"archived_at"`
}
