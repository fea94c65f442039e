package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a live, editable expense row. An expense exists in exactly one of two states
// over its lifetime: live (this type, counted in daily stats) or archived (ArchivedExpense,
// an immutable copy owned by the shift closure that consumed it).
type Expense struct {
	ExpenseID   string          `json:"expenseID"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	ExpenseDate time.Time       `json:"expenseDate"` // calendar day, time portion zero
	AuditFields
}

// ArchivedExpense is a read-only copy of an expense captured by a shift closure.
// Archived rows are never mutated or deleted.
type ArchivedExpense struct {
	ArchivedExpenseID string          `json:"archivedExpenseID"`
	ClosureID         string          `json:"closureID"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	Amount            decimal.Decimal `json:"amount"`
	Category          string          `json:"category"`
	ExpenseDate       time.Time       `json:"expenseDate"`
	CreatedBy         string          `json:"createdBy"` // creator of the original live row
	ArchivedAt        time.Time       `json:"archivedAt"`
}

// SumExpenses totals the Amount field of the given expenses. Zero for an empty slice.
func SumExpenses(expenses []Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// ExpenseIDs returns the ids of the given expenses in order.
func ExpenseIDs(expenses []Expense) []string {
	ids := make([]string, len(expenses))
	for i, e := range expenses {
		ids[i] = e.ExpenseID
	}
	return ids
}
