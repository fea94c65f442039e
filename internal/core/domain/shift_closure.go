package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftType identifies which of the day's two shifts a closure reconciles.
type ShiftType string

const (
	ShiftMorning ShiftType = "morning"
	ShiftEvening ShiftType = "evening"
)

// CashCount is a physical drawer count broken down by denomination group.
type CashCount struct {
	CoinsSmall    decimal.Decimal `json:"coinsSmall"`
	CoinsOneDinar decimal.Decimal `json:"coinsOneDinar"`
	BillsLarge    decimal.Decimal `json:"billsLarge"`
}

// Total sums the denomination groups.
func (c CashCount) Total() decimal.Decimal {
	return c.CoinsSmall.Add(c.CoinsOneDinar).Add(c.BillsLarge)
}

// SalesChannels holds the four non-screen sales channel totals for a shift.
type SalesChannels struct {
	Cash    decimal.Decimal `json:"cash"`
	Card    decimal.Decimal `json:"card"`
	Tadawul decimal.Decimal `json:"tadawul"`
	Presto  decimal.Decimal `json:"presto"`
}

// Total sums the sales channels.
func (s SalesChannels) Total() decimal.Decimal {
	return s.Cash.Add(s.Card).Add(s.Tadawul).Add(s.Presto)
}

// ShiftClosure is an end-of-shift cash reconciliation record. Immutable after creation;
// no update or delete path exists. One closure owns zero or more ArchivedExpense copies.
type ShiftClosure struct {
	ClosureID   string          `json:"closureID"`
	ShiftType   ShiftType       `json:"shiftType"`
	ShiftDate   time.Time       `json:"shiftDate"`
	Counted     CashCount       `json:"counted"` // current physical cash count
	Carry       CashCount       `json:"carry"`   // cash left in the drawer by the previous shift
	Sales       SalesChannels   `json:"sales"`
	ScreenSales decimal.Decimal `json:"screenSales"`

	// Derived snapshot values, computed at closure time.
	ShiftExpenses   decimal.Decimal `json:"shiftExpenses"`
	TotalActual     decimal.Decimal `json:"totalActual"`
	TotalCalculated decimal.Decimal `json:"totalCalculated"`
	Difference      decimal.Decimal `json:"difference"`

	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// DrawerReconciliation holds every derived total of the reconciliation formula.
type DrawerReconciliation struct {
	TotalActual     decimal.Decimal // physical cash counted now
	TotalSales      decimal.Decimal // sum of the four non-screen channels
	PrevTotal       decimal.Decimal // carry from the previous shift
	TotalCalculated decimal.Decimal // actual + sales + expenses - carry
	Difference      decimal.Decimal // totalCalculated - screen sales
}

// ReconcileDrawer computes the shift reconciliation totals.
//
// Expenses paid out of the till are added back: they reduced physical cash but are a
// legitimate business cost, not a shortfall. The previous shift's carry is subtracted
// because it is not this shift's income. Screen-register sales are subtracted last since
// they are settled electronically and must not appear as a physical-cash surplus. The
// residual Difference is the drawer discrepancy signal operators use to detect theft or
// counting error.
func ReconcileDrawer(counted, carry CashCount, sales SalesChannels, screenSales, expensesTotal decimal.Decimal) DrawerReconciliation {
	totalActual := counted.Total()
	totalSales := sales.Total()
	prevTotal := carry.Total()
	totalCalculated := totalActual.Add(totalSales).Add(expensesTotal).Sub(prevTotal)
	difference := totalCalculated.Sub(screenSales)

	return DrawerReconciliation{
		TotalActual:     totalActual,
		TotalSales:      totalSales,
		PrevTotal:       prevTotal,
		TotalCalculated: totalCalculated,
		Difference:      difference,
	}
}
