package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftClosure mirrors a row of the shift_closures table.
type ShiftClosure struct {
	ClosureID string    `db:"closure_id"`
	ShiftType string    `db:"shift_type"`
	ShiftDate time.Time `db:"shift_date"`

	CoinsSmall    decimal.Decimal `db:"coins_small"`
	CoinsOneDinar decimal.Decimal `db:"coins_one_dinar"`
	BillsLarge    decimal.Decimal `db:"bills_large"`

	PrevCoinsSmall    decimal.Decimal `db:"prev_coins_small"`
	PrevCoinsOneDinar decimal.Decimal `db:"prev_coins_one_dinar"`
	PrevBillsLarge    decimal.Decimal `db:"prev_bills_large"`

	CashSales    decimal.Decimal `db:"cash_sales"`
	CardSales    decimal.Decimal `db:"card_sales"`
	TadawulSales decimal.Decimal `db:"tadawul_sales"`
	PrestoSales  decimal.Decimal `db:"presto_sales"`

	ScreenSales     decimal.Decimal `db:"screen_sales"`
	ShiftExpenses   decimal.Decimal `db:"shift_expenses"`
	TotalActual     decimal.Decimal `db:"total_actual"`
	TotalCalculated decimal.Decimal `db:"total_calculated"`
	Difference      decimal.Decimal `db:"difference"`

	CreatedAt time.Time `db:"created_at"`
	CreatedBy string    `db:"created_by"`
}
