package dto

import (
	"time"

	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CloseShiftRequest is the cash-count submission for a shift closure. All numeric fields
// are non-negative; range validation happens here at the binding layer, the reconciliation
// engine itself does not re-validate.
type CloseShiftRequest struct {
	ShiftType string `json:"shiftType" binding:"required,oneof=morning evening"`
	ShiftDate string `json:"shiftDate" binding:"required,datetime=2006-01-02"`

	CoinsSmall    decimal.Decimal `json:"coinsSmall" binding:"gte=0"`
	CoinsOneDinar decimal.Decimal `json:"coinsOneDinar" binding:"gte=0"`
	BillsLarge    decimal.Decimal `json:"billsLarge" binding:"gte=0"`

	PrevCoinsSmall    decimal.Decimal `json:"prevCoinsSmall" binding:"gte=0"`
	PrevCoinsOneDinar decimal.Decimal `json:"prevCoinsOneDinar" binding:"gte=0"`
	PrevBillsLarge    decimal.Decimal `json:"prevBillsLarge" binding:"gte=0"`

	CashSales    decimal.Decimal `json:"cashSales" binding:"gte=0"`
	CardSales    decimal.Decimal `json:"cardSales" binding:"gte=0"`
	TadawulSales decimal.Decimal `json:"tadawulSales" binding:"gte=0"`
	PrestoSales  decimal.Decimal `json:"prestoSales" binding:"gte=0"`

	ScreenSales decimal.Decimal `json:"screenSales" binding:"gte=0"`
}

// Counted returns the current physical cash count.
func (r CloseShiftRequest) Counted() domain.CashCount {
	return domain.CashCount{
		CoinsSmall:    r.CoinsSmall,
		CoinsOneDinar: r.CoinsOneDinar,
		BillsLarge:    r.BillsLarge,
	}
}

// Carry returns the previous shift's cash count.
func (r CloseShiftRequest) Carry() domain.CashCount {
	return domain.CashCount{
		CoinsSmall:    r.PrevCoinsSmall,
		CoinsOneDinar: r.PrevCoinsOneDinar,
		BillsLarge:    r.PrevBillsLarge,
	}
}

// Sales returns the sales-channel totals.
func (r CloseShiftRequest) Sales() domain.SalesChannels {
	return domain.SalesChannels{
		Cash:    r.CashSales,
		Card:    r.CardSales,
		Tadawul: r.TadawulSales,
		Presto:  r.PrestoSales,
	}
}

// ShiftClosureResponse defines the structure for API responses containing closure details.
type ShiftClosureResponse struct {
	ClosureID string `json:"closureID"`
	ShiftType string `json:"shiftType"`
	ShiftDate string `json:"shiftDate"`

	CoinsSmall    decimal.Decimal `json:"coinsSmall"`
	CoinsOneDinar decimal.Decimal `json:"coinsOneDinar"`
	BillsLarge    decimal.Decimal `json:"billsLarge"`

	PrevCoinsSmall    decimal.Decimal `json:"prevCoinsSmall"`
	PrevCoinsOneDinar decimal.Decimal `json:"prevCoinsOneDinar"`
	PrevBillsLarge    decimal.Decimal `json:"prevBillsLarge"`

	CashSales    decimal.Decimal `json:"cashSales"`
	CardSales    decimal.Decimal `json:"cardSales"`
	TadawulSales decimal.Decimal `json:"tadawulSales"`
	PrestoSales  decimal.Decimal `json:"prestoSales"`

	ScreenSales     decimal.Decimal `json:"screenSales"`
	ShiftExpenses   decimal.Decimal `json:"shiftExpenses"`
	TotalActual     decimal.Decimal `json:"totalActual"`
	TotalCalculated decimal.Decimal `json:"totalCalculated"`
	Difference      decimal.Decimal `json:"difference"`

	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// ToShiftClosureResponse converts a domain.ShiftClosure to ShiftClosureResponse.
func ToShiftClosureResponse(c *domain.ShiftClosure) ShiftClosureResponse {
	return ShiftClosureResponse{
		ClosureID:         c.ClosureID,
		ShiftType:         string(c.ShiftType),
		ShiftDate:         FormatDay(c.ShiftDate),
		CoinsSmall:        c.Counted.CoinsSmall,
		CoinsOneDinar:     c.Counted.CoinsOneDinar,
		BillsLarge:        c.Counted.BillsLarge,
		PrevCoinsSmall:    c.Carry.CoinsSmall,
		PrevCoinsOneDinar: c.Carry.CoinsOneDinar,
		PrevBillsLarge:    c.Carry.BillsLarge,
		CashSales:         c.Sales.Cash,
		CardSales:         c.Sales.Card,
		TadawulSales:      c.Sales.Tadawul,
		PrestoSales:       c.Sales.Presto,
		ScreenSales:       c.ScreenSales,
		ShiftExpenses:     c.ShiftExpenses,
		TotalActual:       c.TotalActual,
		TotalCalculated:   c.TotalCalculated,
		Difference:        c.Difference,
		CreatedAt:         c.CreatedAt,
		CreatedBy:         c.CreatedBy,
	}
}

// ToShiftClosureResponses converts a slice of domain closures.
func ToShiftClosureResponses(closures []domain.ShiftClosure) []ShiftClosureResponse {
	responses := make([]ShiftClosureResponse, len(closures))
	for i := range closures {
		responses[i] = ToShiftClosureResponse(&closures[i])
	}
	return responses
}
