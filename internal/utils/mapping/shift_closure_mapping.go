package mapping

import (
	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	"github.com/qahwatech/cafe_backoffice_app/internal/models"
)

// ToModelShiftClosure flattens a domain closure into its DB model.
func ToModelShiftClosure(c domain.ShiftClosure) models.ShiftClosure {
	return models.ShiftClosure{
		ClosureID:         c.ClosureID,
		ShiftType:         string(c.ShiftType),
		ShiftDate:         c.ShiftDate,
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

// ToDomainShiftClosure rebuilds a domain closure from its DB model.
func ToDomainShiftClosure(c models.ShiftClosure) domain.ShiftClosure {
	return domain.ShiftClosure{
		ClosureID: c.ClosureID,
		ShiftType: domain.ShiftType(c.ShiftType),
		ShiftDate: c.ShiftDate,
		Counted: domain.CashCount{
			CoinsSmall:    c.CoinsSmall,
			CoinsOneDinar: c.CoinsOneDinar,
			BillsLarge:    c.BillsLarge,
		},
		Carry: domain.CashCount{
			CoinsSmall:    c.PrevCoinsSmall,
			CoinsOneDinar: c.PrevCoinsOneDinar,
			BillsLarge:    c.PrevBillsLarge,
		},
		Sales: domain.SalesChannels{
			Cash:    c.CashSales,
			Card:    c.CardSales,
			Tadawul: c.TadawulSales,
			Presto:  c.PrestoSales,
		},
		ScreenSales:     c.ScreenSales,
		ShiftExpenses:   c.ShiftExpenses,
		TotalActual:     c.TotalActual,
		TotalCalculated: c.TotalCalculated,
		Difference:      c.Difference,
		CreatedAt:       c.CreatedAt,
		CreatedBy:       c.CreatedBy,
	}
}
