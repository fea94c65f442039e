package domain_test

import (
	"testing"

	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestReconcileDrawer(t *testing.T) {
	tests := []struct {
		name          string
		counted       domain.CashCount
		carry         domain.CashCount
		sales         domain.SalesChannels
		screenSales   decimal.Decimal
		expensesTotal decimal.Decimal
		wantActual    decimal.Decimal
		wantCalc      decimal.Decimal
		wantDiff      decimal.Decimal
	}{
		{
			name:          "full worked example",
			counted:       domain.CashCount{CoinsSmall: d(50), CoinsOneDinar: d(200), BillsLarge: d(300)},
			carry:         domain.CashCount{CoinsSmall: d(20), CoinsOneDinar: d(80), BillsLarge: d(0)},
			sales:         domain.SalesChannels{Cash: d(400), Card: d(150), Tadawul: d(0), Presto: d(0)},
			screenSales:   d(900),
			expensesTotal: d(75),
			wantActual:    d(550),
			wantCalc:      d(1075),
			wantDiff:      d(175),
		},
		{
			name:        "all zero inputs",
			screenSales: decimal.Zero,
			wantActual:  decimal.Zero,
			wantCalc:    decimal.Zero,
			wantDiff:    decimal.Zero,
		},
		{
			name:          "no expenses no carry",
			counted:       domain.CashCount{CoinsSmall: d(10), CoinsOneDinar: d(20), BillsLarge: d(30)},
			sales:         domain.SalesChannels{Cash: d(100), Card: d(50), Tadawul: d(25), Presto: d(25)},
			screenSales:   d(260),
			expensesTotal: decimal.Zero,
			wantActual:    d(60),
			wantCalc:      d(260),
			wantDiff:      d(0),
		},
		{
			name:          "screen sales exceed calculated total",
			counted:       domain.CashCount{CoinsSmall: d(5), CoinsOneDinar: d(5), BillsLarge: d(0)},
			carry:         domain.CashCount{CoinsSmall: d(10), CoinsOneDinar: d(0), BillsLarge: d(0)},
			sales:         domain.SalesChannels{Cash: d(20)},
			screenSales:   d(100),
			expensesTotal: d(5),
			wantActual:    d(10),
			wantCalc:      d(25),
			wantDiff:      d(-75),
		},
		{
			name:          "fractional amounts",
			counted:       domain.CashCount{CoinsSmall: decimal.RequireFromString("0.25"), CoinsOneDinar: decimal.RequireFromString("1.50"), BillsLarge: d(10)},
			sales:         domain.SalesChannels{Cash: decimal.RequireFromString("3.75")},
			screenSales:   decimal.RequireFromString("15.50"),
			expensesTotal: decimal.RequireFromString("0.50"),
			wantActual:    decimal.RequireFromString("11.75"),
			wantCalc:      d(16),
			wantDiff:      decimal.RequireFromString("0.50"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ReconcileDrawer(tt.counted, tt.carry, tt.sales, tt.screenSales, tt.expensesTotal)
			assert.True(t, tt.wantActual.Equal(got.TotalActual), "TotalActual = %s, want %s", got.TotalActual, tt.wantActual)
			assert.True(t, tt.wantCalc.Equal(got.TotalCalculated), "TotalCalculated = %s, want %s", got.TotalCalculated, tt.wantCalc)
			assert.True(t, tt.wantDiff.Equal(got.Difference), "Difference = %s, want %s", got.Difference, tt.wantDiff)
			assert.True(t, tt.sales.Total().Equal(got.TotalSales))
			assert.True(t, tt.carry.Total().Equal(got.PrevTotal))
		})
	}
}

func TestSumExpenses(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(domain.SumExpenses(nil)))
	assert.True(t, decimal.Zero.Equal(domain.SumExpenses([]domain.Expense{})))

	expenses := []domain.Expense{
		{ExpenseID: "a", Amount: decimal.RequireFromString("12.50")},
		{ExpenseID: "b", Amount: decimal.RequireFromString("7.25")},
		{ExpenseID: "c", Amount: d(30)},
	}
	assert.True(t, decimal.RequireFromString("49.75").Equal(domain.SumExpenses(expenses)))
	assert.Equal(t, []string{"a", "b", "c"}, domain.ExpenseIDs(expenses))
}
