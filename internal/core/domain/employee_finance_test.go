package domain_test

import (
	"testing"
	"time"

	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMonthWindow(t *testing.T) {
	start, end := domain.MonthWindow(time.Date(2024, time.March, 15, 13, 45, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), end)

	// December rolls over into the next year
	start, end = domain.MonthWindow(time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestSumAttendanceEarnings(t *testing.T) {
	records := []domain.AttendanceRecord{
		{DailyWageEarned: d(20), BonusAmount: d(5), DeductionAmount: d(2)},
		{DailyWageEarned: d(20), BonusAmount: decimal.Zero, DeductionAmount: decimal.Zero},
	}
	assert.True(t, d(43).Equal(domain.SumAttendanceEarnings(records)))
	assert.True(t, decimal.Zero.Equal(domain.SumAttendanceEarnings(nil)))
}
