package dto

import (
	"time"

	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAttendanceRequest defines the structure for recording a day's attendance.
type CreateAttendanceRequest struct {
	EmployeeID      string          `json:"employeeID" binding:"required"`
	WorkDate        string          `json:"workDate" binding:"required,datetime=2006-01-02"`
	DailyWageEarned decimal.Decimal `json:"dailyWageEarned" binding:"required,gte=0"`
	BonusAmount     decimal.Decimal `json:"bonusAmount" binding:"gte=0"`
	DeductionAmount decimal.Decimal `json:"deductionAmount" binding:"gte=0"`
}

// AttendanceResponse defines the structure for API responses containing attendance details.
type AttendanceResponse struct {
	AttendanceID    string          `json:"attendanceID"`
	EmployeeID      string          `json:"employeeID"`
	WorkDate        string          `json:"workDate"`
	DailyWageEarned decimal.Decimal `json:"dailyWageEarned"`
	BonusAmount     decimal.Decimal `json:"bonusAmount"`
	DeductionAmount decimal.Decimal `json:"deductionAmount"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
}

// ToAttendanceResponse converts a domain.AttendanceRecord to AttendanceResponse.
func ToAttendanceResponse(r *domain.AttendanceRecord) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID:    r.AttendanceID,
		EmployeeID:      r.EmployeeID,
		WorkDate:        FormatDay(r.WorkDate),
		DailyWageEarned: r.DailyWageEarned,
		BonusAmount:     r.BonusAmount,
		DeductionAmount: r.DeductionAmount,
		CreatedAt:       r.CreatedAt,
		CreatedBy:       r.CreatedBy,
	}
}

// ToAttendanceResponses converts a slice of domain attendance records.
func ToAttendanceResponses(records []domain.AttendanceRecord) []AttendanceResponse {
	responses := make([]AttendanceResponse, len(records))
	for i := range records {
		responses[i] = ToAttendanceResponse(&records[i])
	}
	return responses
}
