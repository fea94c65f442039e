package dto

import (
	"time"

	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSalaryPaymentRequest defines the structure for recording a salary disbursement.
type CreateSalaryPaymentRequest struct {
	EmployeeID  string          `json:"employeeID" binding:"required"`
	AmountPaid  decimal.Decimal `json:"amountPaid" binding:"required,gte=0"`
	PeriodStart string          `json:"periodStart" binding:"required,datetime=2006-01-02"`
	PeriodEnd   string          `json:"periodEnd" binding:"required,datetime=2006-01-02"`
	PaymentDate string          `json:"paymentDate" binding:"required,datetime=2006-01-02"`
	Notes       string          `json:"notes"`
}

// SalaryPaymentResponse defines the structure for API responses containing payment details.
type SalaryPaymentResponse struct {
	PaymentID   string          `json:"paymentID"`
	EmployeeID  string          `json:"employeeID"`
	AmountPaid  decimal.Decimal `json:"amountPaid"`
	PeriodStart string          `json:"periodStart"`
	PeriodEnd   string          `json:"periodEnd"`
	PaymentDate string          `json:"paymentDate"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   string          `json:"createdBy"`
}

// ToSalaryPaymentResponse converts a domain.SalaryPayment to SalaryPaymentResponse.
func ToSalaryPaymentResponse(p *domain.SalaryPayment) SalaryPaymentResponse {
	return SalaryPaymentResponse{
		PaymentID:   p.PaymentID,
		EmployeeID:  p.EmployeeID,
		AmountPaid:  p.AmountPaid,
		PeriodStart: FormatDay(p.PeriodStart),
		PeriodEnd:   FormatDay(p.PeriodEnd),
		PaymentDate: FormatDay(p.PaymentDate),
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
		CreatedBy:   p.CreatedBy,
	}
}

// ToSalaryPaymentResponses converts a slice of domain payments.
func ToSalaryPaymentResponses(payments []domain.SalaryPayment) []SalaryPaymentResponse {
	responses := make([]SalaryPaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToSalaryPaymentResponse(&payments[i])
	}
	return responses
}
