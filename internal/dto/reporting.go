package dto

import (
	"github.com/shopspring/decimal"
)

// ExpenseReportRow is one aggregated line of the closure-spanning expense report.
// Rows combine live and archived expenses; a closed day contributes only archived rows
// so no date is ever double counted.
type ExpenseReportRow struct {
	Date     string          `json:"date"`
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
	Archived bool            `json:"archived"`
}

// ExpenseReportResponse is the full report payload, with the configured brand metadata
// the PDF collaborators stamp onto exported documents.
type ExpenseReportResponse struct {
	BrandName   string             `json:"brandName"`
	BrandNameAr string             `json:"brandNameAr"`
	From        string             `json:"from"`
	To          string             `json:"to"`
	GrandTotal  decimal.Decimal    `json:"grandTotal"`
	Rows        []ExpenseReportRow `json:"rows"`
}
