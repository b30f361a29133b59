package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// KPIResponse respuesta de GET /api/dashboard/kpis.
type KPIResponse struct {
	TotalRevenue         decimal.Decimal `json:"total_revenue"`
	GrossProfit          decimal.Decimal `json:"gross_profit"`
	GrossMarginPercent   decimal.Decimal `json:"gross_margin_percent"`
	OutstandingAR        decimal.Decimal `json:"outstanding_ar"`
	DaysSalesOutstanding decimal.Decimal `json:"days_sales_outstanding"`
	BillableHours        decimal.Decimal `json:"billable_hours"`
}

// ClientProfitabilityDTO fila de GET /api/dashboard/client-profitability.
type ClientProfitabilityDTO struct {
	ClientID        string          `json:"client_id"`
	ClientName      string          `json:"client_name"`
	Tier            string          `json:"tier"`
	Region          string          `json:"region"`
	Revenue         decimal.Decimal `json:"revenue"`
	HoursWorked     decimal.Decimal `json:"hours_worked"`
	Profit          decimal.Decimal `json:"profit"`
	MarginPercent   decimal.Decimal `json:"margin_percent"`
	ProfitPerHour   decimal.Decimal `json:"profit_per_hour"`
	OutstandingAR   decimal.Decimal `json:"outstanding_ar"`
	LastInvoiceDate *time.Time      `json:"last_invoice_date"`
}

// RevenueByMonthDTO fila de GET /api/dashboard/revenue-by-month.
type RevenueByMonthDTO struct {
	Month   string          `json:"month"` // "YYYY-MM"
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
}

// RFMRowDTO fila de GET /api/dashboard/rfm. Los nombres de campo replican el
// contrato existente del frontend (R, F, M en mayúscula).
type RFMRowDTO struct {
	ClientID        string          `json:"client_id"`
	ClientName      string          `json:"client_name"`
	RecencyDays     int             `json:"recency_days"`
	Frequency       int             `json:"frequency"`
	Monetary        decimal.Decimal `json:"monetary"`
	R               int             `json:"R"`
	F               int             `json:"F"`
	M               int             `json:"M"`
	RFMScore        int             `json:"rfm_score"`
	Segment         string          `json:"segment"`
	LastInvoiceDate *time.Time      `json:"last_invoice_date"`
}
