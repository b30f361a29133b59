package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceRequest body para POST/PUT /api/invoices.
// Las fechas van como ISO-8601 ("2026-02-15" o timestamp completo).
type InvoiceRequest struct {
	ClientID    string          `json:"client_id"`
	ProjectID   string          `json:"project_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	HoursBilled decimal.Decimal `json:"hours_billed"`
	InvoiceDate string          `json:"invoice_date"`
	DueDate     string          `json:"due_date"`
	PaidDate    string          `json:"paid_date,omitempty"`
	Status      string          `json:"status,omitempty"` // default: unpaid
}

// InvoiceResponse factura en respuestas.
type InvoiceResponse struct {
	ID          string          `json:"id"`
	ClientID    string          `json:"client_id"`
	ProjectID   string          `json:"project_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	HoursBilled decimal.Decimal `json:"hours_billed"`
	InvoiceDate time.Time       `json:"invoice_date"`
	DueDate     time.Time       `json:"due_date"`
	PaidDate    *time.Time      `json:"paid_date,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ARAgingDTO respuesta de GET /api/invoices/ar-aging: cartera pendiente por
// bucket de días de mora. Las claves replican el contrato del frontend.
type ARAgingDTO struct {
	Bucket0to30  decimal.Decimal `json:"0-30"`
	Bucket31to60 decimal.Decimal `json:"31-60"`
	Bucket61to90 decimal.Decimal `json:"61-90"`
	BucketOver90 decimal.Decimal `json:"90+"`
}
