package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClientRequest body para POST/PUT /api/clients.
type ClientRequest struct {
	Name         string          `json:"name"`
	Tier         string          `json:"tier"`
	Region       string          `json:"region"`
	ContactEmail string          `json:"contact_email,omitempty"`
	ContactPhone string          `json:"contact_phone,omitempty"`
	HourlyRate   decimal.Decimal `json:"hourly_rate"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Tier         string          `json:"tier"`
	Region       string          `json:"region"`
	ContactEmail string          `json:"contact_email,omitempty"`
	ContactPhone string          `json:"contact_phone,omitempty"`
	HourlyRate   decimal.Decimal `json:"hourly_rate"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ClientSummary totales derivados para la vista de detalle de un cliente.
type ClientSummary struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalHours    decimal.Decimal `json:"total_hours"`
	OutstandingAR decimal.Decimal `json:"outstanding_ar"`
	Profit        decimal.Decimal `json:"profit"`
	MarginPercent decimal.Decimal `json:"margin_percent"`
}

// ClientDetailsResponse respuesta de GET /api/clients/:id/details.
type ClientDetailsResponse struct {
	Client   ClientResponse    `json:"client"`
	Projects []ProjectResponse `json:"projects"`
	Invoices []InvoiceResponse `json:"invoices"`
	Summary  ClientSummary     `json:"summary"`
}
