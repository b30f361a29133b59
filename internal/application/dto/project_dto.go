package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectRequest body para POST/PUT /api/projects.
// Las fechas van como ISO-8601 ("2026-02-15" o timestamp completo).
type ProjectRequest struct {
	ClientID    string          `json:"client_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	HoursWorked decimal.Decimal `json:"hours_worked"`
	Status      string          `json:"status,omitempty"` // default: active
	StartDate   string          `json:"start_date,omitempty"`
	EndDate     string          `json:"end_date,omitempty"`
}

// ProjectResponse proyecto en respuestas.
type ProjectResponse struct {
	ID          string          `json:"id"`
	ClientID    string          `json:"client_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	HoursWorked decimal.Decimal `json:"hours_worked"`
	Status      string          `json:"status"`
	StartDate   *time.Time      `json:"start_date,omitempty"`
	EndDate     *time.Time      `json:"end_date,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
