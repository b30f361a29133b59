package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un proyecto.
const (
	ProjectStatusActive    = "active"
	ProjectStatusPaused    = "paused"
	ProjectStatusCompleted = "completed"
)

// Project representa un proyecto de un cliente (las horas trabajadas alimentan
// el cálculo de rentabilidad por cliente).
type Project struct {
	ID          string
	UserID      string
	ClientID    string
	Name        string
	Description string
	HourlyRate  decimal.Decimal
	HoursWorked decimal.Decimal
	Status      string // active, paused, completed
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
