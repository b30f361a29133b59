package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tiers comerciales de un cliente.
const (
	TierEnterprise = "Enterprise"
	TierSMB        = "SMB"
	TierFreelance  = "Freelance"
)

// Client representa un cliente facturable del usuario.
type Client struct {
	ID           string
	UserID       string
	Name         string
	Tier         string // Enterprise, SMB, Freelance
	Region       string
	ContactEmail string
	ContactPhone string
	HourlyRate   decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
