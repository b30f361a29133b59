package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago de una factura.
const (
	InvoiceStatusUnpaid  = "unpaid"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

// Invoice representa una factura emitida a un cliente.
// ProjectID es opcional (vacío = factura sin proyecto asociado).
type Invoice struct {
	ID          string
	UserID      string
	ClientID    string
	ProjectID   string
	Amount      decimal.Decimal
	HoursBilled decimal.Decimal
	InvoiceDate time.Time
	DueDate     time.Time
	PaidDate    *time.Time
	Status      string // unpaid, paid, overdue
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOutstanding indica si la factura sigue pendiente de cobro.
func (i *Invoice) IsOutstanding() bool {
	return i.Status == InvoiceStatusUnpaid || i.Status == InvoiceStatusOverdue
}
