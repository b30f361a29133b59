package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/entity"
)

// AgingBuckets cartera pendiente agrupada por días de mora contra la fecha de
// vencimiento. Una factura aún no vencida cae en el bucket 0-30.
type AgingBuckets struct {
	Days0to30  decimal.Decimal
	Days31to60 decimal.Decimal
	Days61to90 decimal.Decimal
	Over90     decimal.Decimal
}

// AgeReceivables clasifica las facturas pendientes (unpaid/overdue) en
// buckets de antigüedad. Facturas sin fecha de vencimiento se ignoran.
func AgeReceivables(invoices []*entity.Invoice, now time.Time) AgingBuckets {
	b := AgingBuckets{
		Days0to30:  decimal.Zero,
		Days31to60: decimal.Zero,
		Days61to90: decimal.Zero,
		Over90:     decimal.Zero,
	}
	for _, inv := range invoices {
		if !inv.IsOutstanding() || inv.DueDate.IsZero() {
			continue
		}
		daysOverdue := int(now.Sub(inv.DueDate).Hours() / 24)
		switch {
		case daysOverdue <= 30:
			b.Days0to30 = b.Days0to30.Add(inv.Amount)
		case daysOverdue <= 60:
			b.Days31to60 = b.Days31to60.Add(inv.Amount)
		case daysOverdue <= 90:
			b.Days61to90 = b.Days61to90.Add(inv.Amount)
		default:
			b.Over90 = b.Over90.Add(inv.Amount)
		}
	}
	return b
}
