package finance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/entity"
)

// MonthlyRevenue ingresos y utilidad estimada de un mes calendario.
type MonthlyRevenue struct {
	Month   string // "YYYY-MM"
	Revenue decimal.Decimal
	Profit  decimal.Decimal
}

// RevenueByMonth agrupa las facturas pagadas de los últimos 365 días por mes
// de pago, en orden cronológico ascendente. Facturas pagadas sin fecha de
// pago se ignoran.
func RevenueByMonth(invoices []*entity.Invoice, s Settings, now time.Time) []MonthlyRevenue {
	cutoff := now.AddDate(0, 0, -365)
	factor := s.ProfitFactor()

	byMonth := make(map[string]*MonthlyRevenue)
	for _, inv := range invoices {
		if inv.Status != entity.InvoiceStatusPaid || inv.PaidDate == nil {
			continue
		}
		if inv.PaidDate.Before(cutoff) {
			continue
		}
		key := inv.PaidDate.Format("2006-01")
		m, ok := byMonth[key]
		if !ok {
			m = &MonthlyRevenue{Month: key, Revenue: decimal.Zero, Profit: decimal.Zero}
			byMonth[key] = m
		}
		m.Revenue = m.Revenue.Add(inv.Amount)
		m.Profit = m.Profit.Add(inv.Amount.Mul(factor))
	}

	out := make([]MonthlyRevenue, 0, len(byMonth))
	for _, m := range byMonth {
		m.Revenue = m.Revenue.Round(2)
		m.Profit = m.Profit.Round(2)
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}
