package finance

import (
	"github.com/shopspring/decimal"

	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/entity"
)

// KPIs indicadores globales del dashboard.
type KPIs struct {
	TotalRevenue         decimal.Decimal // ingresos de facturas pagadas
	GrossProfit          decimal.Decimal // TotalRevenue * (1 - overhead)
	GrossMarginPercent   decimal.Decimal // GrossProfit / TotalRevenue * 100
	OutstandingAR        decimal.Decimal // cartera pendiente (unpaid + overdue)
	DaysSalesOutstanding decimal.Decimal // AR / (ingresos diarios promedio)
	BillableHours        decimal.Decimal // horas facturadas en todas las facturas
}

var daysPerYear = decimal.NewFromInt(365)

// ComputeKPIs calcula los KPIs sobre el snapshot completo de facturas del
// usuario. El DSO se deriva de los datos (AR / ingreso diario promedio del
// último año contable) en lugar de usar una constante.
func ComputeKPIs(invoices []*entity.Invoice, s Settings) KPIs {
	k := KPIs{
		TotalRevenue:         decimal.Zero,
		GrossProfit:          decimal.Zero,
		GrossMarginPercent:   decimal.Zero,
		OutstandingAR:        decimal.Zero,
		DaysSalesOutstanding: decimal.Zero,
		BillableHours:        decimal.Zero,
	}
	for _, inv := range invoices {
		k.BillableHours = k.BillableHours.Add(inv.HoursBilled)
		switch {
		case inv.Status == entity.InvoiceStatusPaid:
			k.TotalRevenue = k.TotalRevenue.Add(inv.Amount)
		case inv.IsOutstanding():
			k.OutstandingAR = k.OutstandingAR.Add(inv.Amount)
		}
	}
	k.GrossProfit = k.TotalRevenue.Mul(s.ProfitFactor()).Round(2)
	if k.TotalRevenue.IsPositive() {
		k.GrossMarginPercent = k.GrossProfit.Div(k.TotalRevenue).Mul(decimal.NewFromInt(100)).Round(2)
		dailyRevenue := k.TotalRevenue.Div(daysPerYear)
		k.DaysSalesOutstanding = k.OutstandingAR.Div(dailyRevenue).Round(1)
	}
	return k
}
