package finance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/entity"
)

// ClientProfitability fila de rentabilidad por cliente.
type ClientProfitability struct {
	ClientID        string
	ClientName      string
	Tier            string
	Region          string
	Revenue         decimal.Decimal // facturas pagadas
	HoursWorked     decimal.Decimal // horas de los proyectos del cliente
	Profit          decimal.Decimal // Revenue * (1 - overhead)
	MarginPercent   decimal.Decimal
	ProfitPerHour   decimal.Decimal
	OutstandingAR   decimal.Decimal
	LastInvoiceDate *time.Time
}

// ClientProfitabilityRows calcula una fila por cliente y las devuelve
// ordenadas por ingresos descendente. Facturas y proyectos que no pertenezcan
// a ningún cliente del snapshot se ignoran.
func ClientProfitabilityRows(
	clients []*entity.Client,
	projects []*entity.Project,
	invoices []*entity.Invoice,
	s Settings,
) []ClientProfitability {
	invByClient := make(map[string][]*entity.Invoice, len(clients))
	for _, inv := range invoices {
		invByClient[inv.ClientID] = append(invByClient[inv.ClientID], inv)
	}
	hoursByClient := make(map[string]decimal.Decimal, len(clients))
	for _, p := range projects {
		hoursByClient[p.ClientID] = hoursByClient[p.ClientID].Add(p.HoursWorked)
	}

	hundred := decimal.NewFromInt(100)
	rows := make([]ClientProfitability, 0, len(clients))
	for _, c := range clients {
		row := ClientProfitability{
			ClientID:      c.ID,
			ClientName:    c.Name,
			Tier:          c.Tier,
			Region:        c.Region,
			Revenue:       decimal.Zero,
			HoursWorked:   hoursByClient[c.ID],
			OutstandingAR: decimal.Zero,
		}
		for _, inv := range invByClient[c.ID] {
			switch {
			case inv.Status == entity.InvoiceStatusPaid:
				row.Revenue = row.Revenue.Add(inv.Amount)
			case inv.IsOutstanding():
				row.OutstandingAR = row.OutstandingAR.Add(inv.Amount)
			}
			if !inv.InvoiceDate.IsZero() {
				if row.LastInvoiceDate == nil || inv.InvoiceDate.After(*row.LastInvoiceDate) {
					d := inv.InvoiceDate
					row.LastInvoiceDate = &d
				}
			}
		}
		row.Profit = row.Revenue.Mul(s.ProfitFactor()).Round(2)
		if row.Revenue.IsPositive() {
			row.MarginPercent = row.Profit.Div(row.Revenue).Mul(hundred).Round(2)
		} else {
			row.MarginPercent = decimal.Zero
		}
		if row.HoursWorked.IsPositive() {
			row.ProfitPerHour = row.Profit.Div(row.HoursWorked).Round(2)
		} else {
			row.ProfitPerHour = decimal.Zero
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Revenue.GreaterThan(rows[j].Revenue)
	})
	return rows
}
