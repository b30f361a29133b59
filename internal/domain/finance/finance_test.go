package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/entity"
)

var testNow = time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC)

// invoice crea una factura de prueba; paidDaysAgo < 0 = sin pagar.
func invoice(clientID, status string, amount float64, invoiceDaysAgo, dueDaysAgo, paidDaysAgo int) *entity.Invoice {
	inv := &entity.Invoice{
		ClientID:    clientID,
		Amount:      decimal.NewFromFloat(amount),
		HoursBilled: decimal.NewFromInt(10),
		InvoiceDate: testNow.AddDate(0, 0, -invoiceDaysAgo),
		DueDate:     testNow.AddDate(0, 0, -dueDaysAgo),
		Status:      status,
	}
	if paidDaysAgo >= 0 {
		d := testNow.AddDate(0, 0, -paidDaysAgo)
		inv.PaidDate = &d
	}
	return inv
}

// ──────────────────────────────────────────────────────────────────────────────
// Aging de cartera
// ──────────────────────────────────────────────────────────────────────────────

func TestAgeReceivables_Buckets(t *testing.T) {
	invoices := []*entity.Invoice{
		invoice("c", entity.InvoiceStatusUnpaid, 100, 20, 10, -1),   // 10 días de mora → 0-30
		invoice("c", entity.InvoiceStatusUnpaid, 200, 60, -15, -1),  // aún no vence → 0-30
		invoice("c", entity.InvoiceStatusOverdue, 300, 75, 45, -1),  // 45 días → 31-60
		invoice("c", entity.InvoiceStatusOverdue, 400, 100, 70, -1), // 70 días → 61-90
		invoice("c", entity.InvoiceStatusOverdue, 500, 200, 150, -1),
		invoice("c", entity.InvoiceStatusPaid, 9999, 30, 20, 5), // pagada, no cuenta
	}
	b := AgeReceivables(invoices, testNow)

	assert.True(t, b.Days0to30.Equal(decimal.NewFromInt(300)), "0-30: %s", b.Days0to30)
	assert.True(t, b.Days31to60.Equal(decimal.NewFromInt(300)), "31-60: %s", b.Days31to60)
	assert.True(t, b.Days61to90.Equal(decimal.NewFromInt(400)), "61-90: %s", b.Days61to90)
	assert.True(t, b.Over90.Equal(decimal.NewFromInt(500)), "90+: %s", b.Over90)
}

func TestAgeReceivables_SinFacturas(t *testing.T) {
	b := AgeReceivables(nil, testNow)
	assert.True(t, b.Days0to30.IsZero())
	assert.True(t, b.Over90.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// KPIs
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeKPIs(t *testing.T) {
	s := DefaultSettings() // overhead 25%
	invoices := []*entity.Invoice{
		invoice("c", entity.InvoiceStatusPaid, 1000, 40, 30, 25),
		invoice("c", entity.InvoiceStatusPaid, 2650, 20, 10, 5),
		invoice("c", entity.InvoiceStatusUnpaid, 500, 10, -20, -1),
		invoice("c", entity.InvoiceStatusOverdue, 230, 90, 60, -1),
	}
	k := ComputeKPIs(invoices, s)

	assert.True(t, k.TotalRevenue.Equal(decimal.NewFromInt(3650)))
	assert.True(t, k.GrossProfit.Equal(decimal.NewFromFloat(2737.5)), "profit: %s", k.GrossProfit)
	assert.True(t, k.GrossMarginPercent.Equal(decimal.NewFromInt(75)), "margin: %s", k.GrossMarginPercent)
	assert.True(t, k.OutstandingAR.Equal(decimal.NewFromInt(730)))
	assert.True(t, k.BillableHours.Equal(decimal.NewFromInt(40)))
	// AR 730 / (3650/365 = 10 por día) = 73 días
	assert.True(t, k.DaysSalesOutstanding.Equal(decimal.NewFromInt(73)), "dso: %s", k.DaysSalesOutstanding)
}

func TestComputeKPIs_SinIngresos_SinDivisionPorCero(t *testing.T) {
	invoices := []*entity.Invoice{
		invoice("c", entity.InvoiceStatusUnpaid, 500, 10, 5, -1),
	}
	k := ComputeKPIs(invoices, DefaultSettings())
	assert.True(t, k.TotalRevenue.IsZero())
	assert.True(t, k.GrossMarginPercent.IsZero())
	assert.True(t, k.DaysSalesOutstanding.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Rentabilidad por cliente
// ──────────────────────────────────────────────────────────────────────────────

func TestClientProfitabilityRows(t *testing.T) {
	s := DefaultSettings()
	clients := []*entity.Client{
		{ID: "a", Name: "Alpha", Tier: entity.TierEnterprise, Region: "Europe"},
		{ID: "b", Name: "Beta", Tier: entity.TierSMB, Region: "North America"},
	}
	projects := []*entity.Project{
		{ClientID: "a", HoursWorked: decimal.NewFromInt(100)},
		{ClientID: "a", HoursWorked: decimal.NewFromInt(50)},
	}
	invoices := []*entity.Invoice{
		invoice("a", entity.InvoiceStatusPaid, 3000, 30, 20, 10),
		invoice("a", entity.InvoiceStatusUnpaid, 700, 5, -25, -1),
		invoice("b", entity.InvoiceStatusPaid, 8000, 60, 45, 40),
	}

	rows := ClientProfitabilityRows(clients, projects, invoices, s)
	require.Len(t, rows, 2)

	// Ordenado por ingresos descendente: Beta primero.
	assert.Equal(t, "b", rows[0].ClientID)
	assert.Equal(t, "a", rows[1].ClientID)

	a := rows[1]
	assert.True(t, a.Revenue.Equal(decimal.NewFromInt(3000)))
	assert.True(t, a.HoursWorked.Equal(decimal.NewFromInt(150)))
	assert.True(t, a.Profit.Equal(decimal.NewFromInt(2250)))
	assert.True(t, a.MarginPercent.Equal(decimal.NewFromInt(75)))
	assert.True(t, a.ProfitPerHour.Equal(decimal.NewFromInt(15)))
	assert.True(t, a.OutstandingAR.Equal(decimal.NewFromInt(700)))
	require.NotNil(t, a.LastInvoiceDate)
	assert.Equal(t, testNow.AddDate(0, 0, -5), *a.LastInvoiceDate)

	b := rows[0]
	assert.True(t, b.HoursWorked.IsZero())
	assert.True(t, b.ProfitPerHour.IsZero(), "sin horas no hay profit/hora")
}

func TestClientProfitabilityRows_ClienteSinFacturas(t *testing.T) {
	clients := []*entity.Client{{ID: "a", Name: "Alpha"}}
	rows := ClientProfitabilityRows(clients, nil, nil, DefaultSettings())
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Revenue.IsZero())
	assert.True(t, rows[0].MarginPercent.IsZero())
	assert.Nil(t, rows[0].LastInvoiceDate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ingresos por mes
// ──────────────────────────────────────────────────────────────────────────────

func TestRevenueByMonth(t *testing.T) {
	invoices := []*entity.Invoice{
		invoice("c", entity.InvoiceStatusPaid, 1000, 50, 40, 35), // 2026-01
		invoice("c", entity.InvoiceStatusPaid, 500, 45, 40, 40),  // 2026-01
		invoice("c", entity.InvoiceStatusPaid, 2000, 10, 5, 2),   // 2026-02
		invoice("c", entity.InvoiceStatusPaid, 99, 500, 480, 400),
		invoice("c", entity.InvoiceStatusUnpaid, 300, 10, 5, -1),
	}
	months := RevenueByMonth(invoices, DefaultSettings(), testNow)
	require.Len(t, months, 2, "la pagada hace 400 días y la impaga no deben aparecer")

	assert.Equal(t, "2026-01", months[0].Month)
	assert.True(t, months[0].Revenue.Equal(decimal.NewFromInt(1500)))
	assert.True(t, months[0].Profit.Equal(decimal.NewFromInt(1125)))
	assert.Equal(t, "2026-02", months[1].Month)
	assert.True(t, months[1].Revenue.Equal(decimal.NewFromInt(2000)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Settings
// ──────────────────────────────────────────────────────────────────────────────

func TestSettings_ProfitFactor(t *testing.T) {
	s := Settings{OverheadRate: decimal.NewFromFloat(0.4)}
	assert.True(t, s.ProfitFactor().Equal(decimal.NewFromFloat(0.6)))
}

func TestSettings_FormatAmount(t *testing.T) {
	s := DefaultSettings()
	got := s.FormatAmount(decimal.NewFromFloat(1234.5))
	assert.Contains(t, got, "$", "USD debe formatearse con símbolo")

	// Códigos inválidos caen al default sin panicar.
	bad := Settings{Currency: "???", Locale: "xx-zz-invalid"}
	assert.NotEmpty(t, bad.FormatAmount(decimal.NewFromInt(10)))
}
