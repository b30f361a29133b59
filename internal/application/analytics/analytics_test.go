package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/entity"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/finance"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/rfm"
)

// Repos en memoria: devuelven snapshots fijos, suficientes para probar la
// capa de agregación sin base de datos.
type fakeClientRepo struct{ clients []*entity.Client }

func (r *fakeClientRepo) Create(context.Context, *entity.Client) error { return nil }
func (r *fakeClientRepo) GetByID(context.Context, string) (*entity.Client, error) {
	return nil, nil
}
func (r *fakeClientRepo) ListByUser(context.Context, string) ([]*entity.Client, error) {
	return r.clients, nil
}
func (r *fakeClientRepo) Update(context.Context, *entity.Client) error { return nil }
func (r *fakeClientRepo) Delete(context.Context, string) error         { return nil }
func (r *fakeClientRepo) DeleteByUser(context.Context, string) error   { return nil }

type fakeProjectRepo struct{ projects []*entity.Project }

func (r *fakeProjectRepo) Create(context.Context, *entity.Project) error { return nil }
func (r *fakeProjectRepo) GetByID(context.Context, string) (*entity.Project, error) {
	return nil, nil
}
func (r *fakeProjectRepo) ListByUser(context.Context, string) ([]*entity.Project, error) {
	return r.projects, nil
}
func (r *fakeProjectRepo) ListByClient(context.Context, string) ([]*entity.Project, error) {
	return r.projects, nil
}
func (r *fakeProjectRepo) Update(context.Context, *entity.Project) error { return nil }
func (r *fakeProjectRepo) Delete(context.Context, string) error          { return nil }
func (r *fakeProjectRepo) DeleteByClient(context.Context, string) error  { return nil }
func (r *fakeProjectRepo) DeleteByUser(context.Context, string) error    { return nil }

type fakeInvoiceRepo struct{ invoices []*entity.Invoice }

func (r *fakeInvoiceRepo) Create(context.Context, *entity.Invoice) error { return nil }
func (r *fakeInvoiceRepo) GetByID(context.Context, string) (*entity.Invoice, error) {
	return nil, nil
}
func (r *fakeInvoiceRepo) ListByUser(context.Context, string) ([]*entity.Invoice, error) {
	return r.invoices, nil
}
func (r *fakeInvoiceRepo) ListByClient(context.Context, string) ([]*entity.Invoice, error) {
	return r.invoices, nil
}
func (r *fakeInvoiceRepo) Update(context.Context, *entity.Invoice) error { return nil }
func (r *fakeInvoiceRepo) Delete(context.Context, string) error          { return nil }
func (r *fakeInvoiceRepo) DeleteByClient(context.Context, string) error  { return nil }
func (r *fakeInvoiceRepo) DeleteByUser(context.Context, string) error    { return nil }

var analyticsNow = time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return analyticsNow }

func paidInvoice(clientID string, amount float64, daysAgo int) *entity.Invoice {
	date := analyticsNow.AddDate(0, 0, -daysAgo)
	paid := date.AddDate(0, 0, 10)
	return &entity.Invoice{
		ID:          clientID + "-paid",
		UserID:      "u1",
		ClientID:    clientID,
		Amount:      decimal.NewFromFloat(amount),
		InvoiceDate: date,
		DueDate:     date.AddDate(0, 0, 30),
		PaidDate:    &paid,
		Status:      entity.InvoiceStatusPaid,
	}
}

func unpaidInvoice(clientID string, amount float64, dueDaysAgo int) *entity.Invoice {
	due := analyticsNow.AddDate(0, 0, -dueDaysAgo)
	return &entity.Invoice{
		ID:          clientID + "-unpaid",
		UserID:      "u1",
		ClientID:    clientID,
		Amount:      decimal.NewFromFloat(amount),
		InvoiceDate: due.AddDate(0, 0, -30),
		DueDate:     due,
		Status:      entity.InvoiceStatusUnpaid,
	}
}

func TestDashboardUseCase_GetKPIs(t *testing.T) {
	invoices := &fakeInvoiceRepo{invoices: []*entity.Invoice{
		paidInvoice("a", 1000, 40),
		paidInvoice("a", 2000, 10),
		unpaidInvoice("b", 500, 45),
	}}
	uc := NewDashboardUseCase(&fakeClientRepo{}, &fakeProjectRepo{}, invoices, finance.DefaultSettings(), fixedClock)

	k, err := uc.GetKPIs(context.Background(), "u1")
	require.NoError(t, err)

	assert.True(t, k.TotalRevenue.Equal(decimal.NewFromInt(3000)), "revenue: %s", k.TotalRevenue)
	assert.True(t, k.GrossProfit.Equal(decimal.NewFromInt(2250)), "profit: %s", k.GrossProfit)
	assert.True(t, k.OutstandingAR.Equal(decimal.NewFromInt(500)), "ar: %s", k.OutstandingAR)
	// DSO = 500 / (3000/365) = 60.8
	assert.True(t, k.DaysSalesOutstanding.Equal(decimal.NewFromFloat(60.8)), "dso: %s", k.DaysSalesOutstanding)
}

func TestDashboardUseCase_GetARAging(t *testing.T) {
	invoices := &fakeInvoiceRepo{invoices: []*entity.Invoice{
		unpaidInvoice("a", 100, 5),   // 0-30
		unpaidInvoice("b", 200, 45),  // 31-60
		unpaidInvoice("c", 300, 75),  // 61-90
		unpaidInvoice("d", 400, 120), // 90+
		paidInvoice("e", 9999, 10),   // pagada, fuera de la cartera
	}}
	uc := NewDashboardUseCase(&fakeClientRepo{}, &fakeProjectRepo{}, invoices, finance.DefaultSettings(), fixedClock)

	aging, err := uc.GetARAging(context.Background(), "u1")
	require.NoError(t, err)

	assert.True(t, aging.Bucket0to30.Equal(decimal.NewFromInt(100)))
	assert.True(t, aging.Bucket31to60.Equal(decimal.NewFromInt(200)))
	assert.True(t, aging.Bucket61to90.Equal(decimal.NewFromInt(300)))
	assert.True(t, aging.BucketOver90.Equal(decimal.NewFromInt(400)))
}

func TestDashboardUseCase_GetClientProfitability_IncludesClientsWithoutInvoices(t *testing.T) {
	clients := &fakeClientRepo{clients: []*entity.Client{
		{ID: "a", UserID: "u1", Name: "Alpha"},
		{ID: "b", UserID: "u1", Name: "Beta"},
	}}
	invoices := &fakeInvoiceRepo{invoices: []*entity.Invoice{paidInvoice("a", 1000, 10)}}
	uc := NewDashboardUseCase(clients, &fakeProjectRepo{}, invoices, finance.DefaultSettings(), fixedClock)

	rows, err := uc.GetClientProfitability(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Alpha", rows[0].ClientName)
	assert.Equal(t, "Beta", rows[1].ClientName)
	assert.True(t, rows[1].Revenue.IsZero())
	assert.True(t, rows[1].Profit.IsZero())
}

func TestRFMUseCase_GetSegmentation(t *testing.T) {
	clients := &fakeClientRepo{clients: []*entity.Client{
		{ID: "a", UserID: "u1", Name: "Alpha"},
		{ID: "b", UserID: "u1", Name: "Beta"},
		{ID: "c", UserID: "u1", Name: "Gamma"},
	}}
	invs := make([]*entity.Invoice, 0, 6)
	for i := 0; i < 5; i++ {
		invs = append(invs, paidInvoice("a", 1000, 2+i*10))
	}
	invs = append(invs, paidInvoice("b", 100, 400))
	invoices := &fakeInvoiceRepo{invoices: invs}

	uc := NewRFMUseCase(clients, invoices, fixedClock)
	rows, err := uc.GetSegmentation(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Orden: score descendente. Alpha domina en las tres métricas.
	assert.Equal(t, "Alpha", rows[0].ClientName)
	assert.Equal(t, 15, rows[0].RFMScore)
	assert.Equal(t, rfm.SegmentChampion, rows[0].Segment)

	assert.Equal(t, "Beta", rows[1].ClientName)
	assert.Equal(t, "Gamma", rows[2].ClientName)
	assert.Equal(t, rfm.SegmentLost, rows[2].Segment)
	assert.Equal(t, rfm.RecencyNever, rows[2].RecencyDays)
	assert.Nil(t, rows[2].LastInvoiceDate)
}
