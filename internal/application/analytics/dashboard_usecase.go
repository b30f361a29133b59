// Package analytics expone los casos de uso de analítica del dashboard:
// KPIs financieros, rentabilidad por cliente, ingresos mensuales, antigüedad
// de cartera y segmentación RFM. Los cálculos en sí viven en los paquetes
// puros internal/domain/finance e internal/domain/rfm; aquí solo se cargan
// los snapshots del usuario y se mapean a DTOs.
package analytics

import (
	"context"
	"time"

	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/application/dto"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/finance"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/repository"
)

// Clock abstrae time.Now para que los tests fijen el instante de cálculo.
type Clock func() time.Time

// DashboardUseCase agrega métricas financieras por usuario.
type DashboardUseCase struct {
	clientRepo  repository.ClientRepository
	projectRepo repository.ProjectRepository
	invoiceRepo repository.InvoiceRepository
	settings    finance.Settings
	now         Clock
}

// NewDashboardUseCase construye el caso de uso. now puede ser nil (usa
// time.Now).
func NewDashboardUseCase(
	clientRepo repository.ClientRepository,
	projectRepo repository.ProjectRepository,
	invoiceRepo repository.InvoiceRepository,
	settings finance.Settings,
	now Clock,
) *DashboardUseCase {
	if now == nil {
		now = time.Now
	}
	return &DashboardUseCase{
		clientRepo:  clientRepo,
		projectRepo: projectRepo,
		invoiceRepo: invoiceRepo,
		settings:    settings,
		now:         now,
	}
}

// GetKPIs indicadores globales del usuario.
func (uc *DashboardUseCase) GetKPIs(ctx context.Context, userID string) (*dto.KPIResponse, error) {
	invoices, err := uc.invoiceRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	k := finance.ComputeKPIs(invoices, uc.settings)
	return &dto.KPIResponse{
		TotalRevenue:         k.TotalRevenue,
		GrossProfit:          k.GrossProfit,
		GrossMarginPercent:   k.GrossMarginPercent,
		OutstandingAR:        k.OutstandingAR,
		DaysSalesOutstanding: k.DaysSalesOutstanding,
		BillableHours:        k.BillableHours,
	}, nil
}

// GetClientProfitability una fila por cliente, ordenada por ingresos
// descendente. Los clientes sin facturas también aparecen, con montos en
// cero.
func (uc *DashboardUseCase) GetClientProfitability(ctx context.Context, userID string) ([]dto.ClientProfitabilityDTO, error) {
	clients, err := uc.clientRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	projects, err := uc.projectRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	invoices, err := uc.invoiceRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows := finance.ClientProfitabilityRows(clients, projects, invoices, uc.settings)
	out := make([]dto.ClientProfitabilityDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ClientProfitabilityDTO{
			ClientID:        r.ClientID,
			ClientName:      r.ClientName,
			Tier:            r.Tier,
			Region:          r.Region,
			Revenue:         r.Revenue,
			HoursWorked:     r.HoursWorked,
			Profit:          r.Profit,
			MarginPercent:   r.MarginPercent,
			ProfitPerHour:   r.ProfitPerHour,
			OutstandingAR:   r.OutstandingAR,
			LastInvoiceDate: r.LastInvoiceDate,
		})
	}
	return out, nil
}

// GetRevenueByMonth ingresos pagados de los últimos 12 meses, por mes.
func (uc *DashboardUseCase) GetRevenueByMonth(ctx context.Context, userID string) ([]dto.RevenueByMonthDTO, error) {
	invoices, err := uc.invoiceRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	months := finance.RevenueByMonth(invoices, uc.settings, uc.now().UTC())
	out := make([]dto.RevenueByMonthDTO, 0, len(months))
	for _, m := range months {
		out = append(out, dto.RevenueByMonthDTO{Month: m.Month, Revenue: m.Revenue, Profit: m.Profit})
	}
	return out, nil
}

// GetARAging cartera pendiente agrupada por días de mora.
func (uc *DashboardUseCase) GetARAging(ctx context.Context, userID string) (*dto.ARAgingDTO, error) {
	invoices, err := uc.invoiceRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	b := finance.AgeReceivables(invoices, uc.now().UTC())
	return &dto.ARAgingDTO{
		Bucket0to30:  b.Days0to30,
		Bucket31to60: b.Days31to60,
		Bucket61to90: b.Days61to90,
		BucketOver90: b.Over90,
	}, nil
}
