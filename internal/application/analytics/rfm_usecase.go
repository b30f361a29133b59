package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/application/dto"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/repository"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/rfm"
)

// RFMUseCase calcula la segmentación RFM del portafolio del usuario.
type RFMUseCase struct {
	clientRepo  repository.ClientRepository
	invoiceRepo repository.InvoiceRepository
	now         Clock
}

// NewRFMUseCase construye el caso de uso. now puede ser nil (usa time.Now).
func NewRFMUseCase(clientRepo repository.ClientRepository, invoiceRepo repository.InvoiceRepository, now Clock) *RFMUseCase {
	if now == nil {
		now = time.Now
	}
	return &RFMUseCase{clientRepo: clientRepo, invoiceRepo: invoiceRepo, now: now}
}

// GetSegmentation carga el snapshot del usuario, ejecuta el motor RFM y
// devuelve las filas ordenadas por score descendente (monetario descendente
// como desempate). Todos los clientes del usuario aparecen, tengan facturas
// o no.
func (uc *RFMUseCase) GetSegmentation(ctx context.Context, userID string) ([]dto.RFMRowDTO, error) {
	clients, err := uc.clientRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	invoices, err := uc.invoiceRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	rfmClients := make([]rfm.Client, 0, len(clients))
	for _, c := range clients {
		rfmClients = append(rfmClients, rfm.Client{ID: c.ID, Name: c.Name})
	}
	rfmInvoices := make([]rfm.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		var date *time.Time
		if !inv.InvoiceDate.IsZero() {
			d := inv.InvoiceDate
			date = &d
		}
		rfmInvoices = append(rfmInvoices, rfm.Invoice{
			ClientID: inv.ClientID,
			Amount:   inv.Amount,
			Date:     date,
		})
	}

	rows := rfm.Compute(rfmClients, rfmInvoices, uc.now().UTC())
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		return rows[i].Monetary.GreaterThan(rows[j].Monetary)
	})

	out := make([]dto.RFMRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.RFMRowDTO{
			ClientID:        r.ClientID,
			ClientName:      r.ClientName,
			RecencyDays:     r.RecencyDays,
			Frequency:       r.Frequency,
			Monetary:        r.Monetary,
			R:               r.R,
			F:               r.F,
			M:               r.M,
			RFMScore:        r.Score,
			Segment:         r.Segment,
			LastInvoiceDate: r.LastInvoiceDate,
		})
	}
	return out, nil
}
