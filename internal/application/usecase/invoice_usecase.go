package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/application/dto"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/entity"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/finance"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/repository"
)

// InvoiceUseCase casos de uso CRUD de facturas, marcado de pago y export PDF.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
	projectRepo repository.ProjectRepository
	pdf         InvoicePDFGenerator
	settings    finance.Settings
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	projectRepo repository.ProjectRepository,
	pdf InvoicePDFGenerator,
	settings finance.Settings,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		projectRepo: projectRepo,
		pdf:         pdf,
		settings:    settings,
	}
}

// Create crea una factura para un cliente del usuario.
func (uc *InvoiceUseCase) Create(ctx context.Context, userID string, in dto.InvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.ClientID == "" {
		return nil, domain.ErrInvalidClient
	}
	if err := uc.checkClient(ctx, userID, in.ClientID); err != nil {
		return nil, err
	}
	invoiceDate, err := parseDate(in.InvoiceDate)
	if err != nil {
		return nil, err
	}
	dueDate, err := parseDate(in.DueDate)
	if err != nil {
		return nil, err
	}
	paidDate, err := parseOptionalDate(in.PaidDate)
	if err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.InvoiceStatusUnpaid
	}
	now := time.Now()
	invoice := &entity.Invoice{
		ID:          uuid.New().String(),
		UserID:      userID,
		ClientID:    in.ClientID,
		ProjectID:   in.ProjectID,
		Amount:      in.Amount,
		HoursBilled: in.HoursBilled,
		InvoiceDate: invoiceDate,
		DueDate:     dueDate,
		PaidDate:    paidDate,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// List lista las facturas del usuario.
func (uc *InvoiceUseCase) List(ctx context.Context, userID string) ([]*dto.InvoiceResponse, error) {
	list, err := uc.invoiceRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

// Update actualiza una factura del usuario.
func (uc *InvoiceUseCase) Update(ctx context.Context, userID, invoiceID string, in dto.InvoiceRequest) (*dto.InvoiceResponse, error) {
	invoice, err := uc.ownedInvoice(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	if in.ClientID != "" && in.ClientID != invoice.ClientID {
		if err := uc.checkClient(ctx, userID, in.ClientID); err != nil {
			return nil, err
		}
		invoice.ClientID = in.ClientID
	}
	invoiceDate, err := parseDate(in.InvoiceDate)
	if err != nil {
		return nil, err
	}
	dueDate, err := parseDate(in.DueDate)
	if err != nil {
		return nil, err
	}
	paidDate, err := parseOptionalDate(in.PaidDate)
	if err != nil {
		return nil, err
	}
	invoice.ProjectID = in.ProjectID
	invoice.Amount = in.Amount
	invoice.HoursBilled = in.HoursBilled
	invoice.InvoiceDate = invoiceDate
	invoice.DueDate = dueDate
	invoice.PaidDate = paidDate
	if in.Status != "" {
		invoice.Status = in.Status
	}
	invoice.UpdatedAt = time.Now()
	if err := uc.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// Delete elimina una factura del usuario.
func (uc *InvoiceUseCase) Delete(ctx context.Context, userID, invoiceID string) error {
	if _, err := uc.ownedInvoice(ctx, userID, invoiceID); err != nil {
		return err
	}
	return uc.invoiceRepo.Delete(ctx, invoiceID)
}

// MarkPaid marca la factura como pagada con fecha de pago = ahora.
func (uc *InvoiceUseCase) MarkPaid(ctx context.Context, userID, invoiceID string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.ownedInvoice(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	invoice.Status = entity.InvoiceStatusPaid
	invoice.PaidDate = &now
	invoice.UpdatedAt = now
	if err := uc.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// GeneratePDF produce la representación PDF de la factura.
func (uc *InvoiceUseCase) GeneratePDF(ctx context.Context, userID, invoiceID string) ([]byte, error) {
	invoice, err := uc.ownedInvoice(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	client, err := uc.clientRepo.GetByID(ctx, invoice.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	var project *entity.Project
	if invoice.ProjectID != "" {
		// Ignorar error de proyecto huérfano: el PDF se genera igual sin él.
		project, _ = uc.projectRepo.GetByID(ctx, invoice.ProjectID)
	}
	return uc.pdf.GenerateInvoicePDF(ctx, invoice, client, project, uc.settings)
}

func (uc *InvoiceUseCase) ownedInvoice(ctx context.Context, userID, invoiceID string) (*entity.Invoice, error) {
	invoice, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil || invoice.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return invoice, nil
}

func (uc *InvoiceUseCase) checkClient(ctx context.Context, userID, clientID string) error {
	client, err := uc.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return err
	}
	if client == nil || client.UserID != userID {
		return domain.ErrInvalidClient
	}
	return nil
}

func toInvoiceResponse(i *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:          i.ID,
		ClientID:    i.ClientID,
		ProjectID:   i.ProjectID,
		Amount:      i.Amount,
		HoursBilled: i.HoursBilled,
		InvoiceDate: i.InvoiceDate,
		DueDate:     i.DueDate,
		PaidDate:    i.PaidDate,
		Status:      i.Status,
		CreatedAt:   i.CreatedAt,
	}
}
