package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/application/dto"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/entity"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/finance"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD de clientes más la vista de detalle.
type ClientUseCase struct {
	clientRepo  repository.ClientRepository
	projectRepo repository.ProjectRepository
	invoiceRepo repository.InvoiceRepository
	tx          TxRunner
	settings    finance.Settings
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(
	clientRepo repository.ClientRepository,
	projectRepo repository.ProjectRepository,
	invoiceRepo repository.InvoiceRepository,
	tx TxRunner,
	settings finance.Settings,
) *ClientUseCase {
	return &ClientUseCase{
		clientRepo:  clientRepo,
		projectRepo: projectRepo,
		invoiceRepo: invoiceRepo,
		tx:          tx,
		settings:    settings,
	}
}

// Create crea un cliente del usuario.
func (uc *ClientUseCase) Create(ctx context.Context, userID string, in dto.ClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		ID:           uuid.New().String(),
		UserID:       userID,
		Name:         in.Name,
		Tier:         in.Tier,
		Region:       in.Region,
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
		HourlyRate:   in.HourlyRate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List lista los clientes del usuario.
func (uc *ClientUseCase) List(ctx context.Context, userID string) ([]*dto.ClientResponse, error) {
	list, err := uc.clientRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// Update actualiza un cliente del usuario.
func (uc *ClientUseCase) Update(ctx context.Context, userID, clientID string, in dto.ClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.ownedClient(ctx, userID, clientID)
	if err != nil {
		return nil, err
	}
	client.Name = in.Name
	client.Tier = in.Tier
	client.Region = in.Region
	client.ContactEmail = in.ContactEmail
	client.ContactPhone = in.ContactPhone
	client.HourlyRate = in.HourlyRate
	client.UpdatedAt = time.Now()
	if err := uc.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina el cliente junto con sus proyectos y facturas, en una sola
// transacción.
func (uc *ClientUseCase) Delete(ctx context.Context, userID, clientID string) error {
	if _, err := uc.ownedClient(ctx, userID, clientID); err != nil {
		return err
	}
	return uc.tx.Run(ctx, func(
		clientRepo repository.ClientRepository,
		projectRepo repository.ProjectRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		if err := invoiceRepo.DeleteByClient(ctx, clientID); err != nil {
			return err
		}
		if err := projectRepo.DeleteByClient(ctx, clientID); err != nil {
			return err
		}
		return clientRepo.Delete(ctx, clientID)
	})
}

// Details devuelve cliente + proyectos + facturas + totales derivados.
func (uc *ClientUseCase) Details(ctx context.Context, userID, clientID string) (*dto.ClientDetailsResponse, error) {
	client, err := uc.ownedClient(ctx, userID, clientID)
	if err != nil {
		return nil, err
	}
	projects, err := uc.projectRepo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	invoices, err := uc.invoiceRepo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	summary := dto.ClientSummary{
		TotalRevenue:  decimal.Zero,
		TotalHours:    decimal.Zero,
		OutstandingAR: decimal.Zero,
		Profit:        decimal.Zero,
		MarginPercent: decimal.Zero,
	}
	for _, inv := range invoices {
		switch {
		case inv.Status == entity.InvoiceStatusPaid:
			summary.TotalRevenue = summary.TotalRevenue.Add(inv.Amount)
		case inv.IsOutstanding():
			summary.OutstandingAR = summary.OutstandingAR.Add(inv.Amount)
		}
	}
	for _, p := range projects {
		summary.TotalHours = summary.TotalHours.Add(p.HoursWorked)
	}
	summary.Profit = summary.TotalRevenue.Mul(uc.settings.ProfitFactor()).Round(2)
	if summary.TotalRevenue.IsPositive() {
		summary.MarginPercent = summary.Profit.Div(summary.TotalRevenue).Mul(decimal.NewFromInt(100)).Round(2)
	}

	out := &dto.ClientDetailsResponse{
		Client:   *toClientResponse(client),
		Projects: make([]dto.ProjectResponse, 0, len(projects)),
		Invoices: make([]dto.InvoiceResponse, 0, len(invoices)),
		Summary:  summary,
	}
	for _, p := range projects {
		out.Projects = append(out.Projects, *toProjectResponse(p))
	}
	for _, inv := range invoices {
		out.Invoices = append(out.Invoices, *toInvoiceResponse(inv))
	}
	return out, nil
}

// ownedClient carga el cliente y verifica que pertenezca al usuario.
// Un cliente de otro usuario se reporta como inexistente.
func (uc *ClientUseCase) ownedClient(ctx context.Context, userID, clientID string) (*entity.Client, error) {
	client, err := uc.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil || client.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return client, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:           c.ID,
		Name:         c.Name,
		Tier:         c.Tier,
		Region:       c.Region,
		ContactEmail: c.ContactEmail,
		ContactPhone: c.ContactPhone,
		HourlyRate:   c.HourlyRate,
		CreatedAt:    c.CreatedAt,
	}
}
