package usecase

import (
	"context"

	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/entity"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/finance"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una transacción:
// Commit si fn retorna nil, Rollback en caso contrario. Se usa para las
// operaciones multi-tabla (borrado en cascada de un cliente, regeneración de
// datos de ejemplo).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		clientRepo repository.ClientRepository,
		projectRepo repository.ProjectRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}

// InvoicePDFGenerator genera la representación PDF de una factura.
// project puede ser nil (factura sin proyecto asociado).
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		invoice *entity.Invoice,
		client *entity.Client,
		project *entity.Project,
		settings finance.Settings,
	) ([]byte, error)
}
