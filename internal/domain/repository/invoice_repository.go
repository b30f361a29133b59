package repository

import (
	"context"

	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Invoice, error)
	ListByClient(ctx context.Context, clientID string) ([]*entity.Invoice, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id string) error
	DeleteByClient(ctx context.Context, clientID string) error
	DeleteByUser(ctx context.Context, userID string) error
}
