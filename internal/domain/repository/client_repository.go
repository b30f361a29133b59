package repository

import (
	"context"

	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client.
// Todos los listados están acotados al usuario dueño del workspace.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
}
