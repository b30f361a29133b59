package repository

import (
	"context"

	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/entity"
)

// ProjectRepository define el puerto de persistencia para Project.
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Project, error)
	ListByClient(ctx context.Context, clientID string) ([]*entity.Project, error)
	Update(ctx context.Context, project *entity.Project) error
	Delete(ctx context.Context, id string) error
	DeleteByClient(ctx context.Context, clientID string) error
	DeleteByUser(ctx context.Context, userID string) error
}
