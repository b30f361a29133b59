package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/application/dto"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/entity"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/repository"
)

// ProjectUseCase casos de uso CRUD de proyectos.
type ProjectUseCase struct {
	projectRepo repository.ProjectRepository
	clientRepo  repository.ClientRepository
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(projectRepo repository.ProjectRepository, clientRepo repository.ClientRepository) *ProjectUseCase {
	return &ProjectUseCase{projectRepo: projectRepo, clientRepo: clientRepo}
}

// Create crea un proyecto para un cliente del usuario.
func (uc *ProjectUseCase) Create(ctx context.Context, userID string, in dto.ProjectRequest) (*dto.ProjectResponse, error) {
	if in.Name == "" || in.ClientID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkClient(ctx, userID, in.ClientID); err != nil {
		return nil, err
	}
	start, err := parseOptionalDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalDate(in.EndDate)
	if err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.ProjectStatusActive
	}
	now := time.Now()
	project := &entity.Project{
		ID:          uuid.New().String(),
		UserID:      userID,
		ClientID:    in.ClientID,
		Name:        in.Name,
		Description: in.Description,
		HourlyRate:  in.HourlyRate,
		HoursWorked: in.HoursWorked,
		Status:      status,
		StartDate:   start,
		EndDate:     end,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// List lista los proyectos del usuario.
func (uc *ProjectUseCase) List(ctx context.Context, userID string) ([]*dto.ProjectResponse, error) {
	list, err := uc.projectRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProjectResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProjectResponse(p))
	}
	return out, nil
}

// Update actualiza un proyecto del usuario.
func (uc *ProjectUseCase) Update(ctx context.Context, userID, projectID string, in dto.ProjectRequest) (*dto.ProjectResponse, error) {
	project, err := uc.ownedProject(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}
	if in.ClientID != "" && in.ClientID != project.ClientID {
		if err := uc.checkClient(ctx, userID, in.ClientID); err != nil {
			return nil, err
		}
		project.ClientID = in.ClientID
	}
	start, err := parseOptionalDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalDate(in.EndDate)
	if err != nil {
		return nil, err
	}
	project.Name = in.Name
	project.Description = in.Description
	project.HourlyRate = in.HourlyRate
	project.HoursWorked = in.HoursWorked
	if in.Status != "" {
		project.Status = in.Status
	}
	project.StartDate = start
	project.EndDate = end
	project.UpdatedAt = time.Now()
	if err := uc.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// Delete elimina un proyecto del usuario.
func (uc *ProjectUseCase) Delete(ctx context.Context, userID, projectID string) error {
	if _, err := uc.ownedProject(ctx, userID, projectID); err != nil {
		return err
	}
	return uc.projectRepo.Delete(ctx, projectID)
}

func (uc *ProjectUseCase) ownedProject(ctx context.Context, userID, projectID string) (*entity.Project, error) {
	project, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil || project.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return project, nil
}

// checkClient verifica que el cliente exista y pertenezca al usuario.
func (uc *ProjectUseCase) checkClient(ctx context.Context, userID, clientID string) error {
	client, err := uc.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return err
	}
	if client == nil || client.UserID != userID {
		return domain.ErrInvalidClient
	}
	return nil
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		ID:          p.ID,
		ClientID:    p.ClientID,
		Name:        p.Name,
		Description: p.Description,
		HourlyRate:  p.HourlyRate,
		HoursWorked: p.HoursWorked,
		Status:      p.Status,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		CreatedAt:   p.CreatedAt,
	}
}
