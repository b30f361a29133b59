package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/entity"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

const projectColumns = `id, user_id, client_id, name, description, hourly_rate,
	hours_worked, status, start_date, end_date, created_at, updated_at`

// ProjectRepo implementa ProjectRepository sobre PostgreSQL.
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

func (r *ProjectRepo) Create(ctx context.Context, project *entity.Project) error {
	const q = `
		INSERT INTO projects
			(id, user_id, client_id, name, description, hourly_rate, hours_worked,
			 status, start_date, end_date, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, q,
		project.ID, project.UserID, project.ClientID, project.Name, project.Description,
		project.HourlyRate, project.HoursWorked, project.Status,
		project.StartDate, project.EndDate, project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

func (r *ProjectRepo) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	q := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	project, err := scanProject(r.q.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project by id: %w", err)
	}
	return project, nil
}

func (r *ProjectRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Project, error) {
	q := `SELECT ` + projectColumns + ` FROM projects WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, q, userID)
}

func (r *ProjectRepo) ListByClient(ctx context.Context, clientID string) ([]*entity.Project, error) {
	q := `SELECT ` + projectColumns + ` FROM projects WHERE client_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, q, clientID)
}

func (r *ProjectRepo) Update(ctx context.Context, project *entity.Project) error {
	const q = `
		UPDATE projects SET
			name = $2, description = $3, hourly_rate = $4, hours_worked = $5,
			status = $6, start_date = $7, end_date = $8, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(ctx, q,
		project.ID, project.Name, project.Description,
		project.HourlyRate, project.HoursWorked, project.Status,
		project.StartDate, project.EndDate,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

func (r *ProjectRepo) DeleteByClient(ctx context.Context, clientID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM projects WHERE client_id = $1`, clientID); err != nil {
		return fmt.Errorf("delete projects by client: %w", err)
	}
	return nil
}

func (r *ProjectRepo) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM projects WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete projects by user: %w", err)
	}
	return nil
}

func (r *ProjectRepo) list(ctx context.Context, q string, arg any) ([]*entity.Project, error) {
	rows, err := r.q.Query(ctx, q, arg)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []*entity.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

func scanProject(row pgx.Row) (*entity.Project, error) {
	var p entity.Project
	if err := row.Scan(
		&p.ID, &p.UserID, &p.ClientID, &p.Name, &p.Description,
		&p.HourlyRate, &p.HoursWorked, &p.Status,
		&p.StartDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
