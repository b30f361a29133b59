package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/entity"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

const clientColumns = `id, user_id, name, tier, region, contact_email, contact_phone,
	hourly_rate, created_at, updated_at`

// ClientRepo implementa ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	const q = `
		INSERT INTO clients
			(id, user_id, name, tier, region, contact_email, contact_phone, hourly_rate, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, q,
		client.ID, client.UserID, client.Name, client.Tier, client.Region,
		client.ContactEmail, client.ContactPhone, client.HourlyRate,
		client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	q := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	client, err := scanClient(r.q.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client by id: %w", err)
	}
	return client, nil
}

func (r *ClientRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Client, error) {
	q := `SELECT ` + clientColumns + ` FROM clients WHERE user_id = $1 ORDER BY name`
	rows, err := r.q.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var clients []*entity.Client
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		clients = append(clients, client)
	}
	return clients, rows.Err()
}

func (r *ClientRepo) Update(ctx context.Context, client *entity.Client) error {
	const q = `
		UPDATE clients SET
			name = $2, tier = $3, region = $4, contact_email = $5,
			contact_phone = $6, hourly_rate = $7, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(ctx, q,
		client.ID, client.Name, client.Tier, client.Region,
		client.ContactEmail, client.ContactPhone, client.HourlyRate,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

func (r *ClientRepo) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM clients WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete clients by user: %w", err)
	}
	return nil
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	if err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.Tier, &c.Region,
		&c.ContactEmail, &c.ContactPhone, &c.HourlyRate,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
