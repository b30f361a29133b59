package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/entity"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// project_id es NULL en la tabla cuando la factura no tiene proyecto; en la
// entidad viaja como string vacío.
const invoiceColumns = `id, user_id, client_id, COALESCE(project_id::TEXT, ''), amount,
	hours_billed, invoice_date, due_date, paid_date, status, created_at, updated_at`

// InvoiceRepo implementa InvoiceRepository sobre PostgreSQL.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	const q = `
		INSERT INTO invoices
			(id, user_id, client_id, project_id, amount, hours_billed,
			 invoice_date, due_date, paid_date, status, created_at, updated_at)
		VALUES
			($1, $2, $3, NULLIF($4, '')::UUID, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, q,
		invoice.ID, invoice.UserID, invoice.ClientID, invoice.ProjectID,
		invoice.Amount, invoice.HoursBilled,
		invoice.InvoiceDate, invoice.DueDate, invoice.PaidDate, invoice.Status,
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	q := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	invoice, err := scanInvoice(r.q.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice by id: %w", err)
	}
	return invoice, nil
}

func (r *InvoiceRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Invoice, error) {
	q := `SELECT ` + invoiceColumns + ` FROM invoices WHERE user_id = $1 ORDER BY invoice_date DESC`
	return r.list(ctx, q, userID)
}

func (r *InvoiceRepo) ListByClient(ctx context.Context, clientID string) ([]*entity.Invoice, error) {
	q := `SELECT ` + invoiceColumns + ` FROM invoices WHERE client_id = $1 ORDER BY invoice_date DESC`
	return r.list(ctx, q, clientID)
}

func (r *InvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	const q = `
		UPDATE invoices SET
			client_id = $2, project_id = NULLIF($3, '')::UUID, amount = $4,
			hours_billed = $5, invoice_date = $6, due_date = $7, paid_date = $8,
			status = $9, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(ctx, q,
		invoice.ID, invoice.ClientID, invoice.ProjectID, invoice.Amount,
		invoice.HoursBilled, invoice.InvoiceDate, invoice.DueDate,
		invoice.PaidDate, invoice.Status,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepo) DeleteByClient(ctx context.Context, clientID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE client_id = $1`, clientID); err != nil {
		return fmt.Errorf("delete invoices by client: %w", err)
	}
	return nil
}

func (r *InvoiceRepo) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete invoices by user: %w", err)
	}
	return nil
}

func (r *InvoiceRepo) list(ctx context.Context, q string, arg any) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(ctx, q, arg)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*entity.Invoice
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		invoices = append(invoices, invoice)
	}
	return invoices, rows.Err()
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var i entity.Invoice
	if err := row.Scan(
		&i.ID, &i.UserID, &i.ClientID, &i.ProjectID, &i.Amount,
		&i.HoursBilled, &i.InvoiceDate, &i.DueDate, &i.PaidDate, &i.Status,
		&i.CreatedAt, &i.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &i, nil
}
