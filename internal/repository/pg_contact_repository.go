package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tempdev/site/internal/model"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// Save inserts a new contact_submissions row. ID, ticket and created_at are
// generated by the caller so both stores behave the same.
func (r *PgContactRepository) Save(ctx context.Context, c *model.ContactSubmission) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO contact_submissions
		   (id, name, email, budget, project_type, details, ticket, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID, c.Name, c.Email, c.Budget, c.ProjectType, c.Details, c.Ticket, c.Status, c.CreatedAt,
	)
	return err
}

// UpdateStatus sets the delivery status of one submission.
func (r *PgContactRepository) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contact_submissions SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns submissions filtered by status and paginated by limit/offset.
// Status "" or "all" returns all submissions.
func (r *PgContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error) {
	var conditions []string
	var args []any

	status := strings.TrimSpace(opts.Status)
	if status != "" && status != "all" {
		args = append(args, status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	args = append(args, opts.Limit, opts.Offset)
	query := fmt.Sprintf(
		`SELECT id, name, email, budget, project_type, details, ticket, status, created_at
		 FROM contact_submissions %s
		 ORDER BY created_at DESC
		 LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args),
	)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.ContactSubmission
	for rows.Next() {
		var c model.ContactSubmission
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Budget, &c.ProjectType, &c.Details, &c.Ticket, &c.Status, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
