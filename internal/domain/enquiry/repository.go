package enquiry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines enquiry data access
type Repository interface {
	Create(ctx context.Context, e *Enquiry) error
	GetByID(ctx context.Context, id uuid.UUID) (*Enquiry, error)
	List(ctx context.Context, status *Status, limit, offset int) ([]*Enquiry, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status, notes string) error
	CountByStatus(ctx context.Context) (map[Status]int, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates enquiry repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Enquiry) error {
	query := `
		INSERT INTO enquiries (
			id, contact_name, contact_email, contact_phone,
			company, budget_band, target_cities, message,
			status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8,
			$9, $10, $11
		)
	`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.ContactName, e.ContactEmail, e.ContactPhone,
		e.Company, e.BudgetBand, e.TargetCities, e.Message,
		e.Status, e.CreatedAt, e.UpdatedAt,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Enquiry, error) {
	query := `SELECT * FROM enquiries WHERE id = $1`
	var e Enquiry
	err := r.db.GetContext(ctx, &e, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *repository) List(ctx context.Context, status *Status, limit, offset int) ([]*Enquiry, int, error) {
	var args []interface{}
	where := ""
	argIdx := 1

	if status != nil {
		where = " WHERE status = $1"
		args = append(args, *status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM enquiries" + where
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT * FROM enquiries %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	var enquiries []*Enquiry
	if err := r.db.SelectContext(ctx, &enquiries, query, args...); err != nil {
		return nil, 0, err
	}

	return enquiries, total, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status, notes string) error {
	query := `
		UPDATE enquiries SET
			status = $2, notes = COALESCE(NULLIF($3, ''), notes), updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, id, status, notes)
	return err
}

func (r *repository) CountByStatus(ctx context.Context) (map[Status]int, error) {
	query := `SELECT status, COUNT(*) as count FROM enquiries GROUP BY status`

	type row struct {
		Status Status `db:"status"`
		Count  int    `db:"count"`
	}

	var rows []row
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	result := make(map[Status]int)
	for _, r := range rows {
		result[r.Status] = r.Count
	}
	return result, nil
}
