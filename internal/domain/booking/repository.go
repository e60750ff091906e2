package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines booking data access
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	// ListActiveByMedia returns pending and confirmed bookings for a space,
	// ordered by start date ascending.
	ListActiveByMedia(ctx context.Context, mediaID uuid.UUID) ([]*Booking, error)
	ListByMedia(ctx context.Context, mediaID uuid.UUID, limit, offset int) ([]*Booking, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates booking repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, b *Booking) error {
	query := `
		INSERT INTO bookings (
			id, media_id, start_date, end_date,
			client_name, client_email, client_phone, booker,
			booking_price, period, code, status,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8,
			$9, $10, $11, $12,
			$13, $14
		)
	`
	_, err := r.db.ExecContext(ctx, query,
		b.ID, b.MediaID, b.StartDate, b.EndDate,
		b.ClientName, b.ClientEmail, b.ClientPhone, b.Booker,
		b.BookingPrice, b.Period, b.Code, b.Status,
		b.CreatedAt, b.UpdatedAt,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	query := `SELECT * FROM bookings WHERE id = $1`
	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *repository) ListActiveByMedia(ctx context.Context, mediaID uuid.UUID) ([]*Booking, error) {
	query := `
		SELECT * FROM bookings
		WHERE media_id = $1 AND status IN ('pending', 'confirmed')
		ORDER BY start_date ASC
	`
	var bookings []*Booking
	if err := r.db.SelectContext(ctx, &bookings, query, mediaID); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *repository) ListByMedia(ctx context.Context, mediaID uuid.UUID, limit, offset int) ([]*Booking, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM bookings WHERE media_id = $1`, mediaID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM bookings
		WHERE media_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	var bookings []*Booking
	if err := r.db.SelectContext(ctx, &bookings, query, mediaID, limit, offset); err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, status)
	return err
}
