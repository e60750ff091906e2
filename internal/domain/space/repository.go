package space

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Repository defines space data access
type Repository interface {
	Create(ctx context.Context, s *Space) error
	GetByID(ctx context.Context, id uuid.UUID) (*Space, error)
	GetBySlug(ctx context.Context, slug string) (*Space, error)
	Update(ctx context.Context, s *Space) error
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Space, int, error)
	ListInBounds(ctx context.Context, bounds Bounds) ([]*Space, error)
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
	SetCoverPhoto(ctx context.Context, id uuid.UUID, url string) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates space repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Space) error {
	query := `
		INSERT INTO spaces (
			id, title, slug, media_type, city, area, address,
			latitude, longitude, width_ft, height_ft,
			illumination, visibility_rating, traffic_estimate,
			price_per_month, available, owner_id, description,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11,
			$12, $13, $14,
			$15, $16, $17, $18,
			$19, $20
		)
	`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.Title, s.Slug, s.MediaType, s.City, s.Area, s.Address,
		s.Latitude, s.Longitude, s.WidthFt, s.HeightFt,
		s.Illumination, s.VisibilityRating, s.TrafficEstimate,
		s.PricePerMonth, s.Available, s.OwnerID, s.Description,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrSlugAlreadyUsed
		}
		return err
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Space, error) {
	query := `SELECT * FROM spaces WHERE id = $1`
	var s Space
	err := r.db.GetContext(ctx, &s, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Space, error) {
	query := `SELECT * FROM spaces WHERE slug = $1`
	var s Space
	err := r.db.GetContext(ctx, &s, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) Update(ctx context.Context, s *Space) error {
	query := `
		UPDATE spaces SET
			title = $2, media_type = $3, city = $4, area = $5, address = $6,
			latitude = $7, longitude = $8, width_ft = $9, height_ft = $10,
			illumination = $11, visibility_rating = $12, traffic_estimate = $13,
			price_per_month = $14, description = $15, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.Title, s.MediaType, s.City, s.Area, s.Address,
		s.Latitude, s.Longitude, s.WidthFt, s.HeightFt,
		s.Illumination, s.VisibilityRating, s.TrafficEstimate,
		s.PricePerMonth, s.Description,
	)
	return err
}

func (r *repository) List(ctx context.Context, filter Filter, limit, offset int) ([]*Space, int, error) {
	where := ""
	var args []interface{}
	argIdx := 1

	appendCond := func(cond string, value interface{}) {
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += fmt.Sprintf(cond, argIdx)
		args = append(args, value)
		argIdx++
	}

	if filter.City != "" {
		appendCond("LOWER(city) = LOWER($%d)", filter.City)
	}
	if filter.MediaType != "" {
		appendCond("media_type = $%d", filter.MediaType)
	}
	if filter.Illumination != "" {
		appendCond("illumination = $%d", filter.Illumination)
	}
	if filter.MinPrice > 0 {
		appendCond("price_per_month >= $%d", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		appendCond("price_per_month <= $%d", filter.MaxPrice)
	}
	if filter.MinVisibility > 0 {
		appendCond("visibility_rating >= $%d", filter.MinVisibility)
	}
	if filter.OnlyAvailable {
		if where == "" {
			where = " WHERE available = TRUE"
		} else {
			where += " AND available = TRUE"
		}
	}

	countQuery := "SELECT COUNT(*) FROM spaces" + where
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT * FROM spaces %s
		ORDER BY visibility_rating DESC, created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	var spaces []*Space
	if err := r.db.SelectContext(ctx, &spaces, query, args...); err != nil {
		return nil, 0, err
	}
	return spaces, total, nil
}

func (r *repository) ListInBounds(ctx context.Context, bounds Bounds) ([]*Space, error) {
	query := `
		SELECT * FROM spaces
		WHERE latitude BETWEEN $1 AND $2
		  AND longitude BETWEEN $3 AND $4
		ORDER BY price_per_month ASC
		LIMIT 500
	`
	var spaces []*Space
	err := r.db.SelectContext(ctx, &spaces, query, bounds.SWLat, bounds.NELat, bounds.SWLng, bounds.NELng)
	if err != nil {
		return nil, err
	}
	return spaces, nil
}

func (r *repository) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	query := `UPDATE spaces SET available = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, available)
	return err
}

func (r *repository) SetCoverPhoto(ctx context.Context, id uuid.UUID, url string) error {
	query := `UPDATE spaces SET cover_photo_url = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, url)
	return err
}
