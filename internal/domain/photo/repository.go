package photo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines photo data access
type Repository interface {
	Create(ctx context.Context, p *Photo) error
	GetByID(ctx context.Context, id uuid.UUID) (*Photo, error)
	ListBySpace(ctx context.Context, spaceID uuid.UUID) ([]*Photo, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetCover(ctx context.Context, spaceID, photoID uuid.UUID) error
	CountBySpace(ctx context.Context, spaceID uuid.UUID) (int, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates photo repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Photo) error {
	query := `
		INSERT INTO space_photos (
			id, space_id, key, thumb_key, url, thumb_url,
			original_name, mime_type, size_bytes, is_cover, sort_order, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11, $12
		)
	`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.SpaceID, p.Key, p.ThumbKey, p.URL, p.ThumbURL,
		p.OriginalName, p.MimeType, p.SizeBytes, p.IsCover, p.SortOrder, p.CreatedAt,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Photo, error) {
	query := `SELECT * FROM space_photos WHERE id = $1`
	var p Photo
	err := r.db.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) ListBySpace(ctx context.Context, spaceID uuid.UUID) ([]*Photo, error) {
	query := `SELECT * FROM space_photos WHERE space_id = $1 ORDER BY sort_order ASC, created_at ASC`
	var photos []*Photo
	if err := r.db.SelectContext(ctx, &photos, query, spaceID); err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM space_photos WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *repository) SetCover(ctx context.Context, spaceID, photoID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE space_photos SET is_cover = FALSE WHERE space_id = $1`, spaceID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE space_photos SET is_cover = TRUE WHERE id = $1 AND space_id = $2`, photoID, spaceID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *repository) CountBySpace(ctx context.Context, spaceID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM space_photos WHERE space_id = $1`, spaceID)
	return count, err
}
