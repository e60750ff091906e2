package space

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service handles listing directory logic
type Service struct {
	repo  Repository
	cache *Cache
}

// NewService creates space service
func NewService(repo Repository, cache *Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// Create adds a new space to the directory
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*Space, error) {
	now := time.Now()

	sp := &Space{
		ID:               uuid.New(),
		Title:            req.Title,
		Slug:             Slugify(req.Title, req.City),
		MediaType:        MediaType(req.MediaType),
		City:             req.City,
		Area:             req.Area,
		Address:          req.Address,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		WidthFt:          req.WidthFt,
		HeightFt:         req.HeightFt,
		Illumination:     Illumination(req.Illumination),
		VisibilityRating: req.VisibilityRating,
		TrafficEstimate:  sql.NullInt64{Int64: req.TrafficEstimate, Valid: req.TrafficEstimate > 0},
		PricePerMonth:    req.PricePerMonth,
		Available:        true,
		Description:      sql.NullString{String: req.Description, Valid: req.Description != ""},
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if req.OwnerID != "" {
		if ownerID, err := uuid.Parse(req.OwnerID); err == nil {
			sp.OwnerID = uuid.NullUUID{UUID: ownerID, Valid: true}
		}
	}

	if err := s.repo.Create(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

// GetByID returns a space, cache-first
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Space, error) {
	if cached := s.cache.Get(ctx, id.String()); cached != nil {
		return cached, nil
	}

	sp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, ErrSpaceNotFound
	}

	s.cache.Set(ctx, sp)
	return sp, nil
}

// GetBySlug returns a space by its URL slug, cache-first
func (s *Service) GetBySlug(ctx context.Context, slug string) (*Space, error) {
	if cached := s.cache.Get(ctx, slug); cached != nil {
		return cached, nil
	}

	sp, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, ErrSpaceNotFound
	}

	s.cache.Set(ctx, sp)
	return sp, nil
}

// Update edits a space and invalidates its cache entries
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateRequest) (*Space, error) {
	sp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, ErrSpaceNotFound
	}

	sp.Title = req.Title
	sp.MediaType = MediaType(req.MediaType)
	sp.City = req.City
	sp.Area = req.Area
	sp.Address = req.Address
	sp.Latitude = req.Latitude
	sp.Longitude = req.Longitude
	sp.WidthFt = req.WidthFt
	sp.HeightFt = req.HeightFt
	sp.Illumination = Illumination(req.Illumination)
	sp.VisibilityRating = req.VisibilityRating
	sp.TrafficEstimate = sql.NullInt64{Int64: req.TrafficEstimate, Valid: req.TrafficEstimate > 0}
	sp.PricePerMonth = req.PricePerMonth
	sp.Description = sql.NullString{String: req.Description, Valid: req.Description != ""}

	if err := s.repo.Update(ctx, sp); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, sp)
	return sp, nil
}

// List returns spaces matching the filter
func (s *Service) List(ctx context.Context, filter Filter, limit, offset int) ([]*Space, int, error) {
	return s.repo.List(ctx, filter, limit, offset)
}

// ListInBounds returns spaces inside a map viewport
func (s *Service) ListInBounds(ctx context.Context, bounds Bounds) ([]*Space, error) {
	if !bounds.Valid() {
		return nil, ErrInvalidBoundingBox
	}
	return s.repo.ListInBounds(ctx, bounds)
}

// SetAvailability flips the coarse listing flag
func (s *Service) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	sp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sp == nil {
		return ErrSpaceNotFound
	}

	if err := s.repo.SetAvailability(ctx, id, available); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, sp)
	return nil
}

// Slugify builds a URL slug from the title and city, e.g.
// "Linking Road Hoarding" in Mumbai -> "linking-road-hoarding-mumbai".
func Slugify(parts ...string) string {
	var b strings.Builder
	for _, part := range parts {
		for _, r := range strings.ToLower(part) {
			switch {
			case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
				b.WriteRune(r)
			case r == ' ' || r == '-' || r == '_' || r == '/':
				b.WriteByte('-')
			}
		}
		b.WriteByte('-')
	}
	slug := strings.Trim(b.String(), "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return slug
}
