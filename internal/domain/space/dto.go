package space

import (
	"time"
)

// CreateRequest for adding a space (administrative surface)
type CreateRequest struct {
	Title            string  `json:"title" validate:"required,min=3,max=255"`
	MediaType        string  `json:"media_type" validate:"required,media_type"`
	City             string  `json:"city" validate:"required,min=2,max=100"`
	Area             string  `json:"area" validate:"required,min=2,max=100"`
	Address          string  `json:"address" validate:"required,min=5,max=500"`
	Latitude         float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude        float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	WidthFt          float64 `json:"width_ft" validate:"required,gt=0"`
	HeightFt         float64 `json:"height_ft" validate:"required,gt=0"`
	Illumination     string  `json:"illumination" validate:"required,illumination"`
	VisibilityRating int     `json:"visibility_rating" validate:"gte=1,lte=10"`
	TrafficEstimate  int64   `json:"traffic_estimate,omitempty" validate:"omitempty,gte=0"`
	PricePerMonth    float64 `json:"price_per_month" validate:"required,gt=0"`
	OwnerID          string  `json:"owner_id,omitempty" validate:"omitempty,uuid"`
	Description      string  `json:"description,omitempty" validate:"omitempty,max=5000"`
}

// UpdateRequest for editing a space
type UpdateRequest struct {
	Title            string  `json:"title" validate:"required,min=3,max=255"`
	MediaType        string  `json:"media_type" validate:"required,media_type"`
	City             string  `json:"city" validate:"required,min=2,max=100"`
	Area             string  `json:"area" validate:"required,min=2,max=100"`
	Address          string  `json:"address" validate:"required,min=5,max=500"`
	Latitude         float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude        float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	WidthFt          float64 `json:"width_ft" validate:"required,gt=0"`
	HeightFt         float64 `json:"height_ft" validate:"required,gt=0"`
	Illumination     string  `json:"illumination" validate:"required,illumination"`
	VisibilityRating int     `json:"visibility_rating" validate:"gte=1,lte=10"`
	TrafficEstimate  int64   `json:"traffic_estimate,omitempty" validate:"omitempty,gte=0"`
	PricePerMonth    float64 `json:"price_per_month" validate:"required,gt=0"`
	Description      string  `json:"description,omitempty" validate:"omitempty,max=5000"`
}

// SetAvailabilityRequest toggles the coarse listing flag
type SetAvailabilityRequest struct {
	Available *bool `json:"available" validate:"required"`
}

// Filter narrows the listing directory
type Filter struct {
	City          string
	MediaType     string
	Illumination  string
	MinPrice      float64
	MaxPrice      float64
	MinVisibility int
	OnlyAvailable bool
}

// Bounds is a lat/lng bounding box for map discovery
type Bounds struct {
	SWLat float64
	SWLng float64
	NELat float64
	NELng float64
}

// Valid reports whether the box is well-formed
func (b Bounds) Valid() bool {
	return b.SWLat <= b.NELat &&
		b.SWLat >= -90 && b.NELat <= 90 &&
		b.SWLng >= -180 && b.NELng <= 180
}

// SpaceResponse for API responses
type SpaceResponse struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Slug             string  `json:"slug"`
	MediaType        string  `json:"media_type"`
	City             string  `json:"city"`
	Area             string  `json:"area"`
	Address          string  `json:"address"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	WidthFt          float64 `json:"width_ft"`
	HeightFt         float64 `json:"height_ft"`
	Illumination     string  `json:"illumination"`
	VisibilityRating int     `json:"visibility_rating"`
	TrafficEstimate  int64   `json:"traffic_estimate,omitempty"`
	PricePerMonth    float64 `json:"price_per_month"`
	Available        bool    `json:"available"`
	Description      string  `json:"description,omitempty"`
	CoverPhotoURL    string  `json:"cover_photo_url,omitempty"`
	CreatedAt        string  `json:"created_at"`
}

// ToResponse converts entity to response
func (s *Space) ToResponse() *SpaceResponse {
	resp := &SpaceResponse{
		ID:               s.ID.String(),
		Title:            s.Title,
		Slug:             s.Slug,
		MediaType:        string(s.MediaType),
		City:             s.City,
		Area:             s.Area,
		Address:          s.Address,
		Latitude:         s.Latitude,
		Longitude:        s.Longitude,
		WidthFt:          s.WidthFt,
		HeightFt:         s.HeightFt,
		Illumination:     string(s.Illumination),
		VisibilityRating: s.VisibilityRating,
		PricePerMonth:    s.PricePerMonth,
		Available:        s.Available,
		CreatedAt:        s.CreatedAt.Format(time.RFC3339),
	}
	if s.TrafficEstimate.Valid {
		resp.TrafficEstimate = s.TrafficEstimate.Int64
	}
	if s.Description.Valid {
		resp.Description = s.Description.String
	}
	if s.CoverPhotoURL.Valid {
		resp.CoverPhotoURL = s.CoverPhotoURL.String
	}
	return resp
}

// MapPin is the trimmed shape returned for map discovery
type MapPin struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Slug          string  `json:"slug"`
	MediaType     string  `json:"media_type"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	PricePerMonth float64 `json:"price_per_month"`
	Available     bool    `json:"available"`
}

// ToMapPin converts entity to its map representation
func (s *Space) ToMapPin() *MapPin {
	return &MapPin{
		ID:            s.ID.String(),
		Title:         s.Title,
		Slug:          s.Slug,
		MediaType:     string(s.MediaType),
		Latitude:      s.Latitude,
		Longitude:     s.Longitude,
		PricePerMonth: s.PricePerMonth,
		Available:     s.Available,
	}
}
