package space

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// MediaType is the physical category of an advertising space
type MediaType string

const (
	MediaHoarding   MediaType = "hoarding"
	MediaBusShelter MediaType = "bus_shelter"
	MediaDigital    MediaType = "digital"
	MediaGantry     MediaType = "gantry"
	MediaPoleKiosk  MediaType = "pole_kiosk"
)

// Illumination describes how the display is lit
type Illumination string

const (
	IlluminationFrontLit Illumination = "front_lit"
	IlluminationBackLit  Illumination = "back_lit"
	IlluminationDigital  Illumination = "digital"
	IlluminationNonLit   Illumination = "non_lit"
)

// Space is a physical media asset available for monthly rental.
//
// Available is a coarse editorial flag set by the media team; it is
// independent of date-ranged bookings and only hides the listing from
// search when switched off.
type Space struct {
	ID               uuid.UUID      `db:"id"`
	Title            string         `db:"title"`
	Slug             string         `db:"slug"`
	MediaType        MediaType      `db:"media_type"`
	City             string         `db:"city"`
	Area             string         `db:"area"`
	Address          string         `db:"address"`
	Latitude         float64        `db:"latitude"`
	Longitude        float64        `db:"longitude"`
	WidthFt          float64        `db:"width_ft"`
	HeightFt         float64        `db:"height_ft"`
	Illumination     Illumination   `db:"illumination"`
	VisibilityRating int            `db:"visibility_rating"`
	TrafficEstimate  sql.NullInt64  `db:"traffic_estimate"`
	PricePerMonth    float64        `db:"price_per_month"`
	Available        bool           `db:"available"`
	OwnerID          uuid.NullUUID  `db:"owner_id"`
	Description      sql.NullString `db:"description"`
	CoverPhotoURL    sql.NullString `db:"cover_photo_url"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}
