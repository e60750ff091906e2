package photo

import (
	"time"

	"github.com/google/uuid"
)

// Photo is a space photograph (metadata only, files live in object storage)
type Photo struct {
	ID           uuid.UUID `db:"id"`
	SpaceID      uuid.UUID `db:"space_id"`
	Key          string    `db:"key"`       // object key of the original
	ThumbKey     string    `db:"thumb_key"` // object key of the thumbnail
	URL          string    `db:"url"`       // public URL of the original
	ThumbURL     string    `db:"thumb_url"` // public URL of the thumbnail
	OriginalName string    `db:"original_name"`
	MimeType     string    `db:"mime_type"`
	SizeBytes    int64     `db:"size_bytes"`
	IsCover      bool      `db:"is_cover"`
	SortOrder    int       `db:"sort_order"`
	CreatedAt    time.Time `db:"created_at"`
}

// PhotoResponse for API responses
type PhotoResponse struct {
	ID        string `json:"id"`
	SpaceID   string `json:"space_id"`
	URL       string `json:"url"`
	ThumbURL  string `json:"thumb_url"`
	MimeType  string `json:"mime_type"`
	IsCover   bool   `json:"is_cover"`
	SortOrder int    `json:"sort_order"`
	CreatedAt string `json:"created_at"`
}

// ToResponse converts entity to response
func (p *Photo) ToResponse() *PhotoResponse {
	return &PhotoResponse{
		ID:        p.ID.String(),
		SpaceID:   p.SpaceID.String(),
		URL:       p.URL,
		ThumbURL:  p.ThumbURL,
		MimeType:  p.MimeType,
		IsCover:   p.IsCover,
		SortOrder: p.SortOrder,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}
