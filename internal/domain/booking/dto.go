package booking

import (
	"time"
)

// DateLayout is the wire format for booking dates
const DateLayout = "2006-01-02"

// CreateRequest for submitting a booking from the booking wizard
type CreateRequest struct {
	MediaID     string `json:"media_id" validate:"required,uuid"`
	StartDate   string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"required,datetime=2006-01-02"`
	ClientName  string `json:"client_name" validate:"required,min=2,max=255"`
	ClientEmail string `json:"client_email" validate:"required,email"`
	ClientPhone string `json:"client_phone,omitempty" validate:"omitempty,min=10,max=20"`
	Company     string `json:"company,omitempty" validate:"omitempty,max=255"`

	// Price and duration come computed from the client and are stored
	// as given; there is no server-side recomputation against the
	// space's monthly rate.
	TotalPrice     float64 `json:"total_price" validate:"required,gt=0"`
	DurationMonths float64 `json:"duration_months" validate:"required,gt=0"`
}

// UpdateStatusRequest for booking status transitions
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed cancelled"`
}

// BookingResponse for API responses
type BookingResponse struct {
	ID           string  `json:"id"`
	MediaID      string  `json:"media_id"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	ClientName   string  `json:"client_name"`
	ClientEmail  string  `json:"client_email"`
	ClientPhone  string  `json:"client_phone,omitempty"`
	Booker       string  `json:"booker,omitempty"`
	BookingPrice float64 `json:"booking_price"`
	Period       float64 `json:"period"`
	Code         int     `json:"code"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}

// ToResponse converts entity to response
func (b *Booking) ToResponse() *BookingResponse {
	resp := &BookingResponse{
		ID:           b.ID.String(),
		MediaID:      b.MediaID.String(),
		StartDate:    b.StartDate.Format(DateLayout),
		EndDate:      b.EndDate.Format(DateLayout),
		ClientName:   b.ClientName,
		ClientEmail:  b.ClientEmail,
		BookingPrice: b.BookingPrice,
		Period:       b.Period,
		Code:         b.Code,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
	}
	if b.ClientPhone.Valid {
		resp.ClientPhone = b.ClientPhone.String
	}
	if b.Booker.Valid {
		resp.Booker = b.Booker.String
	}
	return resp
}

// AvailabilityResponse for the availability check endpoint
type AvailabilityResponse struct {
	Available           bool               `json:"available"`
	ConflictingBookings []*BookingResponse `json:"conflicting_bookings"`
	NextAvailableDate   *string            `json:"next_available_date,omitempty"`
	SuggestedEndDate    *string            `json:"suggested_end_date,omitempty"`
}

// ToResponse converts an availability result to its wire shape
func (r *AvailabilityResult) ToResponse() *AvailabilityResponse {
	resp := &AvailabilityResponse{
		Available:           r.Available,
		ConflictingBookings: make([]*BookingResponse, len(r.ConflictingBookings)),
	}
	for i, b := range r.ConflictingBookings {
		resp.ConflictingBookings[i] = b.ToResponse()
	}
	if r.NextAvailableDate != nil {
		s := r.NextAvailableDate.Format(DateLayout)
		resp.NextAvailableDate = &s
	}
	if r.SuggestedEndDate != nil {
		s := r.SuggestedEndDate.Format(DateLayout)
		resp.SuggestedEndDate = &s
	}
	return resp
}
