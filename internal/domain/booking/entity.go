package booking

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Status is the booking lifecycle state
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Booking represents a reservation request against one advertising space.
// Cancelled bookings are kept for history and never count toward conflicts.
type Booking struct {
	ID           uuid.UUID      `db:"id"`
	MediaID      uuid.UUID      `db:"media_id"`
	StartDate    time.Time      `db:"start_date"`
	EndDate      time.Time      `db:"end_date"`
	ClientName   string         `db:"client_name"`
	ClientEmail  string         `db:"client_email"`
	ClientPhone  sql.NullString `db:"client_phone"`
	Booker       sql.NullString `db:"booker"`
	BookingPrice float64        `db:"booking_price"`
	Period       float64        `db:"period"`
	Code         int            `db:"code"`
	Status       Status         `db:"status"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// IsActive reports whether the booking blocks other reservations
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanTransitionTo reports whether a status change is allowed.
// Only pending bookings move; confirmed can still be cancelled.
func (b *Booking) CanTransitionTo(next Status) bool {
	switch b.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled
	default:
		return false
	}
}
