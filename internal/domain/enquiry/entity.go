package enquiry

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Status is the enquiry pipeline state
type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusConverted Status = "converted"
	StatusClosed    Status = "closed"
)

// Enquiry is a campaign planning request from an advertiser who wants
// help picking media instead of booking a single space directly.
type Enquiry struct {
	ID           uuid.UUID      `db:"id"`
	ContactName  string         `db:"contact_name"`
	ContactEmail string         `db:"contact_email"`
	ContactPhone string         `db:"contact_phone"`
	Company      sql.NullString `db:"company"`
	BudgetBand   sql.NullString `db:"budget_band"`
	TargetCities sql.NullString `db:"target_cities"`
	Message      sql.NullString `db:"message"`
	Status       Status         `db:"status"`
	Notes        sql.NullString `db:"notes"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// IsOpen reports whether the enquiry still needs follow-up
func (e *Enquiry) IsOpen() bool {
	return e.Status == StatusNew || e.Status == StatusContacted
}
