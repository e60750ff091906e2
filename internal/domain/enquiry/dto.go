package enquiry

import (
	"time"

	"github.com/google/uuid"
)

// CreateEnquiryRequest for submitting a campaign enquiry
type CreateEnquiryRequest struct {
	ContactName  string `json:"contact_name" validate:"required,min=2,max=255"`
	ContactEmail string `json:"contact_email" validate:"required,email"`
	ContactPhone string `json:"contact_phone" validate:"required,min=10,max=20"`
	Company      string `json:"company,omitempty" validate:"omitempty,max=255"`
	BudgetBand   string `json:"budget_band,omitempty" validate:"omitempty,oneof=under_1l 1l-5l 5l-20l 20l+"`
	TargetCities string `json:"target_cities,omitempty" validate:"omitempty,max=500"`
	Message      string `json:"message,omitempty" validate:"omitempty,max=5000"`
}

// UpdateStatusRequest for moving an enquiry through the pipeline
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=contacted converted closed"`
	Notes  string `json:"notes,omitempty" validate:"omitempty,max=5000"`
}

// EnquiryResponse for API responses
type EnquiryResponse struct {
	ID           uuid.UUID `json:"id"`
	ContactName  string    `json:"contact_name"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone"`
	Company      string    `json:"company,omitempty"`
	BudgetBand   string    `json:"budget_band,omitempty"`
	TargetCities string    `json:"target_cities,omitempty"`
	Message      string    `json:"message,omitempty"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    string    `json:"created_at"`
}

// ToResponse converts entity to response
func ToResponse(e *Enquiry) *EnquiryResponse {
	resp := &EnquiryResponse{
		ID:           e.ID,
		ContactName:  e.ContactName,
		ContactEmail: e.ContactEmail,
		ContactPhone: e.ContactPhone,
		Status:       string(e.Status),
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
	}
	if e.Company.Valid {
		resp.Company = e.Company.String
	}
	if e.BudgetBand.Valid {
		resp.BudgetBand = e.BudgetBand.String
	}
	if e.TargetCities.Valid {
		resp.TargetCities = e.TargetCities.String
	}
	if e.Message.Valid {
		resp.Message = e.Message.String
	}
	if e.Notes.Valid {
		resp.Notes = e.Notes.String
	}
	return resp
}

// EnquirySubmittedResponse for the public submission endpoint
type EnquirySubmittedResponse struct {
	EnquiryID uuid.UUID `json:"enquiry_id"`
	Message   string    `json:"message"`
}
