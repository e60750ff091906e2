package enquiry

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hoardspot/hoardspot-api/internal/pkg/email"
)

// Mailer sends the enquiry acknowledgement. Optional; nil disables it.
type Mailer interface {
	SendEnquiryAck(ctx context.Context, p *email.EnquiryPayload) error
}

// Service handles enquiry business logic
type Service struct {
	repo   Repository
	mailer Mailer
}

// NewService creates enquiry service
func NewService(repo Repository, mailer Mailer) *Service {
	return &Service{repo: repo, mailer: mailer}
}

// Submit creates a new enquiry (public endpoint)
func (s *Service) Submit(ctx context.Context, req *CreateEnquiryRequest) (*Enquiry, error) {
	now := time.Now()

	e := &Enquiry{
		ID:           uuid.New(),
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Company:      sql.NullString{String: req.Company, Valid: req.Company != ""},
		BudgetBand:   sql.NullString{String: req.BudgetBand, Valid: req.BudgetBand != ""},
		TargetCities: sql.NullString{String: req.TargetCities, Valid: req.TargetCities != ""},
		Message:      sql.NullString{String: req.Message, Valid: req.Message != ""},
		Status:       StatusNew,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}

	if s.mailer != nil {
		ack := &email.EnquiryPayload{
			ContactName:  e.ContactName,
			ContactEmail: e.ContactEmail,
			City:         req.TargetCities,
		}
		if err := s.mailer.SendEnquiryAck(ctx, ack); err != nil {
			log.Warn().Err(err).Str("enquiry_id", e.ID.String()).Msg("Failed to send enquiry acknowledgement")
		}
	}

	return e, nil
}

// GetByID returns enquiry by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Enquiry, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrEnquiryNotFound
	}
	return e, nil
}

// List returns enquiries with optional status filter
func (s *Service) List(ctx context.Context, status *Status, limit, offset int) ([]*Enquiry, int, error) {
	return s.repo.List(ctx, status, limit, offset)
}

// UpdateStatus moves an enquiry through the pipeline
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status, notes string) error {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return ErrEnquiryNotFound
	}

	if !e.IsOpen() {
		return ErrEnquiryClosed
	}

	return s.repo.UpdateStatus(ctx, id, status, notes)
}

// GetStats returns enquiry pipeline counts
func (s *Service) GetStats(ctx context.Context) (map[Status]int, error) {
	return s.repo.CountByStatus(ctx)
}
