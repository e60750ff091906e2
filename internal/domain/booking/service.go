package booking

import (
	"context"
	"database/sql"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hoardspot/hoardspot-api/internal/pkg/email"
)

// Mailer dispatches booking notifications. Nil when no email provider is
// configured; delivery failures never fail the booking.
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, p *email.BookingPayload) error
	SendBookingAlert(ctx context.Context, p *email.BookingPayload) error
}

// SpaceSnapshot carries the listing fields needed for email rendering.
// It is optional: without a snapshot no emails go out.
type SpaceSnapshot struct {
	ID      uuid.UUID
	Title   string
	City    string
	Address string
}

// Service handles availability checks and booking creation.
//
// The check and the subsequent create are independent statements with no
// transaction or lock binding them, so two overlapping requests for the
// same space can both land as pending. Sales resolves those manually
// when confirming.
type Service struct {
	repo   Repository
	mailer Mailer
}

// NewService creates booking service
func NewService(repo Repository, mailer Mailer) *Service {
	return &Service{repo: repo, mailer: mailer}
}

// CheckAvailability decides whether [start, end] is bookable for a space
// and, when it is not, proposes the earliest alternative slot of equal
// length. Callers must pass start <= end.
//
// A lookup failure fails open: the visitor sees the range as available
// rather than being blocked by a transient error. The write path is the
// opposite (see CreateBooking).
func (s *Service) CheckAvailability(ctx context.Context, mediaID uuid.UUID, start, end time.Time) *AvailabilityResult {
	bookings, err := s.repo.ListActiveByMedia(ctx, mediaID)
	if err != nil {
		log.Error().Err(err).Str("media_id", mediaID.String()).Msg("Availability lookup failed, treating range as open")
		return &AvailabilityResult{Available: true, ConflictingBookings: []*Booking{}}
	}

	conflicts := findConflicts(bookings, start, end)
	if len(conflicts) == 0 {
		return &AvailabilityResult{Available: true, ConflictingBookings: []*Booking{}}
	}

	result := &AvailabilityResult{
		Available:           false,
		ConflictingBookings: conflicts,
	}
	result.NextAvailableDate, result.SuggestedEndDate = nextOpenSlot(conflicts, start, end)
	return result
}

// CreateBooking persists a new pending booking and, best-effort, sends
// the confirmation and internal alert emails when a snapshot is present.
// Persistence failure fails closed with a user-facing error.
func (s *Service) CreateBooking(ctx context.Context, req *CreateRequest, snapshot *SpaceSnapshot) (*Booking, error) {
	if req.ClientName == "" || req.ClientEmail == "" {
		return nil, ErrMissingContact
	}

	mediaID, err := uuid.Parse(req.MediaID)
	if err != nil {
		return nil, ErrInvalidMediaID
	}

	start, err := time.Parse(DateLayout, req.StartDate)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	end, err := time.Parse(DateLayout, req.EndDate)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	// The quoted period is stored verbatim; a divergence from the
	// calendar period only gets a log line so sales can reconcile it.
	if computed := PeriodInMonths(start, end); math.Abs(computed-req.DurationMonths) > periodTolerance {
		log.Warn().
			Str("media_id", req.MediaID).
			Float64("quoted_months", req.DurationMonths).
			Float64("computed_months", computed).
			Msg("Quoted duration diverges from calendar period")
	}

	now := time.Now()
	b := &Booking{
		ID:          uuid.New(),
		MediaID:     mediaID,
		StartDate:   start,
		EndDate:     end,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: sql.NullString{String: req.ClientPhone, Valid: req.ClientPhone != ""},
		Booker:      sql.NullString{String: req.Company, Valid: req.Company != ""},
		// Price and period are stored as quoted by the caller; no
		// recomputation against the monthly rate happens here.
		BookingPrice: req.TotalPrice,
		Period:       req.DurationMonths,
		Code:         generateBookingCode(),
		Status:       StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		log.Error().Err(err).Str("media_id", req.MediaID).Msg("Failed to persist booking")
		return nil, ErrBookingNotAccepted
	}

	if snapshot != nil {
		s.sendBookingEmails(ctx, b, snapshot)
	}

	return b, nil
}

// sendBookingEmails dispatches both notification emails. Failures are
// logged and swallowed; the booking already exists at this point.
func (s *Service) sendBookingEmails(ctx context.Context, b *Booking, snapshot *SpaceSnapshot) {
	if s.mailer == nil {
		return
	}

	payload := &email.BookingPayload{
		BookingID:    b.ID.String(),
		Code:         b.Code,
		SpaceTitle:   snapshot.Title,
		SpaceCity:    snapshot.City,
		SpaceAddress: snapshot.Address,
		ClientName:   b.ClientName,
		ClientEmail:  b.ClientEmail,
		StartDate:    b.StartDate.Format(DateLayout),
		EndDate:      b.EndDate.Format(DateLayout),
		TotalPrice:   b.BookingPrice,
	}
	if b.Booker.Valid {
		payload.Company = b.Booker.String
	}

	if err := s.mailer.SendBookingConfirmation(ctx, payload); err != nil {
		log.Warn().Err(err).Int("code", b.Code).Msg("Failed to send booking confirmation email")
	}
	if err := s.mailer.SendBookingAlert(ctx, payload); err != nil {
		log.Warn().Err(err).Int("code", b.Code).Msg("Failed to send booking alert email")
	}
}

// GetByID returns booking by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

// ListByMedia returns bookings for a space, newest first
func (s *Service) ListByMedia(ctx context.Context, mediaID uuid.UUID, limit, offset int) ([]*Booking, int, error) {
	return s.repo.ListByMedia(ctx, mediaID, limit, offset)
}

// UpdateStatus applies a status transition
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return ErrBookingNotFound
	}

	if !b.CanTransitionTo(status) {
		return ErrInvalidTransition
	}

	return s.repo.UpdateStatus(ctx, id, status)
}

// generateBookingCode returns the 6-digit human reference code, kept
// independent of the booking's primary identifier.
func generateBookingCode() int {
	return 100000 + rand.Intn(900000)
}
