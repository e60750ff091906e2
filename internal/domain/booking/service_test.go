package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hoardspot/hoardspot-api/internal/pkg/email"
)

type fakeMailer struct {
	confirmErr    error
	alertErr      error
	confirmations []*email.BookingPayload
	alerts        []*email.BookingPayload
}

func (f *fakeMailer) SendBookingConfirmation(ctx context.Context, p *email.BookingPayload) error {
	f.confirmations = append(f.confirmations, p)
	return f.confirmErr
}

func (f *fakeMailer) SendBookingAlert(ctx context.Context, p *email.BookingPayload) error {
	f.alerts = append(f.alerts, p)
	return f.alertErr
}

func validCreateRequest(mediaID uuid.UUID) *CreateRequest {
	return &CreateRequest{
		MediaID:        mediaID.String(),
		StartDate:      "2024-06-01",
		EndDate:        "2024-08-31",
		ClientName:     "Asha Verma",
		ClientEmail:    "asha@example.in",
		ClientPhone:    "+91 98200 12345",
		Company:        "Verma Retail",
		TotalPrice:     255000,
		DurationMonths: 3,
	}
}

func testSnapshot(mediaID uuid.UUID) *SpaceSnapshot {
	return &SpaceSnapshot{
		ID:      mediaID,
		Title:   "Linking Road Hoarding",
		City:    "Mumbai",
		Address: "Linking Road, Bandra West",
	}
}

func TestCreateBookingPersistsPending(t *testing.T) {
	mediaID := uuid.New()
	repo := &fakeRepo{}
	mailer := &fakeMailer{}
	svc := NewService(repo, mailer)

	b, err := svc.CreateBooking(context.Background(), validCreateRequest(mediaID), testSnapshot(mediaID))
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	if b.Status != StatusPending {
		t.Fatalf("status = %s, want pending", b.Status)
	}
	if b.MediaID != mediaID {
		t.Fatal("booking not linked to the requested space")
	}
	if b.Code < 100000 || b.Code > 999999 {
		t.Fatalf("code %d outside 6-digit range", b.Code)
	}
	if b.BookingPrice != 255000 || b.Period != 3 {
		t.Fatalf("price/period not stored as submitted: %v / %v", b.BookingPrice, b.Period)
	}
	if !b.StartDate.Equal(date(2024, time.June, 1)) || !b.EndDate.Equal(date(2024, time.August, 31)) {
		t.Fatalf("dates parsed wrong: %s – %s", b.StartDate, b.EndDate)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one persisted booking, got %d", len(repo.created))
	}
	if len(mailer.confirmations) != 1 || len(mailer.alerts) != 1 {
		t.Fatalf("expected confirmation and alert emails, got %d/%d", len(mailer.confirmations), len(mailer.alerts))
	}
	if mailer.confirmations[0].SpaceTitle != "Linking Road Hoarding" {
		t.Fatal("email payload missing listing snapshot")
	}
}

func TestCreateBookingSurvivesMailerFailure(t *testing.T) {
	mediaID := uuid.New()
	repo := &fakeRepo{}
	mailer := &fakeMailer{
		confirmErr: errors.New("sendgrid 503"),
		alertErr:   errors.New("sendgrid 503"),
	}
	svc := NewService(repo, mailer)

	b, err := svc.CreateBooking(context.Background(), validCreateRequest(mediaID), testSnapshot(mediaID))
	if err != nil {
		t.Fatalf("mailer failure must not fail the booking: %v", err)
	}
	if b == nil {
		t.Fatal("expected a booking despite email failure")
	}
	if len(repo.created) != 1 {
		t.Fatal("booking was not persisted")
	}
}

func TestCreateBookingFailsClosedOnPersistError(t *testing.T) {
	mediaID := uuid.New()
	repo := &fakeRepo{createErr: errors.New("deadlock detected")}
	mailer := &fakeMailer{}
	svc := NewService(repo, mailer)

	b, err := svc.CreateBooking(context.Background(), validCreateRequest(mediaID), testSnapshot(mediaID))
	if !errors.Is(err, ErrBookingNotAccepted) {
		t.Fatalf("err = %v, want ErrBookingNotAccepted", err)
	}
	if b != nil {
		t.Fatal("expected no booking on persistence failure")
	}
	if len(mailer.confirmations) != 0 || len(mailer.alerts) != 0 {
		t.Fatal("no email may be attempted when persistence fails")
	}
}

func TestCreateBookingWithoutSnapshotSkipsEmails(t *testing.T) {
	mediaID := uuid.New()
	repo := &fakeRepo{}
	mailer := &fakeMailer{}
	svc := NewService(repo, mailer)

	b, err := svc.CreateBooking(context.Background(), validCreateRequest(mediaID), nil)
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}
	if b == nil {
		t.Fatal("expected a booking")
	}
	if len(mailer.confirmations) != 0 || len(mailer.alerts) != 0 {
		t.Fatal("emails must be skipped without a listing snapshot")
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil)
	mediaID := uuid.New()

	missingContact := validCreateRequest(mediaID)
	missingContact.ClientEmail = ""
	if _, err := svc.CreateBooking(context.Background(), missingContact, nil); !errors.Is(err, ErrMissingContact) {
		t.Fatalf("err = %v, want ErrMissingContact", err)
	}

	badMedia := validCreateRequest(mediaID)
	badMedia.MediaID = "not-a-uuid"
	if _, err := svc.CreateBooking(context.Background(), badMedia, nil); !errors.Is(err, ErrInvalidMediaID) {
		t.Fatalf("err = %v, want ErrInvalidMediaID", err)
	}

	reversed := validCreateRequest(mediaID)
	reversed.StartDate, reversed.EndDate = reversed.EndDate, reversed.StartDate
	if _, err := svc.CreateBooking(context.Background(), reversed, nil); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("err = %v, want ErrInvalidDateRange", err)
	}
}

func TestCreateBookingKeepsQuotedPeriodVerbatim(t *testing.T) {
	mediaID := uuid.New()
	repo := &fakeRepo{}
	svc := NewService(repo, nil)

	// Jun 1 – Aug 31 is three calendar months; the quoted period wins
	// anyway and the divergence is only logged.
	req := validCreateRequest(mediaID)
	req.DurationMonths = 12

	b, err := svc.CreateBooking(context.Background(), req, nil)
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}
	if b.Period != 12 {
		t.Fatalf("period = %v, want the quoted 12", b.Period)
	}
	if len(repo.created) != 1 {
		t.Fatal("booking was not persisted")
	}
}

func TestGenerateBookingCodeRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := generateBookingCode()
		if code < 100000 || code > 999999 {
			t.Fatalf("code %d outside 6-digit range", code)
		}
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	mediaID := uuid.New()
	repo := &fakeRepo{}
	svc := NewService(repo, nil)

	b, err := svc.CreateBooking(context.Background(), validCreateRequest(mediaID), nil)
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	if err := svc.UpdateStatus(context.Background(), b.ID, StatusConfirmed); err != nil {
		t.Fatalf("pending -> confirmed should be allowed: %v", err)
	}
	if err := svc.UpdateStatus(context.Background(), b.ID, StatusCancelled); err != nil {
		t.Fatalf("confirmed -> cancelled should be allowed: %v", err)
	}
	if err := svc.UpdateStatus(context.Background(), b.ID, StatusConfirmed); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("cancelled -> confirmed: err = %v, want ErrInvalidTransition", err)
	}

	if err := svc.UpdateStatus(context.Background(), uuid.New(), StatusConfirmed); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("unknown booking: err = %v, want ErrBookingNotFound", err)
	}
}
