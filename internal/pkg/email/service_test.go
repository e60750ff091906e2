package email

import (
	"context"
	"strings"
	"testing"
)

type fakeSender struct {
	sent []*Message
	err  error
}

func (f *fakeSender) Send(ctx context.Context, m *Message) error {
	f.sent = append(f.sent, m)
	return f.err
}

func bookingPayload() *BookingPayload {
	return &BookingPayload{
		BookingID:    "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		Code:         482913,
		SpaceTitle:   "Linking Road Hoarding",
		SpaceCity:    "Mumbai",
		SpaceAddress: "Linking Road, Bandra West",
		ClientName:   "Asha Verma",
		ClientEmail:  "asha@example.in",
		Company:      "Verma Retail",
		StartDate:    "2024-06-01",
		EndDate:      "2024-08-31",
		TotalPrice:   255000,
	}
}

func TestSendBookingConfirmation(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(sender, "sales@hoardspot.in", "https://hoardspot.in")

	if err := svc.SendBookingConfirmation(context.Background(), bookingPayload()); err != nil {
		t.Fatalf("SendBookingConfirmation failed: %v", err)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("expected one message, got %d", len(sender.sent))
	}
	m := sender.sent[0]
	if m.To != "asha@example.in" {
		t.Fatalf("sent to %q, want the client address", m.To)
	}
	if !strings.Contains(m.Subject, "482913") {
		t.Fatalf("subject missing booking code: %q", m.Subject)
	}
	if !strings.Contains(m.HTMLContent, "Linking Road Hoarding") {
		t.Fatal("body missing listing title")
	}
	if !strings.Contains(m.HTMLContent, "https://hoardspot.in/bookings/7c9e6679-7425-40de-944b-e07fc1f90ae7") {
		t.Fatal("body missing booking link")
	}
}

func TestSendBookingAlertGoesToSalesInbox(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(sender, "sales@hoardspot.in", "https://hoardspot.in")

	if err := svc.SendBookingAlert(context.Background(), bookingPayload()); err != nil {
		t.Fatalf("SendBookingAlert failed: %v", err)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("expected one message, got %d", len(sender.sent))
	}
	if sender.sent[0].To != "sales@hoardspot.in" {
		t.Fatalf("alert sent to %q, want the sales inbox", sender.sent[0].To)
	}
}

func TestSendEnquiryAck(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(sender, "sales@hoardspot.in", "https://hoardspot.in")

	err := svc.SendEnquiryAck(context.Background(), &EnquiryPayload{
		ContactName:  "Rahul Nair",
		ContactEmail: "rahul@example.in",
		City:         "Kochi, Chennai",
	})
	if err != nil {
		t.Fatalf("SendEnquiryAck failed: %v", err)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("expected one message, got %d", len(sender.sent))
	}
	if sender.sent[0].To != "rahul@example.in" {
		t.Fatalf("ack sent to %q", sender.sent[0].To)
	}
}
