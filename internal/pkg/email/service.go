package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/rs/zerolog/log"
)

// BookingPayload carries everything the booking templates need: the
// listing snapshot, the submitted form data and the created booking's
// reference details.
type BookingPayload struct {
	BookingID    string
	Code         int
	SpaceTitle   string
	SpaceCity    string
	SpaceAddress string
	ClientName   string
	ClientEmail  string
	Company      string
	StartDate    string
	EndDate      string
	TotalPrice   float64
	BookingURL   string
}

// EnquiryPayload carries the fields for the enquiry acknowledgement
type EnquiryPayload struct {
	ContactName  string
	ContactEmail string
	City         string
}

// Service renders HTML templates and dispatches them through a Sender
type Service struct {
	sender       Sender
	alertTo      string
	frontendURL  string
	templates    map[string]*template.Template
	baseTemplate *template.Template
}

// NewService creates the email service. The sender is typically a
// SendGrid client; tests inject fakes.
func NewService(sender Sender, alertTo, frontendURL string) *Service {
	s := &Service{
		sender:      sender,
		alertTo:     alertTo,
		frontendURL: frontendURL,
		templates:   make(map[string]*template.Template),
	}

	s.baseTemplate, _ = template.New("base").Parse(BaseTemplate)

	s.loadTemplates()

	return s
}

func (s *Service) loadTemplates() {
	templates := map[string]string{
		"booking_confirmation": BookingConfirmationTemplate,
		"booking_alert":        BookingAlertTemplate,
		"enquiry_ack":          EnquiryAckTemplate,
	}

	for name, content := range templates {
		tmpl, err := template.New(name).Parse(content)
		if err != nil {
			log.Error().Err(err).Str("template", name).Msg("Failed to parse email template")
			continue
		}
		s.templates[name] = tmpl
	}
}

// render executes the named template and wraps it in the base layout
func (s *Service) render(name string, data interface{}) (string, error) {
	tmpl, ok := s.templates[name]
	if !ok {
		return "", fmt.Errorf("template %s not found", name)
	}

	var content bytes.Buffer
	if err := tmpl.Execute(&content, data); err != nil {
		return "", err
	}

	var out bytes.Buffer
	err := s.baseTemplate.Execute(&out, map[string]template.HTML{
		"Content": template.HTML(content.String()),
	})
	if err != nil {
		return "", err
	}

	return out.String(), nil
}

// SendBookingConfirmation sends the client-facing confirmation email
func (s *Service) SendBookingConfirmation(ctx context.Context, p *BookingPayload) error {
	p.BookingURL = s.frontendURL + "/bookings/" + p.BookingID

	html, err := s.render("booking_confirmation", p)
	if err != nil {
		return err
	}

	return s.sender.Send(ctx, &Message{
		To:          p.ClientEmail,
		ToName:      p.ClientName,
		Subject:     fmt.Sprintf("Booking request #%d received — %s", p.Code, p.SpaceTitle),
		HTMLContent: html,
	})
}

// SendBookingAlert sends the internal alert to the sales inbox
func (s *Service) SendBookingAlert(ctx context.Context, p *BookingPayload) error {
	html, err := s.render("booking_alert", p)
	if err != nil {
		return err
	}

	return s.sender.Send(ctx, &Message{
		To:          s.alertTo,
		Subject:     fmt.Sprintf("New booking #%d — %s", p.Code, p.SpaceTitle),
		HTMLContent: html,
	})
}

// SendEnquiryAck acknowledges a campaign enquiry
func (s *Service) SendEnquiryAck(ctx context.Context, p *EnquiryPayload) error {
	html, err := s.render("enquiry_ack", p)
	if err != nil {
		return err
	}

	return s.sender.Send(ctx, &Message{
		To:          p.ContactEmail,
		ToName:      p.ContactName,
		Subject:     "We received your campaign enquiry",
		HTMLContent: html,
	})
}
