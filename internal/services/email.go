package services

import (
	"context"
	"fmt"
	"log"

	"eventease/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendTicketIssued sends the registration confirmation using the
// "ticket_issued" template and the given data.
func (s *emailService) SendTicketIssued(ctx context.Context, data *domain.TicketIssuedEmailData) error {
	if data == nil {
		return fmt.Errorf("ticket issued data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("ticket_issued", data)
	if err != nil {
		return fmt.Errorf("failed to render ticket_issued template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send ticket email: %w", err)
	}
	log.Printf("[EMAIL] Ticket confirmation sent to %s", data.Email)
	return nil
}
