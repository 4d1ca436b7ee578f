package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// TicketIssuedEmailData holds data for the ticket confirmation email sent
// after a successful registration.
type TicketIssuedEmailData struct {
	Email      string
	Name       string
	EventTitle string
	EventDate  string
	TicketCode string
	TicketURL  string
}

// EmailService defines the contract for sending domain-level emails.
// Sending is best-effort from the caller's perspective: registration does not
// fail because a confirmation email could not be delivered.
type EmailService interface {
	SendTicketIssued(ctx context.Context, data *TicketIssuedEmailData) error
}
