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

// ConfirmationEmailData holds data for signup and unregister confirmation emails.
type ConfirmationEmailData struct {
	Email        string
	ActivityName string
	Schedule     string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendSignupConfirmation(ctx context.Context, data *ConfirmationEmailData) error
	SendUnregisterConfirmation(ctx context.Context, data *ConfirmationEmailData) error
}
